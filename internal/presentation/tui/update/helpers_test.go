package update

import (
	"context"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/tesso57/rssreader/internal/application/settings"
	"github.com/tesso57/rssreader/internal/application/usecase"
	"github.com/tesso57/rssreader/internal/domain/reading"
	"github.com/tesso57/rssreader/internal/presentation/tui/state"
)

type stubSource struct {
	mock.Mock
	mu   sync.Mutex
	docs map[string]*reading.Document
}

func (s *stubSource) Fetch(ctx context.Context, url string) (*reading.Document, error) {
	if len(s.ExpectedCalls) > 0 {
		args := s.Called(ctx, url)
		doc, _ := args.Get(0).(*reading.Document)
		return doc, args.Error(1)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if doc, ok := s.docs[url]; ok {
		return doc, nil
	}
	return nil, context.DeadlineExceeded
}

func testKeys() settings.KeyMapConfig {
	return settings.KeyMapConfig{
		Up: "k,up", Down: "j,down", Left: "h,left", Right: "l,right",
		Open: "enter", OpenBrowser: "o", Back: "esc", Quit: "q",
		AddFeed: "a", DismissError: "x",
	}
}

type plainMessages struct{}

func (plainMessages) Text(key string) string { return "msg:" + key }

func newTestState() *state.ModelState {
	return &state.ModelState{
		Session:   state.FeedView,
		FeedList:  list.New(nil, list.NewDefaultDelegate(), 0, 0),
		PostList:  list.New(nil, list.NewDefaultDelegate(), 0, 0),
		TextInput: textinput.New(),
		Viewport:  viewport.New(0, 0),
		Help:      help.New(),
		Spinner:   spinner.New(),
		Keys:      state.NewKeyMap(testKeys()),
		Width:     100,
		Height:    40,
	}
}

// newTestReader returns a reader already subscribed to the given documents.
func newTestReader(docs map[string]*reading.Document, order ...string) (*usecase.Reader, *stubSource) {
	src := &stubSource{docs: docs}
	r := usecase.NewReader(src, zerolog.Nop())
	for _, url := range order {
		if err := r.Subscribe(context.Background(), url); err != nil {
			panic(err)
		}
	}
	return r, src
}

func newDeps(r Reader) Deps {
	return Deps{Reader: r, Messages: plainMessages{}}
}

func sampleDocs() map[string]*reading.Document {
	return map[string]*reading.Document{
		"https://a.example/feed": {
			Title: "Alpha",
			Items: []reading.DocumentItem{
				{Title: "A1", Description: "<p>first &amp; best</p>", Link: "https://a.example/1"},
				{Title: "A2", Description: "second", Link: "https://a.example/2"},
			},
		},
		"https://b.example/feed": {
			Title: "Beta",
			Items: []reading.DocumentItem{
				{Title: "B1", Link: "https://b.example/1"},
			},
		},
	}
}
