package tui

import (
	"context"
	"fmt"
	"os/exec"
	"sync"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/tesso57/rssreader/internal/application/settings"
	"github.com/tesso57/rssreader/internal/application/usecase"
	"github.com/tesso57/rssreader/internal/domain/reading"
)

type stubFeedSource struct {
	mock.Mock
	mu   sync.Mutex
	docs map[string]*reading.Document
}

func (s *stubFeedSource) Fetch(ctx context.Context, url string) (*reading.Document, error) {
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
	return nil, fmt.Errorf("no feed at %s", url)
}

type echoMessages struct{}

func (echoMessages) Text(key string) string { return "text:" + key }

func testSettings() settings.Settings {
	return settings.Settings{
		KeyMap: settings.KeyMapConfig{
			Up: "k,up", Down: "j,down", Left: "h,left", Right: "l,right",
			Open: "enter", OpenBrowser: "o", Back: "esc", Quit: "q",
			AddFeed: "a", DismissError: "x",
		},
		Theme: settings.ThemeConfig{FeedName: "244", Invalid: "196"},
	}
}

func testDocs() map[string]*reading.Document {
	return map[string]*reading.Document{
		"https://a.example/feed": {
			Title:       "Alpha",
			Description: "Alpha news",
			Items: []reading.DocumentItem{
				{Title: "Alpha one", Description: "first", Link: "https://a.example/1"},
				{Title: "Alpha two", Description: "second", Link: "https://a.example/2"},
			},
		},
		"https://b.example/feed": {
			Title: "Beta",
			Items: []reading.DocumentItem{
				{Title: "Beta one", Link: "https://b.example/1"},
			},
		},
	}
}

// newTestModel builds a model over a reader subscribed to urls.
func newTestModel(urls ...string) (*Model, *usecase.Reader, *stubFeedSource) {
	src := &stubFeedSource{docs: testDocs()}
	reader := usecase.NewReader(src, zerolog.Nop())
	for _, url := range urls {
		if err := reader.Subscribe(context.Background(), url); err != nil {
			panic(err)
		}
	}
	return NewModel(context.Background(), testSettings(), reader, echoMessages{}), reader, src
}

func nopLogger() zerolog.Logger { return zerolog.Nop() }

func nilOpenCmd(string) *exec.Cmd { return nil }
