package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/rssreader/internal/application/usecase"
	"github.com/tesso57/rssreader/internal/domain/reading"
	"github.com/tesso57/rssreader/internal/presentation/tui/presenter"
	"github.com/tesso57/rssreader/internal/presentation/tui/state"
	"github.com/tesso57/rssreader/internal/presentation/tui/update"
)

func stringsContain(s, sub string) bool {
	return strings.Contains(s, sub)
}

func sendKeys(m *Model, keys ...tea.KeyMsg) (*Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var tm tea.Model
		tm, cmd = m.Update(k)
		m = tm.(*Model)
	}
	return m, cmd
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeKeys(s string) []tea.KeyMsg {
	out := make([]tea.KeyMsg, 0, len(s))
	for _, r := range s {
		out = append(out, key(string(r)))
	}
	return out
}

// drain delivers pending section changes the way the program loop would.
func drain(t *testing.T, m *Model) *Model {
	t.Helper()
	if sections := m.changes.Take(); len(sections) > 0 {
		tm, _ := m.Update(update.StateChangedMsg{Sections: sections})
		m = tm.(*Model)
	}
	return m
}

func TestNewModel(t *testing.T) {
	m, _, _ := newTestModel("https://a.example/feed", "https://b.example/feed")

	assert.Equal(t, state.FeedView, m.state.Session)
	require.Len(t, m.state.FeedList.Items(), 2)
	assert.Equal(t, "1. Alpha", m.state.FeedList.Items()[0].(*presenter.Item).TitleText)
	require.Len(t, m.state.PostList.Items(), 2)
	assert.Equal(t, "Alpha", m.state.PostList.Title)
	assert.NotNil(t, m.Init())
}

func TestModel_WindowSizeAndView(t *testing.T) {
	m, _, _ := newTestModel("https://a.example/feed")
	tm, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = tm.(*Model)

	assert.Equal(t, 40, m.state.FeedList.Width())
	v := m.View()
	assert.Contains(t, v, "RSS Feeds")
	assert.Contains(t, v, "Alpha one")
	assert.Contains(t, v, "https://a.example/feed")
}

func TestModel_EmptyState(t *testing.T) {
	m, _, _ := newTestModel()
	tm, _ := m.Update(tea.WindowSizeMsg{Width: 200, Height: 30})
	m = tm.(*Model)

	assert.Contains(t, m.View(), "No feeds yet. Press a to add one.")
}

func TestModel_FeedSelectionRefreshesPosts(t *testing.T) {
	m, _, _ := newTestModel("https://a.example/feed", "https://b.example/feed")
	tm, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = tm.(*Model)

	m, _ = sendKeys(m, key("j"))
	require.Equal(t, 1, m.state.FeedList.Index())
	require.Len(t, m.state.PostList.Items(), 1)
	assert.Equal(t, "Beta one", m.state.PostList.Items()[0].(*presenter.Item).TitleText)
	assert.Equal(t, "Beta", m.state.PostList.Title)
}

func TestModel_StateChangedRearmsWait(t *testing.T) {
	m, reader, _ := newTestModel("https://a.example/feed")
	reader.FailPoll(errors.New("offline"))

	msg := update.WaitForChange(m.changes)()
	require.Equal(t, update.StateChangedMsg{Sections: []usecase.Section{usecase.SectionUpdateError}}, msg)
	tm, cmd := m.Update(msg)
	m = tm.(*Model)
	assert.Equal(t, "text:UPDATE_ERR", m.state.UpdateBanner)
	require.NotNil(t, cmd)

	tm, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = tm.(*Model)
	assert.Contains(t, m.View(), "text:UPDATE_ERR")
}

func TestModel_PollMergeShowsNewPosts(t *testing.T) {
	m, reader, _ := newTestModel("https://a.example/feed")
	feed := reader.Feeds()[0]

	reader.ApplyPoll([]usecase.FetchResult{{
		FeedID: feed.ID,
		URL:    feed.URL,
		Document: &reading.Document{Items: []reading.DocumentItem{
			{Title: "Alpha zero", Link: "https://a.example/0"},
			{Title: "Alpha one", Link: "https://a.example/1"},
		}},
	}})
	m = drain(t, m)

	require.Len(t, m.state.PostList.Items(), 3)
	assert.Equal(t, "Alpha zero", m.state.PostList.Items()[0].(*presenter.Item).TitleText)
}

func TestModel_AddFeed(t *testing.T) {
	m, reader, _ := newTestModel("https://a.example/feed")
	tm, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = tm.(*Model)

	m, _ = sendKeys(m, key("a"))
	require.Equal(t, state.AddingFeedView, m.state.Session)
	assert.Contains(t, m.View(), "Enter Feed URL:")

	m, _ = sendKeys(m, typeKeys("not a url")...)
	assert.True(t, m.state.Form.Flagged())
	assert.Contains(t, m.View(), invalidURLText)

	for range "not a url" {
		m, _ = sendKeys(m, tea.KeyMsg{Type: tea.KeyBackspace})
	}
	require.Empty(t, reader.Form().Input)

	m, _ = sendKeys(m, typeKeys("https://b.example/feed")...)
	require.True(t, m.state.Form.CanSubmit())

	m, cmd := sendKeys(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Fetching feed...")

	msg := update.AddFeedCmd(m.deps())()
	tm, _ = m.Update(msg)
	m = drain(t, tm.(*Model))

	assert.Equal(t, state.FeedView, m.state.Session)
	require.Len(t, m.state.FeedList.Items(), 2)
	assert.Equal(t, "Beta", m.state.PostList.Title)
	assert.Contains(t, m.View(), "Added Beta")
}

func TestModel_AddFeedFailureShowsBanner(t *testing.T) {
	m, _, _ := newTestModel()
	tm, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = tm.(*Model)

	m, _ = sendKeys(m, key("a"))
	m, _ = sendKeys(m, typeKeys("https://down.example/feed")...)
	m, _ = sendKeys(m, tea.KeyMsg{Type: tea.KeyEnter})

	tm, _ = m.Update(update.AddFeedCmd(m.deps())())
	m = drain(t, tm.(*Model))

	require.Equal(t, state.AddingFeedView, m.state.Session)
	v := m.View()
	assert.Contains(t, v, "text:FETCH_ERR")
	assert.Contains(t, v, "(x to dismiss)")

	m, _ = sendKeys(m, tea.KeyMsg{Type: tea.KeyEsc}, key("x"))
	assert.Empty(t, m.state.Banner)
	assert.NotContains(t, m.View(), "text:FETCH_ERR")
}

func TestModel_Preview(t *testing.T) {
	m, reader, _ := newTestModel("https://a.example/feed")
	tm, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = tm.(*Model)

	m, _ = sendKeys(m, key("l"), tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, state.PreviewView, m.state.Session)
	v := m.View()
	assert.Contains(t, v, "Alpha one")
	assert.Contains(t, v, "first")
	assert.True(t, reader.Modal().Open)

	m, _ = sendKeys(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, state.PostView, m.state.Session)
	assert.False(t, reader.Modal().Open)
}

func TestModel_HelpModal(t *testing.T) {
	m, _, _ := newTestModel("https://a.example/feed")
	tm, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = tm.(*Model)

	m, _ = sendKeys(m, key("?"))
	assert.True(t, m.state.Help.ShowAll)
	assert.Contains(t, m.View(), "dismiss error")
}

func TestModel_OpenBrowser(t *testing.T) {
	originalOpenCmd := OSOpenCmd
	defer func() { OSOpenCmd = originalOpenCmd }()
	OSOpenCmd = nilOpenCmd

	m, _, _ := newTestModel("https://a.example/feed")
	m, _ = sendKeys(m, key("l"), key("o"))
	assert.Equal(t, "Could not open browser: unsupported platform", m.state.Status)
}

func TestModel_ListenerKeepsLatestState(t *testing.T) {
	m, reader, _ := newTestModel("https://a.example/feed")

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			reader.FailPoll(errors.New("offline"))
			reader.ApplyPoll(nil)
			reader.OpenPost("missing")
		}
		reader.FailPoll(errors.New("offline"))
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publishing blocked while the UI was not reading")
	}

	m = drain(t, m)
	assert.Equal(t, "text:UPDATE_ERR", m.state.UpdateBanner)
	assert.Empty(t, m.changes.Take())
}

func TestModel_AddFeedUsesModelContext(t *testing.T) {
	src := &stubFeedSource{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	src.On("Fetch", ctx, "https://a.example/feed").Return(nil, context.Canceled).Once()

	reader := usecase.NewReader(src, nopLogger())
	m := NewModel(ctx, testSettings(), reader, echoMessages{})
	reader.InputChanged("https://a.example/feed")

	msg := update.AddFeedCmd(m.deps())().(update.FeedAddedMsg)
	assert.ErrorIs(t, msg.Err, context.Canceled)
	src.AssertExpectations(t)
}
