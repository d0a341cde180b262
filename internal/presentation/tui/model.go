package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/rssreader/internal/application/settings"
	"github.com/tesso57/rssreader/internal/application/usecase"
	"github.com/tesso57/rssreader/internal/presentation/tui/state"
	"github.com/tesso57/rssreader/internal/presentation/tui/update"
	"github.com/tesso57/rssreader/internal/presentation/tui/view"
	listview "github.com/tesso57/rssreader/internal/presentation/tui/view/list"
)

// Reader is the reader core as seen by the TUI.
type Reader interface {
	update.Reader
	OnChange(section usecase.Section, l usecase.Listener)
}

// Model represents the main application state.
type Model struct {
	ctx      context.Context
	settings settings.Settings
	reader   Reader
	messages update.Messages
	changes  *update.Changes
	state    *state.ModelState
}

// NewModel creates a new application model and subscribes it to reader.
func NewModel(ctx context.Context, cfg settings.Settings, reader Reader, messages update.Messages) *Model {
	m := &Model{
		ctx:      ctx,
		settings: cfg,
		reader:   reader,
		messages: messages,
		changes:  update.NewChanges(),
		state:    newModelState(cfg),
	}
	for _, section := range allSections {
		reader.OnChange(section, m.changes.Mark)
	}
	update.Sync(m.state, m.deps())
	return m
}

var allSections = []usecase.Section{
	usecase.SectionForm,
	usecase.SectionFeeds,
	usecase.SectionPosts,
	usecase.SectionModal,
	usecase.SectionError,
	usecase.SectionUpdateError,
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.state.Spinner.Tick, textinput.Blink, update.WaitForChange(m.changes))
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := update.HandleKeyMsg(m.state, msg, m.deps())
		if handled {
			update.UpdateListSizes(m.state)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		update.HandleWindowSize(m.state, msg)
	case update.StateChangedMsg:
		update.HandleStateChanged(m.state, msg, m.deps())
		cmds = append(cmds, update.WaitForChange(m.changes))
	case update.FeedAddedMsg:
		update.HandleFeedAddedMsg(m.state, msg, m.deps())
	}

	if m.state.Form.Fetching {
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	switch m.state.Session {
	case state.FeedView:
		prev := update.SelectedFeedID(m.state)
		m.state.FeedList, cmd = m.state.FeedList.Update(msg)
		if update.SelectedFeedID(m.state) != prev {
			update.RefreshPosts(m.state, m.deps())
			update.UpdateListSizes(m.state)
		}
		cmds = append(cmds, cmd)
	case state.PostView:
		m.state.PostList, cmd = m.state.PostList.Update(msg)
		cmds = append(cmds, cmd)
	case state.PreviewView:
		m.state.Viewport, cmd = m.state.Viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the application view.
func (m *Model) View() string {
	return view.Render(m.buildProps())
}

func (m *Model) deps() update.Deps {
	return update.Deps{
		Reader:      m.reader,
		Messages:    m.messages,
		OpenBrowser: openBrowser,
		Context:     m.ctx,
	}
}

func newModelState(cfg settings.Settings) *state.ModelState {
	return &state.ModelState{
		Session:   state.FeedView,
		FeedList:  newFeedList(cfg),
		PostList:  newPostList(),
		TextInput: newTextInput(),
		Viewport:  newViewport(),
		Help:      help.New(),
		Spinner:   newSpinner(),
		Keys:      state.NewKeyMap(cfg.KeyMap),
	}
}

func newFeedList(cfg settings.Settings) list.Model {
	l := list.New([]list.Item{}, listview.NewFeedDelegate(lipgloss.Color(cfg.Theme.FeedName)), 0, 0)
	l.Title = sidebarTitle
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	return l
}

func newPostList() list.Model {
	l := list.New([]list.Item{}, listview.NewPostDelegate(), 0, 0)
	l.Title = "Posts"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	return l
}

func newTextInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "https://example.com/feed.xml (RSS/Atom)"
	ti.CharLimit = 2048
	ti.Width = 48
	return ti
}

func newSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return s
}

func newViewport() viewport.Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)
	return vp
}
