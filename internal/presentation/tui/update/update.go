// Package update holds UI update logic for the TUI.
package update

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/rssreader/internal/application/usecase"
	"github.com/tesso57/rssreader/internal/domain/form"
	"github.com/tesso57/rssreader/internal/domain/reading"
	"github.com/tesso57/rssreader/internal/presentation/tui/intent"
	"github.com/tesso57/rssreader/internal/presentation/tui/presenter"
	"github.com/tesso57/rssreader/internal/presentation/tui/state"
)

// Reader is the part of the reader core the TUI drives.
type Reader interface {
	InputChanged(value string)
	AddFeed(ctx context.Context) error
	OpenPost(id string) bool
	CloseModal()
	DismissError()
	Form() form.State
	Feeds() []reading.Feed
	Posts(feedID string) []reading.Post
	Modal() usecase.Modal
	Error() usecase.MessageKey
	UpdateError() usecase.MessageKey
}

// Messages resolves banner keys into text.
type Messages interface {
	Text(key string) string
}

// Deps groups external dependencies for updates.
type Deps struct {
	Reader      Reader
	Messages    Messages
	OpenBrowser func(string) error
	Context     context.Context
}

func (d Deps) ctx() context.Context {
	if d.Context != nil {
		return d.Context
	}
	return context.Background()
}

func (d Deps) text(key usecase.MessageKey) string {
	if key == usecase.NoMessage {
		return ""
	}
	if d.Messages == nil {
		return string(key)
	}
	return d.Messages.Text(string(key))
}

// StateChangedMsg carries the sections the reader changed since the last one.
type StateChangedMsg struct {
	Sections []usecase.Section
}

// FeedAddedMsg is emitted after a form submission settles.
type FeedAddedMsg struct {
	Err error
}

// AddFeedCmd submits the add-feed form.
func AddFeedCmd(deps Deps) tea.Cmd {
	return func() tea.Msg {
		return FeedAddedMsg{Err: deps.Reader.AddFeed(deps.ctx())}
	}
}

// Sync refreshes every mirrored section from the reader.
func Sync(s *state.ModelState, deps Deps) {
	for _, section := range []usecase.Section{
		usecase.SectionForm,
		usecase.SectionFeeds,
		usecase.SectionModal,
		usecase.SectionError,
		usecase.SectionUpdateError,
	} {
		syncSection(s, section, deps)
	}
	UpdateListSizes(s)
}

// HandleStateChanged refreshes the sections named by msg.
func HandleStateChanged(s *state.ModelState, msg StateChangedMsg, deps Deps) {
	for _, section := range msg.Sections {
		syncSection(s, section, deps)
	}
	UpdateListSizes(s)
}

func syncSection(s *state.ModelState, section usecase.Section, deps Deps) {
	switch section {
	case usecase.SectionForm:
		syncForm(s, deps)
	case usecase.SectionFeeds:
		presenter.ApplyFeedList(&s.FeedList, deps.Reader.Feeds())
		RefreshPosts(s, deps)
	case usecase.SectionPosts:
		RefreshPosts(s, deps)
	case usecase.SectionModal:
		syncPreview(s, deps)
	case usecase.SectionError:
		s.Banner = deps.text(deps.Reader.Error())
	case usecase.SectionUpdateError:
		s.UpdateBanner = deps.text(deps.Reader.UpdateError())
	}
}

func syncForm(s *state.ModelState, deps Deps) {
	s.Form = deps.Reader.Form()
	if s.TextInput.Value() != s.Form.Input {
		s.TextInput.SetValue(s.Form.Input)
	}
	if s.Form.InputDisabled() {
		s.TextInput.Blur()
	} else if s.Session == state.AddingFeedView {
		s.TextInput.Focus()
	}
}

func syncPreview(s *state.ModelState, deps Deps) {
	m := deps.Reader.Modal()
	if !m.Open {
		s.PreviewTitle, s.PreviewLink = "", ""
		if s.Session == state.PreviewView {
			s.Session = state.PostView
		}
		return
	}
	s.PreviewTitle = m.Title
	s.PreviewLink = m.Link
	s.Viewport.SetContent(buildPreviewContent(m, previewWrapWidth(s)))
	s.Viewport.GotoTop()
}

// RefreshPosts shows the posts of the feed under the sidebar cursor.
func RefreshPosts(s *state.ModelState, deps Deps) {
	feedID := SelectedFeedID(s)
	if feedID == "" {
		s.PostList.SetItems(nil)
		s.PostList.Title = ""
		return
	}
	for _, f := range deps.Reader.Feeds() {
		if f.ID == feedID {
			presenter.ApplyPostList(&s.PostList, f, deps.Reader.Posts(f.ID))
			return
		}
	}
}

// SelectedFeedID returns the ID of the feed under the sidebar cursor.
func SelectedFeedID(s *state.ModelState) string {
	if i, ok := s.FeedList.SelectedItem().(*presenter.Item); ok {
		return i.ID
	}
	return ""
}

func selectedPost(s *state.ModelState) (*presenter.Item, bool) {
	i, ok := s.PostList.SelectedItem().(*presenter.Item)
	return i, ok && i != nil
}

// HandleWindowSize records the terminal size and resizes the lists.
func HandleWindowSize(s *state.ModelState, msg tea.WindowSizeMsg) {
	s.Width = msg.Width
	s.Height = msg.Height

	UpdateListSizes(s)
}

// HandleFeedAddedMsg applies the outcome of a submission.
func HandleFeedAddedMsg(s *state.ModelState, msg FeedAddedMsg, deps Deps) {
	Sync(s, deps)
	if errors.Is(msg.Err, usecase.ErrNotSubmittable) {
		return
	}
	if msg.Err != nil {
		s.Status = ""
		return
	}
	s.Session = state.FeedView
	s.TextInput.Blur()
	if n := len(s.FeedList.Items()); n > 0 {
		s.FeedList.Select(n - 1)
		RefreshPosts(s, deps)
	}
	if f, ok := s.FeedList.SelectedItem().(*presenter.Item); ok {
		s.Status = fmt.Sprintf("Added %s", f.FeedTitleText)
	}
	UpdateListSizes(s)
}

// HandleKeyMsg processes key input based on the current session.
func HandleKeyMsg(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	if s.Session == state.AddingFeedView {
		return handleAddingFeedView(s, msg, deps)
	}
	if s.Session == state.QuitView {
		return handleQuitView(s, msg)
	}

	parsed := intent.FromKeyMsg(msg, s.Keys)
	switch parsed.Type {
	case intent.Quit:
		s.Previous = s.Session
		s.Session = state.QuitView
		return nil, true
	case intent.ToggleHelp:
		s.Help.ShowAll = !s.Help.ShowAll
		return nil, true
	case intent.DismissError:
		deps.Reader.DismissError()
		s.Banner = deps.text(deps.Reader.Error())
		return nil, true
	}

	switch s.Session {
	case state.FeedView:
		return handleFeedViewIntent(s, parsed, deps)
	case state.PostView:
		return handlePostViewIntent(s, parsed, deps)
	case state.PreviewView:
		return handlePreviewViewIntent(s, parsed, deps)
	default:
		return nil, false
	}
}

func handleAddingFeedView(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	switch msg.Type {
	case tea.KeyEsc:
		s.TextInput.Blur()
		s.Session = state.FeedView
		return nil, true
	case tea.KeyEnter:
		if !s.Form.CanSubmit() {
			return nil, true
		}
		s.Form.Fetching = true
		s.TextInput.Blur()
		return tea.Batch(s.Spinner.Tick, AddFeedCmd(deps)), true
	}

	if s.Form.InputDisabled() {
		return nil, true
	}

	before := s.TextInput.Value()
	var cmd tea.Cmd
	s.TextInput, cmd = s.TextInput.Update(msg)
	if after := s.TextInput.Value(); after != before {
		deps.Reader.InputChanged(after)
		s.Form = deps.Reader.Form()
	}
	return cmd, true
}

func handleQuitView(s *state.ModelState, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "y", "Y":
		return tea.Quit, true
	case "n", "N", "esc", "q", "Q":
		s.Session = s.Previous
		return nil, true
	}
	return nil, true
}

func startAddingFeed(s *state.ModelState, deps Deps) tea.Cmd {
	s.Session = state.AddingFeedView
	syncForm(s, deps)
	s.TextInput.CursorEnd()
	return textinput.Blink
}

func handleFeedViewIntent(s *state.ModelState, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	switch in.Type {
	case intent.Open:
		if len(s.PostList.Items()) > 0 {
			s.Session = state.PostView
		}
		return nil, true
	case intent.AddFeed:
		return startAddingFeed(s, deps), true
	}
	return nil, false
}

func handlePostViewIntent(s *state.ModelState, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	switch in.Type {
	case intent.Back:
		s.Session = state.FeedView
		return nil, true
	case intent.Open:
		if i, ok := selectedPost(s); ok {
			deps.Reader.OpenPost(i.ID)
			syncPreview(s, deps)
			s.Session = state.PreviewView
		}
		return nil, true
	case intent.OpenBrowser:
		if i, ok := selectedPost(s); ok {
			openLink(s, deps, i.Link)
		}
		return nil, true
	case intent.AddFeed:
		return startAddingFeed(s, deps), true
	}
	return nil, false
}

func handlePreviewViewIntent(s *state.ModelState, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	switch in.Type {
	case intent.Back:
		deps.Reader.CloseModal()
		syncPreview(s, deps)
		s.Session = state.PostView
		return nil, true
	case intent.OpenBrowser:
		openLink(s, deps, s.PreviewLink)
		return nil, true
	case intent.Open:
		return nil, true
	}
	return nil, false
}

func openLink(s *state.ModelState, deps Deps, link string) {
	if link == "" || deps.OpenBrowser == nil {
		return
	}
	if err := deps.OpenBrowser(link); err != nil {
		s.Status = fmt.Sprintf("Could not open browser: %v", err)
		return
	}
	s.Status = ""
}
