// Package tui provides the main user interface model and view components.
package tui

import (
	"fmt"
	"strings"

	"github.com/tesso57/rssreader/internal/presentation/tui/components/banner"
	"github.com/tesso57/rssreader/internal/presentation/tui/components/header"
	mainview "github.com/tesso57/rssreader/internal/presentation/tui/components/main"
	"github.com/tesso57/rssreader/internal/presentation/tui/components/modal"
	"github.com/tesso57/rssreader/internal/presentation/tui/components/sidebar"
	"github.com/tesso57/rssreader/internal/presentation/tui/metrics"
	"github.com/tesso57/rssreader/internal/presentation/tui/presenter"
	"github.com/tesso57/rssreader/internal/presentation/tui/state"
	"github.com/tesso57/rssreader/internal/presentation/tui/textutil"
	"github.com/tesso57/rssreader/internal/presentation/tui/view"
)

const (
	sidebarTitle   = "RSS Feeds"
	invalidURLText = "Enter a valid http(s) URL that is not subscribed yet."
	emptyFeedsText = "No feeds yet. Press %s to add one."
	emptyPostsText = "This feed has no posts yet."
)

func (m *Model) buildProps() view.Props {
	return view.Props{
		Sidebar: m.buildSidebarProps(),
		Header:  m.buildHeaderProps(),
		Main:    m.buildMainProps(),
		Modal:   m.buildModalProps(),
		Footer:  m.buildFooterProps(),
	}
}

func (m *Model) buildSidebarProps() sidebar.Props {
	p := sidebar.Props{
		View:   m.state.FeedList.View(),
		Width:  m.state.FeedList.Width(),
		Height: m.state.FeedList.Height(),
		Active: m.state.Session == state.FeedView,
		Title:  sidebarTitle,
	}
	if len(m.state.FeedList.Items()) == 0 {
		p.Empty = fmt.Sprintf(emptyFeedsText, m.state.Keys.AddFeed.Help().Key)
	}
	return p
}

func (m *Model) buildHeaderProps() header.Props {
	if !headerVisible(m.state) {
		return header.Props{}
	}
	width := m.state.PostList.Width() - metrics.HeaderWidthPadding
	p := header.Props{
		Visible:   true,
		FeedTitle: headerLine(m.state.PostList.Title, width),
		Width:     m.state.PostList.Width(),
	}
	if m.state.Session == state.PostView {
		if i, ok := m.state.PostList.SelectedItem().(*presenter.Item); ok {
			p.Link = headerLine(i.Link, width)
		}
	} else if i, ok := m.state.FeedList.SelectedItem().(*presenter.Item); ok {
		p.Link = headerLine(i.Link, width)
	}
	return p
}

func (m *Model) buildMainProps() mainview.Props {
	body := m.state.PostList.View()
	if len(m.state.PostList.Items()) == 0 {
		body = ""
		if len(m.state.FeedList.Items()) > 0 {
			body = emptyPostsText
		}
	}

	banners := m.banners()
	headerHeight := 0
	if headerVisible(m.state) {
		headerHeight = metrics.HeaderLines
	}

	return mainview.Props{
		Width:   m.state.PostList.Width(),
		Height:  m.state.PostList.Height() + headerHeight + len(banners),
		Banners: banners,
		Body:    body,
	}
}

func (m *Model) banners() []string {
	var out []string
	if m.state.UpdateBanner != "" {
		out = append(out, banner.Render(banner.Props{
			Kind:  banner.Update,
			Text:  m.state.UpdateBanner,
			Width: m.state.PostList.Width(),
		}))
	}
	if m.state.Banner != "" {
		out = append(out, m.fetchBanner(m.state.PostList.Width()))
	}
	return out
}

func (m *Model) fetchBanner(width int) string {
	return banner.Render(banner.Props{
		Kind:  banner.Fetch,
		Text:  m.state.Banner,
		Hint:  fmt.Sprintf("(%s to dismiss)", m.state.Keys.DismissError.Help().Key),
		Width: width,
	})
}

func (m *Model) buildModalProps() modal.Props {
	base := modal.Props{Visible: true, Width: m.state.Width, Height: m.state.Height}
	switch {
	case m.state.Session == state.AddingFeedView:
		base.Kind = modal.AddFeed
		base.Title = "Add feed"
		base.Body = m.addFeedBody()
		base.Invalid = m.state.Form.Flagged()
		return base
	case m.state.Session == state.PreviewView:
		base.Kind = modal.Preview
		base.Title = m.state.PreviewTitle
		base.Body = m.state.Viewport.View()
		return base
	case m.state.Session == state.QuitView:
		base.Kind = modal.Quit
		base.Body = "Are you sure you want to quit?\n\n(y/n)"
		return base
	case m.state.Help.ShowAll:
		base.Kind = modal.Help
		base.Body = m.state.Help.View(&m.state.Keys)
		return base
	}
	return modal.Props{Visible: false}
}

func (m *Model) addFeedBody() string {
	lines := []string{"Enter Feed URL:", "", m.state.TextInput.View(), ""}
	switch {
	case m.state.Form.Fetching:
		lines = append(lines, m.state.Spinner.View()+" Fetching feed...")
	case m.state.Form.Flagged():
		lines = append(lines, invalidURLText)
	}
	if m.state.Banner != "" && !m.state.Form.Fetching {
		lines = append(lines, m.fetchBanner(0))
	}
	lines = append(lines, "", "(enter to add, esc to cancel)")
	return strings.Join(lines, "\n")
}

func (m *Model) buildFooterProps() string {
	helpText := m.state.Help.View(&m.state.Keys)
	return state.FooterText(m.state.Session, m.state.Form, m.state.Status, helpText)
}

func headerVisible(st *state.ModelState) bool {
	if st == nil || st.PostList.Title == "" {
		return false
	}
	return st.Session == state.FeedView || st.Session == state.PostView
}

func headerLine(text string, width int) string {
	return textutil.Truncate(textutil.SingleLine(text), width)
}
