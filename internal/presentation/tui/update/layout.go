package update

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/rssreader/internal/presentation/tui/metrics"
	"github.com/tesso57/rssreader/internal/presentation/tui/state"
)

type layoutMetrics struct {
	sidebarWidth      int
	mainWidth         int
	sidebarListHeight int
	mainListHeight    int
}

// UpdateListSizes fits the lists and the preview viewport to the window.
func UpdateListSizes(s *state.ModelState) {
	if s.Width <= 0 || s.Height <= 0 {
		return
	}

	layout := buildLayoutMetrics(s)
	s.FeedList.SetSize(layout.sidebarWidth, layout.sidebarListHeight)
	s.PostList.SetSize(layout.mainWidth, layout.mainListHeight)
	s.Viewport.Width = previewWrapWidth(s)
	s.Viewport.Height = clampMin(s.Height-metrics.PreviewChromeLines, 1)
}

func buildLayoutMetrics(s *state.ModelState) layoutMetrics {
	availableHeight := clampMin(s.Height-footerHeight(s), 1)

	mainListHeight := clampMin(availableHeight-metrics.HeaderLines-bannerLines(s), 1)
	sidebarListHeight := clampMin(availableHeight-metrics.SidebarTitleLines, 1)

	sidebarWidth := s.Width / 3
	mainWidth := clampMin(s.Width-sidebarWidth-metrics.SidebarRightBorderWidth, 1)

	sidebarListHeight = reservePaginationSpace(s.FeedList, sidebarListHeight)
	mainListHeight = reservePaginationSpace(s.PostList, mainListHeight)

	return layoutMetrics{
		sidebarWidth:      sidebarWidth,
		mainWidth:         mainWidth,
		sidebarListHeight: sidebarListHeight,
		mainListHeight:    mainListHeight,
	}
}

func footerHeight(s *state.ModelState) int {
	s.Help.Width = s.Width
	text := state.FooterText(s.Session, s.Form, s.Status, s.Help.View(&s.Keys))
	if text == "" {
		return 0
	}
	return lipgloss.Height(text)
}

func bannerLines(s *state.ModelState) int {
	n := 0
	if s.Banner != "" {
		n++
	}
	if s.UpdateBanner != "" {
		n++
	}
	return n
}

// previewWrapWidth is the text width inside the preview modal.
func previewWrapWidth(s *state.ModelState) int {
	w := s.Width - metrics.PreviewChromeWidth
	if w > 96 {
		w = 96
	}
	return clampMin(w, 10)
}

func reservePaginationSpace(m list.Model, height int) int {
	if height <= 1 || !m.ShowPagination() {
		return height
	}

	statusHeight := 0
	if m.ShowStatusBar() {
		statusHeight = 1
	}

	availHeight := height - statusHeight
	if availHeight < 1 {
		return height
	}

	if len(m.VisibleItems()) > availHeight {
		return height - 1
	}
	return height
}

func clampMin(value, min int) int {
	if value < min {
		return min
	}
	return value
}
