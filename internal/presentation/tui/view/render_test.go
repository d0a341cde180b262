package view

import (
	"strings"
	"testing"

	"github.com/tesso57/rssreader/internal/presentation/tui/components/header"
	mainview "github.com/tesso57/rssreader/internal/presentation/tui/components/main"
	"github.com/tesso57/rssreader/internal/presentation/tui/components/modal"
	"github.com/tesso57/rssreader/internal/presentation/tui/components/sidebar"
)

func TestRender_Layout(t *testing.T) {
	got := Render(Props{
		Sidebar: sidebar.Props{View: "FEEDLIST", Width: 20, Height: 5, Title: "Feeds"},
		Header:  header.Props{Visible: true, FeedTitle: "Go Blog"},
		Main:    mainview.Props{Width: 40, Height: 5, Banners: []string{"BANNER"}, Body: "POSTS"},
		Footer:  "FOOTER",
	})

	for _, want := range []string{"FEEDLIST", "Go Blog", "BANNER", "POSTS", "FOOTER"} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected %q in view:\n%s", want, got)
		}
	}
}

func TestRender_ModalReplacesScreen(t *testing.T) {
	got := Render(Props{
		Sidebar: sidebar.Props{View: "FEEDLIST"},
		Main:    mainview.Props{Body: "POSTS"},
		Modal:   modal.Props{Visible: true, Kind: modal.Help, Body: "HELP", Width: 40, Height: 10},
	})

	if !strings.Contains(got, "HELP") {
		t.Fatalf("Expected modal body, got:\n%s", got)
	}
	if strings.Contains(got, "FEEDLIST") || strings.Contains(got, "POSTS") {
		t.Fatalf("Expected modal to replace the layout, got:\n%s", got)
	}
}
