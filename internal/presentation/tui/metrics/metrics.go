// Package metrics centralizes layout constants for the TUI.
package metrics

const (
	HeaderLines             = 2
	SidebarTitleLines       = 2
	HeaderWidthPadding      = 7
	SidebarRightBorderWidth = 1

	// PreviewChromeLines covers the preview modal border, padding and title.
	PreviewChromeLines = 6
	PreviewChromeWidth = 14

	ItemRightPadding  = 1
	ItemSafetyPadding = 1
)
