// Package form implements the add-feed form state machine.
package form

import (
	"net/url"
	"slices"
	"strings"
)

// Validation is the validation state of the feed URL input.
type Validation int

const (
	// Empty means the input is blank.
	Empty Validation = iota
	// Valid means the input is an absolute URL not yet subscribed.
	Valid
	// Invalid means the input is not a URL or is already subscribed.
	Invalid
)

func (v Validation) String() string {
	switch v {
	case Empty:
		return "empty"
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Validate maps raw input and the subscribed URLs to a validation state.
func Validate(input string, subscribed []string) Validation {
	if strings.TrimSpace(input) == "" {
		return Empty
	}
	if IsAbsoluteURL(input) && !slices.Contains(subscribed, input) {
		return Valid
	}
	return Invalid
}

// IsAbsoluteURL reports whether s is a well-formed http(s) URL with a host.
func IsAbsoluteURL(s string) bool {
	if strings.ContainsAny(s, " \t\r\n") {
		return false
	}
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Hostname() != ""
}

// State is the add-feed form as seen by presenters.
type State struct {
	Input      string
	Validation Validation
	Fetching   bool
}

// CanSubmit reports whether the form may be submitted.
func (s State) CanSubmit() bool {
	return s.Validation == Valid && !s.Fetching
}

// InputDisabled reports whether the input should reject edits.
func (s State) InputDisabled() bool {
	return s.Fetching
}

// Flagged reports whether the input should be highlighted as invalid.
func (s State) Flagged() bool {
	return s.Validation == Invalid
}
