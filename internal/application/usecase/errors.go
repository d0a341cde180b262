package usecase

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotSubmittable is returned when the form is submitted while invalid or busy.
var ErrNotSubmittable = errors.New("feed form is not submittable")

// MessageKey identifies a user-facing banner message.
type MessageKey string

// Banner message keys.
const (
	NoMessage      MessageKey = ""
	FetchErrorKey  MessageKey = "FETCH_ERR"
	UpdateErrorKey MessageKey = "UPDATE_ERR"
)

// FetchError wraps a failure to download or parse a feed.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// PollError reports the feeds that failed during one poll cycle.
type PollError struct {
	Failed map[string]error
}

func (e *PollError) Error() string {
	urls := make([]string, 0, len(e.Failed))
	for url := range e.Failed {
		urls = append(urls, url)
	}
	sort.Strings(urls)
	return fmt.Sprintf("poll failed for %d feed(s): %s", len(urls), strings.Join(urls, ", "))
}

// Unwrap exposes the individual fetch failures to errors.Is and errors.As.
func (e *PollError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failed))
	for _, err := range e.Failed {
		errs = append(errs, err)
	}
	return errs
}

func asFetchError(url string, err error) *FetchError {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe
	}
	return &FetchError{URL: url, Err: err}
}
