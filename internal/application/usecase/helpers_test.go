package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/tesso57/rssreader/internal/domain/reading"
)

type stubFeedSource struct {
	mock.Mock
	mu    sync.Mutex
	docs  map[string]*reading.Document
	errs  map[string]error
	calls []string
}

func newStubFeedSource() *stubFeedSource {
	return &stubFeedSource{
		docs: make(map[string]*reading.Document),
		errs: make(map[string]error),
	}
}

func (s *stubFeedSource) Fetch(ctx context.Context, url string) (*reading.Document, error) {
	s.mu.Lock()
	s.calls = append(s.calls, url)
	s.mu.Unlock()

	if len(s.ExpectedCalls) > 0 {
		args := s.Called(ctx, url)
		doc, _ := args.Get(0).(*reading.Document)
		return doc, args.Error(1)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err, ok := s.errs[url]; ok {
		return nil, err
	}
	if doc, ok := s.docs[url]; ok {
		return doc, nil
	}
	return nil, errors.New("not found")
}

func (s *stubFeedSource) set(url string, doc *reading.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.errs, url)
	s.docs[url] = doc
}

func (s *stubFeedSource) fail(url string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs[url] = err
}

func (s *stubFeedSource) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func doc(title string, links ...string) *reading.Document {
	d := &reading.Document{Title: title, Description: title + " description"}
	for _, link := range links {
		d.Items = append(d.Items, reading.DocumentItem{
			Title:       "post " + link,
			Description: "about " + link,
			Link:        link,
		})
	}
	return d
}

func links(posts []reading.Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.Link
	}
	return out
}

type fakeClock struct {
	waits chan time.Duration
	fire  chan time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{
		waits: make(chan time.Duration, 8),
		fire:  make(chan time.Time),
	}
}

func (c *fakeClock) After(d time.Duration) <-chan time.Time {
	c.waits <- d
	return c.fire
}

type sectionRecorder struct {
	mu       sync.Mutex
	sections []Section
}

func (r *sectionRecorder) listen(reader *Reader, sections ...Section) {
	for _, s := range sections {
		reader.OnChange(s, func(s Section) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.sections = append(r.sections, s)
		})
	}
}

func (r *sectionRecorder) got() []Section {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Section(nil), r.sections...)
}

func (r *sectionRecorder) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sections = nil
}

var allSections = []Section{SectionForm, SectionFeeds, SectionPosts, SectionModal, SectionError, SectionUpdateError}
