// Package pagestate holds per-request presentation state for web pages.
//
// A State is created for each incoming request and collects the script
// URLs and style-injection snippets that view helpers register while the
// page is assembled. Page rendering consumes the collected lists at the
// end of the request. State is owned by one request and is not safe for
// concurrent use.
package pagestate

import (
	"context"
	"strings"
)

// Build selects between debug and minified asset variants.
type Build int

const (
	// BuildMinified serves production (minified) assets.
	BuildMinified Build = iota
	// BuildDebug serves individual, unminified assets.
	BuildDebug
)

// Source selects where third-party assets are loaded from.
type Source int

const (
	// SourceLocal serves bundled copies from the static root.
	SourceLocal Source = iota
	// SourceCDN loads third-party assets from their public CDNs.
	SourceCDN
)

// Options configures a new request State.
type Options struct {
	// AppName is the URL prefix the application is mounted under.
	AppName string
	// Root is the filesystem root holding the application tree.
	Root string
	// Theme names the active theme configuration.
	Theme string
	// Language is the resolved request locale (BCP 47).
	Language string
	// Build selects debug or minified assets.
	Build Build
	// Source selects CDN or local third-party assets.
	Source Source
}

// State is the per-request presentation state.
type State struct {
	opts Options

	scripts         []string
	styleInjections []string
	registered      map[string]struct{}
}

// New returns an empty State for one request.
func New(opts Options) *State {
	return &State{
		opts:       opts,
		registered: make(map[string]struct{}),
	}
}

// AppName returns the application URL prefix.
func (s *State) AppName() string { return s.opts.AppName }

// Root returns the application filesystem root.
func (s *State) Root() string { return s.opts.Root }

// Theme returns the active theme configuration name.
func (s *State) Theme() string { return s.opts.Theme }

// Language returns the resolved request locale.
func (s *State) Language() string { return s.opts.Language }

// Build returns the asset build variant.
func (s *State) Build() Build { return s.opts.Build }

// Source returns the asset source variant.
func (s *State) Source() Source { return s.opts.Source }

// AppendScript queues a script URL for inclusion at the end of the page.
func (s *State) AppendScript(url string) {
	url = strings.TrimSpace(url)
	if url == "" {
		return
	}
	s.scripts = append(s.scripts, url)
}

// HasScript reports whether url is already queued.
func (s *State) HasScript(url string) bool {
	for _, queued := range s.scripts {
		if queued == url {
			return true
		}
	}
	return false
}

// Scripts returns the queued script URLs in registration order.
func (s *State) Scripts() []string {
	scripts := make([]string, len(s.scripts))
	copy(scripts, s.scripts)
	return scripts
}

// AppendStyleInjection queues a DOM snippet run after page load.
func (s *State) AppendStyleInjection(snippet string) {
	if strings.TrimSpace(snippet) == "" {
		return
	}
	s.styleInjections = append(s.styleInjections, snippet)
}

// StyleInjections returns the queued DOM snippets in registration order.
func (s *State) StyleInjections() []string {
	snippets := make([]string, len(s.styleInjections))
	copy(snippets, s.styleInjections)
	return snippets
}

// Registered reports whether the asset bundle named by key was already
// registered on this request.
func (s *State) Registered(key string) bool {
	_, ok := s.registered[key]
	return ok
}

// SetRegistered latches the asset bundle named by key. The latch is
// one-way for the lifetime of the request.
func (s *State) SetRegistered(key string) {
	s.registered[key] = struct{}{}
}

// stateContextKey is the context key for the request page state.
type stateContextKey struct{}

// WithState stores the request page state in context.
func WithState(ctx context.Context, state *State) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, stateContextKey{}, state)
}

// FromContext returns the page state stored in context, or nil.
func FromContext(ctx context.Context) *State {
	if ctx == nil {
		return nil
	}
	state, _ := ctx.Value(stateContextKey{}).(*State)
	return state
}
