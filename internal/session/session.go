// Package session owns the review lifecycle of a single in-flight
// translation: a pending request, an editable draft, and a terminal
// accept or dismiss.
package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// State is the review session lifecycle state.
type State int

const (
	// StatePending: the route is dispatched, no result yet.
	StatePending State = iota
	// StateReviewing: a result arrived, the draft is editable.
	StateReviewing
	// StateAccepted: the draft was written back to the source span. Terminal.
	StateAccepted
	// StateDismissed: torn down without touching the document. Terminal.
	StateDismissed
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateReviewing:
		return "reviewing"
	case StateAccepted:
		return "accepted"
	case StateDismissed:
		return "dismissed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

func (s State) terminal() bool {
	return s == StateAccepted || s == StateDismissed
}

// Span is a contiguous byte range in the source document.
type Span struct {
	Start int
	End   int
}

// Document is the editor-side collaborator the accepted draft is written
// through. The session references the span; it does not own it.
type Document interface {
	// ReplaceSpan replaces the span's content with text. Returning
	// ErrSpanGone marks the span as a no-op target; the accept still
	// completes.
	ReplaceSpan(span Span, text string) error
}

// Highlighter marks the source span while a session is open.
type Highlighter interface {
	Mark(span Span)
	Unmark(span Span)
}

// NopHighlighter is a Highlighter for headless use.
type NopHighlighter struct{}

func (NopHighlighter) Mark(Span)   {}
func (NopHighlighter) Unmark(Span) {}

var (
	// ErrSpanGone may be returned by Document.ReplaceSpan when the span no
	// longer exists; accepting then becomes a no-op write.
	ErrSpanGone = errors.New("source span no longer exists")
	// ErrTerminal is returned by transitions on an accepted or dismissed
	// session.
	ErrTerminal = errors.New("session already terminated")
	// ErrNotReviewing is returned when a draft operation arrives before a
	// result has been received.
	ErrNotReviewing = errors.New("session has no reviewable draft")
)

// Session is one review session. All methods are safe for concurrent use.
type Session struct {
	mu     sync.Mutex
	id     string
	doc    Document
	marks  Highlighter
	span   Span
	source string
	draft  string
	state  State
}

func (s *Session) ID() string { return s.id }

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) SourceText() string { return s.source }

func (s *Session) Span() Span { return s.span }

// Draft returns the current draft text; empty until a result arrives.
func (s *Session) Draft() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// Complete delivers the translation result, moving the session from pending
// to reviewing and seeding the draft. A result arriving after the session
// was dismissed is dropped: the call returns ErrTerminal and nothing is
// acted on.
func (s *Session) Complete(result string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.terminal() {
		return ErrTerminal
	}
	if s.state != StatePending {
		return fmt.Errorf("cannot complete a session in state %s", s.state)
	}
	s.draft = result
	s.state = StateReviewing
	return nil
}

// SetDraft replaces the draft text. Edits never change state.
func (s *Session) SetDraft(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.terminal() {
		return ErrTerminal
	}
	if s.state != StateReviewing {
		return ErrNotReviewing
	}
	s.draft = text
	return nil
}

// Accept writes the current draft (including any edits) into the source
// span and tears the session down. A vanished span (ErrSpanGone) is a no-op
// target; any other document error leaves the session reviewing so the user
// can retry or dismiss.
func (s *Session) Accept() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.terminal() {
		return ErrTerminal
	}
	if s.state != StateReviewing {
		return ErrNotReviewing
	}
	if err := s.doc.ReplaceSpan(s.span, s.draft); err != nil && !errors.Is(err, ErrSpanGone) {
		return fmt.Errorf("failed to write draft back: %w", err)
	}
	s.state = StateAccepted
	s.marks.Unmark(s.span)
	return nil
}

// Dismiss tears the session down without touching the document, regardless
// of edits.
func (s *Session) Dismiss() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.terminal() {
		return ErrTerminal
	}
	s.state = StateDismissed
	s.marks.Unmark(s.span)
	return nil
}

// Fail tears down a pending session whose request failed. The highlight is
// released immediately so no stale marker outlives the error.
func (s *Session) Fail() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.terminal() {
		return ErrTerminal
	}
	if s.state != StatePending {
		return fmt.Errorf("cannot fail a session in state %s", s.state)
	}
	s.state = StateDismissed
	s.marks.Unmark(s.span)
	return nil
}

// Manager enforces the one-open-session invariant. The mutex makes the
// dismiss-then-open step atomic for concurrent hosts; a synchronous caller
// gets the same behavior by convention.
type Manager struct {
	mu      sync.Mutex
	marks   Highlighter
	current *Session
}

// NewManager builds a Manager. marks may be nil for headless use.
func NewManager(marks Highlighter) *Manager {
	if marks == nil {
		marks = NopHighlighter{}
	}
	return &Manager{marks: marks}
}

// Open starts a new review session over the given span. Any prior open
// session is forced to dismissed first, with no write-back, before the new
// session reaches pending. The span is highlighted immediately so the user
// sees what is being translated while the request is in flight.
func (m *Manager) Open(doc Document, span Span, sourceText string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current != nil {
		// Already-terminal sessions return ErrTerminal; nothing to do then.
		_ = m.current.Dismiss()
	}
	s := &Session{
		id:     uuid.NewString(),
		doc:    doc,
		marks:  m.marks,
		span:   span,
		source: sourceText,
		state:  StatePending,
	}
	m.marks.Mark(span)
	m.current = s
	return s
}

// Current returns the session of record, which may be terminal, or nil when
// none was ever opened.
func (m *Manager) Current() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}
