package textbuf

import (
	"errors"
	"testing"

	"github.com/vkozar/redraft/internal/session"
)

func TestResolve_WholeBuffer(t *testing.T) {
	b := New("Hallo Welt")

	span, text, err := b.Resolve("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if span != (session.Span{Start: 0, End: 10}) || text != "Hallo Welt" {
		t.Errorf("got span %+v text %q", span, text)
	}
}

func TestResolve_Range(t *testing.T) {
	b := New("Hallo Welt")

	span, text, err := b.Resolve("6:10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Welt" || span.Start != 6 || span.End != 10 {
		t.Errorf("got span %+v text %q", span, text)
	}
}

func TestResolve_Invalid(t *testing.T) {
	b := New("Hallo")

	for _, spec := range []string{"abc", "3", "4:2", "-1:3", "0:99"} {
		if _, _, err := b.Resolve(spec); err == nil {
			t.Errorf("expected error for spec %q", spec)
		}
	}
}

func TestReplaceSpan(t *testing.T) {
	b := New("Hallo Welt!")

	err := b.ReplaceSpan(session.Span{Start: 0, End: 10}, "Hello world")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.String() != "Hello world!" {
		t.Errorf("got %q", b.String())
	}
}

func TestReplaceSpan_OutOfRange(t *testing.T) {
	b := New("short")

	err := b.ReplaceSpan(session.Span{Start: 0, End: 99}, "x")
	if !errors.Is(err, session.ErrSpanGone) {
		t.Errorf("expected ErrSpanGone, got %v", err)
	}
}
