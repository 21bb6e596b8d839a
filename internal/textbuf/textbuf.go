// Package textbuf is an in-memory text document for the CLI: the whole
// input, or a byte range of it, is the span under review.
package textbuf

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vkozar/redraft/internal/session"
)

// Buffer holds document text and implements session.Document over byte
// offsets.
type Buffer struct {
	text string
}

func New(text string) *Buffer {
	return &Buffer{text: text}
}

func (b *Buffer) String() string { return b.text }

// Resolve turns a span spec into the span and its text. An empty spec means
// the whole buffer; otherwise "start:end" as byte offsets, end exclusive.
func (b *Buffer) Resolve(spec string) (session.Span, string, error) {
	if spec == "" {
		span := session.Span{Start: 0, End: len(b.text)}
		return span, b.text, nil
	}
	start, end, err := parseSpec(spec)
	if err != nil {
		return session.Span{}, "", err
	}
	if end > len(b.text) {
		return session.Span{}, "", fmt.Errorf("span %s exceeds input length %d", spec, len(b.text))
	}
	span := session.Span{Start: start, End: end}
	return span, b.text[start:end], nil
}

// ReplaceSpan implements session.Document.
func (b *Buffer) ReplaceSpan(span session.Span, text string) error {
	if span.Start < 0 || span.End < span.Start || span.End > len(b.text) {
		return session.ErrSpanGone
	}
	b.text = b.text[:span.Start] + text + b.text[span.End:]
	return nil
}

func parseSpec(spec string) (start, end int, err error) {
	left, right, ok := strings.Cut(spec, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid span %q, want start:end", spec)
	}
	start, err = strconv.Atoi(left)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid span start %q: %w", left, err)
	}
	end, err = strconv.Atoi(right)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid span end %q: %w", right, err)
	}
	if start < 0 || end < start {
		return 0, 0, fmt.Errorf("invalid span %q: start must be >= 0 and <= end", spec)
	}
	return start, end, nil
}
