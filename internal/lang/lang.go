// Package lang models provider language codes and the user's configured
// language pair.
package lang

import (
	"fmt"
	"strings"
)

// Code is a provider language code such as "DE" or "EN-US". Codes are opaque
// identifiers; equality is exact-string.
type Code string

// Base strips the region suffix, if any: "EN-US" → "EN". Glossary catalog
// entries carry base forms only.
func (c Code) Base() Code {
	s := string(c)
	if i := strings.IndexByte(s, '-'); i >= 0 {
		return Code(s[:i])
	}
	return c
}

// BaseEqual reports whether two codes share the same base form,
// case-insensitively.
func (c Code) BaseEqual(other Code) bool {
	return strings.EqualFold(string(c.Base()), string(other.Base()))
}

func (c Code) String() string { return string(c) }

// Pair is the user's configured language pair. The pair is unordered:
// direction is decided per request from the detected input language.
type Pair struct {
	A Code
	B Code
}

// NewPair validates that the two codes differ (by base form, so DE/DE-CH is
// rejected as well).
func NewPair(a, b Code) (Pair, error) {
	if a == "" || b == "" {
		return Pair{}, fmt.Errorf("language pair requires two codes, got %q and %q", a, b)
	}
	if a.BaseEqual(b) {
		return Pair{}, fmt.Errorf("language pair must name two different languages, got %q and %q", a, b)
	}
	return Pair{A: a, B: b}, nil
}

// Other returns the member of the pair the detected language should be
// translated into: B when detected matches A's base, otherwise A.
func (p Pair) Other(detected Code) Code {
	if detected.BaseEqual(p.A) {
		return p.B
	}
	return p.A
}

// Route builds the ordered target sequence for a translation request:
// [other] for a single hop, [other, detected] for a round trip. The
// orchestrator itself stays route-agnostic.
func (p Pair) Route(detected Code, roundTrip bool) []Code {
	other := p.Other(detected)
	if !roundTrip {
		return []Code{other}
	}
	back := detected
	if back == "" {
		// Detection failed; the best available "back" language is the
		// remaining pair member.
		back = p.Other(other)
	}
	return []Code{other, back}
}
