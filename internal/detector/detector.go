// Package detector wraps lingua-go language detection behind the small
// interface the orchestrator consumes.
package detector

import (
	"strings"

	lingua "github.com/pemistahl/lingua-go"
)

// minReliableLength is the minimum rune count for a trustworthy detection;
// shorter inputs still get a guess, callers decide how much to trust it.
const minReliableLength = 5

// Detector detects the language a text is written in. Building the
// underlying lingua detector is expensive; reuse the instance.
type Detector struct {
	detector lingua.LanguageDetector
}

// New builds a detector over all languages lingua knows.
func New() *Detector {
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromAllLanguages().
			Build(),
	}
}

// DetectISO returns the upper-case ISO 639-1 code of the detected language,
// matching the provider's base language form.
func (d *Detector) DetectISO(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}
	detected, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return detected.IsoCode639_1().String(), true
}

// Matches reports whether text appears to be written in the language with
// the given base ISO code. Texts too short to detect reliably match
// anything.
func (d *Detector) Matches(text, isoBase string) bool {
	if len([]rune(strings.TrimSpace(text))) < minReliableLength {
		return true
	}
	detected, ok := d.DetectISO(text)
	if !ok {
		return true
	}
	return strings.EqualFold(detected, isoBase)
}
