// Package orchestrator sequences provider calls into translation chains and
// the rephrase path.
package orchestrator

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/vkozar/redraft/internal/deepl"
	"github.com/vkozar/redraft/internal/glossary"
	"github.com/vkozar/redraft/internal/lang"
)

// TranslationClient is the provider surface the orchestrator drives. The
// concrete client blocks per call; a future async implementation can be
// substituted without touching the chain logic.
type TranslationClient interface {
	Translate(ctx context.Context, req deepl.TranslationRequest) (*deepl.Translation, error)
	Rephrase(ctx context.Context, req deepl.RephraseRequest) (string, error)
}

// Detector reports the language a text is written in.
type Detector interface {
	DetectISO(text string) (string, bool)
	// Matches reports whether text appears to be written in the language
	// with the given base ISO code; unreliable inputs match anything.
	Matches(text, isoBase string) bool
}

// Config carries the per-route request settings.
type Config struct {
	// GlossaryName, when set, is resolved against the provider catalog for
	// each hop's language direction.
	GlossaryName string
	// SourceLang, when set, is declared as hop 0's source language instead
	// of running detection on the input.
	SourceLang lang.Code
	Options    deepl.Options
}

type Orchestrator struct {
	client   TranslationClient
	catalog  glossary.Catalog
	detector Detector
	cfg      Config
	log      zerolog.Logger
}

func New(client TranslationClient, catalog glossary.Catalog, det Detector, cfg Config, log zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		client:   client,
		catalog:  catalog,
		detector: det,
		cfg:      cfg,
		log:      log,
	}
}

// TranslateChain applies the client to text once per target, feeding each
// hop's output into the next. Hop 0 declares the detected language of the
// input as its source; hop i>0 declares targets[i-1], the language the
// previous hop just produced. Each hop resolves its own glossary for its own
// direction. Any failure aborts the whole chain; a partial translation is
// never returned.
//
// Hops run strictly in sequence: hop i+1 consumes hop i's result.
func (o *Orchestrator) TranslateChain(ctx context.Context, text string, targets []lang.Code) (string, error) {
	if len(targets) == 0 {
		return "", fmt.Errorf("no target languages")
	}

	source := o.cfg.SourceLang
	if source == "" {
		if iso, ok := o.detector.DetectISO(text); ok {
			source = lang.Code(iso)
		}
	}

	resolver := glossary.NewResolver(o.catalog)
	current := text
	for i, target := range targets {
		if i > 0 {
			source = targets[i-1]
		}

		var glossaryID string
		if o.cfg.GlossaryName != "" && source != "" {
			id, ok, err := resolver.Resolve(ctx, o.cfg.GlossaryName, source, target)
			if err != nil {
				return "", err
			}
			if ok {
				glossaryID = id
			} else {
				o.log.Debug().
					Str("glossary", o.cfg.GlossaryName).
					Str("source", source.String()).
					Str("target", target.String()).
					Msg("no glossary for this direction")
			}
		}

		o.log.Debug().
			Int("hop", i).
			Str("source", source.String()).
			Str("target", target.String()).
			Msg("translating")

		result, err := o.client.Translate(ctx, deepl.TranslationRequest{
			Text:       current,
			TargetLang: target,
			SourceLang: source,
			GlossaryID: glossaryID,
			Options:    o.cfg.Options,
		})
		if err != nil {
			return "", fmt.Errorf("translation to %s failed: %w", target, err)
		}
		current = result.Text
	}

	// The provider occasionally answers in the wrong language, typically
	// when the declared source was wrong. Not fatal; the review step is
	// where the user decides.
	final := targets[len(targets)-1]
	if !o.detector.Matches(current, string(final.Base())) {
		o.log.Warn().
			Str("expected", final.String()).
			Msg("result does not appear to be in the target language")
	}
	return current, nil
}

// Writing styles and tones recognized by the rephrase endpoint. The two
// families map to mutually exclusive request parameters.
var (
	writingStyles = map[string]bool{
		"simple":   true,
		"business": true,
		"academic": true,
		"casual":   true,
	}
	tones = map[string]bool{
		"enthusiastic": true,
		"friendly":     true,
		"confident":    true,
		"diplomatic":   true,
	}
)

// Rephrase rewrites text through the write endpoint. styleOrTone is matched
// by membership against the style family, then the tone family; anything
// unrecognized, including the empty string, falls back to the default
// writing style.
func (o *Orchestrator) Rephrase(ctx context.Context, text string, target lang.Code, styleOrTone string) (string, error) {
	req := deepl.RephraseRequest{Text: text, TargetLang: target}
	switch {
	case writingStyles[styleOrTone]:
		req.Style = "prefer_" + styleOrTone
	case tones[styleOrTone]:
		req.Tone = "prefer_" + styleOrTone
	default:
		req.Style = "default"
	}

	o.log.Debug().
		Str("target", target.String()).
		Str("writing_style", req.Style).
		Str("tone", req.Tone).
		Msg("rephrasing")

	result, err := o.client.Rephrase(ctx, req)
	if err != nil {
		return "", fmt.Errorf("rephrase failed: %w", err)
	}
	return result, nil
}
