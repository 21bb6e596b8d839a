/*
Copyright © 2026 Viktor Kozar <vkozar.dev@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vkozar/redraft/internal/deepl"
	"github.com/vkozar/redraft/internal/detector"
	"github.com/vkozar/redraft/internal/lang"
	"github.com/vkozar/redraft/internal/orchestrator"
	"github.com/vkozar/redraft/internal/session"
	"github.com/vkozar/redraft/internal/textbuf"
)

var (
	translateSpan      string
	translateOutput    string
	translateSource    string
	translateRoundTrip bool
	translateReview    bool
	translateGlossary  string
	translateFormality string
	translateSplit     string
	translatePreserve  bool
	translateModel     string
)

var translateCmd = &cobra.Command{
	Use:   "translate [file]",
	Short: "Translate a span and apply the result in place",
	Long: `Translate the input (a file, or stdin) to the other language of the
configured pair, then apply the result back into the input text.

The source language is detected from the input; --source overrides
detection. With --round-trip the text is translated to the other language
and back again, which surfaces alternative phrasings of the original.

By default the result is accepted as-is and the updated text is printed.
With --review the draft can be edited or dismissed before anything is
applied.

Examples:
  redraft translate notes.txt
  echo "Hallo Welt" | redraft translate
  redraft translate --span 120:240 --round-trip --review draft.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger()
		if err != nil {
			return err
		}

		pair, err := configuredPair()
		if err != nil {
			return err
		}

		text, err := readInput(args)
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		opts, err := parseOptions()
		if err != nil {
			return err
		}

		if translateGlossary == "" {
			translateGlossary = viper.GetString("glossary")
		}

		buf := textbuf.New(text)
		span, spanText, err := buf.Resolve(translateSpan)
		if err != nil {
			return err
		}

		det := detector.New()
		detected := lang.Code(translateSource)
		if detected == "" {
			if iso, ok := det.DetectISO(spanText); ok {
				detected = lang.Code(iso)
				log.Info().Str("detected", iso).Msg("detected source language")
			}
		}
		targets := pair.Route(detected, translateRoundTrip)

		// detected covers both the flag override and the detection result,
		// so hop 0 declares the same source the route was built from.
		orch := orchestrator.New(client, client, det, orchestrator.Config{
			GlossaryName: translateGlossary,
			SourceLang:   detected,
			Options:      opts,
		}, log)

		manager := session.NewManager(stderrHighlighter{})
		sess := manager.Open(buf, span, spanText)
		log.Debug().Str("session", sess.ID()).Msg("review session opened")

		result, err := orch.TranslateChain(context.Background(), spanText, targets)
		if err != nil {
			_ = sess.Fail()
			return err
		}
		if err := sess.Complete(result); err != nil {
			return err
		}

		if err := review(sess, translateReview); err != nil {
			return err
		}
		if sess.State() != session.StateAccepted {
			fmt.Fprintln(cmd.ErrOrStderr(), "Dismissed; input left untouched.")
			return nil
		}
		return writeResult(buf, translateOutput)
	},
}

func parseOptions() (deepl.Options, error) {
	var opts deepl.Options

	switch translateSplit {
	case "default", "":
		opts.Split = deepl.SplitDefault
	case "all":
		opts.Split = deepl.SplitAll
	case "none":
		opts.Split = deepl.SplitNone
	case "nonewlines":
		opts.Split = deepl.SplitNoNewlines
	default:
		return opts, fmt.Errorf("unknown split mode %q (default, all, none, nonewlines)", translateSplit)
	}

	switch translateFormality {
	case "default", "":
		opts.Formality = deepl.FormalityDefault
	case "more":
		opts.Formality = deepl.FormalityMore
	case "less":
		opts.Formality = deepl.FormalityLess
	default:
		return opts, fmt.Errorf("unknown formality %q (default, more, less)", translateFormality)
	}

	switch translateModel {
	case "default", "":
		opts.Model = deepl.ModelDefault
	case "latency":
		opts.Model = deepl.ModelLatency
	case "quality":
		opts.Model = deepl.ModelQuality
	case "prefer-latency":
		opts.Model = deepl.ModelPreferLatency
	case "prefer-quality":
		opts.Model = deepl.ModelPreferQuality
	default:
		return opts, fmt.Errorf("unknown model type %q", translateModel)
	}

	opts.PreserveFormatting = translatePreserve
	return opts, nil
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVar(&translateSpan, "span", "", "Byte range start:end to translate (default: whole input)")
	translateCmd.Flags().StringVarP(&translateOutput, "output", "o", "", "Output file (default: stdout)")
	translateCmd.Flags().StringVarP(&translateSource, "source", "s", "", "Source language code (default: detected)")
	translateCmd.Flags().BoolVar(&translateRoundTrip, "round-trip", false, "Translate to the other language and back")
	translateCmd.Flags().BoolVar(&translateReview, "review", false, "Review the draft interactively before applying")
	translateCmd.Flags().StringVar(&translateGlossary, "glossary", "", "Glossary name to apply when one exists for the direction (default from config)")
	translateCmd.Flags().StringVar(&translateFormality, "formality", "default", "Formality: default, more, less")
	translateCmd.Flags().StringVar(&translateSplit, "split", "default", "Sentence splitting: default, all, none, nonewlines")
	translateCmd.Flags().BoolVar(&translatePreserve, "preserve-formatting", false, "Ask the provider to preserve formatting")
	translateCmd.Flags().StringVar(&translateModel, "model", "default", "Model type: default, latency, quality, prefer-latency, prefer-quality")
}
