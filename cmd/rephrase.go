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

	"github.com/vkozar/redraft/internal/lang"
	"github.com/vkozar/redraft/internal/orchestrator"
	"github.com/vkozar/redraft/internal/session"
	"github.com/vkozar/redraft/internal/textbuf"
)

var (
	rephraseSpan   string
	rephraseOutput string
	rephraseTarget string
	rephraseStyle  string
	rephraseReview bool
)

var rephraseCmd = &cobra.Command{
	Use:   "rephrase [file]",
	Short: "Rewrite a span in a given style or tone",
	Long: `Rewrite the input (a file, or stdin) through the provider's write
endpoint and apply the result back into the input text.

--style takes a writing style (simple, business, academic, casual) or a
tone (enthusiastic, friendly, confident, diplomatic); anything else falls
back to the provider's default style.

Examples:
  redraft rephrase --style academic abstract.txt
  echo "we did stuff" | redraft rephrase --style business`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger()
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

		// Rephrasing needs neither detection nor a glossary.
		orch := orchestrator.New(client, client, noDetection{}, orchestrator.Config{}, log)

		buf := textbuf.New(text)
		span, spanText, err := buf.Resolve(rephraseSpan)
		if err != nil {
			return err
		}

		manager := session.NewManager(stderrHighlighter{})
		sess := manager.Open(buf, span, spanText)
		log.Debug().Str("session", sess.ID()).Msg("review session opened")

		result, err := orch.Rephrase(context.Background(), spanText, lang.Code(rephraseTarget), rephraseStyle)
		if err != nil {
			_ = sess.Fail()
			return err
		}
		if err := sess.Complete(result); err != nil {
			return err
		}

		if err := review(sess, rephraseReview); err != nil {
			return err
		}
		if sess.State() != session.StateAccepted {
			fmt.Fprintln(cmd.ErrOrStderr(), "Dismissed; input left untouched.")
			return nil
		}
		return writeResult(buf, rephraseOutput)
	},
}

// noDetection satisfies the orchestrator's Detector for paths that never
// consult it.
type noDetection struct{}

func (noDetection) DetectISO(string) (string, bool) { return "", false }

func (noDetection) Matches(string, string) bool { return true }

func init() {
	rootCmd.AddCommand(rephraseCmd)

	rephraseCmd.Flags().StringVar(&rephraseSpan, "span", "", "Byte range start:end to rephrase (default: whole input)")
	rephraseCmd.Flags().StringVarP(&rephraseOutput, "output", "o", "", "Output file (default: stdout)")
	rephraseCmd.Flags().StringVarP(&rephraseTarget, "target", "t", "", "Target language for the rewrite (default: keep the input language)")
	rephraseCmd.Flags().StringVar(&rephraseStyle, "style", "", "Writing style or tone for the rewrite")
	rephraseCmd.Flags().BoolVar(&rephraseReview, "review", false, "Review the draft interactively before applying")
}
