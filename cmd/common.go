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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/vkozar/redraft/internal/deepl"
	"github.com/vkozar/redraft/internal/lang"
	"github.com/vkozar/redraft/internal/logging"
	"github.com/vkozar/redraft/internal/session"
	"github.com/vkozar/redraft/internal/textbuf"
)

func newLogger() (zerolog.Logger, error) {
	return logging.New(viper.GetString("log_level"))
}

func newClient() (*deepl.Client, error) {
	key := viper.GetString("auth_key")
	if key == "" {
		return nil, fmt.Errorf("no auth key configured (set auth_key in ~/.redraft.yaml or REDRAFT_AUTH_KEY)")
	}
	return deepl.NewClient(key, viper.GetString("server_url")), nil
}

func configuredPair() (lang.Pair, error) {
	langs := viper.GetStringSlice("languages")
	if len(langs) != 2 {
		return lang.Pair{}, fmt.Errorf("languages must name exactly two codes, got %v", langs)
	}
	return lang.NewPair(lang.Code(langs[0]), lang.Code(langs[1]))
}

// readInput loads the text under review: a file path argument, or stdin for
// "-" or no argument.
func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(data), nil
}

// stderrHighlighter announces span marking on stderr; the CLI has no
// display of its own to decorate.
type stderrHighlighter struct{}

func (stderrHighlighter) Mark(span session.Span) {
	fmt.Fprintf(os.Stderr, "… translating span %d:%d\n", span.Start, span.End)
}

func (stderrHighlighter) Unmark(session.Span) {}

// review drives the session from reviewing to a terminal state. Without
// --review the draft is accepted as-is. The interactive loop reads commands
// from stdin: a(ccept), e(dit) with a replacement line, d(ismiss).
func review(sess *session.Session, interactive bool) error {
	if !interactive {
		return sess.Accept()
	}

	in := bufio.NewReader(os.Stdin)
	for {
		fmt.Fprintf(os.Stderr, "--- draft ---\n%s\n--- [a]ccept  [e]dit  [d]ismiss: ", sess.Draft())
		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			// EOF without a decision: no write-back.
			return sess.Dismiss()
		}
		switch strings.TrimSpace(line) {
		case "a", "accept", "":
			return sess.Accept()
		case "d", "dismiss":
			return sess.Dismiss()
		case "e", "edit":
			fmt.Fprint(os.Stderr, "replacement: ")
			edited, err := in.ReadString('\n')
			if err != nil && edited == "" {
				return sess.Dismiss()
			}
			if err := sess.SetDraft(strings.TrimRight(edited, "\n")); err != nil {
				return err
			}
		default:
			fmt.Fprintln(os.Stderr, "unrecognized choice")
		}
	}
}

// writeResult emits the final document text.
func writeResult(buf *textbuf.Buffer, outputFile string) error {
	if outputFile == "" {
		_, err := fmt.Print(buf.String())
		return err
	}
	if err := os.WriteFile(outputFile, []byte(buf.String()), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
