package deepl

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// repairMojibake undoes a UTF-8 payload that was decoded as Latin-1: the
// provider has historically mis-labeled UTF-8 responses for some clients,
// turning "ü" into "Ã¼". The correction applies only when the text
// round-trips losslessly through Latin-1 into valid UTF-8 that differs from
// the input, so it self-disables on correctly labeled responses.
func repairMojibake(s string) string {
	if s == "" {
		return s
	}
	encoded, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil {
		// Contains runes outside Latin-1; cannot be mis-decoded Latin-1.
		return s
	}
	if encoded == s {
		// Pure ASCII round-trips unchanged; nothing to repair.
		return s
	}
	if !utf8.ValidString(encoded) {
		return s
	}
	return encoded
}
