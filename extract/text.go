package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// extractText keeps printable runes of plain text input, dropping invalid UTF-8 bytes
func extractText(_ string, data []byte) string {
	var out strings.Builder
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		data = data[size:]
		if r == utf8.RuneError && size == 1 {
			continue
		}
		if r == '\n' || r == '\r' || r == '\t' || unicode.IsPrint(r) {
			out.WriteRune(r)
		}
	}
	return out.String()
}
