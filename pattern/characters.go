package pattern

import "strings"

const (
	// EncodingUTF8 splits the password into runes.
	EncodingUTF8 = "utf8"
	// EncodingBytes splits the password into raw bytes.
	EncodingBytes = "bytes"
)

// SplitPassword trims the raw password to at most bitsRange characters and
// splits it into an ordered, position-indexable character sequence. Unknown
// encodings fall back to rune splitting; the engine validates the encoding
// before generation, so the fallback is unreachable through public APIs.
func SplitPassword(raw string, bitsRange int, encoding string) []string {
	if bitsRange < 1 {
		return nil
	}

	var chars []string
	if encoding == EncodingBytes {
		chars = make([]string, 0, len(raw))
		for i := 0; i < len(raw); i++ {
			chars = append(chars, string(raw[i]))
		}
	} else {
		chars = make([]string, 0, len(raw))
		for _, r := range raw {
			chars = append(chars, string(r))
		}
	}

	if len(chars) > bitsRange {
		chars = chars[:bitsRange]
	}

	return chars
}

// SelectCharacters concatenates, in ascending position order, the characters
// at each selected index. Positions beyond the character sequence contribute
// an empty placeholder instead of failing.
func SelectCharacters(positions []int, chars []string) string {
	var b strings.Builder
	for _, pos := range positions {
		if pos < 0 || pos >= len(chars) {
			continue
		}
		b.WriteString(chars[pos])
	}

	return b.String()
}
