package sitepass

import (
	"encoding/hex"
)

// Password alphabets. Both the contents and the ordering are
// compatibility-frozen: changing either changes every derived password.
const (
	// simpleAlphabet holds the 62 alphanumeric characters
	simpleAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// fullAlphabet adds the 21-symbol set, 83 characters total
	fullAlphabet = simpleAlphabet + `!"#%&/()=?@$[]}{*.:,;`
)

// Alphabet returns the character set used by a mapped mode, or the empty
// string for ModeRaw and out-of-range values.
func Alphabet(mode AlphabetMode) string {
	switch mode {
	case ModeFull:
		return fullAlphabet
	case ModeSimple:
		return simpleAlphabet
	default:
		return ""
	}
}

// mapBytes renders derived bytes as a password string. Mode must already
// be validated. Empty input yields the empty string.
func mapBytes(b []byte, mode AlphabetMode) string {
	if mode == ModeRaw {
		// Contiguous lowercase hex, two digits per byte, no separator.
		return hex.EncodeToString(b)
	}
	return mapAlphabet(b, Alphabet(mode))
}

// mapAlphabet selects, for each byte, the character at index
// floor((b / 256.0) * len(alphabet)). The real-division-then-floor
// arithmetic is compatibility-frozen, including its known bias: 256 is not
// a multiple of the alphabet length, so some characters are selected by
// more byte values than others.
func mapAlphabet(b []byte, alphabet string) string {
	n := float64(len(alphabet))
	out := make([]byte, len(b))
	for i, v := range b {
		out[i] = alphabet[int(float64(v)/256.0*n)]
	}
	return string(out)
}
