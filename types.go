package sitepass

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
)

// AlphabetMode selects how derived bytes are rendered as a password
type AlphabetMode uint8

const (
	// ModeFull maps bytes onto letters, digits and symbols
	ModeFull AlphabetMode = iota
	// ModeSimple maps bytes onto letters and digits only
	ModeSimple
	// ModeRaw skips alphabet mapping and hex-encodes the derived bytes
	ModeRaw
)

// String returns the string representation of the alphabet mode
func (m AlphabetMode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModeSimple:
		return "simple"
	case ModeRaw:
		return "raw"
	default:
		return "unknown"
	}
}

// ParseAlphabetMode converts a mode name to an AlphabetMode
func ParseAlphabetMode(s string) (AlphabetMode, error) {
	switch s {
	case "full":
		return ModeFull, nil
	case "simple":
		return ModeSimple, nil
	case "raw":
		return ModeRaw, nil
	default:
		return 0, &ValidationError{
			Field:   "mode",
			Value:   s,
			Message: fmt.Sprintf("unknown alphabet mode %q (want full, simple or raw)", s),
			Err:     ErrInvalidMode,
		}
	}
}

// HashFunc represents hash function types for the HMAC PRF
type HashFunc uint8

const (
	// SHA1 hash function (default, compatibility-frozen)
	SHA1 HashFunc = iota
	// SHA256 hash function
	SHA256
	// SHA512 hash function
	SHA512
)

// String returns the string representation of the hash function
func (h HashFunc) String() string {
	switch h {
	case SHA1:
		return "sha1"
	case SHA256:
		return "sha256"
	case SHA512:
		return "sha512"
	default:
		return "unknown"
	}
}

// ParseHashFunc converts a hash function name to a HashFunc
func ParseHashFunc(s string) (HashFunc, error) {
	switch s {
	case "sha1":
		return SHA1, nil
	case "sha256":
		return SHA256, nil
	case "sha512":
		return SHA512, nil
	default:
		return 0, &ValidationError{
			Field:   "hash",
			Value:   s,
			Message: fmt.Sprintf("unknown hash function %q (want sha1, sha256 or sha512)", s),
			Err:     ErrInvalidHash,
		}
	}
}

// newHash returns the hash constructor for the hash function, or nil if the
// value is out of range.
func (h HashFunc) newHash() func() hash.Hash {
	switch h {
	case SHA1:
		return sha1.New
	case SHA256:
		return sha256.New
	case SHA512:
		return sha512.New
	default:
		return nil
	}
}

// Default derivation parameters
const (
	// DefaultIterations is the default PBKDF2 iteration count
	DefaultIterations = 1000
	// DefaultLength is the default derived length in bytes
	DefaultLength = 16
)

// Params contains parameters for password derivation
type Params struct {
	Iterations int          // PBKDF2 iteration count (minimum 1)
	Length     int          // Derived length in bytes before mapping (minimum 1)
	Mode       AlphabetMode // Alphabet used to render the password
	Hash       HashFunc     // Hash function for the HMAC PRF
}

// DefaultParams returns the default derivation parameters:
// 1000 iterations, 16 bytes, full alphabet, SHA-1.
func DefaultParams() Params {
	return Params{
		Iterations: DefaultIterations,
		Length:     DefaultLength,
		Mode:       ModeFull,
		Hash:       SHA1,
	}
}

// withDefaults fills zero values with defaults. Mode and Hash zero values
// already are the defaults (ModeFull, SHA1).
func (p Params) withDefaults() Params {
	if p.Iterations == 0 {
		p.Iterations = DefaultIterations
	}
	if p.Length == 0 {
		p.Length = DefaultLength
	}
	return p
}
