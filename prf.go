package sitepass

import (
	"crypto/hmac"
	"hash"
)

// PRF is a pseudorandom function: a keyed hash producing a fixed-size
// digest from a key and a message. The PBKDF2 engine is written against
// this interface so a stronger hash can be substituted without touching it.
type PRF interface {
	// Size returns the digest length in bytes
	Size() int

	// Sum computes the digest of message under key. It must accept inputs
	// of any length, including empty, and always return exactly Size()
	// bytes.
	Sum(key, message []byte) []byte
}

// HMACPRF implements PRF using HMAC over a configurable hash function
type HMACPRF struct {
	newHash func() hash.Hash
	size    int
}

// NewHMACPRF creates an HMAC-based PRF from a hash constructor
func NewHMACPRF(h func() hash.Hash) *HMACPRF {
	return &HMACPRF{
		newHash: h,
		size:    h().Size(),
	}
}

// newPRF returns the HMAC PRF for a validated HashFunc value
func newPRF(hf HashFunc) *HMACPRF {
	return NewHMACPRF(hf.newHash())
}

// Size returns the digest length of the underlying hash
func (p *HMACPRF) Size() int {
	return p.size
}

// Sum computes HMAC(key, message)
func (p *HMACPRF) Sum(key, message []byte) []byte {
	mac := hmac.New(p.newHash, key)
	mac.Write(message)
	return mac.Sum(nil)
}
