// Package sitepass deterministically derives per-site passwords from a
// single memorized master secret and a site identifier.
//
// # Overview
//
// sitepass implements a fixed key-derivation pipeline: PBKDF2 with an HMAC
// pseudorandom function stretches the master secret, using the site
// identifier as the salt, and the resulting bytes are projected onto a
// printable password alphabet. The same inputs always produce the same
// password, so nothing is ever stored: a user remembers one secret and
// regenerates every site password on demand.
//
// # Derivation Pipeline
//
//   - HMAC PRF: keyed hash over a configurable hash function (SHA-1 by
//     default for compatibility; SHA-256 and SHA-512 are available)
//   - PBKDF2 engine: iterated PRF with running-XOR block accumulation
//   - Alphabet mapper: projects derived bytes onto a 62-character
//     alphanumeric alphabet, an 83-character alphabet with symbols, or a
//     raw lowercase hex encoding
//
// # Basic Usage
//
//	d, err := sitepass.New(sitepass.DefaultParams())
//	if err != nil {
//	    panic(err)
//	}
//
//	password := d.Derive([]byte("correct horse"), []byte("example.com"))
//	fmt.Println(password) // 16 characters, reproducible on every run
//
// One-shot derivation with custom parameters:
//
//	password, err := sitepass.Derive(secret, site, sitepass.Params{
//	    Iterations: 10000,
//	    Length:     24,
//	    Mode:       sitepass.ModeSimple,
//	})
//
// # Security Considerations
//
// Protected Against:
//   - Offline brute-force of the master secret, in proportion to the
//     iteration count (the only cost knob)
//   - Password reuse across sites: distinct site identifiers diversify the
//     PBKDF2 salt
//
// Not Protected Against:
//   - Loss or mistyping of the master secret or site string; identical
//     inputs always yield identical outputs, and different inputs yield
//     unrelated ones
//   - Compromise of a site's verifier database revealing the derived
//     password for that site
//
// sitepass is not a password manager. It stores nothing, retrieves nothing,
// and performs no network I/O.
//
// # Compatibility
//
// The alphabet contents and ordering, the byte-to-index arithmetic, and the
// default PBKDF2-HMAC-SHA1 construction are frozen: changing any of them
// changes every password derived by existing users. See alphabet.go before
// touching those constants.
package sitepass
