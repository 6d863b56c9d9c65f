package sitepass

import (
	"encoding/binary"
	"fmt"
)

// deriveKey implements PBKDF2 (RFC 2898) over an arbitrary PRF, returning
// exactly keyLen bytes. Parameters must already be validated: iterations
// and keyLen are at least 1.
//
// Each output block T_i is the running XOR of the iterated PRF chain
// U_1 = PRF(password, salt || be32(i)), U_c = PRF(password, U_{c-1}).
// Only two hLen-sized buffers are live per block: the accumulator t and
// the rolling u. Full blocks are appended until the accumulated length
// covers keyLen; only the final concatenation is truncated.
func deriveKey(prf PRF, password, salt []byte, iterations, keyLen int) []byte {
	hLen := prf.Size()
	blocks := (keyLen + hLen - 1) / hLen

	dk := make([]byte, 0, blocks*hLen)
	msg := make([]byte, len(salt)+4)
	copy(msg, salt)

	for block := 1; len(dk) < keyLen; block++ {
		binary.BigEndian.PutUint32(msg[len(salt):], uint32(block))

		u := prf.Sum(password, msg)
		if len(u) != hLen {
			panic(fmt.Sprintf("sitepass: prf returned %d bytes, want %d", len(u), hLen))
		}
		t := make([]byte, hLen)
		copy(t, u)

		// iterations == 1 leaves t equal to U_1, no XOR folding
		for c := 2; c <= iterations; c++ {
			u = prf.Sum(password, u)
			if len(u) != hLen {
				panic(fmt.Sprintf("sitepass: prf returned %d bytes, want %d", len(u), hLen))
			}
			for j := range t {
				t[j] ^= u[j]
			}
		}

		dk = append(dk, t...)
	}

	return dk[:keyLen]
}
