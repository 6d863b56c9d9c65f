package sitepass

import (
	"fmt"
)

// Deriver derives per-site passwords with a fixed set of validated
// parameters. A Deriver holds no mutable state and is safe for concurrent
// use.
type Deriver struct {
	params Params
	prf    PRF
}

// New creates a Deriver from the given parameters. Zero-valued Iterations
// and Length are filled with the defaults; out-of-range values are
// rejected.
func New(params Params) (*Deriver, error) {
	params = params.withDefaults()
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid params: %w", err)
	}
	return &Deriver{
		params: params,
		prf:    newPRF(params.Hash),
	}, nil
}

// NewWithPRF creates a Deriver using a caller-supplied PRF instead of the
// built-in HMAC construction. The Hash field of params is ignored.
func NewWithPRF(params Params, prf PRF) (*Deriver, error) {
	if prf == nil {
		return nil, ErrNilPRF
	}
	params = params.withDefaults()
	if err := validateIterations(params.Iterations); err != nil {
		return nil, fmt.Errorf("invalid params: %w", err)
	}
	if err := validateLength(params.Length); err != nil {
		return nil, fmt.Errorf("invalid params: %w", err)
	}
	if err := validateMode(params.Mode); err != nil {
		return nil, fmt.Errorf("invalid params: %w", err)
	}
	return &Deriver{
		params: params,
		prf:    prf,
	}, nil
}

// Params returns the effective derivation parameters
func (d *Deriver) Params() Params {
	return d.params
}

// DeriveBytes returns the raw derived byte block for a secret and site,
// before alphabet mapping. The output is a pure function of the inputs and
// the Deriver's parameters.
func (d *Deriver) DeriveBytes(secret, site []byte) []byte {
	return deriveKey(d.prf, secret, site, d.params.Iterations, d.params.Length)
}

// Derive returns the password for a secret and site. For mapped modes the
// result has exactly Length characters; for ModeRaw it has 2*Length hex
// digits.
func (d *Deriver) Derive(secret, site []byte) string {
	return mapBytes(d.DeriveBytes(secret, site), d.params.Mode)
}

// Derive performs a one-shot derivation with the given parameters
func Derive(secret, site []byte, params Params) (string, error) {
	d, err := New(params)
	if err != nil {
		return "", err
	}
	return d.Derive(secret, site), nil
}
