package sitepass

import (
	"strings"
	"testing"
)

// TestAlphabet_Constants pins the alphabet contents and ordering. These
// are compatibility constants: any change here changes every derived
// password for existing users.
func TestAlphabet_Constants(t *testing.T) {
	const wantSimple = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	const wantSymbols = `!"#%&/()=?@$[]}{*.:,;`

	if simpleAlphabet != wantSimple {
		t.Errorf("simpleAlphabet = %q, want %q", simpleAlphabet, wantSimple)
	}
	if len(simpleAlphabet) != 62 {
		t.Errorf("len(simpleAlphabet) = %d, want 62", len(simpleAlphabet))
	}
	if fullAlphabet != wantSimple+wantSymbols {
		t.Errorf("fullAlphabet = %q, want %q", fullAlphabet, wantSimple+wantSymbols)
	}
	if len(fullAlphabet) != 83 {
		t.Errorf("len(fullAlphabet) = %d, want 83", len(fullAlphabet))
	}
	if Alphabet(ModeFull) != fullAlphabet || Alphabet(ModeSimple) != simpleAlphabet {
		t.Error("Alphabet() does not return the mode's character set")
	}
	if Alphabet(ModeRaw) != "" {
		t.Errorf("Alphabet(ModeRaw) = %q, want empty", Alphabet(ModeRaw))
	}
}

// TestMapAlphabet_IndexArithmetic pins the floor((b/256)*len) character
// selection at the interval boundaries
func TestMapAlphabet_IndexArithmetic(t *testing.T) {
	tests := []struct {
		b          byte
		wantSimple byte
		wantFull   byte
	}{
		{0, 'a', 'a'},
		{3, 'a', 'a'},
		{4, 'a', 'b'},
		{5, 'b', 'b'},
		{127, 'E', 'P'},
		{128, 'F', 'P'},
		{191, 'U', '9'},
		{192, 'U', '!'},
		{255, '9', ';'},
	}

	for _, tt := range tests {
		if got := mapAlphabet([]byte{tt.b}, simpleAlphabet); got[0] != tt.wantSimple {
			t.Errorf("simple mapping of %d = %q, want %q", tt.b, got, string(tt.wantSimple))
		}
		if got := mapAlphabet([]byte{tt.b}, fullAlphabet); got[0] != tt.wantFull {
			t.Errorf("full mapping of %d = %q, want %q", tt.b, got, string(tt.wantFull))
		}
	}
}

// TestMapBytes_Containment checks that every possible byte value maps into
// the mode's character set
func TestMapBytes_Containment(t *testing.T) {
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}

	for _, mode := range []AlphabetMode{ModeFull, ModeSimple} {
		out := mapBytes(all, mode)
		if len(out) != 256 {
			t.Fatalf("%s mapping of 256 bytes produced %d characters", mode, len(out))
		}
		for i, c := range out {
			if !strings.ContainsRune(Alphabet(mode), c) {
				t.Errorf("%s mapping of byte %d produced %q, not in alphabet", mode, i, c)
			}
		}
	}

	out := mapBytes(all, ModeRaw)
	if len(out) != 512 {
		t.Fatalf("raw mapping of 256 bytes produced %d characters, want 512", len(out))
	}
	for _, c := range out {
		if !strings.ContainsRune("0123456789abcdef", c) {
			t.Errorf("raw mapping produced %q, not a lowercase hex digit", c)
		}
	}
}

// TestMapBytes_Raw pins the raw encoding: contiguous lowercase hex, two
// digits per byte, no separator
func TestMapBytes_Raw(t *testing.T) {
	got := mapBytes([]byte{0x00, 0xab, 0xff, 0x07}, ModeRaw)
	if want := "00abff07"; got != want {
		t.Errorf("mapBytes(raw) = %q, want %q", got, want)
	}
}

// TestMapBytes_Empty checks that empty input yields an empty string
func TestMapBytes_Empty(t *testing.T) {
	for _, mode := range []AlphabetMode{ModeFull, ModeSimple, ModeRaw} {
		if got := mapBytes(nil, mode); got != "" {
			t.Errorf("mapBytes(nil, %s) = %q, want empty", mode, got)
		}
	}
}

// TestMapAlphabet_Bias documents the intentional selection bias: 256 byte
// values cannot spread evenly over the alphabet, so some characters are
// selected by more values than others
func TestMapAlphabet_Bias(t *testing.T) {
	counts := make(map[byte]int)
	for b := 0; b < 256; b++ {
		counts[mapAlphabet([]byte{byte(b)}, fullAlphabet)[0]]++
	}
	if len(counts) != len(fullAlphabet) {
		t.Fatalf("only %d of %d characters reachable", len(counts), len(fullAlphabet))
	}
	min, max := 256, 0
	for _, n := range counts {
		if n < min {
			min = n
		}
		if n > max {
			max = n
		}
	}
	// 256/83 is not integral, so the per-character counts must straddle it
	if min != 3 || max != 4 {
		t.Errorf("per-character selection counts span [%d, %d], want [3, 4]", min, max)
	}
}
