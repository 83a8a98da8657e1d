package alphabet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeKnownSymbols(t *testing.T) {
	for i := 0; i < Size; i++ {
		sym := symbols[i]
		assert.Equal(t, Code(i), Encode(sym), "symbol %q", sym)
	}
}

func TestEncodeFoldsUnknownToX(t *testing.T) {
	tests := []string{"U", "O", "-", "1", "?"}
	for _, s := range tests {
		assert.Equal(t, Unknown, Encode(s[0]), "input %q should fold to X", s)
	}
}

func TestEncodeLowercaseFoldsToUnknown(t *testing.T) {
	// The alphabet is uppercase-only; lowercase letters are not members
	// and fold to X same as any other unrecognized byte.
	assert.Equal(t, Unknown, Encode('a'))
}

func TestPadSymbol(t *testing.T) {
	code := Encode('*')
	require.True(t, code.IsPad())
	assert.Equal(t, byte('*'), code.Symbol())
}

func TestSymbolRoundTrip(t *testing.T) {
	for i := 0; i < Size; i++ {
		c := Code(i)
		assert.Equal(t, symbols[i], c.Symbol())
	}
}
