package token_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/pkg/token"
)

func TestGenerator_LargoYAlfabeto(t *testing.T) {
	g := token.NewGenerator(4, "")
	for i := 0; i < 200; i++ {
		tok, err := g.Generate()
		require.NoError(t, err)
		require.Len(t, tok, 4)
		for _, r := range tok {
			assert.True(t, strings.ContainsRune(token.AlphaNumUpper, r), "carácter fuera del alfabeto: %q", r)
		}
	}
}

func TestRandom_AlfabetoPropio(t *testing.T) {
	tok, err := token.Random(9, "ab")
	require.NoError(t, err)
	assert.Len(t, tok, 9)
	assert.Empty(t, strings.Trim(tok, "ab"))
}

func TestRandom_ParametrosInvalidos(t *testing.T) {
	_, err := token.Random(0, "ABC")
	assert.Error(t, err)
	_, err = token.Random(4, "")
	assert.Error(t, err)
}
