// Package token genera identificadores aleatorios cortos (SKUs, códigos).
package token

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// AlphaNumUpper alfabeto por defecto: A-Z y 0-9.
const AlphaNumUpper = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Generator produce un token de largo fijo con un alfabeto dado.
type Generator struct {
	length   int
	alphabet string
}

// NewGenerator construye el generador. Si alphabet es vacío usa AlphaNumUpper.
func NewGenerator(length int, alphabet string) *Generator {
	if alphabet == "" {
		alphabet = AlphaNumUpper
	}
	return &Generator{length: length, alphabet: alphabet}
}

// Generate devuelve un token nuevo usando crypto/rand.
func (g *Generator) Generate() (string, error) {
	return Random(g.length, g.alphabet)
}

// Random devuelve length caracteres elegidos de alphabet de forma uniforme.
func Random(length int, alphabet string) (string, error) {
	if length <= 0 || alphabet == "" {
		return "", fmt.Errorf("token: largo y alfabeto son obligatorios")
	}
	max := big.NewInt(int64(len(alphabet)))
	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("token: %w", err)
		}
		buf[i] = alphabet[n.Int64()]
	}
	return string(buf), nil
}
