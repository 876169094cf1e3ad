package randomstringgenerator

import (
	"crypto/rand"
	"math/big"
	"userhub/internal/core/domain/user"
)

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Generator produces opaque alphanumeric public identifiers from crypto/rand.
type Generator struct {
	chars  []byte
	length int
}

func NewGenerator() *Generator {
	return &Generator{chars: []byte(alphabet), length: user.PublicIDLength}
}

func (g *Generator) GeneratePublicID() user.PublicID {
	return user.PublicID(g.generate())
}

func (g *Generator) GenerateAddressPublicID() user.AddressPublicID {
	return user.AddressPublicID(g.generate())
}

func (g *Generator) generate() string {
	max := big.NewInt(int64(len(g.chars)))
	b := make([]byte, g.length)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic("Could not read random bytes.")
		}
		b[i] = g.chars[n.Int64()]
	}
	return string(b)
}
