// Package gameid generates identifiers for blackjack rounds: a UUIDv7 encoded
// as a 26-character, lexically sortable base32 string.
package gameid

import (
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/coder/quartz"
)

// Base32 alphabet used by TypeID (Crockford's base32)
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length is the length of every encoded ID.
const Length = 26

// RandSource is satisfied by *math/rand/v2.Rand.
type RandSource interface {
	IntN(n int) int
}

// Generator produces round IDs. A nil RandSource falls back to crypto/rand.
type Generator struct {
	randSource RandSource
	clock      quartz.Clock
}

// NewGenerator creates a generator. Either argument may be nil, selecting
// crypto/rand and the real clock respectively.
func NewGenerator(randSource RandSource, clock quartz.Clock) *Generator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Generator{randSource: randSource, clock: clock}
}

// Generate creates a new ID using crypto/rand and the wall clock.
func Generate() string {
	return NewGenerator(nil, nil).Generate()
}

// Generate creates a new ID.
func (g *Generator) Generate() string {
	return encodeBase32(g.generateUUIDv7())
}

// generateUUIDv7 lays out a 48-bit millisecond timestamp, version and variant
// bits, and 74 random bits.
func (g *Generator) generateUUIDv7() [16]byte {
	var uuid [16]byte

	now := g.clock.Now("gameid").UnixMilli()
	for i := 0; i < 6; i++ {
		uuid[i] = byte(now >> (40 - 8*i))
	}

	if g.randSource != nil {
		for i := 6; i < 16; i++ {
			uuid[i] = byte(g.randSource.IntN(256))
		}
	} else if _, err := rand.Read(uuid[6:]); err != nil {
		panic("failed to generate random bytes: " + err.Error())
	}

	uuid[6] = (uuid[6] & 0x0f) | 0x70
	uuid[8] = (uuid[8] & 0x3f) | 0x80

	return uuid
}

// encodeBase32 treats the UUID as a 130-bit big-endian number (two leading
// zero bits) and emits it five bits at a time, so the first character is
// always in 0-7.
func encodeBase32(data [16]byte) string {
	bit := func(i int) uint8 {
		if i < 2 {
			return 0
		}
		i -= 2
		return (data[i/8] >> (7 - i%8)) & 1
	}

	var sb strings.Builder
	sb.Grow(Length)
	for c := 0; c < Length; c++ {
		var v uint8
		for b := 0; b < 5; b++ {
			v = v<<1 | bit(c*5+b)
		}
		sb.WriteByte(alphabet[v])
	}
	return sb.String()
}

// Validate checks if an ID is well formed (26 characters, valid base32)
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("game ID must be exactly %d characters, got %d", Length, len(id))
	}

	if id[0] > '7' {
		return fmt.Errorf("game ID first character must be 0-7, got %c", id[0])
	}

	for i, char := range id {
		if !strings.ContainsRune(alphabet, char) {
			return fmt.Errorf("invalid character %c at position %d", char, i)
		}
	}

	return nil
}
