package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const defaultSize = 8

// Generator creates opaque IDs, used to correlate request logs.
type Generator interface {
	NewID() (string, error)
}

// RandomGenerator returns hex-encoded random IDs of a fixed byte size.
type RandomGenerator struct {
	size int
}

func NewRandomGenerator() *RandomGenerator {
	return NewRandomGeneratorSize(defaultSize)
}

func NewRandomGeneratorSize(size int) *RandomGenerator {
	if size < 1 {
		size = defaultSize
	}
	return &RandomGenerator{size: size}
}

func (g *RandomGenerator) NewID() (string, error) {
	buf := make([]byte, g.size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
