package utils

import (
	"strings"

	"github.com/google/uuid"
)

// UUIDGenerator produces time-ordered identifiers for request ids and for
// the tokens and sessions issued by the local stub.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7, falling back to a random UUIDv4 if the clock
// source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// GenerateHex returns a UUIDv7 without dashes, the shape the remote service
// uses for request tokens and session ids.
func (g *UUIDGenerator) GenerateHex() string {
	return strings.ReplaceAll(g.Generate(), "-", "")
}
