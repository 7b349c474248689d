package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_Generate_IsV7(t *testing.T) {
	id := NewUUIDGenerator().Generate()

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestUUIDGenerator_Generate_Unique(t *testing.T) {
	g := NewUUIDGenerator()
	assert.NotEqual(t, g.Generate(), g.Generate())
}

func TestUUIDGenerator_GenerateHex(t *testing.T) {
	id := NewUUIDGenerator().GenerateHex()

	assert.Len(t, id, 32)
	assert.NotContains(t, id, "-")
}
