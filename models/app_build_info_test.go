package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("v1.2.0", "", "abc123")

	assert.Equal(t, "v1.2.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
	assert.Equal(t, "Build version: v1.2.0\nBuild date: N/A\nBuild commit: abc123", info.String())
}

func TestAppBuildInfo_ZeroValue(t *testing.T) {
	assert.Equal(t, "N/A", NewAppBuildInfo("", "", "").BuildVersion())
}
