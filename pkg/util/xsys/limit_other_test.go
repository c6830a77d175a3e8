//go:build !unix

package xsys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFileLimit_UnsupportedPlatform(t *testing.T) {
	soft, hard, err := GetFileLimit()
	require.ErrorIs(t, err, ErrUnsupportedPlatform)
	assert.Zero(t, soft)
	assert.Zero(t, hard)
}
