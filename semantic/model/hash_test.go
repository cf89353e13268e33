package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexiscope/lexiscope/semantic/model"
)

func TestChecksumStable(t *testing.T) {
	a, err := model.Checksum([]byte("const x = 1;"))
	require.NoError(t, err)
	b, err := model.Checksum([]byte("const x = 1;"))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestChecksumDiffers(t *testing.T) {
	a, err := model.Checksum([]byte("const x = 1;"))
	require.NoError(t, err)
	b, err := model.Checksum([]byte("const x = 2;"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
