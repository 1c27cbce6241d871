package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirectoryID(t *testing.T) {
	id, err := ParseDirectoryID("")
	require.NoError(t, err)
	assert.True(t, id.IsRoot())

	id, err = ParseDirectoryID("0")
	require.NoError(t, err)
	assert.True(t, id.IsRoot())

	id, err = ParseDirectoryID("42")
	require.NoError(t, err)
	assert.Equal(t, DirectoryID(42), id)
	assert.False(t, id.IsRoot())
	assert.Equal(t, "42", id.String())

	for _, bad := range []string{"-1", "abc", "1.5"} {
		_, err := ParseDirectoryID(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseFileID(t *testing.T) {
	id, err := ParseFileID("7")
	require.NoError(t, err)
	assert.Equal(t, FileID(7), id)

	for _, bad := range []string{"", "0", "-3", "x"} {
		_, err := ParseFileID(bad)
		assert.Error(t, err, bad)
	}
}
