package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPassword_PromptsAndReturnsInput(t *testing.T) {
	stubPassword(t, "s3cret!")

	out := &bytes.Buffer{}
	pw, err := GetPassword(out)
	require.NoError(t, err)
	assert.Equal(t, []byte("s3cret!"), pw)
	assert.Contains(t, out.String(), "Enter password:")
}

func TestGetPassword_ReadError(t *testing.T) {
	old := readPassword
	readPassword = func(fd int) ([]byte, error) { return nil, errors.New("tty gone") }
	t.Cleanup(func() { readPassword = old })

	_, err := GetPassword(&bytes.Buffer{})
	assert.ErrorContains(t, err, "tty gone")
}
