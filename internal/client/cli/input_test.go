package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("  hello world \n"), "Name", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name: ", out.String())
}

func TestGetSimpleText_EOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name", &out)
	assert.Error(t, err)
}

func TestGetPassword_NotATerminal(t *testing.T) {
	orig := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = orig })

	var out bytes.Buffer
	pw, err := GetPassword(rdr("s3cret\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, []byte("s3cret"), pw)
}

func TestGetPassword_Terminal(t *testing.T) {
	origTerm, origRead := isTerminal, readPassword
	isTerminal = func(int) bool { return true }
	t.Cleanup(func() { isTerminal, readPassword = origTerm, origRead })

	readPassword = func(int) ([]byte, error) { return []byte("hidden"), nil }
	var out bytes.Buffer
	pw, err := GetPassword(rdr(""), &out)
	require.NoError(t, err)
	assert.Equal(t, []byte("hidden"), pw)
	assert.Equal(t, "Password: \n", out.String())

	readPassword = func(int) ([]byte, error) { return nil, errors.New("boom") }
	_, err = GetPassword(rdr(""), &out)
	assert.Error(t, err)
}

func TestGetInt(t *testing.T) {
	var out bytes.Buffer

	v, ok, err := getInt(rdr("42\n"), "Age", &out)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 42, v)

	_, ok, err = getInt(rdr("\n"), "Age", &out)
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = getInt(rdr("forty\n"), "Age", &out)
	assert.ErrorContains(t, err, "not a whole number")
}

func TestGetFloat(t *testing.T) {
	var out bytes.Buffer

	v, ok, err := getFloat(rdr("62,5\n"), "Weight", &out)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 62.5, v)

	_, _, err = getFloat(rdr("heavy\n"), "Weight", &out)
	assert.ErrorContains(t, err, "not a number")
}
