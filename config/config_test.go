package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, "pronouns.tab", c.Input)
	assert.Equal(t, "pronouns", c.Dir)
	assert.Equal(t, "dhall", c.Ext)
	assert.Equal(t, "package.dhall", c.Index)
	assert.False(t, c.Escape)
	assert.False(t, c.Mkdir)
	assert.NoError(t, c.Validate())
}

func TestDecode(t *testing.T) {
	c, err := Decode(strings.NewReader("dir: out\nescape: true\n"))
	require.NoError(t, err)
	assert.Equal(t, "out", c.Dir)
	assert.True(t, c.Escape)
	assert.Equal(t, "pronouns.tab", c.Input)

	c, err = Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	_, err = Decode(strings.NewReader("nope: 1\n"))
	assert.Error(t, err)

	_, err = Decode(strings.NewReader("ext: \"\"\n"))
	assert.EqualError(t, err, "ext can not be empty")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	_, err = Load("missing.yaml")
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFile), []byte("index: all.dhall\n"), 0o644))
	c, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "all.dhall", c.Index)
}

func TestEncode(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	require.NoError(t, Default().Encode(buf))

	c, err := Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}
