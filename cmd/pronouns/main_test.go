package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/frizinak/pronouns/common"
	"github.com/frizinak/pronouns/config"
	"github.com/frizinak/pronouns/pronouns"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := bytes.NewBuffer(nil)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestGenerateCommand(t *testing.T) {
	dir := chdir(t)
	in := "he\thim\this\this\thimself\nthey\tthem\ttheir\ttheirs\tthemself\n"
	require.NoError(t, os.WriteFile("pronouns.tab", []byte(in), 0o644))
	require.NoError(t, os.Mkdir("pronouns", 0o755))

	out, err := execute(t, "generate")
	require.NoError(t, err)
	assert.Equal(
		t,
		"['pronouns/he-him-his-his-himself.dhall', 'pronouns/they-them-their-theirs-themself.dhall']\n",
		out,
	)

	index, err := os.ReadFile(filepath.Join(dir, "package.dhall"))
	require.NoError(t, err)
	assert.Equal(
		t,
		"[\n, ./pronouns/he-him-his-his-himself.dhall\n, ./pronouns/they-them-their-theirs-themself.dhall\n]",
		string(index),
	)

	rec, err := os.ReadFile(filepath.Join(dir, "pronouns", "he-him-his-his-himself.dhall"))
	require.NoError(t, err)
	assert.Contains(t, string(rec), `, determiner = "his"`)
}

func TestGenerateCommandMissingDir(t *testing.T) {
	chdir(t)
	require.NoError(t, os.WriteFile("pronouns.tab", []byte("he\thim\this\this\thimself\n"), 0o644))

	_, err := execute(t, "generate")
	assert.Error(t, err)
	_, err = os.Stat("package.dhall")
	assert.True(t, os.IsNotExist(err))
}

func TestGOBCommand(t *testing.T) {
	chdir(t)
	in := "she\ther\ther\thers\therself\nhe\thim\this\this\thimself\nhe\thim\this\this\thimself\n"
	require.NoError(t, os.WriteFile("pronouns.tab", []byte(in), 0o644))

	_, err := execute(t, "gob", "--db", "out/db.gob")
	require.NoError(t, err)

	sets, err := pronouns.LoadGOB("out/db.gob")
	require.NoError(t, err)
	require.Len(t, sets, 2)
	assert.Equal(t, "he", sets[0].Nominative)
	assert.Equal(t, "she", sets[1].Nominative)
}

func TestLookup(t *testing.T) {
	d, err := common.GetDict()
	require.NoError(t, err)

	res := lookup(d, "/she/her/", 3)
	assert.Equal(t, "she/her", res.Query)
	require.Len(t, res.Sets, 1)
	assert.Empty(t, res.Suggestions)

	res = lookup(d, "a/b/c/ds/eself", 3)
	require.Len(t, res.Sets, 1)
	assert.Equal(t, "a/b", res.Sets[0].Title())
	assert.True(t, res.Sets[0].Singular)

	res = lookup(d, "xe/xem/xyr/xyrsz", 3)
	assert.Empty(t, res.Sets)
	require.NotEmpty(t, res.Suggestions)
	assert.Equal(t, "xe/xem/xyr/xyrs/xemself", res.Suggestions[0].String())
}

func TestConfigCommand(t *testing.T) {
	chdir(t)
	require.NoError(t, os.WriteFile("pronouns.yaml", []byte("dir: records\n"), 0o644))

	out, err := execute(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "dir: records\n")
	assert.Contains(t, out, "input: pronouns.tab\n")
}

func TestListCommand(t *testing.T) {
	chdir(t)
	in := "she\ther\ther\thers\therself\nhe\thim\this\this\thimself\nshe\ther\ther\thers\therself\n"
	require.NoError(t, os.WriteFile("in.tab", []byte(in), 0o644))

	out, err := execute(t, "list", "--db", "in.tab")
	require.NoError(t, err)
	assert.Equal(t, "he\thim\this\this\thimself\nshe\ther\ther\thers\therself\n", out)
}

func TestWatchInitialRun(t *testing.T) {
	chdir(t)
	require.NoError(t, os.WriteFile("pronouns.tab", []byte("it\tit\tits\tits\titself\n"), 0o644))

	conf := config.Default()
	conf.Mkdir = true

	buf := bytes.NewBuffer(nil)
	cmd := &cobra.Command{}
	cmd.SetOut(buf)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, watch(ctx, conf, cmd, zaptest.NewLogger(t)))

	assert.Equal(t, "['pronouns/it-it-its-its-itself.dhall']\n", buf.String())
	_, err := os.Stat("package.dhall")
	assert.NoError(t, err)
}
