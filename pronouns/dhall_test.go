package pronouns

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const heDhall = `
let PronounSet = ../types/PronounSet.dhall

in PronounSet::{
    , nominative = "he"
    , accusative = "him"
    , determiner = "his"
    , possessive = "his"
    , reflexive = "himself"
    , singular = True
}
            `

func TestEncodeDhall(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	set := &PronounSet{"he", "him", "his", "his", "himself", true}
	require.NoError(t, EncodeDhall(buf, set, false))
	assert.Equal(t, heDhall, buf.String())
}

func TestEncodeDhallBytes(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	set := &PronounSet{"they", "them", "their", "theirs", "themself", true}
	require.NoError(t, EncodeDhall(buf, set, false))

	exp := "\nlet PronounSet = ../types/PronounSet.dhall\n\n" +
		"in PronounSet::{\n" +
		"    , nominative = \"they\"\n" +
		"    , accusative = \"them\"\n" +
		"    , determiner = \"their\"\n" +
		"    , possessive = \"theirs\"\n" +
		"    , reflexive = \"themself\"\n" +
		"    , singular = True\n" +
		"}\n            "
	assert.Equal(t, []byte(exp), buf.Bytes())
}

func TestEncodeDhallVerbatim(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	set := &PronounSet{`a"b`, "x", "x", "x", "x", true}
	require.NoError(t, EncodeDhall(buf, set, false))
	assert.Contains(t, buf.String(), `nominative = "a"b"`)

	buf.Reset()
	require.NoError(t, EncodeDhall(buf, set, true))
	assert.Contains(t, buf.String(), `nominative = "a\"b"`)
}

func TestEscapeDhall(t *testing.T) {
	tests := []struct{ in, exp string }{
		{"they", "they"},
		{`"`, `\"`},
		{`\`, `\\`},
		{"${x}", `\${x}`},
		{"$x", "$x"},
		{"ne'r", "ne'r"},
	}
	for _, test := range tests {
		assert.Equal(t, test.exp, EscapeDhall(test.in), test.in)
	}
}

func TestEncodeDhallIndex(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	require.NoError(t, EncodeDhallIndex(buf, []string{"pronouns/a.dhall", "pronouns/b.dhall"}))
	assert.Equal(t, "[\n, ./pronouns/a.dhall\n, ./pronouns/b.dhall\n]", buf.String())

	buf.Reset()
	require.NoError(t, EncodeDhallIndex(buf, nil))
	assert.Equal(t, "[\n]", buf.String())
}

func TestGOBRoundTrip(t *testing.T) {
	sets := Sets{
		{"he", "him", "his", "his", "himself", true},
		{"they", "them", "their", "theirs", "themselves", false},
	}

	file := filepath.Join(t.TempDir(), "db.gob")
	require.NoError(t, StoreGOB(file, sets))

	loaded, err := LoadGOB(file)
	require.NoError(t, err)
	assert.Equal(t, sets, loaded)
}
