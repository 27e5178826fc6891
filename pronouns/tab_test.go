package pronouns

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTab(t *testing.T) {
	in := "he\thim\this\this\thimself\n" +
		"\n" +
		"they\tthem\ttheir\ttheirs\tthemself\r\n" +
		"\r\n" +
		"e\tem\teir\teirs\temself"

	sets, err := DecodeTab(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, sets, 3)

	assert.Equal(t, &PronounSet{"he", "him", "his", "his", "himself", true}, sets[0])
	assert.Equal(t, "themself", sets[1].Reflexive)
	assert.Equal(t, "e/em", sets[2].Title())
}

func TestDecodeTabArity(t *testing.T) {
	tests := []struct {
		in     string
		line   int
		fields int
	}{
		{"he\thim\this\this\n", 1, 4},
		{"he\thim\this\this\thimself\n\nshe\ther\ther\thers\therself\textra\n", 3, 6},
		{"he him his his himself\n", 1, 1},
		{"he\thim\this\this\thimself\t\n", 1, 6},
		{"he\thim\this\this\thimself\n   \n", 2, 1},
		{"\t\n", 1, 2},
	}

	for _, test := range tests {
		_, err := DecodeTab(strings.NewReader(test.in))
		var perr *ParseError
		require.True(t, errors.As(err, &perr), "expected parse error for %q, got %v", test.in, err)
		assert.Equal(t, test.line, perr.Line)
		assert.Equal(t, test.fields, perr.Fields)
		assert.Contains(t, perr.Error(), "expected 5")
	}
}

func TestDecodeTabKeepsEmptyFields(t *testing.T) {
	sets, err := DecodeTab(strings.NewReader("xe\t\txyr\txyrs\txemself\n"))
	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.Equal(t, "", sets[0].Accusative)
}

func TestEncodeTab(t *testing.T) {
	in := "he\thim\this\this\thimself\nshe\ther\ther\thers\therself\n"
	sets, err := DecodeTab(strings.NewReader(in))
	require.NoError(t, err)

	buf := bytes.NewBuffer(nil)
	require.NoError(t, EncodeTab(buf, sets))
	assert.Equal(t, in, buf.String())
}

func TestFromParts(t *testing.T) {
	s, ok := FromParts([]string{"char", "char", "char", "chars", "charself"})
	require.True(t, ok)
	assert.True(t, s.Singular)
	assert.Equal(t, "/char/char/char/chars/charself", s.URL())

	s, ok = FromParts([]string{"they", "them", "their", "theirs", "themselves"})
	require.True(t, ok)
	assert.False(t, s.Singular)

	_, ok = FromParts([]string{"they", "them"})
	assert.False(t, ok)
	_, ok = FromParts([]string{"they", "", "their", "theirs", "themselves"})
	assert.False(t, ok)
}
