package fuzzy

import (
	"strings"
	"unicode"
)

// Index maps n-grams of its items to the indexes of the items containing
// them.
type Index struct {
	fuzzyLength int
	n           int
	data        map[string][]int
}

func NewIndex(fuzzyLength int, items []string) *Index {
	if fuzzyLength < 2 {
		fuzzyLength = 2
	}
	ix := &Index{
		fuzzyLength: fuzzyLength,
		n:           len(items),
		data:        make(map[string][]int, len(items)),
	}

	for i, v := range items {
		for _, p := range ix.parts(v) {
			ix.data[p] = append(ix.data[p], i)
		}
	}

	return ix
}

func (index *Index) Len() int { return index.n }

// Include receives the score of every item, low and high being the lowest
// and highest score of this search.
type Include func(index int, score, low, high uint8)

const maxuint8 = 1<<8 - 1

func (index *Index) Search(q string, include Include) {
	scores := make([]uint8, index.n)
	var min, max uint8 = maxuint8, 0
	for _, q := range index.parts(q) {
		for _, ix := range index.data[q] {
			if scores[ix] != maxuint8 {
				scores[ix]++
			}
		}
	}

	for _, score := range scores {
		if score < min {
			min = score
		}
		if score > max {
			max = score
		}
	}

	for i, score := range scores {
		include(i, score, min, max)
	}
}

func separator(r rune) bool {
	return r == '/' || r == '-' || unicode.IsSpace(r) || unicode.IsPunct(r) && r != '\''
}

func (index *Index) parts(q string) []string {
	qs := make([]string, 0, len(q))
	for _, word := range strings.FieldsFunc(strings.ToLower(q), separator) {
		v := []rune(word)
		if len(v) <= index.fuzzyLength {
			qs = append(qs, word)
			continue
		}
		for j := 0; j < len(v)-index.fuzzyLength+1; j++ {
			qs = append(qs, string(v[j:j+index.fuzzyLength]))
		}
	}

	return qs
}
