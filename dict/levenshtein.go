package dict

import (
	"fmt"
	"strings"
)

func levenshteinMatrix(s, t []rune) (func(int, int) int, []int) {
	d := make([]int, (len(s)+1)*(len(t)+1))
	stride := len(t) + 1
	offset := func(i, j int) int { return i*stride + j }
	min := func(a, b, c int) int {
		if a < b && a < c {
			return a
		} else if b < c {
			return b
		}

		return c
	}

	for i := 1; i <= len(s); i++ {
		d[offset(i, 0)] = i
	}
	for j := 1; j <= len(t); j++ {
		d[offset(0, j)] = j
	}

	for j := 1; j <= len(t); j++ {
		for i := 1; i <= len(s); i++ {
			cost := 1
			if s[i-1] == t[j-1] {
				cost = 0
			}

			d[offset(i, j)] = min(
				d[offset(i-1, j)]+1,
				d[offset(i, j-1)]+1,
				d[offset(i-1, j-1)]+cost,
			)
		}
	}

	return offset, d
}

func Levenshtein(s, t []rune) int {
	offset, d := levenshteinMatrix(s, t)
	return d[offset(len(s), len(t))]
}

type EditType uint8

const (
	EditNone EditType = iota
	EditAdd
	EditDel
	EditChange
)

type Edit struct {
	Type EditType
	Rune rune
}

func (e Edit) String() string { return string(e.Rune) }

func (e Edit) DiffString() string {
	t := "="
	switch e.Type {
	case EditAdd:
		t = "+"
	case EditDel:
		t = "-"
	case EditChange:
		t = "~"
	}
	return fmt.Sprintf("%s%s", t, string(e.Rune))
}

type Edits []Edit

func (e Edits) DiffString() string {
	l := make([]string, len(e))
	for i := range e {
		l[i] = e[i].DiffString()
	}
	return strings.Join(l, " ")
}

// LevenshteinEdits returns the edits needed to turn s into t.
func LevenshteinEdits(s, t []rune) Edits {
	offset, d := levenshteinMatrix(s, t)
	r := make(Edits, 0, len(s)+len(t))

	i, j := len(s), len(t)
	for i != 0 || j != 0 {
		switch {
		case i == 0:
			r = append(r, Edit{Type: EditAdd, Rune: t[j-1]})
			j--
			continue
		case j == 0:
			r = append(r, Edit{Type: EditDel, Rune: s[i-1]})
			i--
			continue
		case s[i-1] == t[j-1]:
			r = append(r, Edit{Type: EditNone, Rune: t[j-1]})
			i, j = i-1, j-1
			continue
		}

		n, w, nw := d[offset(i, j-1)], d[offset(i-1, j)], d[offset(i-1, j-1)]
		switch {
		case n < w && n <= nw:
			r = append(r, Edit{Type: EditAdd, Rune: t[j-1]})
			j--
		case w <= nw:
			r = append(r, Edit{Type: EditDel, Rune: s[i-1]})
			i--
		default:
			r = append(r, Edit{Type: EditChange, Rune: t[j-1]})
			i, j = i-1, j-1
		}
	}

	for i := 0; i < len(r)/2; i++ {
		j := len(r) - i - 1
		r[i], r[j] = r[j], r[i]
	}

	return r
}
