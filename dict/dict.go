package dict

import (
	"sort"
	"strings"
	"sync"

	"github.com/frizinak/pronouns/fuzzy"
	"github.com/frizinak/pronouns/pronouns"
)

type fuzz struct {
	l     sync.Mutex
	sets  pronouns.Sets
	index *fuzzy.Index
}

// Dict answers lookups against an immutable collection of pronoun sets.
// It is safe for concurrent use.
type Dict struct {
	trie *Trie
	all  pronouns.Sets

	fuzz fuzz
}

func New(sets pronouns.Sets) *Dict {
	t := Build(sets)
	return &Dict{trie: t, all: t.Gather()}
}

// Sets returns all sets in key order.
func (d *Dict) Sets() pronouns.Sets { return d.all }

func (d *Dict) Len() int { return len(d.all) }

func (d *Dict) Guess(q Query) pronouns.Sets { return d.trie.Guess(q) }

// Lookup guesses the sets matching a slash separated path such as
// "she/her" or "they/.../themselves".
func (d *Dict) Lookup(path string) pronouns.Sets {
	return d.Guess(ParseQuery(strings.Trim(path, "/")))
}

func (d *Dict) Exact(key [pronouns.Fields]string) (*pronouns.PronounSet, bool) {
	return d.trie.Exact(key)
}

func (d *Dict) InitFuzzIndex() {
	d.fuzz.l.Lock()
	defer d.fuzz.l.Unlock()
	if d.fuzz.index != nil {
		return
	}

	l := make([]string, len(d.all))
	for i, s := range d.all {
		l[i] = s.String()
	}
	d.fuzz.sets = d.all
	d.fuzz.index = fuzzy.NewIndex(2, l)
}

func (d *Dict) GetFuzz() *fuzzy.Index {
	d.InitFuzzIndex()
	return d.fuzz.index
}

type Result struct {
	*pronouns.PronounSet
	Score    int
	Distance int
}

func (r *Result) Levenshtein(qry string) {
	r.Distance = Levenshtein([]rune(r.String()), []rune(qry))
}

type Results []*Result

func (r Results) Len() int { return len(r) }
func (r Results) Less(i, j int) bool {
	if r[i].Score == r[j].Score {
		if r[i].Distance == r[j].Distance {
			return r[i].String() < r[j].String()
		}

		return r[i].Distance < r[j].Distance
	}

	return r[i].Score > r[j].Score
}
func (r Results) Swap(i, j int) { r[i], r[j] = r[j], r[i] }

func results2sets(r Results, max int) pronouns.Sets {
	if max <= 0 || max > len(r) {
		max = len(r)
	}
	s := make(pronouns.Sets, max)
	for i := range s {
		s[i] = r[i].PronounSet
	}
	return s
}

// suggestQuery lowercases qry and cuts it to 255 runes.
func suggestQuery(qry string) []rune {
	r := []rune(strings.ToLower(strings.Trim(qry, "/")))
	if len(r) > 1<<8-1 {
		r = r[:1<<8-1]
	}
	return r
}

// Suggest returns at most max sets that look like qry, closest first.
// Candidates are ranked by n-gram score, ties by edit distance to the
// slash separated form of the set.
func (d *Dict) Suggest(qry string, max int) pronouns.Sets {
	ix := d.GetFuzz()
	rqry := suggestQuery(qry)
	qry = string(rqry)
	lq := uint8(len(rqry) / 5)
	if lq == 0 {
		lq = 1
	}

	results := make(Results, 0, max)
	ix.Search(qry, func(index int, score, low, high uint8) {
		if score >= lq {
			r := &Result{PronounSet: d.fuzz.sets[index], Score: int(score)}
			r.Levenshtein(qry)
			results = append(results, r)
		}
	})

	sort.Sort(results)
	return results2sets(results, max)
}
