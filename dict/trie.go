package dict

import (
	"github.com/frizinak/pronouns/pronouns"
)

// Trie is a ternary search trie keyed on the five forms of a pronoun set.
// Each level of the trie holds one case, the node terminating the
// reflexive form stores whether the set is singular.
type Trie struct {
	root *node
	n    int
}

type node struct {
	word        string
	left, right *node
	next        *node

	terminal bool
	singular bool
}

// Build creates a trie out of sets. Inserting the same five forms twice
// keeps the last singular value.
func Build(sets pronouns.Sets) *Trie {
	t := &Trie{}
	for _, s := range sets {
		t.Insert(s)
	}
	return t
}

func (t *Trie) Len() int { return t.n }

func (t *Trie) Insert(set *pronouns.PronounSet) {
	key := set.Key()
	n := &t.root
	for i := 0; i < len(key); {
		if *n == nil {
			*n = &node{word: key[i]}
		}
		c := *n
		switch {
		case key[i] < c.word:
			n = &c.left
		case key[i] > c.word:
			n = &c.right
		default:
			i++
			if i == len(key) {
				if !c.terminal {
					t.n++
				}
				c.terminal = true
				c.singular = set.Singular
				return
			}
			n = &c.next
		}
	}
}

// Guess returns all sets matching q in key order. A query shorter than
// five terms is padded with wildcards at its first wildcard, or at the
// end if it has none. Queries longer than five terms match nothing.
func (t *Trie) Guess(q Query) pronouns.Sets {
	q, ok := q.expand()
	if !ok {
		return nil
	}

	res := make(pronouns.Sets, 0)
	var path [pronouns.Fields]string
	t.root.guess(q, 0, &path, func(singular bool) {
		res = append(res, pronouns.New(path, singular))
	})
	return res
}

// Gather returns every set in the trie in key order.
func (t *Trie) Gather() pronouns.Sets { return t.Guess(nil) }

// Exact returns the set with exactly the given forms.
func (t *Trie) Exact(key [pronouns.Fields]string) (*pronouns.PronounSet, bool) {
	n := t.root
	for i := 0; n != nil; {
		switch {
		case key[i] < n.word:
			n = n.left
		case key[i] > n.word:
			n = n.right
		default:
			i++
			if i == len(key) {
				if !n.terminal {
					return nil, false
				}
				return pronouns.New(key, n.singular), true
			}
			n = n.next
		}
	}
	return nil, false
}

func (n *node) guess(q Query, depth int, path *[pronouns.Fields]string, cb func(bool)) {
	if n == nil {
		return
	}

	term := q[depth]
	wild := term == Wildcard
	if wild || term < n.word {
		n.left.guess(q, depth, path, cb)
	}

	if wild || term == n.word {
		path[depth] = n.word
		if depth == pronouns.Fields-1 {
			if n.terminal {
				cb(n.singular)
			}
		} else {
			n.next.guess(q, depth+1, path, cb)
		}
	}

	if wild || term > n.word {
		n.right.guess(q, depth, path, cb)
	}
}
