package dict

import (
	"strings"

	"github.com/frizinak/pronouns/pronouns"
)

// Wildcard matches any form.
const Wildcard = ""

// Query is a list of forms in case order, Wildcard matching anything.
type Query []string

// ParseQuery splits a slash separated path into a Query.
// Empty parts and "..." are wildcards.
func ParseQuery(p string) Query {
	parts := strings.Split(p, "/")
	q := make(Query, len(parts))
	for i, part := range parts {
		if part == "..." {
			part = Wildcard
		}
		q[i] = part
	}
	return q
}

func (q Query) expand() (Query, bool) {
	if len(q) > pronouns.Fields {
		return nil, false
	}

	n := make(Query, 0, pronouns.Fields)
	missing := pronouns.Fields - len(q)
	for _, t := range q {
		n = append(n, t)
		if t == Wildcard && missing != 0 {
			for j := 0; j < missing; j++ {
				n = append(n, Wildcard)
			}
			missing = 0
		}
	}
	for ; missing != 0; missing-- {
		n = append(n, Wildcard)
	}

	return n, true
}

func (q Query) String() string {
	parts := make([]string, len(q))
	for i, t := range q {
		if t == Wildcard {
			t = "..."
		}
		parts[i] = t
	}
	return strings.Join(parts, "/")
}
