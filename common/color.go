package common

import (
	"strconv"
	"strings"
)

// clrs is a stack of ansi colors, popping a color restores the previous
// one instead of resetting all attributes.
type clrs struct {
	stack    []clr
	disabled bool
}

func (c *clrs) Get(ansi ...int) clr {
	return clr{q: c, ansi: ansi}
}

func (c *clrs) Pop() clr {
	return clr{q: c, pop: true, ansi: []int{0}}
}

type clr struct {
	q    *clrs
	pop  bool
	ansi []int
}

func (c clr) str() string {
	s := make([]string, len(c.ansi))
	for i, v := range c.ansi {
		s[i] = strconv.Itoa(v)
	}
	return "\033[" + strings.Join(s, ";") + "m"
}

func (c clr) String() string {
	if len(c.ansi) == 0 || c.q == nil {
		return ""
	}

	if !c.pop {
		c.q.stack = append(c.q.stack, c)
		if c.q.disabled {
			return ""
		}
		return c.str()
	}

	if n := len(c.q.stack); n != 0 {
		c.q.stack = c.q.stack[:n-1]
	}
	if c.q.disabled {
		return ""
	}
	if n := len(c.q.stack); n != 0 {
		return "\033[0m" + c.q.stack[n-1].str()
	}
	return "\033[0m"
}

type stringer interface {
	String() string
}

type strStringer string

func (str strStringer) String() string {
	return string(str)
}

type stringList []stringer

func (s stringList) String() string {
	n := make([]string, len(s))
	for i := range s {
		n[i] = s[i].String()
	}
	return strings.Join(n, "")
}
