package pronouns

import (
	"fmt"
	"strings"
)

// Fields is the amount of grammatical forms in a PronounSet.
const Fields = 5

type Case uint8

func (c Case) String() string { return allCasesRev[c] }

// Label is the human readable name of the case.
func (c Case) Label() string { return allCaseLabels[c] }

const (
	Nominative Case = iota
	Accusative
	Determiner
	Possessive
	Reflexive
)

var AllCases = [Fields]Case{Nominative, Accusative, Determiner, Possessive, Reflexive}

var allCasesRev = map[Case]string{
	Nominative: "nominative",
	Accusative: "accusative",
	Determiner: "determiner",
	Possessive: "possessive",
	Reflexive:  "reflexive",
}

var allCaseLabels = map[Case]string{
	Nominative: "Subject",
	Accusative: "Object",
	Determiner: "Dependent Possessive",
	Possessive: "Independent Possessive",
	Reflexive:  "Reflexive",
}

type Sets []*PronounSet

type PronounSet struct {
	Nominative string `json:"nominative" yaml:"nominative"`
	Accusative string `json:"accusative" yaml:"accusative"`
	Determiner string `json:"determiner" yaml:"determiner"`
	Possessive string `json:"possessive" yaml:"possessive"`
	Reflexive  string `json:"reflexive" yaml:"reflexive"`
	Singular   bool   `json:"singular" yaml:"singular"`
}

// New creates a set from its five forms in case order.
func New(forms [Fields]string, singular bool) *PronounSet {
	return &PronounSet{
		Nominative: forms[Nominative],
		Accusative: forms[Accusative],
		Determiner: forms[Determiner],
		Possessive: forms[Possessive],
		Reflexive:  forms[Reflexive],
		Singular:   singular,
	}
}

// FromParts builds an ad-hoc set out of exactly five path parts.
// Sets whose reflexive form ends in s are assumed to be plural.
func FromParts(parts []string) (*PronounSet, bool) {
	if len(parts) != Fields {
		return nil, false
	}
	for _, p := range parts {
		if p == "" {
			return nil, false
		}
	}

	var forms [Fields]string
	copy(forms[:], parts)
	return New(forms, !strings.HasSuffix(forms[Reflexive], "s")), true
}

func (p *PronounSet) Key() [Fields]string {
	return [Fields]string{p.Nominative, p.Accusative, p.Determiner, p.Possessive, p.Reflexive}
}

func (p *PronounSet) Form(c Case) string { return p.Key()[c] }

func (p *PronounSet) URL() string {
	return fmt.Sprintf(
		"/%s/%s/%s/%s/%s",
		p.Nominative,
		p.Accusative,
		p.Determiner,
		p.Possessive,
		p.Reflexive,
	)
}

func (p *PronounSet) Title() string {
	return fmt.Sprintf("%s/%s", p.Nominative, p.Accusative)
}

func (p *PronounSet) String() string {
	k := p.Key()
	return strings.Join(k[:], "/")
}

// Number is the grammatical number the set should be inflected as.
func (p *PronounSet) Number() string {
	if p.Singular {
		return "singular"
	}
	return "plural"
}
