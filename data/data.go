package data

import _ "embed"

// Tab is the default pronoun database in the generator's input format.
//
//go:embed data/pronouns.tab
var Tab []byte

//go:embed data/api.md
var APIDocs []byte

//go:embed data/style.css
var CSS string
