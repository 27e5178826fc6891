package main

import (
	"strings"

	"github.com/frizinak/pronouns/common"
	"github.com/frizinak/pronouns/dict"
	"github.com/frizinak/pronouns/pronouns"
	"github.com/spf13/cobra"
)

var (
	lookupMax     uint
	lookupDB      string
	lookupNoColor bool
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <pronouns...>",
	Short: "Look up pronoun sets",
	Long: `Look up pronoun sets by any prefix of their forms, e.g.
"she", "they/them" or "they/.../themselves". Arguments are joined with a
slash. Without --db the builtin database is used.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLookup,
}

func init() {
	f := lookupCmd.Flags()
	f.UintVarP(&lookupMax, "max", "n", 3, "max amount of suggestions")
	f.StringVar(&lookupDB, "db", "", "GOB database or tab separated file")
	f.BoolVar(&lookupNoColor, "no-color", false, "don't print colors")
}

func lookup(d *dict.Dict, query string, max int) common.Lookup {
	query = strings.Trim(query, "/")
	res := common.Lookup{Query: query, Sets: d.Lookup(query)}
	if len(res.Sets) != 0 {
		return res
	}

	if set, ok := pronouns.FromParts(strings.Split(query, "/")); ok {
		res.Sets = pronouns.Sets{set}
		return res
	}

	res.Suggestions = d.Suggest(query, max)
	return res
}

func runLookup(cmd *cobra.Command, args []string) error {
	d, err := common.LoadDict(lookupDB)
	if err != nil {
		return err
	}

	tpl, err := common.GetTpl(!lookupNoColor)
	if err != nil {
		return err
	}

	query := strings.TrimSpace(strings.Join(args, "/"))
	return tpl.Execute(cmd.OutOrStdout(), lookup(d, query, int(lookupMax)))
}
