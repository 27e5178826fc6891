package main

import (
	"github.com/frizinak/pronouns/common"
	"github.com/frizinak/pronouns/pronouns"
	"github.com/spf13/cobra"
)

var listDB string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every set in the database as tab separated rows",
	Long: `Prints the database sorted and deduplicated in the generator's input
format. Without --db the builtin database is used.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := common.LoadDict(listDB)
		if err != nil {
			return err
		}
		return pronouns.EncodeTab(cmd.OutOrStdout(), d.Sets())
	},
}

func init() {
	listCmd.Flags().StringVar(&listDB, "db", "", "GOB database or tab separated file")
}
