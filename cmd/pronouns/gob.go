package main

import (
	"os"
	"path/filepath"

	"github.com/frizinak/pronouns/dict"
	"github.com/frizinak/pronouns/pronouns"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var gobCmd = &cobra.Command{
	Use:   "gob",
	Short: "Store the tab separated input as a GOB database",
	Long: `Decodes the input and stores it, sorted and deduplicated, as the
GOB database used by pronounsweb.`,
	Args: cobra.NoArgs,
	RunE: runGOB,
}

func init() {
	gobCmd.Flags().String("input", "", "tab separated input file")
	gobCmd.Flags().String("db", "", "GOB database to write")
}

func runGOB(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	l, err := newLogger()
	if err != nil {
		return err
	}
	defer l.Sync()

	sets, err := pronouns.LoadTab(conf.Input)
	if err != nil {
		return err
	}

	all := dict.New(sets).Sets()
	if err := os.MkdirAll(filepath.Dir(conf.DB), 0o755); err != nil {
		return err
	}
	if err := pronouns.StoreGOB(conf.DB, all); err != nil {
		return err
	}

	l.Info(
		"stored database",
		zap.String("db", conf.DB),
		zap.Int("rows", len(sets)),
		zap.Int("sets", len(all)),
	)
	return nil
}
