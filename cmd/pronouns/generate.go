package main

import (
	"io"

	"github.com/frizinak/pronouns/config"
	"github.com/frizinak/pronouns/generate"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write one Dhall record per pronoun set and an index of all of them",
	Long: `Reads the tab separated input (pronouns.tab) and writes
pronouns/<nom>-<acc>-<det>-<pos>-<ref>.dhall for every row, apostrophes
replaced by underscores, followed by package.dhall importing all records
in input order. The list of written files is printed to stdout.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func addGenerateFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("input", "", "tab separated input file")
	f.String("dir", "", "output directory for records")
	f.String("ext", "", "extension of generated records")
	f.String("index", "", "index file")
	f.Bool("escape", false, "escape quotes in Dhall text literals")
	f.Bool("mkdir", false, "create the output directory if missing")
}

func init() {
	addGenerateFlags(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	l, err := newLogger()
	if err != nil {
		return err
	}
	defer l.Sync()

	_, err = generateOnce(conf, cmd.OutOrStdout(), l)
	return err
}

func generateOnce(conf config.Config, out io.Writer, l *zap.Logger) ([]string, error) {
	return generate.New(osfs.Default, conf, out, l).Run()
}
