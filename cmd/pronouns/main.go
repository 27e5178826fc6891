package main

import (
	"fmt"
	"os"

	"github.com/frizinak/pronouns/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configFile string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "pronouns",
	Short: "Generate and look up pronoun sets",
	Long: `pronouns turns a tab separated list of pronoun sets
(nominative, accusative, determiner, possessive, reflexive) into Dhall
records and lets you look them up.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file, defaults to "+config.DefaultFile+" if it exists")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(generateCmd, lookupCmd, listCmd, gobCmd, watchCmd, configCmd)
}

func exit(err error) {
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func newLogger() (*zap.Logger, error) {
	c := zap.NewDevelopmentConfig()
	c.DisableStacktrace = true
	c.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		c.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return c.Build()
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	conf, err := config.Load(configFile)
	if err != nil {
		return conf, err
	}

	f := cmd.Flags()
	str := func(name string, v *string) {
		if f.Lookup(name) != nil && f.Changed(name) {
			*v, _ = f.GetString(name)
		}
	}
	boolean := func(name string, v *bool) {
		if f.Lookup(name) != nil && f.Changed(name) {
			*v, _ = f.GetBool(name)
		}
	}
	str("input", &conf.Input)
	str("dir", &conf.Dir)
	str("ext", &conf.Ext)
	str("index", &conf.Index)
	str("db", &conf.DB)
	boolean("escape", &conf.Escape)
	boolean("mkdir", &conf.Mkdir)

	return conf, conf.Validate()
}

func main() {
	exit(rootCmd.Execute())
}
