package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/frizinak/pronouns/config"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run generate every time the input changes",
	Long: `Runs generate once and then again, in full, every time the input
file is written. Generation errors are logged, not fatal.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	addGenerateFlags(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	l, err := newLogger()
	if err != nil {
		return err
	}
	defer l.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return watch(ctx, conf, cmd, l)
}

func watch(ctx context.Context, conf config.Config, cmd *cobra.Command, l *zap.Logger) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// editors replace files, watch the directory instead
	input, err := filepath.Abs(conf.Input)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(input)); err != nil {
		return err
	}

	run := func() {
		if _, err := generateOnce(conf, cmd.OutOrStdout(), l); err != nil {
			l.Error("generate failed", zap.Error(err))
		}
	}

	run()
	l.Info("watching", zap.String("input", input))
	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			l.Warn("watcher error", zap.Error(err))
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != input {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			l.Debug("input changed", zap.String("op", ev.Op.String()))
			run()
		}
	}
}
