package cmd

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/scover/analyzer"
	"github.com/gnoswap-labs/scover/formatter"
	"github.com/gnoswap-labs/scover/internal"
)

var watchCmd = &cobra.Command{
	Use:   "watch [paths...]",
	Short: "Re-analyze expression files whenever they change",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.New("please provide file or directory paths")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		engine, done, err := newEngine(logger, config)
		if err != nil {
			return err
		}
		defer done()

		f := formatter.New(formatter.Options{Color: useColor()})
		return runWatch(ctx, logger, cmd.OutOrStdout(), f, engine, args)
	},
}

// runWatch reports every path once, then again for each changed file until
// ctx is done.
func runWatch(
	ctx context.Context,
	logger *zap.Logger,
	w io.Writer,
	f *formatter.Formatter,
	engine analyzer.Engine,
	paths []string,
) error {
	var mu sync.Mutex
	report := func(findings []analyzer.Finding) {
		if len(findings) == 0 {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		if err := f.WriteFindings(w, findings, false); err != nil {
			logger.Error("Error writing findings", zap.Error(err))
		}
	}

	watcher, err := internal.NewWatcher(logger, analyzer.HasExpressionExtension, func(path string) {
		findings, err := analyzer.ProcessFile(ctx, engine, path)
		if err != nil {
			logger.Error("Error processing file", zap.String("file", path), zap.Error(err))
			return
		}
		report(findings)
	})
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, path := range paths {
		if err := watcher.Add(path); err != nil {
			return err
		}
		findings, err := analyzer.ProcessPath(ctx, logger, engine, path, analyzer.ProcessOptions{}, analyzer.ProcessFile)
		if err != nil {
			return err
		}
		report(findings)
	}

	logger.Info("Watching for changes", zap.Strings("paths", paths))
	watcher.Start(ctx)
	<-ctx.Done()
	return nil
}
