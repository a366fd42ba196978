package analyzer

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const commentPrefix = "#"

// Engine analyzes a single expression.
type Engine interface {
	Analyze(expression string) (*Result, error)
}

// Expression is one line of an expression file.
type Expression struct {
	File string
	Line int // 1-based
	Text string
}

// Finding is the analysis of one Expression. Err is set instead of Result
// when the expression could not be analyzed.
type Finding struct {
	File       string  `json:"file"`
	Line       int     `json:"line"`
	Expression string  `json:"expression"`
	Result     *Result `json:"result,omitempty"`
	Error      string  `json:"error,omitempty"`
	Err        error   `json:"-"`
}

// Failed reports whether the expression could not be analyzed.
func (f Finding) Failed() bool { return f.Err != nil }

// Processor analyzes every expression found at one file path.
type Processor func(ctx context.Context, engine Engine, path string) ([]Finding, error)

// ProcessOptions tunes ProcessPath and ProcessFiles.
type ProcessOptions struct {
	Workers  int  // <= 0 means one per CPU
	Progress bool // show a progress bar on stderr for directories
}

// ReadExpressions parses r as an expression file: one expression per line,
// blank lines and lines starting with '#' skipped.
func ReadExpressions(name string, r io.Reader) ([]Expression, error) {
	var exprs []Expression
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, commentPrefix) {
			continue
		}
		exprs = append(exprs, Expression{File: name, Line: line, Text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", name, err)
	}
	return exprs, nil
}

// ProcessExpressions analyzes exprs in order. Analysis failures are
// recorded per Finding; only cancellation stops the loop.
func ProcessExpressions(ctx context.Context, engine Engine, exprs []Expression) ([]Finding, error) {
	findings := make([]Finding, 0, len(exprs))
	for _, e := range exprs {
		if err := ctx.Err(); err != nil {
			return findings, err
		}
		f := Finding{File: e.File, Line: e.Line, Expression: e.Text}
		res, err := engine.Analyze(e.Text)
		if err != nil {
			f.Err = err
			f.Error = err.Error()
		} else {
			f.Result = res
		}
		findings = append(findings, f)
	}
	return findings, nil
}

// ProcessReader reads and analyzes an expression stream, e.g. stdin.
func ProcessReader(ctx context.Context, engine Engine, name string, r io.Reader) ([]Finding, error) {
	exprs, err := ReadExpressions(name, r)
	if err != nil {
		return nil, err
	}
	return ProcessExpressions(ctx, engine, exprs)
}

// ProcessFile reads and analyzes a single expression file.
func ProcessFile(ctx context.Context, engine Engine, path string) ([]Finding, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ProcessReader(ctx, engine, path, f)
}

func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	engine Engine,
	paths []string,
	opts ProcessOptions,
	processor Processor,
) ([]Finding, error) {
	var all []Finding
	for _, path := range paths {
		findings, err := ProcessPath(ctx, logger, engine, path, opts, processor)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return nil, err
		}
		all = append(all, findings...)
	}
	return all, nil
}

// ProcessPath analyzes path, which is either an expression file or a
// directory walked for expression files. Files in a directory are processed
// concurrently; findings keep file order.
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	engine Engine,
	path string,
	opts ProcessOptions,
	processor Processor,
) ([]Finding, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		if !HasExpressionExtension(path) {
			return nil, nil
		}
		return processor(ctx, engine, path)
	}

	files, err := expressionFiles(path)
	if err != nil {
		return nil, err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var bar *progressbar.ProgressBar
	if opts.Progress {
		bar = progressbar.NewOptions(len(files),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription(path),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}))
	}

	perFile := make([][]Finding, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, fp := range files {
		i, fp := i, fp
		g.Go(func() error {
			findings, err := processor(gctx, engine, fp)
			if err != nil {
				if logger != nil {
					logger.Error("Error processing file", zap.String("file", fp), zap.Error(err))
				}
				return fmt.Errorf("%s: %w", fp, err)
			}
			perFile[i] = findings
			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		})
	}
	err = g.Wait()
	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(os.Stderr)
	}

	var findings []Finding
	for _, fs := range perFile {
		findings = append(findings, fs...)
	}
	return findings, err
}

func expressionFiles(root string) ([]string, error) {
	var files []string
	err := filepath.Walk(root, func(p string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fi.IsDir() && HasExpressionExtension(p) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking %s: %w", root, err)
	}
	return files, nil
}

var expressionExtensions = map[string]bool{
	".bexp": true,
	".txt":  true,
}

// HasExpressionExtension reports whether path names an expression file.
func HasExpressionExtension(path string) bool {
	return expressionExtensions[filepath.Ext(path)]
}
