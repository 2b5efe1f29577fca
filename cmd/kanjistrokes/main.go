// Command kanjistrokes converts KanjiVG stroke outlines into evenly spaced
// point sequences, writing one JSON file per character.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"
	"unicode/utf8"

	"github.com/strokekit/strokes"
	"github.com/strokekit/strokes/svgdoc"
	"golang.org/x/sync/errgroup"
)

type config struct {
	list     string
	input    string
	output   string
	bboxSize int
	distance float64
	round    bool
	workers  int
	verbose  bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.list, "list", "./input/kanji-list.json", "JSON array of characters to convert")
	flag.StringVar(&cfg.input, "input", "./input/kanjivg/kanji/", "directory of KanjiVG SVG files")
	flag.StringVar(&cfg.output, "output", "./output/", "output directory, emptied before use")
	flag.IntVar(&cfg.bboxSize, "bbox-size", 1000, "number of coordinates per axis of the output")
	flag.Float64Var(&cfg.distance, "pt-distance", 10, "distance between consecutive points")
	flag.BoolVar(&cfg.round, "round-floats", true, "round coordinates to integers")
	flag.IntVar(&cfg.workers, "workers", runtime.NumCPU(), "number of documents converted concurrently")
	flag.BoolVar(&cfg.verbose, "v", false, "verbose operation")
	flag.Parse()

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	strokes.SetLogger(logger)

	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Error("conversion failed", "err", err)
		os.Exit(1)
	}
}

func (cfg config) options() (strokes.Options, error) {
	opts := strokes.Options{
		TargetViewbox:            strokes.BoundingBox(cfg.bboxSize),
		MaxDistanceBetweenPoints: cfg.distance,
		RoundFloats:              cfg.round,
	}
	if err := opts.Validate(); err != nil {
		return opts, fmt.Errorf("invalid flags: %w", err)
	}
	return opts, nil
}

func run(ctx context.Context, cfg config, logger *slog.Logger) error {
	opts, err := cfg.options()
	if err != nil {
		return err
	}

	logger.Info("recreating output directory", "dir", cfg.output)
	if err := os.RemoveAll(cfg.output); err != nil {
		return fmt.Errorf("removing output directory: %w", err)
	}
	if err := os.MkdirAll(cfg.output, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	logger.Info("reading character list", "file", cfg.list)
	chars, err := readList(cfg.list)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.workers, 1))
	var failed atomic.Int64
	for i, char := range chars {
		if i%100 == 0 {
			logger.Info("progress", "done", fmt.Sprintf("%.2f%%", 100*float64(i)/float64(len(chars))))
		}
		if ctx.Err() != nil {
			break
		}
		char := char
		g.Go(func() error {
			err := convertChar(cfg, opts, char)
			var skip *skipError
			if errors.As(err, &skip) {
				logger.Warn("skipping character", "char", char, "err", skip.err)
				failed.Add(1)
				return nil
			}
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("done", "characters", len(chars), "skipped", failed.Load())
	return nil
}

// skipError marks per-character failures that don't abort the run.
type skipError struct {
	err error
}

func (err *skipError) Error() string { return err.err.Error() }

func convertChar(cfg config, opts strokes.Options, char string) error {
	r, _ := utf8.DecodeRuneInString(char)
	if r == utf8.RuneError {
		return &skipError{fmt.Errorf("invalid character %q", char)}
	}
	name := charCode(r)
	doc, err := svgdoc.ReadFile(filepath.Join(cfg.input, name+".svg"))
	if err != nil {
		return &skipError{err}
	}
	out, err := strokes.Convert(doc, opts)
	if err != nil {
		return &skipError{fmt.Errorf("%s: %w", name, err)}
	}
	b, err := json.Marshal(out)
	if err != nil {
		return &skipError{fmt.Errorf("%s: %w", name, err)}
	}
	return os.WriteFile(filepath.Join(cfg.output, name+".json"), b, 0o644)
}

// charCode returns the lowercase hexadecimal code point of r, left-padded
// with zeros to five digits, as used for KanjiVG file names.
func charCode(r rune) string {
	return fmt.Sprintf("%05x", r)
}

func readList(name string) ([]string, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	var chars []string
	if err := json.Unmarshal(b, &chars); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return chars, nil
}
