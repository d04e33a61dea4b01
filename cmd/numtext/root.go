package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/az-ai-labs/numtext-en/numtext"
)

// errReported is returned after conversion errors were already printed.
var errReported = errors.New("conversion failed")

type options struct {
	debug   bool
	trim    bool
	json    bool
	noColor bool
}

// jsonResult is one line of --json output. Exactly one of Text and Value is set.
type jsonResult struct {
	Input string  `json:"input"`
	Text  *string `json:"text,omitempty"`
	Value *int64  `json:"value,omitempty"`
}

func newRootCmd(piped func() bool) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "numtext [number | phrase]",
		Short: "Convert between numbers and English words",
		Long: "Convert a decimal number below 10^18 to English words, or English number words back to digits.\n" +
			"With no arguments, each non-empty line of piped stdin is converted.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := collectInputs(cmd, args, piped)
			if err != nil {
				return err
			}
			return run(cmd, inputs, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Log dispatch and token details to stderr")
	cmd.Flags().BoolVar(&opts.trim, "trim", false, "Trim surrounding whitespace from rendered text")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Write one JSON object per conversion")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	return cmd
}

// collectInputs joins the arguments into one phrase, or reads stdin lines
// when there are no arguments.
func collectInputs(cmd *cobra.Command, args []string, piped func() bool) ([]string, error) {
	if len(args) > 0 {
		return []string{strings.Join(args, " ")}, nil
	}
	if !piped() {
		return nil, errors.New("no input: pass a number or phrase, or pipe lines on stdin")
	}

	var inputs []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			inputs = append(inputs, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return inputs, nil
}

func run(cmd *cobra.Command, inputs []string, opts options) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	logger := newLogger(errOut, opts.debug)
	useColor := shouldUseColor(errOut, opts.noColor)
	enc := json.NewEncoder(out)

	failed := 0
	for _, in := range inputs {
		r, err := numtext.Convert(in)
		if err != nil {
			failed++
			logger.Debug("convert failed", "input", in, "err", err)
			formatError(errOut, err, useColor)
			continue
		}

		if logger.Enabled(cmd.Context(), slog.LevelDebug) {
			attrs := []any{"input", in, "form", r.Form}
			if r.Form == numtext.FormNumber {
				if tokens, err := numtext.Tokenize(in); err == nil {
					attrs = append(attrs, "tokens", tokens)
				}
			}
			logger.Debug("convert", attrs...)
		}

		if opts.trim {
			r.Text = strings.TrimSpace(r.Text)
		}

		if opts.json {
			res := jsonResult{Input: in}
			if r.Form == numtext.FormNumber {
				res.Value = &r.Value
			} else {
				res.Text = &r.Text
			}
			if err := enc.Encode(res); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
			continue
		}
		if _, err := fmt.Fprintln(out, r.String()); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	if failed > 0 {
		logger.Debug("done", "inputs", len(inputs), "failed", failed)
		return errReported
	}
	return nil
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}
