package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jusunglee/hindify/internal/logger"
	"github.com/jusunglee/hindify/internal/metrics"
	"github.com/jusunglee/hindify/internal/provider"
	"github.com/jusunglee/hindify/internal/transform"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

type transformer interface {
	Transform(ctx context.Context, text string) transform.Result
}

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func mainE() error {
	_ = godotenv.Load()

	fs := ff.NewFlagSet("hindify")
	var (
		text    = fs.StringLong("text", "", "transform this text once and exit")
		timeout = fs.DurationLong("timeout", 30*time.Second, "per-transform timeout")
	)
	providerCfg := provider.RegisterFlags(fs)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	log := logger.New()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	translator, err := provider.NewTranslator(ctx, *providerCfg, log)
	if err != nil {
		return fmt.Errorf("configuring translator: %w", err)
	}
	defer translator.Close()

	tf := transform.NewDefault(translator, log)

	if *text != "" {
		transformOnce(ctx, os.Stdout, tf, *text, *timeout)
		return nil
	}
	return repl(ctx, os.Stdin, os.Stdout, tf, *timeout)
}

// repl reads one line at a time until EOF, a quit word, or ctx is cancelled.
func repl(ctx context.Context, in io.Reader, out io.Writer, tf transformer, timeout time.Duration) error {
	fmt.Fprintln(out, "English to Hindi Text Transformer")
	fmt.Fprintln(out, strings.Repeat("=", 40))

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for {
		fmt.Fprintln(out, "\nEnter English text or 'quit' to exit:")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
				return fmt.Errorf("reading input: %w", err)
			}
			fmt.Fprintln(out, "\n\nExiting...")
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "quit", "exit", "q":
			fmt.Fprintln(out, "Goodbye!")
			return nil
		case "":
			fmt.Fprintln(out, "Please enter some text.")
			continue
		}

		transformOnce(ctx, out, tf, line, timeout)
		if ctx.Err() != nil {
			fmt.Fprintln(out, "\n\nExiting...")
			return nil
		}
	}
}

func transformOnce(ctx context.Context, out io.Writer, tf transformer, text string, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	metrics.TransformsTotal.WithLabelValues("cli").Inc()
	res := tf.Transform(ctx, text)

	fmt.Fprintf(out, "Input: %s\n", text)
	fmt.Fprintln(out, strings.Repeat("-", 50))
	fmt.Fprintf(out, "English in Devanagari: **%s**\n", res.Transliteration)
	fmt.Fprintf(out, "Hindi in Devanagari: **%s**\n", res.Translation)
	fmt.Fprintf(out, "Hindi in Roman: **%s**\n", res.Romanization)
}
