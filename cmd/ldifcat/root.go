package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KilimcininKorOglu/ldif"
)

var (
	cfgPath string
	verbose bool
	lenient bool
	encName string
)

var rootCmd = &cobra.Command{
	Use:   "ldifcat",
	Short: "Parse, check and rewrite LDIF files",
	Long: `ldifcat reads LDIF (RFC 2849) entry records and can re-emit them in
canonical form, validate them, or summarize their contents.

Input is strict by default: the first malformed line terminates the run
with its source position. With --lenient every anomaly is logged to
stderr and parsing continues.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cfgPath)
		if err != nil {
			return err
		}
		applyConfig(cmd, cfg)

		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(),
			&slog.HandlerOptions{Level: level})))
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgPath, "config", "", "config file (default ~/.ldifcat/config.toml)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	pf.BoolVar(&lenient, "lenient", false, "recover from malformed input instead of failing")
	pf.StringVar(&encName, "encoding", "utf-8", `charset for decoding values; "none" keeps raw bytes`)
}

// newParser builds a parser honoring the global flags plus any
// command-specific options.
func newParser(r io.Reader, extra ...ldif.ParserOption) (*ldif.Parser, error) {
	var opts []ldif.ParserOption
	if lenient {
		opts = append(opts, ldif.WithLenient())
	}
	if strings.EqualFold(encName, "none") {
		opts = append(opts, ldif.WithoutDecoding())
	} else {
		opts = append(opts, ldif.WithEncoding(encName))
	}
	opts = append(opts, extra...)
	return ldif.NewParser(r, opts...)
}

// forEachInput runs fn once per input file, or once for stdin when no
// files are given. "-" also names stdin.
func forEachInput(cmd *cobra.Command, args []string, fn func(name string, r io.Reader) error) error {
	if len(args) == 0 {
		return fn("stdin", cmd.InOrStdin())
	}
	for _, arg := range args {
		if arg == "-" {
			if err := fn("stdin", cmd.InOrStdin()); err != nil {
				return err
			}
			continue
		}
		f, err := os.Open(arg)
		if err != nil {
			return err
		}
		err = fn(arg, f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", arg, err)
		}
	}
	return nil
}
