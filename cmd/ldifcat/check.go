package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [file...]",
	Short: "Validate LDIF input",
	Long: `check parses the given files (or stdin) in strict mode and reports
the first malformed line of each file with its line number and byte
offset. The exit status is non-zero when any file fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Validation is always strict, whatever the global flags say.
		wasLenient := lenient
		lenient = false
		defer func() { lenient = wasLenient }()

		failed := 0
		err := forEachInput(cmd, args, func(name string, r io.Reader) error {
			p, err := newParser(r)
			if err != nil {
				return err
			}
			for {
				_, err := p.Next()
				if errors.Is(err, io.EOF) {
					cmd.Printf("%s: OK (%d records)\n", name, p.RecordsRead())
					return nil
				}
				if err != nil {
					failed++
					cmd.Printf("%s: %v\n", name, err)
					return nil
				}
			}
		})
		if err != nil {
			return err
		}
		if failed > 0 {
			return fmt.Errorf("%d file(s) failed validation", failed)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
