package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats [file...]",
	Short: "Summarize LDIF input",
	Long: `stats parses the given files (or stdin) and prints record, line and
byte counts plus a histogram of attribute names.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			records int
			lines   int
			bytes   int64
			attrs   = make(map[string]int)
		)

		err := forEachInput(cmd, args, func(name string, r io.Reader) error {
			p, err := newParser(r)
			if err != nil {
				return err
			}
			for {
				rec, err := p.Next()
				if errors.Is(err, io.EOF) {
					lines += p.LinesRead()
					bytes += p.BytesRead()
					return nil
				}
				if err != nil {
					return err
				}
				records++
				for _, attr := range rec.Entry.Names() {
					attrs[attr] += len(rec.Entry.Get(attr))
				}
			}
		})
		if err != nil {
			return err
		}

		cmd.Printf("records: %d\nlines:   %d\nbytes:   %d\n", records, lines, bytes)
		if len(attrs) == 0 {
			return nil
		}

		names := make([]string, 0, len(attrs))
		for name := range attrs {
			names = append(names, name)
		}
		sort.Slice(names, func(i, j int) bool {
			if attrs[names[i]] != attrs[names[j]] {
				return attrs[names[i]] > attrs[names[j]]
			}
			return names[i] < names[j]
		})

		cmd.Println()
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		for _, name := range names {
			fmt.Fprintf(tw, "%s\t%d\n", name, attrs[name])
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
