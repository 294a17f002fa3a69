package main

import (
	"fmt"
	"os"

	"github.com/mccutchen/tracefilter/corpus"
	"github.com/mccutchen/tracefilter/filter"
	"github.com/spf13/cobra"
)

func newCorpusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "corpus <file>",
		Short: "Validate every program in a corpus container",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			buf := readAll(args[0])
			programs, err := corpus.ReadBytes(buf)
			if err != nil {
				exitWithError("%v", err)
			}

			failures := 0
			for i, prog := range programs {
				if err := filter.Validate(prog); err != nil {
					failures++
					fmt.Fprintf(os.Stdout, "%d: FAIL: %v\n", i, err)
					continue
				}
				fmt.Fprintf(os.Stdout, "%d: ok\n", i)
			}

			fmt.Fprintf(os.Stdout, "%d/%d programs valid\n", len(programs)-failures, len(programs))
			if failures > 0 {
				os.Exit(1)
			}
		},
	}
}
