package main

import (
	"fmt"
	"os"

	"github.com/mccutchen/tracefilter/filter"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a single filter bytecode program",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			buf := readAll(args[0])
			if err := filter.Validate(buf); err != nil {
				exitWithError("%v", err)
			}
			fmt.Fprintln(os.Stdout, "ok")
		},
	}
}
