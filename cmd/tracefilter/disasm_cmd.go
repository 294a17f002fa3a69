package main

import (
	"fmt"
	"os"

	"github.com/mccutchen/tracefilter/filter"
	"github.com/spf13/cobra"
)

func newDisasmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disasm <file>",
		Short: "Decode a filter bytecode program without type-checking it",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			buf := readAll(args[0])
			instrs, err := filter.Disassemble(buf)
			for _, instr := range instrs {
				line := fmt.Sprintf("%6d  %s", instr.Offset, instr.Op)
				if instr.HasReg {
					line += fmt.Sprintf(" reg=%d", instr.Reg)
				}
				if instr.Op == filter.OpAnd || instr.Op == filter.OpOr {
					line += fmt.Sprintf(" -> %d", instr.SkipOffset)
				}
				fmt.Fprintln(os.Stdout, line)
			}
			if err != nil {
				exitWithError("%v", err)
			}
		},
	}
}
