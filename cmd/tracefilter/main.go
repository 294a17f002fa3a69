// Command tracefilter validates and inspects filter bytecode programs
// before they run on the trace fast path. It never executes a program; it
// only decides whether that fast path may safely do so.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mccutchen/tracefilter/utils"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tracefilter",
		Short: "Validate and inspect filter bytecode programs",
	}
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newCorpusCmd())
	rootCmd.AddCommand(newDisasmCmd())
	utils.Must(rootCmd.Execute())
}

// openInput opens filename for reading, treating "-" as stdin.
func openInput(filename string) io.ReadCloser {
	if filename == "-" {
		return io.NopCloser(os.Stdin)
	}
	f, err := os.Open(filename)
	if err != nil {
		if pe, ok := err.(*os.PathError); ok {
			exitWithError("could not open file %s: %v", pe.Path, pe.Err)
		}
		exitWithError("could not open file %s: %v", filename, err)
	}
	return f
}

func readAll(filename string) []byte {
	f := openInput(filename)
	defer f.Close()
	buf, err := io.ReadAll(f)
	if err != nil {
		exitWithError("could not read %s: %v", filename, err)
	}
	return buf
}

func exitWithError(msg string, args ...any) {
	msg = fmt.Sprintf(msg, args...)
	fmt.Fprintf(os.Stderr, "ERROR: %s\n", msg)
	os.Exit(1)
}
