// Package corpus reads and writes batches of independent filter bytecode
// programs for the tracefilter CLI's corpus subcommand and its test
// fixtures. This container format is not part of the filter bytecode's own
// wire format: a single filter program has no framing of its own, so a
// corpus file only exists to let one CLI invocation drive many programs
// through Validate.
package corpus

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jcalabro/leb128"
)

// magic identifies a corpus container. It has no meaning beyond letting
// the corpus tooling reject a file that clearly isn't one of ours.
var magic = [4]byte{'T', 'F', 'C', 'P'}

// Write encodes programs as a corpus container: the magic header followed
// by each program as a leb128-unsigned length prefix and its raw bytes.
func Write(w io.Writer, programs [][]byte) error {
	if _, err := w.Write(magic[:]); err != nil {
		return fmt.Errorf("writing corpus magic: %w", err)
	}
	for i, prog := range programs {
		if _, err := w.Write(leb128.EncodeU64(uint64(len(prog)))); err != nil {
			return fmt.Errorf("writing length prefix for program %d: %w", i, err)
		}
		if _, err := w.Write(prog); err != nil {
			return fmt.Errorf("writing program %d: %w", i, err)
		}
	}
	return nil
}

// Read decodes a corpus container into its constituent bytecode buffers.
// Each buffer is returned exactly as encoded; Read does not validate any of
// them, that is the caller's job via filter.Validate.
func Read(r io.Reader) ([][]byte, error) {
	var hdr [4]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("reading corpus magic: %w", err)
	}
	if hdr != magic {
		return nil, fmt.Errorf("not a corpus file: bad magic %q", hdr[:])
	}

	var programs [][]byte
	for i := 0; ; i++ {
		// leb128.DecodeU64 treats a reader that is already at EOF as
		// encoding the value 0 rather than returning io.EOF, so it can't
		// be used on its own to detect the end of the stream. Peek a
		// single byte ourselves first: a real length prefix is always at
		// least one byte, so a clean EOF here means we're done.
		var first [1]byte
		if _, err := io.ReadFull(r, first[:]); err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("reading length prefix for program %d: %w", i, err)
		}
		n, err := leb128.DecodeU64(io.MultiReader(bytes.NewReader(first[:]), r))
		if err != nil {
			return nil, fmt.Errorf("reading length prefix for program %d: %w", i, err)
		}
		buf := make([]byte, n)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("reading program %d (%d bytes): %w", i, n, err)
		}
		programs = append(programs, buf)
	}
	return programs, nil
}

// ReadBytes is a convenience wrapper over Read for callers that already
// have the whole file in memory, such as the CLI.
func ReadBytes(b []byte) ([][]byte, error) {
	return Read(bytes.NewReader(b))
}
