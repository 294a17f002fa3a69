package filter

import "fmt"

// MaxBytecodeLen bounds every buffer accepted by Validate. skip_offset is a
// 16-bit unsigned field, so no byte past 0xFFFF can ever be a legal branch
// target; a longer buffer would have an unreachable tail by construction.
const MaxBytecodeLen = 1 << 16

// Validate walks buf front-to-back exactly once and proves it is safe to
// hand to the trace fast path: every instruction's encoding fits inside
// buf, every instruction's operand types are admissible for its opcode,
// and the control-flow graph formed by AND/OR branches is a forward-only
// DAG. The first violation of any of these aborts validation immediately;
// there is no partial acceptance.
//
// Validate allocates only scratch state (the register file and the
// merge-point table) and releases all of it before returning, on every
// exit path.
func Validate(buf []byte) error {
	if len(buf) > MaxBytecodeLen {
		return newValidationError(0, OpUnknown, fmt.Errorf("buffer length %d exceeds %d: %w", len(buf), MaxBytecodeLen, ErrBounds))
	}

	rf := NewRegFile()
	mt := newMergeTable()

	pc := 0
	end := len(buf)
	for pc < end {
		instr, err := decodeAt(buf, pc)
		if err != nil {
			// decodeAt returns a zero Instr on error; report the opcode byte.
			return newValidationError(pc, Opcode(buf[pc]), err)
		}

		for _, snapshot := range mt.drain(uint16(pc)) {
			if err := typeCheck(&snapshot, instr); err != nil {
				return newValidationError(pc, instr.Op, err)
			}
		}
		if err := typeCheck(&rf, instr); err != nil {
			return newValidationError(pc, instr.Op, err)
		}

		nextPC, terminate, br, err := transfer(&rf, instr)
		if err != nil {
			return newValidationError(pc, instr.Op, err)
		}
		if br != nil {
			mt.add(br.Target, br.Snapshot)
		}
		if terminate {
			if mt.size() > 0 {
				return newValidationError(pc, instr.Op, ErrResidualMerge)
			}
			return nil
		}
		pc = nextPC
	}

	// Control fell off the end of the buffer without ever reaching RETURN.
	return newValidationError(pc, OpUnknown, fmt.Errorf("no RETURN before end of buffer: %w", ErrBounds))
}

// DecodedInstr is one instruction as reported by Disassemble: an offset, an
// opcode, and the operand fields that opcode's encoding carries. It is a
// read-only diagnostic view; producing it never runs the type checker.
type DecodedInstr struct {
	Offset     int
	Op         Opcode
	Len        int
	Reg        RegIndex
	HasReg     bool
	SkipOffset uint16
	HasSkip    bool
}

// Disassemble decodes every instruction in buf without type-checking or
// running the transfer function. It stops at the first decoding error (bad
// opcode or truncated encoding) or after decoding a RETURN, and reports
// everything decoded so far either way. It never rejects a program for
// reasons Validate would reject it for (type mismatches, loops, residual
// merges) since it never evaluates any of those.
func Disassemble(buf []byte) ([]DecodedInstr, error) {
	if len(buf) > MaxBytecodeLen {
		return nil, fmt.Errorf("buffer length %d exceeds %d: %w", len(buf), MaxBytecodeLen, ErrBounds)
	}

	var out []DecodedInstr
	pc := 0
	end := len(buf)
	for pc < end {
		instr, err := decodeAt(buf, pc)
		if err != nil {
			return out, newValidationError(pc, Opcode(buf[pc]), err)
		}
		d := DecodedInstr{Offset: instr.Offset, Op: instr.Op, Len: instr.Len}
		if instr.HasReg {
			d.Reg, d.HasReg = instr.Reg, true
		}
		if instr.Op == OpAnd || instr.Op == OpOr {
			d.SkipOffset, d.HasSkip = instr.SkipOffset, true
		}
		out = append(out, d)
		if instr.Op == OpReturn {
			break
		}
		pc += instr.Len
	}
	return out, nil
}
