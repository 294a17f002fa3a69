package filter

import (
	"encoding/binary"
	"math"
)

// asm is a tiny test-only assembler that builds raw bytecode buffers byte
// by byte, so tests can construct exact encodings without a real compiler.
type asm struct {
	buf []byte
}

func (a *asm) op(op Opcode) *asm {
	a.buf = append(a.buf, byte(op))
	return a
}

func (a *asm) reg(r RegIndex) *asm {
	a.buf = append(a.buf, byte(r))
	return a
}

func (a *asm) u16(v uint16) *asm {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	a.buf = append(a.buf, b[:]...)
	return a
}

func (a *asm) i64(v int64) *asm {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(v))
	a.buf = append(a.buf, b[:]...)
	return a
}

func (a *asm) f64(v float64) *asm {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
	a.buf = append(a.buf, b[:]...)
	return a
}

func (a *asm) cstr(s string) *asm {
	a.buf = append(a.buf, []byte(s)...)
	a.buf = append(a.buf, 0)
	return a
}

func (a *asm) raw(b ...byte) *asm {
	a.buf = append(a.buf, b...)
	return a
}

func (a *asm) bytes() []byte {
	return a.buf
}

func loadS64(reg RegIndex, v int64) *asm {
	return (&asm{}).op(OpLoadS64).reg(reg).i64(v)
}

func loadDouble(reg RegIndex, v float64) *asm {
	return (&asm{}).op(OpLoadDouble).reg(reg).f64(v)
}

func loadString(reg RegIndex, s string) *asm {
	return (&asm{}).op(OpLoadString).reg(reg).cstr(s)
}

func loadFieldRef(op Opcode, reg RegIndex, offset uint16) *asm {
	return (&asm{}).op(op).reg(reg).u16(offset)
}

func returnOp() *asm {
	return (&asm{}).op(OpReturn)
}

func andOp(skip uint16) *asm {
	return (&asm{}).op(OpAnd).u16(skip)
}

func orOp(skip uint16) *asm {
	return (&asm{}).op(OpOr).u16(skip)
}

func cat(parts ...*asm) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p.bytes()...)
	}
	return out
}
