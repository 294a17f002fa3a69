package filter

// branch describes a merge point to be recorded after a logical
// short-circuit instruction has been type-checked. The driver inserts it
// into the merge-point table; transfer itself owns no long-lived state.
type branch struct {
	Target   uint16
	Snapshot RegFile
}

// transfer applies instr's effect to rf and returns the program counter of
// the next instruction. terminate is true only for RETURN, at which point
// nextPC is meaningless. br is non-nil only for AND/OR, and carries the
// snapshot the driver must add to the merge-point table.
//
// transfer assumes instr has already passed typeCheck; it does not
// re-validate anything.
func transfer(rf *RegFile, instr Instr) (nextPC int, terminate bool, br *branch, err error) {
	switch instr.Op {
	case OpReturn:
		return 0, true, nil, nil

	case OpEq, OpNe, OpGt, OpLt, OpGe, OpLe,
		OpEqString, OpNeString, OpGtString, OpLtString, OpGeString, OpLeString,
		OpEqS64, OpNeS64, OpGtS64, OpLtS64, OpGeS64, OpLeS64:
		if err := rf.Set(R0, S64, false); err != nil {
			return 0, false, nil, err
		}

	case OpEqDouble, OpNeDouble, OpGtDouble, OpLtDouble, OpGeDouble, OpLeDouble:
		if err := rf.Set(R0, Double, false); err != nil {
			return 0, false, nil, err
		}

	case OpUnaryPlus, OpUnaryMinus, OpUnaryNot, OpUnaryPlusS64, OpUnaryMinusS64, OpUnaryNotS64:
		// Result always lands in R0, regardless of the encoded operand
		// register: unary ops read one register but their result is only
		// ever consumed from R0.
		if err := rf.Set(R0, S64, false); err != nil {
			return 0, false, nil, err
		}

	case OpUnaryPlusDouble, OpUnaryMinusDouble, OpUnaryNotDouble:
		if err := rf.Set(R0, Double, false); err != nil {
			return 0, false, nil, err
		}

	case OpAnd, OpOr:
		br = &branch{Target: instr.SkipOffset, Snapshot: rf.Snapshot()}

	case OpLoadFieldRefString, OpLoadFieldRefSequence:
		if err := rf.Set(instr.Reg, String, false); err != nil {
			return 0, false, nil, err
		}

	case OpLoadFieldRefS64:
		if err := rf.Set(instr.Reg, S64, false); err != nil {
			return 0, false, nil, err
		}

	case OpLoadFieldRefDouble:
		if err := rf.Set(instr.Reg, Double, false); err != nil {
			return 0, false, nil, err
		}

	case OpLoadString:
		if err := rf.Set(instr.Reg, String, true); err != nil {
			return 0, false, nil, err
		}

	case OpLoadS64:
		if err := rf.Set(instr.Reg, S64, true); err != nil {
			return 0, false, nil, err
		}

	case OpLoadDouble:
		if err := rf.Set(instr.Reg, Double, true); err != nil {
			return 0, false, nil, err
		}

	case OpCastToS64:
		// Casts write back to their own operand register, unlike unary
		// ops, and leave literal-ness alone: only the type changes.
		operand, err := rf.Read(instr.Reg)
		if err != nil {
			return 0, false, nil, err
		}
		if err := rf.Set(instr.Reg, S64, operand.Literal); err != nil {
			return 0, false, nil, err
		}

	case OpCastDoubleToS64:
		operand, err := rf.Read(instr.Reg)
		if err != nil {
			return 0, false, nil, err
		}
		if err := rf.Set(instr.Reg, S64, operand.Literal); err != nil {
			return 0, false, nil, err
		}

	case OpCastNop:
		// no change

	default:
		return 0, false, nil, ErrUnsupportedOp
	}

	return instr.Offset + instr.Len, false, br, nil
}
