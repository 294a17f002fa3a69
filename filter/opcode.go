package filter

// Opcode is the one-byte tag at the start of every instruction's encoding.
// The set is closed; any byte value not named below is E_UNKNOWN_OPCODE.
type Opcode uint8

const (
	// OpUnknown is opcode value 0. It is never emitted by a legitimate
	// compiler and always fails validation, the same way byte 0 does in
	// the reference bytecode this validator gates.
	OpUnknown Opcode = iota

	OpReturn

	// Logical short-circuit branches. Encoding: opcode + uint16 skip_offset.
	OpAnd
	OpOr

	// Generic comparisons. Operand types are resolved at validation time
	// from the current register state, not the encoding. Encoding: opcode
	// only (operands are always R0, R1).
	OpEq
	OpNe
	OpGt
	OpLt
	OpGe
	OpLe

	// Type-specialized comparisons. Same encoding as the generic form.
	OpEqString
	OpNeString
	OpGtString
	OpLtString
	OpGeString
	OpLeString
	OpEqS64
	OpNeS64
	OpGtS64
	OpLtS64
	OpGeS64
	OpLeS64
	OpEqDouble
	OpNeDouble
	OpGtDouble
	OpLtDouble
	OpGeDouble
	OpLeDouble

	// Reserved arithmetic. Always E_UNSUPPORTED_OPCODE. Kept in the closed
	// set (rather than folded into "unknown") so a compiler emitting them
	// gets a distinct, diagnosable rejection reason.
	OpMul
	OpDiv
	OpMod
	OpPlus
	OpMinus
	OpRShift
	OpLShift
	OpBinAnd
	OpBinOr
	OpBinXor

	// Unary operators. Encoding: opcode + register index. The generic and
	// _S64 forms write their S64 result to R0; the _DOUBLE forms write
	// DOUBLE to R0. See transfer.go for why the destination is always R0
	// regardless of the encoded register.
	OpUnaryPlus
	OpUnaryMinus
	OpUnaryNot
	OpUnaryPlusS64
	OpUnaryMinusS64
	OpUnaryNotS64
	OpUnaryPlusDouble
	OpUnaryMinusDouble
	OpUnaryNotDouble

	// Loads. Generic LOAD_FIELD_REF is reserved (E_UNSUPPORTED_OPCODE); the
	// type-specialized forms carry a 16-bit field offset.
	OpLoadFieldRef
	OpLoadFieldRefString
	OpLoadFieldRefSequence
	OpLoadFieldRefS64
	OpLoadFieldRefDouble
	OpLoadString
	OpLoadS64
	OpLoadDouble

	// Casts. Encoding: opcode + register index. Unlike unary ops, casts
	// read and write the same encoded register.
	OpCastToS64
	OpCastDoubleToS64
	OpCastNop
)

var opcodeNames = map[Opcode]string{
	OpUnknown:              "UNKNOWN",
	OpReturn:               "RETURN",
	OpAnd:                  "AND",
	OpOr:                   "OR",
	OpEq:                   "EQ",
	OpNe:                   "NE",
	OpGt:                   "GT",
	OpLt:                   "LT",
	OpGe:                   "GE",
	OpLe:                   "LE",
	OpEqString:             "EQ_STRING",
	OpNeString:             "NE_STRING",
	OpGtString:             "GT_STRING",
	OpLtString:             "LT_STRING",
	OpGeString:             "GE_STRING",
	OpLeString:             "LE_STRING",
	OpEqS64:                "EQ_S64",
	OpNeS64:                "NE_S64",
	OpGtS64:                "GT_S64",
	OpLtS64:                "LT_S64",
	OpGeS64:                "GE_S64",
	OpLeS64:                "LE_S64",
	OpEqDouble:             "EQ_DOUBLE",
	OpNeDouble:             "NE_DOUBLE",
	OpGtDouble:             "GT_DOUBLE",
	OpLtDouble:             "LT_DOUBLE",
	OpGeDouble:             "GE_DOUBLE",
	OpLeDouble:             "LE_DOUBLE",
	OpMul:                  "MUL",
	OpDiv:                  "DIV",
	OpMod:                  "MOD",
	OpPlus:                 "PLUS",
	OpMinus:                "MINUS",
	OpRShift:               "RSHIFT",
	OpLShift:               "LSHIFT",
	OpBinAnd:               "BIN_AND",
	OpBinOr:                "BIN_OR",
	OpBinXor:               "BIN_XOR",
	OpUnaryPlus:            "UNARY_PLUS",
	OpUnaryMinus:           "UNARY_MINUS",
	OpUnaryNot:             "UNARY_NOT",
	OpUnaryPlusS64:         "UNARY_PLUS_S64",
	OpUnaryMinusS64:        "UNARY_MINUS_S64",
	OpUnaryNotS64:          "UNARY_NOT_S64",
	OpUnaryPlusDouble:      "UNARY_PLUS_DOUBLE",
	OpUnaryMinusDouble:     "UNARY_MINUS_DOUBLE",
	OpUnaryNotDouble:       "UNARY_NOT_DOUBLE",
	OpLoadFieldRef:         "LOAD_FIELD_REF",
	OpLoadFieldRefString:   "LOAD_FIELD_REF_STRING",
	OpLoadFieldRefSequence: "LOAD_FIELD_REF_SEQUENCE",
	OpLoadFieldRefS64:      "LOAD_FIELD_REF_S64",
	OpLoadFieldRefDouble:   "LOAD_FIELD_REF_DOUBLE",
	OpLoadString:           "LOAD_STRING",
	OpLoadS64:              "LOAD_S64",
	OpLoadDouble:           "LOAD_DOUBLE",
	OpCastToS64:            "CAST_TO_S64",
	OpCastDoubleToS64:      "CAST_DOUBLE_TO_S64",
	OpCastNop:              "CAST_NOP",
}

func (op Opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return "OPCODE(?)"
}

// reservedOpcodes always fail with E_UNSUPPORTED_OPCODE, independent of
// bounds or register state.
var reservedOpcodes = map[Opcode]bool{
	OpMul:          true,
	OpDiv:          true,
	OpMod:          true,
	OpPlus:         true,
	OpMinus:        true,
	OpRShift:       true,
	OpLShift:       true,
	OpBinAnd:       true,
	OpBinOr:        true,
	OpBinXor:       true,
	OpLoadFieldRef: true,
}

// known reports whether op is a member of the closed opcode set at all
// (including reserved opcodes). OpUnknown is excluded: byte 0 is a named
// constant but always invalid.
func (op Opcode) known() bool {
	_, ok := opcodeNames[op]
	return ok && op != OpUnknown
}
