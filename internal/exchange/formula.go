package exchange

// Op selects how two amounts are combined.
type Op int

const (
	// OpDivide computes a / b, e.g. converting an amount through a rate.
	OpDivide Op = iota

	// OpMultiply computes a * b, the inverse conversion direction.
	OpMultiply

	// OpRatio computes a / b where both operands are amounts and the
	// result is a rate. Structurally identical to OpDivide; the distinct
	// name keeps formula definitions readable.
	OpRatio
)

// String returns the string representation of the operator
func (op Op) String() string {
	switch op {
	case OpDivide:
		return "divide"
	case OpMultiply:
		return "multiply"
	case OpRatio:
		return "ratio"
	default:
		return "unknown"
	}
}

// ParseOp parses an operator name as used by the convert command
func ParseOp(s string) (Op, bool) {
	switch s {
	case "divide", "div":
		return OpDivide, true
	case "multiply", "mul":
		return OpMultiply, true
	case "ratio":
		return OpRatio, true
	default:
		return OpDivide, false
	}
}

// Compute combines two amounts under the operator. The result is 0 unless
// both operands are valid numbers; a valid division by zero yields the
// IEEE infinity, which the formatting layer renders as zero.
func Compute(a, b Amount, op Op) float64 {
	if !a.IsValid() || !b.IsValid() {
		return 0
	}

	switch op {
	case OpMultiply:
		return a.Value() * b.Value()
	default:
		return a.Value() / b.Value()
	}
}

// Formula describes one derived-result panel: its operator and the fixed
// decimal count used when rendering the result.
type Formula struct {
	Op       Op
	Decimals int
}

// Evaluate computes and formats the formula result for two raw inputs.
func (f Formula) Evaluate(rawA, rawB string) string {
	result := Compute(ParseAmount(rawA), ParseAmount(rawB), f.Op)
	return FormatFixed(result, f.Decimals)
}
