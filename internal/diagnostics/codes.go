package diagnostics

// Diagnostic codes
const (
	// Reader errors (R prefix)
	ErrUnexpectedCharacter = "R0001"
	ErrUnterminatedString  = "R0002"
	ErrInvalidNumber       = "R0003"
	ErrUnexpectedToken     = "R0004"
	ErrUnknownOperator     = "R0005"
	ErrInvalidKind         = "R0006"
	ErrOperandMismatch     = "R0007"
	ErrArity               = "R0008"

	// Evaluation (E prefix)
	ErrNotCharacter = "E0001"
	ErrNotConstant  = "E0002"

	// Folding warnings (W prefix)
	WarnFoldingMessage         = "W0100"
	WarnNegationOverflow       = "W0101"
	WarnAdditionOverflow       = "W0102"
	WarnMultiplicationOverflow = "W0103"
)
