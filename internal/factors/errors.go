package factors

// constError is an immutable error type for sentinel errors.
// It implements the error interface and provides compile-time safety.
type constError string

func (e constError) Error() string { return string(e) }

// Error types for factor table lookups.
// These are sentinel errors that can be compared with errors.Is().
var (
	// ErrUnknownCategory indicates a category outside the five tracked domains.
	ErrUnknownCategory = constError("unknown emission category")

	// ErrUnknownSubtype indicates a subtype label missing from its category table.
	ErrUnknownSubtype = constError("unknown emission subtype")
)
