package macro

import "fmt"

// MacroInputError reports an input shape the macro cannot interpret,
// such as a required grouping key that was never provided. Ragged but
// well-keyed inputs are not an error: rows truncate to the shortest
// governing sequence.
type MacroInputError struct {
	Macro   string
	Message string
}

func (e *MacroInputError) Error() string {
	return fmt.Sprintf("macro %q: %s", e.Macro, e.Message)
}

// NewMacroInputError creates a MacroInputError.
func NewMacroInputError(macro, message string) error {
	return &MacroInputError{Macro: macro, Message: message}
}
