package contact

// ValidationError carries every failed rule so the form can render them all
// at once.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string { return "validation failed" }
