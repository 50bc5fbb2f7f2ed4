package checkout

// State is the submission machine:
//
//	Editing -> Validating -> Submitting -> Succeeded
//	               |              |
//	               +--------------+--> back to Editing on failure
type State string

const (
	StateEditing    State = "EDITING"
	StateValidating State = "VALIDATING"
	StateSubmitting State = "SUBMITTING"
	StateSucceeded  State = "SUCCEEDED"
)

// ValidationError carries the full per-field error record. The submission
// stays in Editing and nothing hits the network.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return "checkout validation failed"
}
