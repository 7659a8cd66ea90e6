package wordle

import "fmt"

// ErrorKind identifies one of the error taxonomy members from §7. It
// is exported so callers can branch on it via errors.As + a type
// switch on Kind, without parsing error strings.
type ErrorKind int

const (
	// InvalidWord: input word not present in Γ, or Ω ⊄ Γ at load time.
	InvalidWord ErrorKind = iota
	// OracleFailure: the oracle adapter returned a transport/parse
	// error that persisted through its internal retries.
	OracleFailure
	// InconsistentOracle: CandidateState.Filter produced an empty set.
	InconsistentOracle
	// TurnLimitReached: max_turns was reached without a win. Carried
	// as an error kind for uniform plumbing, but note that LOSS is a
	// normal terminal outcome, not a failure — see Game.Run's Outcome.
	TurnLimitReached
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidWord:
		return "INVALID_WORD"
	case OracleFailure:
		return "ORACLE_FAILURE"
	case InconsistentOracle:
		return "INCONSISTENT_ORACLE"
	case TurnLimitReached:
		return "TURN_LIMIT_REACHED"
	default:
		return "UNKNOWN"
	}
}

// SolveError is the single typed error used throughout this module,
// following the teacher's ConstraintViolationError/ValidationError
// shape: a machine-checkable Kind plus a human-readable Message, with
// Unwrap so transport-level causes (e.g. an HTTPOracle's underlying
// network error) survive errors.Is/errors.As.
type SolveError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *SolveError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *SolveError) Unwrap() error {
	return e.Cause
}
