package classifier

// OutcomeStatus is the state of a single strategy attempt.
type OutcomeStatus int

const (
	OutcomeUnavailable OutcomeStatus = iota
	OutcomeSuccess
	OutcomeFailed
)

func (s OutcomeStatus) String() string {
	switch s {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailed:
		return "failed"
	default:
		return "unavailable"
	}
}

// Outcome is what a strategy reports back to the chain. Only a success
// carries a Result; only a failure carries Err.
type Outcome struct {
	Status OutcomeStatus
	Result Result
	Err    error
}

func Succeeded(result Result) Outcome {
	return Outcome{Status: OutcomeSuccess, Result: result}
}

func Unavailable() Outcome {
	return Outcome{Status: OutcomeUnavailable, Err: ErrCredentialMissing}
}

func Failed(err error) Outcome {
	return Outcome{Status: OutcomeFailed, Err: err}
}
