package line

import "errors"

var (
	// ErrInconsistentArguments indicates constituent arrays with
	// mismatched lengths or otherwise invalid parameters.
	ErrInconsistentArguments = errors.New("line: inconsistent arguments")
	// ErrInconsistentAddition indicates addition of lines with different
	// ids.
	ErrInconsistentAddition = errors.New("line: inconsistent addition")
	// ErrMissingLine indicates a ratio or diagram referencing a line the
	// collection does not hold.
	ErrMissingLine = errors.New("line: line not in collection")
	// ErrUnrecognisedOption indicates a ratio or diagram name outside the
	// catalogue.
	ErrUnrecognisedOption = errors.New("line: unrecognised option")
	// ErrMissingFlux indicates an observed-frame accessor before Flux was
	// computed.
	ErrMissingFlux = errors.New("line: flux not calculated, run Flux first")
)
