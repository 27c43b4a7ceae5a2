package sed

import "errors"

var (
	// ErrInvalidGrid indicates a wavelength grid that is empty, not
	// strictly ascending, or non-finite.
	ErrInvalidGrid = errors.New("sed: invalid wavelength grid")
	// ErrShapeMismatch indicates spectra whose last axis does not match
	// the wavelength grid, or a collaborator returning a wrong-length
	// array.
	ErrShapeMismatch = errors.New("sed: shape mismatch")
	// ErrInconsistentAddition indicates addition of Seds with
	// incompatible wavelength grids or batch dimensions.
	ErrInconsistentAddition = errors.New("sed: inconsistent addition")
	// ErrInconsistentArguments indicates mutually exclusive or jointly
	// required parameters were violated.
	ErrInconsistentArguments = errors.New("sed: inconsistent arguments")
	// ErrUnrecognisedOption indicates an enumerated string parameter
	// outside its allowed set.
	ErrUnrecognisedOption = errors.New("sed: unrecognised option")
	// ErrMissingFnu indicates an observed-frame operation before Observe
	// or ObserveAt10pc was called.
	ErrMissingFnu = errors.New("sed: fluxes not calculated, run Observe or ObserveAt10pc first")
	// ErrMissingPhotometry indicates a colour measurement before
	// PhotoFluxes was called.
	ErrMissingPhotometry = errors.New("sed: broadband fluxes not yet calculated, run PhotoFluxes first")
)
