package deconv

import (
	"errors"

	"github.com/cwbudde/algo-hrf/deconv/basis"
)

// Errors returned by event types and their design matrices.
var (
	ErrUnsupportedBasisSet = basis.ErrUnsupportedBasisSet
	ErrShapeMismatch       = errors.New("deconv: shape mismatch")
	ErrMissingBetas        = errors.New("deconv: no betas attached")
	ErrNotBuilt            = errors.New("deconv: design matrix not built")
	ErrInvalidInterval     = errors.New("deconv: invalid interval")
	ErrInvalidDuration     = errors.New("deconv: invalid duration")
	ErrInvalidRegressors   = errors.New("deconv: regressor count must be >= 1")
	ErrUnknownCovariate    = errors.New("deconv: unknown covariate")
	ErrDuplicateName       = errors.New("deconv: duplicate name")
	ErrInvalidName         = errors.New("deconv: invalid name")
	ErrInvalidContext      = errors.New("deconv: invalid context")
)
