package haar

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is wrapped by every validation error in this package.
var ErrInvalidArgument = errors.New("haar: invalid argument")

var (
	ErrEmptyGrid         = fmt.Errorf("%w: empty grid", ErrInvalidArgument)
	ErrInvalidLevels     = fmt.Errorf("%w: invalid number of levels", ErrInvalidArgument)
	ErrNegativeThreshold = fmt.Errorf("%w: threshold must be a non-negative number", ErrInvalidArgument)
	ErrUnknownShrink     = fmt.Errorf("%w: unknown shrinkage policy", ErrInvalidArgument)
	ErrSizeMismatch      = fmt.Errorf("%w: grid dimensions do not match", ErrInvalidArgument)
)
