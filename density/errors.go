package density

import "errors"

// ErrBadOptions is returned when Options selects neither or both of
// the NN and radius stop modes.
var ErrBadOptions = errors.New("density: exactly one of NNMax or DistMax must be set")
