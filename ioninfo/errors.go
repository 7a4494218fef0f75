package ioninfo

import "errors"

// ErrNoIons is returned when a report is requested over an empty ion
// population.
var ErrNoIons = errors.New("ioninfo: no ions supplied")
