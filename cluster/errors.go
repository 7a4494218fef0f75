package cluster

import "errors"

// ErrNoCoreIons is returned when, after collation and optional core
// classification, no core ions remain to seed backbone growth.
var ErrNoCoreIons = errors.New("cluster: no core ions")

// ErrNoBulkIons is returned when bulk linkage is enabled but the bulk
// population is empty.
var ErrNoBulkIons = errors.New("cluster: no bulk ions")

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("cluster: invalid option supplied")
