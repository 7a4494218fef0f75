package hull

import "errors"

// ErrTooFewPoints is returned by ConvexHull when fewer than DIM+1 (4)
// points are supplied; a 3D hull needs at least a tetrahedron.
var ErrTooFewPoints = errors.New("hull: fewer than 4 points")

// ErrDegenerateHull is returned by ConvexHull when every input point is
// coplanar (or collinear), so no non-zero-volume hull exists.
var ErrDegenerateHull = errors.New("hull: points are coplanar")

// ErrNegativeScale is returned by Hull.Reduce when the requested inward
// reduction distance is at or beyond the centroid's distance to the
// nearest hull face, which would make the shrunk hull collapse through
// or past the centroid.
var ErrNegativeScale = errors.New("hull: reduction distance exceeds centroid-to-hull minimum distance")
