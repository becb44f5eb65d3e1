package quadrature

import "errors"

// Validation errors. They are returned before any integrand evaluation;
// numerical trouble is reported through Status instead.
var (
	ErrNilIntegrand         = errors.New("integrand is nil")
	ErrNaNBound             = errors.New("integration bound is NaN")
	ErrNegativeLevels       = errors.New("max levels must be non-negative")
	ErrLevelsTooLarge       = errors.New("max levels too large")
	ErrInvalidTolerance     = errors.New("tolerance must be a non-negative number")
	ErrParamArity           = errors.New("parameter tangent length does not match parameters")
	ErrInfiniteBoundTangent = errors.New("bound tangent is non-zero at an infinite bound")
)
