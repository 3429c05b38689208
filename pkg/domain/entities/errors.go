package entities

// ValidationError reports policy or cost parameters that fail their
// preconditions before any computation starts.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NumericalDomainError reports inputs on which the renewal recursion is
// undefined, such as a demand distribution with all mass at zero.
type NumericalDomainError struct {
	Reason string
}

func (e *NumericalDomainError) Error() string {
	return e.Reason
}

// ConfigurationError reports a demand model that is missing required fields
// or cannot cover the horizon a computation asked for.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return e.Reason
}

// AlgorithmError reports that a defensive iteration bound was exceeded,
// which signals a violated structural assumption (for example a
// single-period cost function that is not quasi-convex).
type AlgorithmError struct {
	Reason string
}

func (e *AlgorithmError) Error() string {
	return e.Reason
}
