package datastore

import "fmt"

// ConfigurationError means a required datastore setting was missing or empty.
type ConfigurationError struct {
	Setting string
}

func (e ConfigurationError) Error() string {
	return fmt.Sprintf("missing required datastore configuration: %s", e.Setting)
}

// ConstructionError wraps a failure to build the datastore client.
type ConstructionError struct {
	Cause error
}

func (e ConstructionError) Error() string {
	return fmt.Sprintf("unable to construct datastore client: %s", e.Cause)
}

func (e ConstructionError) Unwrap() error {
	return e.Cause
}
