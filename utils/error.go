package utils

import (
	"errors"
	"fmt"
)

var ErrorRecordNotFound = errors.New("record not found")

// ConfigurationError reports a service entry that references a property with
// no known contract terms. Settlement must fail fast on it instead of
// assuming a share percentage.
type ConfigurationError struct {
	PropertyID string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("no contract terms configured for property %q", e.PropertyID)
}

func ErrorPanic(err error) {
	if err != nil {
		panic(err)
	}
}
