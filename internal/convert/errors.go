package convert

import "errors"

// Configuration errors. Convert wraps them in a *ConfigError.
var (
	ErrMissingNamespace = errors.New("no namespace given and the pack declares no info.namespace")
	ErrNoDefinitions    = errors.New("no item or equipment definitions found")
)

// ConfigError reports a source configuration that cannot be converted.
// Nothing is written when Convert returns one.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return "configuration error: " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error { return e.Err }
