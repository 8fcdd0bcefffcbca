package config

import (
	"fmt"

	"github.com/pkg/errors"
)

// NewConfigValidationError returns an error specific to a failed validation at the given path.
func NewConfigValidationError(path string, err error) error {
	return errors.Wrapf(err, "error validating %q", path)
}

// NewConfigValidationFieldRequiredError returns an error specific to a missing field at the given
// path.
func NewConfigValidationFieldRequiredError(path, field string) error {
	return NewConfigValidationError(path, errors.Errorf("%q is required", field))
}

func fieldPath(path, field string, idx int) string {
	if path == "" {
		return fmt.Sprintf("%s.%d", field, idx)
	}
	return fmt.Sprintf("%s.%s.%d", path, field, idx)
}
