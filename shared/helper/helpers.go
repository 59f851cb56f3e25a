package helper

import (
	"errors"
	"fmt"
)

var ErrUnexpectedType = errors.New("unexpected type")

// GetTypedValueOf asserts the result of a getter function to the expected type T.
// Returns an error if the getter fails or the type assertion fails.
func GetTypedValueOf[T any](getFn func() (any, error)) (T, error) {
	var zero T

	res, err := getFn()
	if err != nil {
		return zero, fmt.Errorf("failed to get value: %w", err)
	}

	val, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %T", ErrUnexpectedType, res)
	}

	return val, nil
}
