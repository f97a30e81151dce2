package errs_test

import (
	"errors"
	"testing"

	"farmlink/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("message never distinguishes wrong state from absence", func(t *testing.T) {
		missing := errs.NewObjectNotFoundError("orderId", "abc")
		wrongState := errs.NewObjectNotFoundError("orderId", "abc")

		assert.Equal(t, missing.Error(), wrongState.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("unit")

		assert.Equal(t, "unit", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: unit", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("unit", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: unit (cause: invalid format)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("qualityScore", 7, 1, 5)

		assert.Equal(t, "qualityScore", err.ParamName)
		assert.Equal(t, 7, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 5, err.Max)
		assert.Equal(t, "value is invalid: 7 is qualityScore, min value is 1, max value is 5", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitizes newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("notes", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("deliveryLocation")

	assert.Equal(t, "value is required: deliveryLocation", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
}

func TestUnauthorizedError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewUnauthorizedError("settle payment")

		assert.Equal(t, "operation is not permitted: settle payment", err.Error())
		assert.Equal(t, errs.ErrUnauthorized, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("caller is not the restaurant")
		err := errs.NewUnauthorizedErrorWithCause("settle payment", cause)

		assert.Equal(t, "operation is not permitted: settle payment (cause: caller is not the restaurant)", err.Error())
	})
}

func TestConflictError(t *testing.T) {
	err := errs.NewConflictError("order", "123")

	assert.Equal(t, "concurrent modification conflict: 123", err.Error())
	assert.Equal(t, errs.ErrConflict, err.Unwrap())
}

func TestDependencyUnavailableError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewDependencyUnavailableError("payment gateway")

		assert.Equal(t, "dependency unavailable: payment gateway", err.Error())
		assert.Equal(t, errs.ErrDependencyUnavailable, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.NewDependencyUnavailableErrorWithCause("payment gateway", cause)

		assert.Equal(t, "dependency unavailable: payment gateway (cause: connection refused)", err.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "123"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("unit"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("score", 9, 1, 5), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("address"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewUnauthorizedError("cancel order"), errs.ErrUnauthorized)
	require.ErrorIs(t, errs.NewConflictError("order", "123"), errs.ErrConflict)
	require.ErrorIs(t, errs.NewDependencyUnavailableError("smtp"), errs.ErrDependencyUnavailable)
}
