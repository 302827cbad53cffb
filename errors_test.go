package uuident_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/uuident"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := uuident.NewNotFoundError("tickets", "2c5ea4c0-4067-11e9-8bad-9b1deb4d3b7d")
		assert.Equal(t, "uuident: tickets not found (uuid=2c5ea4c0-4067-11e9-8bad-9b1deb4d3b7d)", err.Error())
		assert.Equal(t, "tickets", err.Table())
		assert.Equal(t, "2c5ea4c0-4067-11e9-8bad-9b1deb4d3b7d", err.Value())
	})

	t.Run("Is", func(t *testing.T) {
		err := uuident.NewNotFoundError("tickets", "x")
		assert.True(t, errors.Is(err, uuident.ErrNotFound))
	})

	t.Run("IsNotFound", func(t *testing.T) {
		err := uuident.NewNotFoundError("tickets", "x")
		assert.True(t, uuident.IsNotFound(err))

		// Wrapped error
		wrapped := fmt.Errorf("wrapper: %w", err)
		assert.True(t, uuident.IsNotFound(wrapped))

		// Sentinel error
		assert.True(t, uuident.IsNotFound(uuident.ErrNotFound))

		// Non-matching error
		assert.False(t, uuident.IsNotFound(errors.New("other error")))
		assert.False(t, uuident.IsNotFound(nil))
	})
}

func TestParseError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := &uuident.ParseError{Field: "uuid", Value: "nope", Err: errors.New("invalid UUID length: 4")}
		assert.Equal(t, `uuident: invalid uuid for field "uuid": invalid UUID length: 4`, err.Error())
	})

	t.Run("Error_non_string", func(t *testing.T) {
		err := &uuident.ParseError{Field: "uuid", Value: 42}
		assert.Equal(t, `uuident: invalid uuid for field "uuid": unexpected type int`, err.Error())
	})

	t.Run("Unwrap", func(t *testing.T) {
		cause := errors.New("boom")
		err := &uuident.ParseError{Field: "uuid", Err: cause}
		assert.ErrorIs(t, err, cause)
	})

	t.Run("IsParseError", func(t *testing.T) {
		err := &uuident.ParseError{Field: "uuid"}
		assert.True(t, uuident.IsParseError(err))
		assert.True(t, uuident.IsParseError(fmt.Errorf("wrapper: %w", err)))
		assert.False(t, uuident.IsParseError(errors.New("other error")))
		assert.False(t, uuident.IsParseError(nil))
	})
}

func TestDecodeError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := &uuident.DecodeError{Field: "uuid", Err: errors.New("invalid UUID (got 36 bytes)")}
		assert.Equal(t, `uuident: decoding field "uuid": invalid UUID (got 36 bytes)`, err.Error())
	})

	t.Run("Unwrap", func(t *testing.T) {
		cause := errors.New("boom")
		err := &uuident.DecodeError{Field: "uuid", Err: cause}
		assert.ErrorIs(t, err, cause)
	})

	t.Run("IsDecodeError", func(t *testing.T) {
		err := &uuident.DecodeError{Field: "uuid"}
		assert.True(t, uuident.IsDecodeError(err))
		assert.True(t, uuident.IsDecodeError(fmt.Errorf("wrapper: %w", err)))
		assert.False(t, uuident.IsDecodeError(errors.New("other error")))
		assert.False(t, uuident.IsDecodeError(nil))
	})
}
