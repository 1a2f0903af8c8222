package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrAlreadyExists", ErrAlreadyExists},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrInternal", ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrors_Uniqueness tests that all sentinels are distinct
func TestErrors_Uniqueness(t *testing.T) {
	all := []error{ErrNotFound, ErrAlreadyExists, ErrInvalidInput, ErrInternal}
	for i, err1 := range all {
		for j, err2 := range all {
			if i != j {
				assert.False(t, errors.Is(err1, err2),
					"Error %v should not match error %v", err1, err2)
			}
		}
	}
}

// TestKind_String tests the canonical kind names
func TestKind_String(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", KindNotFound.String())
	assert.Equal(t, "INVALID_ARGUMENT", KindInvalidArgument.String())
	assert.Equal(t, "ALREADY_EXISTS", KindAlreadyExists.String())
	assert.Equal(t, "INTERNAL", KindInternal.String())
}

// TestError_IsMatchesKindSentinel tests errors.Is against classified errors
func TestError_IsMatchesKindSentinel(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"not found", NotFound("User not found"), ErrNotFound},
		{"invalid argument", InvalidArgument("bad"), ErrInvalidInput},
		{"already exists", AlreadyExists("dup"), ErrAlreadyExists},
		{"internal", Internal("boom", errors.New("disk full")), ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)

			wrapped := fmt.Errorf("context: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.sentinel)
		})
	}

	assert.False(t, errors.Is(NotFound("x"), ErrAlreadyExists))
}

// TestError_Message tests that the cause is kept out of the client message
func TestError_Message(t *testing.T) {
	cause := errors.New("disk full")
	err := Internal("failed to persist users", cause)

	assert.Equal(t, "failed to persist users: disk full", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to persist users", MessageOf(err))
}

// TestKindOf tests classification of classified, sentinel and foreign errors
func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("x")))
	assert.Equal(t, KindInvalidArgument, KindOf(fmt.Errorf("wrap: %w", InvalidArgument("x"))))
	assert.Equal(t, KindAlreadyExists, KindOf(ErrAlreadyExists))
	assert.Equal(t, KindNotFound, KindOf(fmt.Errorf("scan: %w", ErrNotFound)))
	assert.Equal(t, KindInternal, KindOf(errors.New("unexpected")))
}

// TestMessageOf tests client messages for each kind of error
func TestMessageOf(t *testing.T) {
	assert.Equal(t, "User not found", MessageOf(NotFound("User not found")))
	assert.Equal(t, "not found", MessageOf(ErrNotFound))
	assert.Equal(t, "internal error", MessageOf(errors.New("secret path /var/data")))

	var de *Error
	require.True(t, errors.As(fmt.Errorf("x: %w", AlreadyExists("dup")), &de))
	assert.Equal(t, KindAlreadyExists, de.Kind)
}
