package domain

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrNotConfigured", ErrNotConfigured},
		{"ErrTransport", ErrTransport},
		{"ErrUnexpectedStatus", ErrUnexpectedStatus},
		{"ErrDecode", ErrDecode},
		{"ErrMissingPath", ErrMissingPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestFetchError_IsMatchesKindSentinel(t *testing.T) {
	tests := []struct {
		kind FetchErrorKind
		want error
	}{
		{FetchErrorTransport, ErrTransport},
		{FetchErrorStatus, ErrUnexpectedStatus},
		{FetchErrorDecode, ErrDecode},
		{FetchErrorMissingPath, ErrMissingPath},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			err := &FetchError{Kind: tt.kind}
			assert.ErrorIs(t, err, tt.want)

			for _, other := range []error{ErrTransport, ErrUnexpectedStatus, ErrDecode, ErrMissingPath} {
				if other != tt.want {
					assert.NotErrorIs(t, err, other)
				}
			}
		})
	}
}

func TestFetchError_UnwrapsCause(t *testing.T) {
	err := &FetchError{Kind: FetchErrorDecode, Err: io.ErrUnexpectedEOF}

	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestFetchError_SurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("fetch candidate pool: %w", &FetchError{Kind: FetchErrorStatus, StatusCode: 502})

	var fe *FetchError
	assert.True(t, errors.As(wrapped, &fe))
	assert.Equal(t, 502, fe.StatusCode)
	assert.ErrorIs(t, wrapped, ErrUnexpectedStatus)
}

func TestFetchError_Message(t *testing.T) {
	err := &FetchError{
		Kind:       FetchErrorStatus,
		StatusCode: 503,
		Detail:     "service unavailable",
	}
	assert.Equal(t, "directory returned unexpected status (status 503): service unavailable", err.Error())

	err = &FetchError{Kind: FetchErrorTransport, Err: errors.New("connection refused")}
	assert.Equal(t, "directory transport failure: connection refused", err.Error())
}

func TestFetchErrorKind_String(t *testing.T) {
	assert.Equal(t, "transport", FetchErrorTransport.String())
	assert.Equal(t, "status", FetchErrorStatus.String())
	assert.Equal(t, "decode", FetchErrorDecode.String())
	assert.Equal(t, "missing_path", FetchErrorMissingPath.String())
	assert.Equal(t, "unknown", FetchErrorKind(99).String())
}
