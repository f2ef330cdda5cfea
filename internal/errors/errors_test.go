package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		expected string
	}{
		{
			name: "error with wrapped error",
			appError: &AppError{
				Type:    ErrorTypeLex,
				Message: "unexpected character '@'",
				Err:     ErrInvalidToken,
			},
			expected: "lex: unexpected character '@': invalid token",
		},
		{
			name: "error without wrapped error",
			appError: &AppError{
				Type:    ErrorTypeParse,
				Message: "expected '{'",
				Err:     nil,
			},
			expected: "parse: expected '{'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.appError.Error()
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	wrappedErr := errors.New("wrapped error")
	appErr := &AppError{
		Type:    ErrorTypeInput,
		Message: "test message",
		Err:     wrappedErr,
	}

	result := appErr.Unwrap()
	assert.Equal(t, wrappedErr, result)
}

func TestAppError_Is(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		target   error
		expected bool
	}{
		{
			name:     "same type",
			appError: &AppError{Type: ErrorTypeLex, Message: "test message"},
			target:   &AppError{Type: ErrorTypeLex, Message: "different message"},
			expected: true,
		},
		{
			name:     "different type",
			appError: &AppError{Type: ErrorTypeLex, Message: "test message"},
			target:   &AppError{Type: ErrorTypeParse, Message: "test message"},
			expected: false,
		},
		{
			name:     "not an AppError",
			appError: &AppError{Type: ErrorTypeLex, Message: "test message"},
			target:   errors.New("plain error"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appError.Is(tt.target))
		})
	}
}

func TestSentinelsReachableThroughConstructors(t *testing.T) {
	lexErr := NewLexError("unexpected character", ErrInvalidToken)
	assert.True(t, errors.Is(lexErr, ErrInvalidToken))
	assert.False(t, errors.Is(lexErr, ErrExpectedToken))

	parseErr := NewParseError("expected ':'", ErrExpectedToken)
	assert.True(t, errors.Is(parseErr, ErrExpectedToken))
	assert.False(t, errors.Is(parseErr, ErrInvalidToken))
}

func TestUserFriendlyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "lex error",
			err:      NewLexError("unterminated string", ErrInvalidToken),
			expected: "Tokenizer error: unterminated string",
		},
		{
			name:     "parse error",
			err:      NewParseError("expected '}'", ErrExpectedToken),
			expected: "Parser error: expected '}'",
		},
		{
			name:     "input error",
			err:      NewInputError("no input provided", ErrNoInput),
			expected: "Input error: no input provided",
		},
		{
			name:     "config error",
			err:      NewConfigError("bad format", nil),
			expected: "Configuration error: bad format",
		},
		{
			name:     "output error",
			err:      NewOutputError("failed to write", nil),
			expected: "Output error: failed to write",
		},
		{
			name:     "bare sentinel",
			err:      ErrInvalidToken,
			expected: "Error: The input contains an invalid token.",
		},
		{
			name:     "unknown error",
			err:      errors.New("something else"),
			expected: "Error: something else",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UserFriendlyError(tt.err))
		})
	}
}
