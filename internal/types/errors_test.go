package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Format(t *testing.T) {
	err := NewError(CONFIG_NOT_FOUND, "config file missing")
	assert.Equal(t, "[CONFIG_NOT_FOUND] config file missing", err.Error())
}

func TestError_FormatWithCause(t *testing.T) {
	cause := fmt.Errorf("open /etc/moviegraph.yaml: no such file or directory")
	err := WrapError(CONFIG_LOAD_FAILED, "failed to load config", cause)
	assert.Equal(t,
		"[CONFIG_LOAD_FAILED] failed to load config: open /etc/moviegraph.yaml: no such file or directory",
		err.Error())
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := WrapError(IMPORT_ROW_FAILED, "row rejected", cause)

	require.ErrorIs(t, err, cause)
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestError_IsMatchesByCode(t *testing.T) {
	a := NewError(IMPORT_PARSE_FAILED, "bad year column")
	b := NewError(IMPORT_PARSE_FAILED, "bad rating column")

	assert.ErrorIs(t, a, b)
	assert.NotErrorIs(t, a, NewError(IMPORT_OPEN_FAILED, "missing file"))
}

func TestIsRetryable(t *testing.T) {
	assert.False(t, IsRetryable(NewError(CONFIG_PARSE_FAILED, "bad yaml")))
	assert.True(t, IsRetryable(NewRetryableError(IMPORT_SCHEMA_FAILED, "transient")))
	assert.False(t, IsRetryable(errors.New("plain error")))

	wrapped := fmt.Errorf("outer: %w", WrapRetryableError(IMPORT_ROW_FAILED, "timeout", errors.New("deadline")))
	assert.True(t, IsRetryable(wrapped))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CONFIG_VALIDATION_FAILED, CodeOf(NewError(CONFIG_VALIDATION_FAILED, "bad")))
	assert.Equal(t, ErrorCode(""), CodeOf(errors.New("plain")))
}
