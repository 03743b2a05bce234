package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCategoryString(t *testing.T) {
	cases := map[ErrorCategory]string{
		ErrorInit:         "init",
		ErrorCompress:     "compress",
		ErrorDecompress:   "decompress",
		ErrorWrite:        "write",
		ErrorRead:         "read",
		ErrorFormat:       "format",
		ErrorUsage:        "usage",
		ErrorCategory(99): "unknown",
	}

	for category, want := range cases {
		require.Equal(t, want, category.String())
	}
}

func TestStreamErrorWrapping(t *testing.T) {
	cause := errors.New("disk full")
	err := NewStreamError(ErrorWrite, "sink write", cause)

	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "write")
	require.Contains(t, err.Error(), "sink write")
	require.Contains(t, err.Error(), "disk full")
	require.False(t, err.Timestamp.IsZero())
}

func TestIsCategory(t *testing.T) {
	err := NewStreamError(ErrorFormat, "gzip header", errors.New("bad magic"))

	require.True(t, IsCategory(err, ErrorFormat))
	require.False(t, IsCategory(err, ErrorRead))
	require.False(t, IsCategory(errors.New("plain"), ErrorFormat))
	require.False(t, IsCategory(nil, ErrorFormat))
}

func TestAsStreamErrorThroughChain(t *testing.T) {
	inner := NewStreamError(ErrorDecompress, "read", errors.New("corrupt"))
	wrapped := fmt.Errorf("while restoring: %w", inner)

	se := AsStreamError(wrapped)
	require.NotNil(t, se)
	require.Equal(t, ErrorDecompress, se.Category)

	require.Nil(t, AsStreamError(errors.New("plain")))
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("level", 42, errors.New("out of range"))

	require.True(t, IsValidationError(err))
	require.Equal(t, "out of range", err.Error())

	ve := AsValidationError(fmt.Errorf("config: %w", err))
	require.NotNil(t, ve)
	require.Equal(t, "level", ve.Field)
	require.Equal(t, 42, ve.Value)

	require.False(t, IsValidationError(errors.New("plain")))
}
