package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsError(t *testing.T) {
	t.Parallel()

	t.Run("direct", func(t *testing.T) {
		t.Parallel()
		err := New(CodeValidation, "bad input")
		e, ok := AsError(err)
		require.True(t, ok)
		assert.Equal(t, CodeValidation, e.Code)
	})

	t.Run("wrapped in stdlib chain", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("outer: %w", New(CodeCatalogParse, "bad yaml"))
		e, ok := AsError(err)
		require.True(t, ok)
		assert.Equal(t, CodeCatalogParse, e.Code)
	})

	t.Run("plain error", func(t *testing.T) {
		t.Parallel()
		e, ok := AsError(errors.New("plain"))
		assert.False(t, ok)
		assert.Nil(t, e)
	})

	t.Run("nil", func(t *testing.T) {
		t.Parallel()
		e, ok := AsError(nil)
		assert.False(t, ok)
		assert.Nil(t, e)
	})
}

func TestGetCode(t *testing.T) {
	t.Parallel()
	assert.Equal(t, CodeNotFoundKey, GetCode(New(CodeNotFoundKey, "missing")))
	assert.Equal(t, Code(""), GetCode(errors.New("plain")))
	assert.Equal(t, Code(""), GetCode(nil))
}

func TestHasCode(t *testing.T) {
	t.Parallel()
	err := New(CodeCatalogLoad, "unreadable")
	assert.True(t, HasCode(err, CodeCatalogLoad))
	assert.False(t, HasCode(err, CodeCatalogParse))
	assert.False(t, HasCode(nil, CodeCatalogLoad))
}

func TestCategoryChecks(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{"validation matches", New(CodeValidation, ""), IsValidation, true},
		{"validation required matches", New(CodeValidationRequired, ""), IsValidation, true},
		{"not found matches", New(CodeNotFoundLocale, ""), IsNotFound, true},
		{"catalog matches", New(CodeCatalogParse, ""), IsCatalog, true},
		{"internal matches", New(CodeInternalConfiguration, ""), IsInternal, true},
		{"wrong category", New(CodeInternal, ""), IsValidation, false},
		{"plain error", errors.New("plain"), IsNotFound, false},
		{"nil error", nil, IsInternal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.check(tt.err))
		})
	}
}
