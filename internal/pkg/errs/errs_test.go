//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"chefbook/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type kindError struct {
	kind string
}

func (e kindError) Error() string { return e.kind }

func TestMark(t *testing.T) {
	sentinel := errs.New("dish sold out for the requested date")

	t.Run("marked error matches both identities", func(t *testing.T) {
		cause := kindError{kind: "CONFLICT"}
		marked := errs.Mark(cause, sentinel)

		assert.ErrorIs(t, marked, sentinel)
		assert.ErrorIs(t, marked, cause)
	})

	t.Run("marking keeps the cause message", func(t *testing.T) {
		cause := errs.New("daily capacity exhausted")
		marked := errs.Mark(cause, sentinel)

		assert.Equal(t, cause.Error(), marked.Error())
	})

	t.Run("errors.As still reaches the cause type", func(t *testing.T) {
		marked := errs.Mark(kindError{kind: "NOT_FOUND"}, sentinel)

		var ke kindError
		require.True(t, errors.As(marked, &ke))
		assert.Equal(t, "NOT_FOUND", ke.kind)
	})

	t.Run("nil cause yields the mark itself", func(t *testing.T) {
		assert.Equal(t, sentinel, errs.Mark(nil, sentinel))
	})

	t.Run("wrapped mark stays visible", func(t *testing.T) {
		marked := errs.Wrap(errs.Mark(errs.New("zero rows"), sentinel), "create order")

		assert.ErrorIs(t, marked, sentinel)
	})
}
