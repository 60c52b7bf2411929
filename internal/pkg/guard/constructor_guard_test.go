package guard_test

import (
	"errors"
	"testing"

	"foodcourt/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed guard passes validation", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("cart not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero-value guard returns the given error", func(t *testing.T) {
		var g guard.ConstructorGuard
		want := errors.New("order must be created via NewOrder")

		err := g.Validate(want)

		assert.Equal(t, want, err)
	})

	t.Run("zero-value guard falls back to the default error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// Embedding pattern used by the domain aggregates and commands: the guard is
// set in the constructor, and Validate distinguishes constructed instances
// from zero values that skipped it.
func TestConstructorGuard_EmbeddingPattern(t *testing.T) {
	errNotConstructed := errors.New("review must be created via NewReview")

	type review struct {
		rating int
		guard  guard.ConstructorGuard
	}

	newReview := func(rating int) review {
		return review{rating: rating, guard: guard.NewConstructorGuard()}
	}

	t.Run("constructed instance validates", func(t *testing.T) {
		r := newReview(5)

		require.NoError(t, r.guard.Validate(errNotConstructed))
	})

	t.Run("zero-value instance fails validation", func(t *testing.T) {
		var r review

		err := r.guard.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("guard copies keep their constructed state", func(t *testing.T) {
		original := newReview(4)
		copied := original

		require.NoError(t, copied.guard.Validate(errNotConstructed))
	})
}
