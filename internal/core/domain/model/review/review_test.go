package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
)

func Test_NewReview(t *testing.T) {
	r, err := NewReview(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 4, "great biryani")
	require.NoError(t, err)

	assert.NoError(t, r.Validate())
	assert.Equal(t, 4, r.Rating())
	assert.Equal(t, "great biryani", r.Comment())
}

func Test_NewReview_RatingBounds(t *testing.T) {
	for _, rating := range []int{0, -1, 6, 100} {
		_, err := NewReview(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), rating, "")
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange, "rating %d", rating)
	}

	for rating := MinRating; rating <= MaxRating; rating++ {
		_, err := NewReview(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), rating, "")
		assert.NoError(t, err, "rating %d", rating)
	}
}

func Test_Review_Validate(t *testing.T) {
	var r Review
	assert.ErrorIs(t, r.Validate(), ErrReviewIsNotConstructed)
}
