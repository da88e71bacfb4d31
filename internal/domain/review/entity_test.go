//go:build unit

package review_test

import (
	"strings"
	"testing"
	"time"

	"chefbook/internal/domain/review"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRating(t *testing.T) {
	cases := []struct {
		name  string
		value int
		errIs error
	}{
		{name: "minimum valid rating", value: 1},
		{name: "maximum valid rating", value: 5},
		{name: "below minimum", value: 0, errIs: review.ErrInvalidRating},
		{name: "above maximum", value: 6, errIs: review.ErrInvalidRating},
		{name: "negative", value: -1, errIs: review.ErrInvalidRating},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := review.NewRating(c.value)
			if c.errIs != nil {
				assert.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.value, r.Value())
		})
	}
}

func TestContent(t *testing.T) {
	t.Run("trims surrounding whitespace", func(t *testing.T) {
		c, err := review.NewContent("  tasty  ")
		require.NoError(t, err)
		assert.Equal(t, "tasty", c.String())
	})

	t.Run("empty content is allowed", func(t *testing.T) {
		c, err := review.NewContent("")
		require.NoError(t, err)
		assert.True(t, c.IsEmpty())
	})

	t.Run("maximum length", func(t *testing.T) {
		_, err := review.NewContent(strings.Repeat("a", review.MaxContentLength))
		assert.NoError(t, err)

		_, err = review.NewContent(strings.Repeat("a", review.MaxContentLength+1))
		assert.ErrorIs(t, err, review.ErrContentTooLong)
	})
}

func TestNewReview(t *testing.T) {
	rating, err := review.NewRating(4)
	require.NoError(t, err)
	content, err := review.NewContent("great meal")
	require.NoError(t, err)
	now := time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC)

	t.Run("basic success case", func(t *testing.T) {
		r, err := review.NewReview(uuid.New(), uuid.New(), uuid.New(), uuid.New(), rating, content, []string{"https://example.com/1.jpg"}, now)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, r.ID())
		assert.Equal(t, 4, r.Rating().Value())
		assert.Equal(t, now, r.CreatedAt())
	})

	t.Run("image limit", func(t *testing.T) {
		images := make([]string, review.MaxImages+1)
		for i := range images {
			images[i] = "https://example.com/img.jpg"
		}
		_, err := review.NewReview(uuid.New(), uuid.New(), uuid.New(), uuid.New(), rating, content, images, now)
		assert.ErrorIs(t, err, review.ErrTooManyImages)
	})
}
