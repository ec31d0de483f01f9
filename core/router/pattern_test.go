package router_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/convey-dev/convey/core/router"
)

func TestParsePattern(t *testing.T) {
	t.Parallel()

	t.Run("static_pattern", func(t *testing.T) {
		t.Parallel()

		p, err := router.ParsePattern("/users/all")
		require.NoError(t, err)
		assert.Equal(t, "/users/all", p.String())
		assert.Equal(t, 0, p.NumParams())
	})

	t.Run("colon_captures", func(t *testing.T) {
		t.Parallel()

		p, err := router.ParsePattern("/users/:id/posts/:post_id")
		require.NoError(t, err)
		assert.Equal(t, 2, p.NumParams())
	})

	t.Run("brace_captures", func(t *testing.T) {
		t.Parallel()

		p, err := router.ParsePattern("/users/{id}")
		require.NoError(t, err)
		assert.Equal(t, 1, p.NumParams())

		params, ok := p.Match("/users/42")
		require.True(t, ok)
		assert.Equal(t, "42", params["id"])
	})

	t.Run("root_pattern", func(t *testing.T) {
		t.Parallel()

		p, err := router.ParsePattern("/")
		require.NoError(t, err)

		_, ok := p.Match("/")
		assert.True(t, ok)
	})

	t.Run("rejects_missing_leading_slash", func(t *testing.T) {
		t.Parallel()

		_, err := router.ParsePattern("users/:id")
		assert.ErrorIs(t, err, router.ErrInvalidPattern)
	})

	t.Run("rejects_empty_pattern", func(t *testing.T) {
		t.Parallel()

		_, err := router.ParsePattern("")
		assert.ErrorIs(t, err, router.ErrInvalidPattern)
	})

	t.Run("rejects_empty_capture_name", func(t *testing.T) {
		t.Parallel()

		_, err := router.ParsePattern("/users/:")
		assert.ErrorIs(t, err, router.ErrInvalidPattern)
	})

	t.Run("rejects_duplicate_capture_names", func(t *testing.T) {
		t.Parallel()

		_, err := router.ParsePattern("/users/:id/posts/:id")
		assert.ErrorIs(t, err, router.ErrDuplicateParam)
	})
}

func TestPattern_Match(t *testing.T) {
	t.Parallel()

	t.Run("extracts_params", func(t *testing.T) {
		t.Parallel()

		p := router.MustParsePattern("/users/:id/posts/:post_id")
		params, ok := p.Match("/users/7/posts/99")
		require.True(t, ok)
		assert.Equal(t, "7", params["id"])
		assert.Equal(t, "99", params["post_id"])
	})

	t.Run("requires_equal_segment_count", func(t *testing.T) {
		t.Parallel()

		p := router.MustParsePattern("/users/:id")

		_, ok := p.Match("/users")
		assert.False(t, ok)

		_, ok = p.Match("/users/7/posts")
		assert.False(t, ok)
	})

	t.Run("trailing_slash_is_distinct", func(t *testing.T) {
		t.Parallel()

		p := router.MustParsePattern("/users/all")
		_, ok := p.Match("/users/all/")
		assert.False(t, ok)
	})

	t.Run("capture_rejects_empty_segment", func(t *testing.T) {
		t.Parallel()

		p := router.MustParsePattern("/users/:id")
		_, ok := p.Match("/users//")
		assert.False(t, ok)

		_, ok = p.Match("/users/")
		assert.False(t, ok)
	})

	t.Run("literal_match_is_exact", func(t *testing.T) {
		t.Parallel()

		p := router.MustParsePattern("/users/all")
		_, ok := p.Match("/users/ALL")
		assert.False(t, ok)
	})
}
