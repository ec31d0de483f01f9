package binder_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/convey-dev/convey/core/binder"
)

func TestPath(t *testing.T) {
	t.Parallel()

	params := map[string]string{"id": "42", "slug": "hello-world"}
	lookup := func(name string) string { return params[name] }

	t.Run("binds_typed_params", func(t *testing.T) {
		t.Parallel()

		type req struct {
			ID   int    `path:"id"`
			Slug string `path:"slug"`
		}

		var v req
		r := httptest.NewRequest("GET", "/posts/hello-world", nil)
		require.NoError(t, binder.Path(lookup)(r, &v))
		assert.Equal(t, 42, v.ID)
		assert.Equal(t, "hello-world", v.Slug)
	})

	t.Run("missing_param_keeps_zero_value", func(t *testing.T) {
		t.Parallel()

		type req struct {
			Other string `path:"other"`
		}

		var v req
		r := httptest.NewRequest("GET", "/x", nil)
		require.NoError(t, binder.Path(lookup)(r, &v))
		assert.Empty(t, v.Other)
	})

	t.Run("invalid_int_fails", func(t *testing.T) {
		t.Parallel()

		type req struct {
			Slug int `path:"slug"`
		}

		var v req
		r := httptest.NewRequest("GET", "/x", nil)
		err := binder.Path(lookup)(r, &v)
		assert.ErrorIs(t, err, binder.ErrFailedToParsePath)
	})
}

func TestQuery(t *testing.T) {
	t.Parallel()

	t.Run("binds_scalar_params", func(t *testing.T) {
		t.Parallel()

		type req struct {
			Page  int    `query:"page"`
			Sort  string `query:"sort"`
			Draft bool   `query:"draft"`
		}

		var v req
		r := httptest.NewRequest("GET", "/posts?page=3&sort=title&draft=true", nil)
		require.NoError(t, binder.Query()(r, &v))
		assert.Equal(t, 3, v.Page)
		assert.Equal(t, "title", v.Sort)
		assert.True(t, v.Draft)
	})

	t.Run("binds_repeated_and_comma_separated_slices", func(t *testing.T) {
		t.Parallel()

		type req struct {
			Tags []string `query:"tags"`
			IDs  []int    `query:"ids"`
		}

		var v req
		r := httptest.NewRequest("GET", "/posts?tags=go&tags=http&ids=1,2,3", nil)
		require.NoError(t, binder.Query()(r, &v))
		assert.Equal(t, []string{"go", "http"}, v.Tags)
		assert.Equal(t, []int{1, 2, 3}, v.IDs)
	})

	t.Run("binds_optional_pointer", func(t *testing.T) {
		t.Parallel()

		type req struct {
			Limit *int `query:"limit"`
		}

		var v req
		r := httptest.NewRequest("GET", "/posts?limit=10", nil)
		require.NoError(t, binder.Query()(r, &v))
		require.NotNil(t, v.Limit)
		assert.Equal(t, 10, *v.Limit)

		var empty req
		r = httptest.NewRequest("GET", "/posts", nil)
		require.NoError(t, binder.Query()(r, &empty))
		assert.Nil(t, empty.Limit)
	})

	t.Run("untagged_field_binds_by_lowercase_name", func(t *testing.T) {
		t.Parallel()

		type req struct {
			Page int
		}

		var v req
		r := httptest.NewRequest("GET", "/posts?page=5", nil)
		require.NoError(t, binder.Query()(r, &v))
		assert.Equal(t, 5, v.Page)
	})
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("decodes_body", func(t *testing.T) {
		t.Parallel()

		type req struct {
			Name string `json:"name"`
			Age  int    `json:"age"`
		}

		var v req
		r := httptest.NewRequest("POST", "/users", strings.NewReader(`{"name":"Alice","age":30}`))
		r.Header.Set("Content-Type", "application/json")
		require.NoError(t, binder.JSON()(r, &v))
		assert.Equal(t, "Alice", v.Name)
		assert.Equal(t, 30, v.Age)
	})

	t.Run("empty_body_is_noop", func(t *testing.T) {
		t.Parallel()

		type req struct {
			Name string `json:"name"`
		}

		var v req
		r := httptest.NewRequest("GET", "/users", nil)
		require.NoError(t, binder.JSON()(r, &v))
		assert.Empty(t, v.Name)
	})

	t.Run("accepts_json_suffix_media_types", func(t *testing.T) {
		t.Parallel()

		type req struct {
			Name string `json:"name"`
		}

		var v req
		r := httptest.NewRequest("POST", "/users", strings.NewReader(`{"name":"Bob"}`))
		r.Header.Set("Content-Type", "application/vnd.api+json")
		require.NoError(t, binder.JSON()(r, &v))
		assert.Equal(t, "Bob", v.Name)
	})

	t.Run("rejects_non_json_content_type", func(t *testing.T) {
		t.Parallel()

		var v struct{}
		r := httptest.NewRequest("POST", "/users", strings.NewReader("name=Alice"))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		err := binder.JSON()(r, &v)
		assert.ErrorIs(t, err, binder.ErrUnsupportedMediaType)
	})

	t.Run("malformed_json_fails", func(t *testing.T) {
		t.Parallel()

		var v struct{}
		r := httptest.NewRequest("POST", "/users", strings.NewReader(`{"name":`))
		r.Header.Set("Content-Type", "application/json")
		err := binder.JSON()(r, &v)
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})
}
