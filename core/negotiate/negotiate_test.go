package negotiate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/convey-dev/convey/core/negotiate"
)

func TestNegotiate(t *testing.T) {
	t.Parallel()

	supported := []string{"application/json", "text/html"}

	t.Run("empty_header_yields_default", func(t *testing.T) {
		t.Parallel()

		res := negotiate.Negotiate("", supported, "application/json")
		assert.Equal(t, "application/json", res.MediaType)
		assert.Equal(t, 1.0, res.Quality)
		assert.True(t, res.Acceptable)
	})

	t.Run("whitespace_header_yields_default", func(t *testing.T) {
		t.Parallel()

		res := negotiate.Negotiate("   ", supported, "text/html")
		assert.Equal(t, "text/html", res.MediaType)
		assert.True(t, res.Acceptable)
	})

	t.Run("exact_match", func(t *testing.T) {
		t.Parallel()

		res := negotiate.Negotiate("text/html", supported, "application/json")
		assert.Equal(t, "text/html", res.MediaType)
		assert.Equal(t, 1.0, res.Quality)
		assert.True(t, res.Acceptable)
	})

	t.Run("quality_ordering_wins", func(t *testing.T) {
		t.Parallel()

		res := negotiate.Negotiate("application/json;q=0.5, text/html;q=0.9", supported, "application/json")
		assert.Equal(t, "text/html", res.MediaType)
		assert.Equal(t, 0.9, res.Quality)
	})

	t.Run("wildcard_matches_anything", func(t *testing.T) {
		t.Parallel()

		res := negotiate.Negotiate("*/*", supported, "text/html")
		require.True(t, res.Acceptable)
		// Supported-list order breaks the tie between equally weighted
		// candidates.
		assert.Equal(t, "application/json", res.MediaType)
	})

	t.Run("type_wildcard_matches_subtypes", func(t *testing.T) {
		t.Parallel()

		res := negotiate.Negotiate("text/*", supported, "application/json")
		assert.Equal(t, "text/html", res.MediaType)
		assert.True(t, res.Acceptable)
	})

	t.Run("tie_breaks_by_header_position", func(t *testing.T) {
		t.Parallel()

		res := negotiate.Negotiate("text/html, application/json", supported, "text/html")
		assert.Equal(t, "text/html", res.MediaType)
	})

	t.Run("no_eligible_range_yields_unacceptable_default", func(t *testing.T) {
		t.Parallel()

		res := negotiate.Negotiate("image/png", supported, "application/json")
		assert.Equal(t, "application/json", res.MediaType)
		assert.Equal(t, 0.0, res.Quality)
		assert.False(t, res.Acceptable)
	})

	t.Run("q_zero_marks_range_unacceptable", func(t *testing.T) {
		t.Parallel()

		res := negotiate.Negotiate("text/html;q=0", supported, "application/json")
		assert.False(t, res.Acceptable)
		assert.Equal(t, "application/json", res.MediaType)
	})

	t.Run("empty_supported_list_yields_default", func(t *testing.T) {
		t.Parallel()

		res := negotiate.Negotiate("application/json", nil, "")
		assert.Equal(t, "", res.MediaType)
		assert.True(t, res.Acceptable)
	})

	t.Run("case_insensitive_media_types", func(t *testing.T) {
		t.Parallel()

		res := negotiate.Negotiate("TEXT/HTML", supported, "application/json")
		assert.Equal(t, "text/html", res.MediaType)
	})
}

func TestParseAccept(t *testing.T) {
	t.Parallel()

	t.Run("parses_ranges_with_positions", func(t *testing.T) {
		t.Parallel()

		ranges := negotiate.ParseAccept("text/html, application/json;q=0.8")
		require.Len(t, ranges, 2)
		assert.Equal(t, "text", ranges[0].Type)
		assert.Equal(t, "html", ranges[0].Subtype)
		assert.Equal(t, 1.0, ranges[0].Quality)
		assert.Equal(t, 0, ranges[0].Position)
		assert.Equal(t, 0.8, ranges[1].Quality)
		assert.Equal(t, 1, ranges[1].Position)
	})

	t.Run("malformed_q_defaults_to_one", func(t *testing.T) {
		t.Parallel()

		ranges := negotiate.ParseAccept("text/html;q=banana")
		require.Len(t, ranges, 1)
		assert.Equal(t, 1.0, ranges[0].Quality)
	})

	t.Run("out_of_range_q_is_discarded", func(t *testing.T) {
		t.Parallel()

		ranges := negotiate.ParseAccept("text/html;q=7")
		require.Len(t, ranges, 1)
		assert.Equal(t, 1.0, ranges[0].Quality)
	})

	t.Run("bare_token_is_type_wildcard", func(t *testing.T) {
		t.Parallel()

		ranges := negotiate.ParseAccept("text")
		require.Len(t, ranges, 1)
		assert.Equal(t, "text", ranges[0].Type)
		assert.Equal(t, "*", ranges[0].Subtype)
	})

	t.Run("ignores_non_q_parameters", func(t *testing.T) {
		t.Parallel()

		ranges := negotiate.ParseAccept("text/html;charset=utf-8;q=0.5")
		require.Len(t, ranges, 1)
		assert.Equal(t, 0.5, ranges[0].Quality)
	})
}
