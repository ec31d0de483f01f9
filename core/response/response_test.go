package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/convey-dev/convey/core/response"
)

func TestString(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)

	require.NoError(t, response.String("hello")(w, r))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hello", w.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("encodes_payload", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/", nil)

		require.NoError(t, response.JSON(map[string]string{"status": "ok"})(w, r))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})

	t.Run("no_content_omits_body", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/", nil)

		require.NoError(t, response.JSONWithStatus(map[string]string{"x": "y"}, http.StatusNoContent)(w, r))
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("zero_status_with_nil_payload_is_204", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/", nil)

		require.NoError(t, response.JSONWithStatus(nil, 0)(w, r))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestRedirect(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)

	require.NoError(t, response.Redirect("/login")(w, r))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

type statusErr struct{ code int }

func (e statusErr) Error() string   { return "status error" }
func (e statusErr) StatusCode() int { return e.code }

func TestConvertError(t *testing.T) {
	t.Parallel()

	t.Run("http_error_passes_through", func(t *testing.T) {
		t.Parallel()

		in := response.ErrNotFound.WithMessage("no such user")
		out := response.ConvertError(in)
		assert.Equal(t, http.StatusNotFound, out.Status)
		assert.Equal(t, "no such user", out.Message)
	})

	t.Run("status_code_interface_maps_to_base_error", func(t *testing.T) {
		t.Parallel()

		out := response.ConvertError(statusErr{code: http.StatusConflict})
		assert.Equal(t, http.StatusConflict, out.Status)
		assert.Equal(t, "conflict", out.Code)
	})

	t.Run("unknown_error_hides_cause", func(t *testing.T) {
		t.Parallel()

		out := response.ConvertError(errors.New("pq: connection refused"))
		assert.Equal(t, http.StatusInternalServerError, out.Status)
		assert.NotContains(t, out.Message, "connection refused")
	})

	t.Run("wrapped_http_error_is_found", func(t *testing.T) {
		t.Parallel()

		wrapped := errors.Join(errors.New("context"), response.ErrForbidden)
		out := response.ConvertError(wrapped)
		assert.Equal(t, http.StatusForbidden, out.Status)
	})
}

func TestHTTPError(t *testing.T) {
	t.Parallel()

	t.Run("with_details_copies", func(t *testing.T) {
		t.Parallel()

		base := response.ErrUnprocessableEntity
		withDetails := base.WithDetails(map[string]any{"fields": []string{"email"}})

		assert.Nil(t, base.Details)
		assert.NotNil(t, withDetails.Details)
	})

	t.Run("with_error_records_cause", func(t *testing.T) {
		t.Parallel()

		e := response.ErrBadRequest.WithError(errors.New("boom"))
		assert.Equal(t, "boom", e.Details["cause"])
	})

	t.Run("json_shape_excludes_status", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(response.ErrNotFound)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.NotContains(t, decoded, "Status")
		assert.Equal(t, "not_found", decoded["code"])
	})
}
