package respond

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/backoffice/internal/apperr"
)

func TestError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/cars", nil)

	rec := httptest.NewRecorder()
	Error(rec, req, apperr.Forbidden("Forbidden"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"Forbidden"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	Error(rec, req, errors.New("pq: password authentication failed"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "pq:")
}

func TestDecode(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	err := Decode(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x"}`)), &dst)
	require.NoError(t, err)
	assert.Equal(t, "x", dst.Name)

	err = Decode(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`)), &dst)
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))

	err = Decode(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(``)), &dst)
	assert.Equal(t, "Request body is required", apperr.PublicMessage(err))
}

func TestPathID(t *testing.T) {
	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": "42"})
	id, err := PathID(req, "id")
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	req = mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": "abc"})
	_, err = PathID(req, "id")
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
}

func TestPage(t *testing.T) {
	limit, offset := Page(httptest.NewRequest(http.MethodGet, "/?limit=500&offset=-1", nil))
	assert.Equal(t, 100, limit)
	assert.Equal(t, 0, offset)

	limit, _ = Page(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, 50, limit)
}
