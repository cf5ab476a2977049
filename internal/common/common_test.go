package common

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRespondWithError(t *testing.T) {
	rec := httptest.NewRecorder()
	assert.False(t, RespondWithError(nil, rec, http.StatusBadRequest, ""))
	assert.Equal(t, 0, rec.Body.Len())

	assert.True(t, RespondWithError(errors.New("lookup failed"), rec, http.StatusInternalServerError, "Error calculating distance"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"status":"Internal Server Error","message":"Error calculating distance"}`, rec.Body.String())
}

func TestWrapResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := WrapResponse(rec)
	_, _ = wrapped.Write([]byte("ok"))
	assert.Equal(t, http.StatusOK, wrapped.Status())
	assert.Empty(t, wrapped.Error())

	rec = httptest.NewRecorder()
	wrapped = WrapResponse(rec)
	wrapped.WriteHeader(http.StatusBadGateway)
	wrapped.WriteHeader(http.StatusOK)
	_, _ = wrapped.Write([]byte("upstream down"))
	assert.Equal(t, http.StatusBadGateway, wrapped.Status())
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "upstream down", string(wrapped.Error()))
}
