package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aijalabs/aija-backend/internal/apperrors"
)

func TestExtractBearerToken(t *testing.T) {
	assert.Equal(t, "abc123", extractBearerToken("Bearer abc123"))
	assert.Equal(t, "abc123", extractBearerToken("bearer abc123"))
	assert.Equal(t, "", extractBearerToken(""))
	assert.Equal(t, "", extractBearerToken("Basic abc123"))
	assert.Equal(t, "", extractBearerToken("Bearer"))
}

func TestWriteStoreErrorMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("%w: mood and content are required", apperrors.ErrValidation), http.StatusBadRequest},
		{apperrors.ErrUnauthorized, http.StatusForbidden},
		{apperrors.ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("%w: entry exists for 2024-01-01", apperrors.ErrConflict), http.StatusConflict},
		{apperrors.ErrParse, http.StatusBadGateway},
		{apperrors.ErrCompletion, http.StatusBadGateway},
		{apperrors.ErrStorage, http.StatusInternalServerError},
		{fmt.Errorf("some other error"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		rec := httptest.NewRecorder()
		writeStoreError(rec, tc.err)
		assert.Equal(t, tc.status, rec.Code, "error: %v", tc.err)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	}
}
