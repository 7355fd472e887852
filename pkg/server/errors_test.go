// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cnserrors "github.com/NVIDIA/people/pkg/errors"
)

func TestHTTPStatusFromCode(t *testing.T) {
	tests := []struct {
		name string
		code cnserrors.ErrorCode
		want int
	}{
		{"invalid request", cnserrors.ErrCodeInvalidRequest, http.StatusBadRequest},
		{"unauthorized", cnserrors.ErrCodeUnauthorized, http.StatusUnauthorized},
		{"not found", cnserrors.ErrCodeNotFound, http.StatusNotFound},
		{"method not allowed", cnserrors.ErrCodeMethodNotAllowed, http.StatusMethodNotAllowed},
		{"not acceptable", cnserrors.ErrCodeNotAcceptable, http.StatusNotAcceptable},
		{"rate limit", cnserrors.ErrCodeRateLimitExceeded, http.StatusTooManyRequests},
		{"unavailable", cnserrors.ErrCodeUnavailable, http.StatusServiceUnavailable},
		{"timeout", cnserrors.ErrCodeTimeout, http.StatusGatewayTimeout},
		{"internal", cnserrors.ErrCodeInternal, http.StatusInternalServerError},
		{"unknown defaults to internal", cnserrors.ErrorCode("SOMETHING_ELSE"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatusFromCode(tt.code); got != tt.want {
				t.Fatalf("HTTPStatusFromCode(%q) = %d, want %d", tt.code, got, tt.want)
			}
		})
	}
}

func TestRetryableFromCode(t *testing.T) {
	tests := []struct {
		name string
		code cnserrors.ErrorCode
		want bool
	}{
		{"invalid request", cnserrors.ErrCodeInvalidRequest, false},
		{"not found", cnserrors.ErrCodeNotFound, false},
		{"not acceptable", cnserrors.ErrCodeNotAcceptable, false},
		{"timeout", cnserrors.ErrCodeTimeout, true},
		{"unavailable", cnserrors.ErrCodeUnavailable, true},
		{"rate limit", cnserrors.ErrCodeRateLimitExceeded, true},
		{"internal", cnserrors.ErrCodeInternal, true},
		{"unknown defaults false", cnserrors.ErrorCode("SOMETHING_ELSE"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := retryableFromCode(tt.code); got != tt.want {
				t.Fatalf("retryableFromCode(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestMergeDetails(t *testing.T) {
	assert.Nil(t, mergeDetails(nil, nil))
	assert.Nil(t, mergeDetails(map[string]any{}, nil))

	a := map[string]any{"a": 1, "shared": "a"}
	b := map[string]any{"b": 2, "shared": "b"}
	got := mergeDetails(a, b)

	assert.Equal(t, map[string]any{"a": 1, "b": 2, "shared": "b"}, got)
	assert.Equal(t, "a", a["shared"], "inputs must not be modified")
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestWriteError(t *testing.T) {
	t.Run("uses request id from context", func(t *testing.T) {
		id := uuid.New().String()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(context.WithValue(req.Context(), contextKeyRequestID, id))
		rec := httptest.NewRecorder()

		WriteError(rec, req, http.StatusBadRequest, cnserrors.ErrCodeInvalidRequest,
			"bad", false, map[string]any{"field": "id"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		resp := decodeError(t, rec)
		assert.Equal(t, "INVALID_REQUEST", resp.Code)
		assert.Equal(t, "bad", resp.Message)
		assert.Equal(t, id, resp.RequestID)
		assert.Equal(t, "id", resp.Details["field"])
		assert.False(t, resp.Retryable)
		assert.False(t, resp.Timestamp.IsZero())
	})

	t.Run("generates request id when missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		WriteError(rec, req, http.StatusInternalServerError, cnserrors.ErrCodeInternal, "boom", true, nil)

		resp := decodeError(t, rec)
		_, err := uuid.Parse(resp.RequestID)
		assert.NoError(t, err)
		assert.Nil(t, resp.Details)
	})
}

func TestWriteErrorFromErr(t *testing.T) {
	t.Run("structured error keeps code and context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		err := cnserrors.WrapWithContext(cnserrors.ErrCodeUnavailable, "store offline",
			errors.New("dial refused"), map[string]any{"backend": "memdb"})
		WriteErrorFromErr(rec, req, err, "fallback", map[string]any{"op": "list"})

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		resp := decodeError(t, rec)
		assert.Equal(t, "SERVICE_UNAVAILABLE", resp.Code)
		assert.Equal(t, "store offline", resp.Message)
		assert.True(t, resp.Retryable)
		assert.Equal(t, "memdb", resp.Details["backend"])
		assert.Equal(t, "list", resp.Details["op"])
		assert.Equal(t, "dial refused", resp.Details["error"])
	})

	t.Run("plain error becomes internal", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		WriteErrorFromErr(rec, req, errors.New("disk on fire"), "Failed to list people", nil)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		resp := decodeError(t, rec)
		assert.Equal(t, "INTERNAL", resp.Code)
		assert.Equal(t, "Failed to list people", resp.Message)
		assert.Equal(t, "disk on fire", resp.Details["error"])
		assert.True(t, resp.Retryable)
	})
}
