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

package person

import (
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/NVIDIA/people/pkg/defaults"
	cnserrors "github.com/NVIDIA/people/pkg/errors"
	"github.com/NVIDIA/people/pkg/serializer"
	"github.com/NVIDIA/people/pkg/server"
)

// Handler serves the person resource over HTTP.
type Handler struct {
	store        Store
	maxBodyBytes int64
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithMaxBodyBytes caps the size of create request bodies.
// Values <= 0 keep the default.
func WithMaxBodyBytes(n int64) HandlerOption {
	return func(h *Handler) {
		if n > 0 {
			h.maxBodyBytes = n
		}
	}
}

// NewHandler returns a Handler backed by store.
func NewHandler(store Store, opts ...HandlerOption) *Handler {
	h := &Handler{
		store:        store,
		maxBodyBytes: defaults.MaxRequestBodyBytes,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes registers the person endpoints. It is meant to be mounted at
// /person, so "/" matches both /person and /person/.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.HandleList)
	r.Post("/", h.HandleCreate)
	r.Get("/{id}", h.HandleGet)
}

// HandleList handles GET /person/.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	if !acceptsJSON(r) {
		writeNotAcceptable(w, r)
		return
	}

	people, err := h.store.List()
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to list people", nil)
		return
	}

	slog.Debug("listed people", "count", len(people))
	serializer.RespondJSON(w, http.StatusOK, people)
}

// HandleGet handles GET /person/{id}. An absent id yields 404 with no body.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	if !acceptsJSON(r) {
		writeNotAcceptable(w, r)
		return
	}

	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		server.WriteError(w, r, http.StatusBadRequest, cnserrors.ErrCodeInvalidRequest,
			"Person id must be an integer", false, map[string]any{
				"id":    raw,
				"error": err.Error(),
			})
		return
	}

	p, found, err := h.store.Get(id)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to read person", map[string]any{"id": id})
		return
	}
	if !found {
		slog.Debug("person not found", "id", id)
		serializer.RespondEmpty(w, http.StatusNotFound)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, p)
}

// HandleCreate handles POST /person/. The body's id selects the slot to
// insert or overwrite; the response has no body.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	defer body.Close()

	p, err := ParsePersonFromBody(body, r.Header.Get("Content-Type"))
	if err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		server.WriteError(w, r, status, cnserrors.ErrCodeInvalidRequest,
			"Invalid person body", false, map[string]any{
				"error": err.Error(),
			})
		return
	}

	if err := h.store.Upsert(*p); err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to store person", map[string]any{"id": p.ID})
		return
	}

	slog.Debug("person stored", "id", p.ID)
	serializer.RespondEmpty(w, http.StatusOK)
}

// acceptsJSON reports whether the Accept header admits a JSON response.
// A missing header accepts anything.
func acceptsJSON(r *http.Request) bool {
	accept := strings.TrimSpace(r.Header.Get("Accept"))
	if accept == "" {
		return true
	}

	for _, part := range strings.Split(accept, ",") {
		mediaType, params, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		if q, ok := params["q"]; ok {
			if v, err := strconv.ParseFloat(q, 64); err == nil && v == 0 {
				continue
			}
		}
		switch {
		case mediaType == "*/*", mediaType == "application/*", mediaType == serializer.ContentTypeJSON:
			return true
		case strings.HasPrefix(mediaType, "application/") && strings.HasSuffix(mediaType, "+json"):
			return true
		}
	}
	return false
}

func writeNotAcceptable(w http.ResponseWriter, r *http.Request) {
	server.WriteError(w, r, http.StatusNotAcceptable, cnserrors.ErrCodeNotAcceptable,
		"Only application/json responses are available", false, map[string]any{
			"accept": r.Header.Get("Accept"),
		})
}
