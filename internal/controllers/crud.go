package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"octofit/internal/models"
	"octofit/internal/repository"

	"github.com/gin-gonic/gin"
)

// crud implements the list/get/create/update/delete handlers shared by
// every record type. Handlers write their own error responses and report
// whether the caller should continue.
type crud[T any, PT models.DocumentPtr[T]] struct {
	resource string
	store    repository.Store[T]
	findAll  func(ctx context.Context) ([]T, error)
	now      func() time.Time

	// prepare runs on the full record after validation, before it is
	// written.
	prepare func(PT) error
	// written runs after a successful create, update or delete.
	written func(ctx context.Context, id string)
}

func newCrud[T any, PT models.DocumentPtr[T]](resource string, store repository.Store[T], findAll func(context.Context) ([]T, error)) *crud[T, PT] {
	return &crud[T, PT]{
		resource: resource,
		store:    store,
		findAll:  findAll,
		now:      time.Now,
	}
}

func (h *crud[T, PT]) list(c *gin.Context) ([]T, bool) {
	records, err := h.findAll(c.Request.Context())
	if err != nil {
		respondError(c, h.resource, "list", err)
		return nil, false
	}
	return records, true
}

func (h *crud[T, PT]) get(c *gin.Context) (*T, bool) {
	record, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.resource, "get", err)
		return nil, false
	}
	return record, true
}

func (h *crud[T, PT]) create(c *gin.Context) (*T, bool) {
	var record T
	if err := c.ShouldBindJSON(&record); err != nil {
		respondBindError(c, h.resource, err)
		return nil, false
	}

	doc := PT(&record)
	doc.ApplyDefaults(h.now())
	if err := models.Validate(doc); err != nil {
		respondError(c, h.resource, "validate", err)
		return nil, false
	}
	if h.prepare != nil {
		if err := h.prepare(doc); err != nil {
			respondError(c, h.resource, "create", err)
			return nil, false
		}
	}

	ctx := c.Request.Context()
	if err := h.store.Create(ctx, &record); err != nil {
		respondError(c, h.resource, "create", err)
		return nil, false
	}
	h.afterWrite(ctx, doc.GetID())
	return &record, true
}

// update applies a partial payload: only the fields present in the body
// are written. PUT and PATCH share it.
func (h *crud[T, PT]) update(c *gin.Context) (*T, bool) {
	ctx := c.Request.Context()
	existing, err := h.store.Get(ctx, c.Param("id"))
	if err != nil {
		respondError(c, h.resource, "update", err)
		return nil, false
	}
	id := PT(existing).GetID()

	body, err := c.GetRawData()
	if err != nil {
		respondBadRequest(c, "Invalid request data", err.Error())
		return nil, false
	}
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		respondBindError(c, h.resource, err)
		return nil, false
	}

	merged := *existing
	if err := json.Unmarshal(body, &merged); err != nil {
		respondBindError(c, h.resource, err)
		return nil, false
	}
	doc := PT(&merged)
	doc.SetID(id)
	if err := models.Validate(doc); err != nil {
		respondError(c, h.resource, "validate", err)
		return nil, false
	}
	if h.prepare != nil {
		if err := h.prepare(doc); err != nil {
			respondError(c, h.resource, "update", err)
			return nil, false
		}
	}

	updated, err := h.store.Update(ctx, id, models.PatchFields(doc, payload))
	if err != nil {
		respondError(c, h.resource, "update", err)
		return nil, false
	}
	h.afterWrite(ctx, id)
	return updated, true
}

func (h *crud[T, PT]) remove(c *gin.Context) bool {
	ctx := c.Request.Context()
	id := c.Param("id")
	if err := h.store.Delete(ctx, id); err != nil {
		respondError(c, h.resource, "delete", err)
		return false
	}
	h.afterWrite(ctx, id)
	return true
}

func (h *crud[T, PT]) afterWrite(ctx context.Context, id string) {
	if h.written != nil {
		h.written(ctx, id)
	}
}

// noContent answers a successful delete.
func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

