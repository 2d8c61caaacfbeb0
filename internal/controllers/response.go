package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"octofit/internal/models"
	"octofit/internal/repository"

	"github.com/gin-gonic/gin"
)

// Error kinds reported in the "kind" field of error responses.
const (
	KindNotFound       = "not_found"
	KindBadRequest     = "bad_request"
	KindValidation     = "validation_error"
	KindConflict       = "conflict"
	KindAmbiguousMatch = "ambiguous_match"
	KindInternal       = "internal"
)

// ErrorResponse documents the error envelope.
type ErrorResponse struct {
	Status  string            `json:"status" example:"error"`
	Kind    string            `json:"kind" example:"not_found"`
	Message string            `json:"message" example:"User not found"`
	Error   string            `json:"error" example:"record not found: users 665f1c2e9b1e8a3f4c2d1a01"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// respondError maps a store or validation error to its HTTP status and
// writes the error envelope. action is the verb used in the message of
// unexpected failures ("create", "update", ...).
func respondError(c *gin.Context, resource, action string, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"kind":    KindValidation,
			"message": "Invalid " + resource + " data",
			"error":   verr.Error(),
			"fields":  verr.Fields,
		})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"kind":    KindNotFound,
			"message": capitalize(resource) + " not found",
			"error":   err.Error(),
		})
	case errors.Is(err, repository.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{
			"status":  "error",
			"kind":    KindConflict,
			"message": capitalize(resource) + " already exists",
			"error":   err.Error(),
		})
	case errors.Is(err, repository.ErrAmbiguousMatch):
		log.Printf("Data integrity defect while trying to %s %s: %v", action, resource, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"kind":    KindAmbiguousMatch,
			"message": "Identifier matches more than one " + resource,
			"error":   err.Error(),
		})
	default:
		log.Printf("Failed to %s %s: %v", action, resource, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"kind":    KindInternal,
			"message": "Failed to " + action + " " + resource,
			"error":   err.Error(),
		})
	}
}

func respondBadRequest(c *gin.Context, message, detail string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  "error",
		"kind":    KindBadRequest,
		"message": message,
		"error":   detail,
	})
}

// respondBindError reports a body that could not be decoded. Type
// mismatches name the field; anything else is a malformed body.
func respondBindError(c *gin.Context, resource string, err error) {
	if verr, ok := models.FromDecodeError(err); ok {
		respondError(c, resource, "decode", verr)
		return
	}
	respondBadRequest(c, "Invalid request data", err.Error())
}

// requireQuery returns a query parameter, answering 400 when it is absent
// or empty.
func requireQuery(c *gin.Context, name string) (string, bool) {
	value := c.Query(name)
	if value == "" {
		respondBadRequest(c, "Missing query parameter", name+" parameter is required")
		return "", false
	}
	return value, true
}
