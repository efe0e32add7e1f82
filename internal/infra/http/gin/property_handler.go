package ginserver

import (
	"errors"
	"net/http"
	"strings"

	gin "github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"staycal/internal/app/view"
	"staycal/internal/infra/storage/memory"
)

type PropertyHandler struct {
	Repo *memory.PropertyRepository
}

// List returns the registered properties.
func (h PropertyHandler) List(c *gin.Context) {
	props, err := h.Repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": props})
}

// Get returns a single property by id.
func (h PropertyHandler) Get(c *gin.Context) {
	prop, err := h.Repo.ByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, memory.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, prop)
}

type registerPropertyRequest struct {
	ID   string `json:"id"`
	Name string `json:"name" binding:"required"`
}

// Register adds a property and pulls its reservations into the loaded set
// on the next reload.
func (h PropertyHandler) Register(c *gin.Context) {
	var req registerPropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	prop := view.Property{ID: strings.TrimSpace(req.ID), Name: strings.TrimSpace(req.Name)}
	if prop.ID == "" {
		prop.ID = uuid.NewString()
	}
	if err := h.Repo.Register(c.Request.Context(), prop); err != nil {
		if errors.Is(err, memory.ErrPropertyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, prop)
}

var _ PropertyHTTP = PropertyHandler{}
