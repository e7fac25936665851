package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"ucpmaroc-backend/internal/models"
)

// ActorDirectory reads public talent profiles.
type ActorDirectory interface {
	ListActors() ([]models.Actor, error)
	GetActorBySlug(slug string) (*models.Actor, error)
}

type ActorsHandler struct {
	directory ActorDirectory
}

func NewActorsHandler(directory ActorDirectory) *ActorsHandler {
	return &ActorsHandler{
		directory: directory,
	}
}

// ListActors godoc
// @Summary     List talent profiles
// @Tags        actors
// @Produce     json
// @Success     200 {object} models.ActorListResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /actors [get]
func (h *ActorsHandler) ListActors(c *gin.Context) {
	if h.directory == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "directory not available"})
		return
	}

	actors, err := h.directory.ListActors()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list actors",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.ActorListResponse{Actors: actors})
}

// GetActor godoc
// @Summary     Get a talent profile by slug
// @Tags        actors
// @Produce     json
// @Param       slug path string true "Profile slug"
// @Success     200 {object} models.Actor
// @Failure     404 {object} models.ErrorResponse
// @Router      /actors/{slug} [get]
func (h *ActorsHandler) GetActor(c *gin.Context) {
	if h.directory == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "directory not available"})
		return
	}

	actor, err := h.directory.GetActorBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "actor not found",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, actor)
}
