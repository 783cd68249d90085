package handler

import (
	"net/http"

	"anicms/internal/service"

	"github.com/gin-gonic/gin"
)

// PublicHandler serves the unauthenticated viewer pages. Only active animes
// and published episodes are visible here.
type PublicHandler struct {
	animes   service.AnimeService
	episodes service.EpisodeService
}

func NewPublicHandler(animes service.AnimeService, episodes service.EpisodeService) *PublicHandler {
	return &PublicHandler{animes: animes, episodes: episodes}
}

func (h *PublicHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/catalog/:anime_id", h.Anime)
	rg.GET("/watch/:episode_id", h.Episode)
	rg.GET("/search", h.Search)
}

func (h *PublicHandler) Anime(c *gin.Context) {
	id, ok := parseID(c, "anime_id")
	if !ok {
		return
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	anime, err := h.animes.GetActive(ctx, id)
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, anime)
}

func (h *PublicHandler) Episode(c *gin.Context) {
	id, ok := parseID(c, "episode_id")
	if !ok {
		return
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	ep, err := h.episodes.GetPublished(ctx, id)
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, ep)
}

func (h *PublicHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query"})
		return
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	list, err := h.episodes.Search(ctx, q)
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list})
}
