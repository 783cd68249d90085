package handler

import (
	"errors"
	"mime/multipart"
	"net/http"

	"anicms/internal/authz"
	"anicms/internal/dto"
	"anicms/internal/middleware"
	"anicms/internal/service"

	"github.com/gin-gonic/gin"
)

const episodeBase = "/admin/episodes"

type EpisodeHandler struct {
	svc service.EpisodeService
}

func NewEpisodeHandler(svc service.EpisodeService) *EpisodeHandler {
	return &EpisodeHandler{svc: svc}
}

func (h *EpisodeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", middleware.RequireCapability(authz.CapPageEpisode), h.List)
	rg.GET("/search", middleware.RequireCapability(authz.CapPageEpisode), h.Search)
	rg.GET("/:episode_id", middleware.RequireCapability(authz.CapPageEpisode), h.Get)
	rg.POST("/", middleware.RequireCapability(authz.CapCreateEpisode), h.Create)
	rg.POST("/:episode_id", middleware.RequireCapability(authz.CapUpdateEpisode), h.Update)
	rg.POST("/:episode_id/delete", middleware.RequireCapability(authz.CapDeleteEpisode), h.Delete)
}

func (h *EpisodeHandler) List(c *gin.Context) {
	page, pageSize := pagination(c)
	ctx, cancel := reqCtx(c)
	defer cancel()

	list, total, err := h.svc.GetAll(ctx, page, pageSize)
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":       list,
		"pagination": pageMeta(page, pageSize, total),
	})
}

func (h *EpisodeHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query"})
		return
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	list, err := h.svc.Search(ctx, q)
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list})
}

func (h *EpisodeHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "episode_id")
	if !ok {
		return
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	ep, err := h.svc.GetByID(ctx, id)
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, ep)
}

func (h *EpisodeHandler) Create(c *gin.Context) {
	in, err := h.bindInput(c)
	if err != nil {
		redirectError(c, episodeBase, err)
		return
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.svc.Create(ctx, in); err != nil {
		redirectError(c, episodeBase, err)
		return
	}
	redirectSuccess(c, episodeBase, "episode created")
}

func (h *EpisodeHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "episode_id")
	if !ok {
		return
	}
	in, err := h.bindInput(c)
	if err != nil {
		redirectError(c, episodeBase, err)
		return
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.svc.Update(ctx, id, in); err != nil {
		redirectError(c, episodeBase, err)
		return
	}
	redirectSuccess(c, episodeBase, "episode updated")
}

func (h *EpisodeHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "episode_id")
	if !ok {
		return
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.svc.Delete(ctx, id); err != nil {
		redirectError(c, episodeBase, err)
		return
	}
	redirectSuccess(c, episodeBase, "episode deleted")
}

func (h *EpisodeHandler) bindInput(c *gin.Context) (service.EpisodeInput, error) {
	var form dto.EpisodeForm
	if err := c.ShouldBind(&form); err != nil {
		return service.EpisodeInput{}, err
	}
	in, err := form.ToInput()
	if err != nil {
		return service.EpisodeInput{}, err
	}
	if in.Thumbnail, err = formFile(c, "thumbnail"); err != nil {
		return service.EpisodeInput{}, err
	}
	if in.Banner, err = formFile(c, "banner"); err != nil {
		return service.EpisodeInput{}, err
	}
	return in, nil
}

// formFile treats a missing file field as no upload rather than an error.
func formFile(c *gin.Context, name string) (*multipart.FileHeader, error) {
	f, err := c.FormFile(name)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	return f, nil
}
