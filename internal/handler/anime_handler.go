package handler

import (
	"net/http"

	"anicms/internal/authz"
	"anicms/internal/dto"
	"anicms/internal/middleware"
	"anicms/internal/service"

	"github.com/gin-gonic/gin"
)

const animeBase = "/admin/animes"

type AnimeHandler struct {
	svc service.AnimeService
}

func NewAnimeHandler(svc service.AnimeService) *AnimeHandler {
	return &AnimeHandler{svc: svc}
}

func (h *AnimeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", middleware.RequireCapability(authz.CapPageAnime), h.List)
	rg.GET("/:anime_id", middleware.RequireCapability(authz.CapPageAnime), h.Get)
	rg.POST("/", middleware.RequireCapability(authz.CapCreateAnime), h.Create)
	rg.POST("/:anime_id", middleware.RequireCapability(authz.CapUpdateAnime), h.Update)
	rg.POST("/:anime_id/delete", middleware.RequireCapability(authz.CapDeleteAnime), h.Delete)
}

func (h *AnimeHandler) List(c *gin.Context) {
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

func (h *AnimeHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "anime_id")
	if !ok {
		return
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	anime, err := h.svc.GetByID(ctx, id)
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, anime)
}

func (h *AnimeHandler) Create(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	in, err := h.bindInput(c)
	if err != nil {
		redirectError(c, animeBase, err)
		return
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.svc.Create(ctx, actor.UserID, in); err != nil {
		redirectError(c, animeBase, err)
		return
	}
	redirectSuccess(c, animeBase, "anime created")
}

func (h *AnimeHandler) Update(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	id, ok := parseID(c, "anime_id")
	if !ok {
		return
	}
	in, err := h.bindInput(c)
	if err != nil {
		redirectError(c, animeBase, err)
		return
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.svc.Update(ctx, id, actor.UserID, in); err != nil {
		redirectError(c, animeBase, err)
		return
	}
	redirectSuccess(c, animeBase, "anime updated")
}

func (h *AnimeHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "anime_id")
	if !ok {
		return
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.svc.Delete(ctx, id); err != nil {
		redirectError(c, animeBase, err)
		return
	}
	redirectSuccess(c, animeBase, "anime deleted")
}

func (h *AnimeHandler) bindInput(c *gin.Context) (service.AnimeInput, error) {
	var form dto.AnimeForm
	if err := c.ShouldBind(&form); err != nil {
		return service.AnimeInput{}, err
	}
	in, err := form.ToInput()
	if err != nil {
		return service.AnimeInput{}, err
	}
	if in.Image, err = formFile(c, "image"); err != nil {
		return service.AnimeInput{}, err
	}
	if in.Cover, err = formFile(c, "cover"); err != nil {
		return service.AnimeInput{}, err
	}
	return in, nil
}
