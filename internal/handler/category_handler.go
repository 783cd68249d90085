package handler

import (
	"net/http"

	"anicms/internal/authz"
	"anicms/internal/dto"
	"anicms/internal/middleware"
	"anicms/internal/service"

	"github.com/gin-gonic/gin"
)

const categoryBase = "/admin/categories"

type CategoryHandler struct {
	svc service.CategoryService
}

func NewCategoryHandler(svc service.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", middleware.RequireCapability(authz.CapPageCategory), h.List)
	rg.GET("/:category_id", middleware.RequireCapability(authz.CapPageCategory), h.Get)
	rg.GET("/:category_id/animes", middleware.RequireCapability(authz.CapPageCategory), h.Animes)
	rg.POST("/", middleware.RequireCapability(authz.CapCreateCategory), h.Create)
	rg.POST("/:category_id", middleware.RequireCapability(authz.CapUpdateCategory), h.Update)
	rg.POST("/:category_id/delete", middleware.RequireCapability(authz.CapDeleteCategory), h.Delete)
}

func (h *CategoryHandler) List(c *gin.Context) {
	ctx, cancel := reqCtx(c)
	defer cancel()

	list, err := h.svc.GetAll(ctx)
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list})
}

func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "category_id")
	if !ok {
		return
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	cat, err := h.svc.GetByID(ctx, id)
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *CategoryHandler) Animes(c *gin.Context) {
	id, ok := parseID(c, "category_id")
	if !ok {
		return
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	list, err := h.svc.GetAnimesByCategory(ctx, id)
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list})
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var form dto.CategoryForm
	if err := c.ShouldBind(&form); err != nil {
		redirectError(c, categoryBase, err)
		return
	}
	cat := form.ToModel()
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.svc.Create(ctx, &cat); err != nil {
		redirectError(c, categoryBase, err)
		return
	}
	redirectSuccess(c, categoryBase, "category created")
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "category_id")
	if !ok {
		return
	}
	var form dto.CategoryForm
	if err := c.ShouldBind(&form); err != nil {
		redirectError(c, categoryBase, err)
		return
	}
	cat := form.ToModel()
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.svc.Update(ctx, id, &cat); err != nil {
		redirectError(c, categoryBase, err)
		return
	}
	redirectSuccess(c, categoryBase, "category updated")
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "category_id")
	if !ok {
		return
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.svc.Delete(ctx, id); err != nil {
		redirectError(c, categoryBase, err)
		return
	}
	redirectSuccess(c, categoryBase, "category deleted")
}
