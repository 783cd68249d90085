package handler

import (
	"net/http"

	"anicms/internal/authz"
	"anicms/internal/dto"
	"anicms/internal/middleware"
	"anicms/internal/repository"
	"anicms/internal/service"

	"github.com/gin-gonic/gin"
)

// LookupCapabilities names the four capability tags guarding one lookup
// table's routes.
type LookupCapabilities struct {
	Page   authz.Capability
	Create authz.Capability
	Update authz.Capability
	Delete authz.Capability
}

// LookupHandler serves the seasons, studios, languages and types admin
// pages, which share one form shape and one route layout.
type LookupHandler[T repository.Lookup, PT service.LookupPtr[T]] struct {
	svc  *service.LookupService[T, PT]
	noun string
	base string
	caps LookupCapabilities
}

func NewLookupHandler[T repository.Lookup, PT service.LookupPtr[T]](
	svc *service.LookupService[T, PT],
	noun, base string,
	caps LookupCapabilities,
) *LookupHandler[T, PT] {
	return &LookupHandler[T, PT]{svc: svc, noun: noun, base: base, caps: caps}
}

func (h *LookupHandler[T, PT]) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", middleware.RequireCapability(h.caps.Page), h.List)
	rg.GET("/:id", middleware.RequireCapability(h.caps.Page), h.Get)
	rg.POST("/", middleware.RequireCapability(h.caps.Create), h.Create)
	rg.POST("/:id", middleware.RequireCapability(h.caps.Update), h.Update)
	rg.POST("/:id/delete", middleware.RequireCapability(h.caps.Delete), h.Delete)
}

func (h *LookupHandler[T, PT]) List(c *gin.Context) {
	ctx, cancel := reqCtx(c)
	defer cancel()

	list, err := h.svc.GetAll(ctx)
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list})
}

func (h *LookupHandler[T, PT]) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	item, err := h.svc.GetByID(ctx, id)
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *LookupHandler[T, PT]) Create(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	var form dto.LookupForm
	if err := c.ShouldBind(&form); err != nil {
		redirectError(c, h.base, err)
		return
	}
	in, err := form.ToInput()
	if err != nil {
		redirectError(c, h.base, err)
		return
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.svc.Create(ctx, actor.UserID, in); err != nil {
		redirectError(c, h.base, err)
		return
	}
	redirectSuccess(c, h.base, h.noun+" created")
}

func (h *LookupHandler[T, PT]) Update(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var form dto.LookupForm
	if err := c.ShouldBind(&form); err != nil {
		redirectError(c, h.base, err)
		return
	}
	in, err := form.ToInput()
	if err != nil {
		redirectError(c, h.base, err)
		return
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.svc.Update(ctx, id, actor.UserID, in); err != nil {
		redirectError(c, h.base, err)
		return
	}
	redirectSuccess(c, h.base, h.noun+" updated")
}

func (h *LookupHandler[T, PT]) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.svc.Delete(ctx, id); err != nil {
		redirectError(c, h.base, err)
		return
	}
	redirectSuccess(c, h.base, h.noun+" deleted")
}
