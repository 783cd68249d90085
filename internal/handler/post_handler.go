package handler

import (
	"net/http"

	"anicms/internal/authz"
	"anicms/internal/dto"
	"anicms/internal/middleware"
	"anicms/internal/service"

	"github.com/gin-gonic/gin"
)

const postBase = "/admin/posts"

type PostHandler struct {
	svc service.PostService
}

func NewPostHandler(svc service.PostService) *PostHandler {
	return &PostHandler{svc: svc}
}

func (h *PostHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", middleware.RequireCapability(authz.CapPagePost), h.List)
	rg.GET("/:post_id", middleware.RequireCapability(authz.CapPagePost), h.Get)
	rg.POST("/", middleware.RequireCapability(authz.CapCreatePost), h.Create)
	rg.POST("/:post_id", middleware.RequireCapability(authz.CapUpdatePost), h.Update)
	rg.POST("/:post_id/delete", middleware.RequireCapability(authz.CapDeletePost), h.Delete)
}

func (h *PostHandler) List(c *gin.Context) {
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

func (h *PostHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "post_id")
	if !ok {
		return
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	post, err := h.svc.GetByID(ctx, id)
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Create(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	in, err := h.bindInput(c)
	if err != nil {
		redirectError(c, postBase, err)
		return
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.svc.Create(ctx, actor.UserID, in); err != nil {
		redirectError(c, postBase, err)
		return
	}
	redirectSuccess(c, postBase, "post created")
}

func (h *PostHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "post_id")
	if !ok {
		return
	}
	in, err := h.bindInput(c)
	if err != nil {
		redirectError(c, postBase, err)
		return
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.svc.Update(ctx, id, in); err != nil {
		redirectError(c, postBase, err)
		return
	}
	redirectSuccess(c, postBase, "post updated")
}

func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "post_id")
	if !ok {
		return
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.svc.Delete(ctx, id); err != nil {
		redirectError(c, postBase, err)
		return
	}
	redirectSuccess(c, postBase, "post deleted")
}

func (h *PostHandler) bindInput(c *gin.Context) (service.PostInput, error) {
	var form dto.PostForm
	if err := c.ShouldBind(&form); err != nil {
		return service.PostInput{}, err
	}
	in := form.ToInput()
	var err error
	if in.Image, err = formFile(c, "image"); err != nil {
		return service.PostInput{}, err
	}
	return in, nil
}
