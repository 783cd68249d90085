package handler

import (
	"net/http"

	"anicms/internal/authz"
	"anicms/internal/dto"
	"anicms/internal/middleware"
	"anicms/internal/service"

	"github.com/gin-gonic/gin"
)

const userBase = "/admin/users"

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	manage := middleware.RequireCapability(authz.CapManageUsers)
	rg.GET("/", manage, h.List)
	rg.GET("/:user_id", manage, h.Get)
	rg.POST("/", manage, h.Create)
	rg.POST("/:user_id", manage, h.Update)
	rg.POST("/:user_id/delete", manage, h.Delete)
}

func (h *UserHandler) List(c *gin.Context) {
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

func (h *UserHandler) Get(c *gin.Context) {
	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.svc.GetByID(ctx, c.Param("user_id"))
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) Create(c *gin.Context) {
	in, err := h.bindInput(c)
	if err != nil {
		redirectError(c, userBase, err)
		return
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.svc.Create(ctx, in); err != nil {
		redirectError(c, userBase, err)
		return
	}
	redirectSuccess(c, userBase, "user created")
}

func (h *UserHandler) Update(c *gin.Context) {
	in, err := h.bindInput(c)
	if err != nil {
		redirectError(c, userBase, err)
		return
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.svc.Update(ctx, c.Param("user_id"), in); err != nil {
		redirectError(c, userBase, err)
		return
	}
	redirectSuccess(c, userBase, "user updated")
}

func (h *UserHandler) Delete(c *gin.Context) {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.svc.Delete(ctx, c.Param("user_id")); err != nil {
		redirectError(c, userBase, err)
		return
	}
	redirectSuccess(c, userBase, "user deleted")
}

func (h *UserHandler) bindInput(c *gin.Context) (service.UserInput, error) {
	var form dto.UserForm
	if err := c.ShouldBind(&form); err != nil {
		return service.UserInput{}, err
	}
	in := form.ToInput()
	var err error
	if in.Avatar, err = formFile(c, "avatar"); err != nil {
		return service.UserInput{}, err
	}
	return in, nil
}
