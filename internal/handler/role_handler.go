package handler

import (
	"net/http"

	"anicms/internal/authz"
	"anicms/internal/dto"
	"anicms/internal/middleware"
	"anicms/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	roleBase       = "/admin/roles"
	permissionBase = "/admin/permissions"
)

type RoleHandler struct {
	roles service.RoleService
	perms service.PermissionService
}

func NewRoleHandler(roles service.RoleService, perms service.PermissionService) *RoleHandler {
	return &RoleHandler{roles: roles, perms: perms}
}

func (h *RoleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	manageRoles := middleware.RequireCapability(authz.CapManageRoles)
	rg.GET("/roles", manageRoles, h.ListRoles)
	rg.GET("/roles/:role_id", manageRoles, h.GetRole)
	rg.POST("/roles", manageRoles, h.CreateRole)
	rg.POST("/roles/:role_id", manageRoles, h.UpdateRole)
	rg.POST("/roles/:role_id/delete", manageRoles, h.DeleteRole)

	managePerms := middleware.RequireCapability(authz.CapManagePermissions)
	rg.GET("/permissions", managePerms, h.ListPermissions)
	rg.POST("/permissions", managePerms, h.CreatePermission)
	rg.POST("/permissions/:permission_id/delete", managePerms, h.DeletePermission)
}

func (h *RoleHandler) ListRoles(c *gin.Context) {
	ctx, cancel := reqCtx(c)
	defer cancel()

	list, err := h.roles.GetAll(ctx)
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list})
}

func (h *RoleHandler) GetRole(c *gin.Context) {
	id, ok := parseID(c, "role_id")
	if !ok {
		return
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	role, err := h.roles.GetByID(ctx, id)
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, role)
}

func (h *RoleHandler) CreateRole(c *gin.Context) {
	var form dto.RoleForm
	if err := c.ShouldBind(&form); err != nil {
		redirectError(c, roleBase, err)
		return
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.roles.Create(ctx, form.Name, form.PermissionIDs); err != nil {
		redirectError(c, roleBase, err)
		return
	}
	redirectSuccess(c, roleBase, "role created")
}

func (h *RoleHandler) UpdateRole(c *gin.Context) {
	id, ok := parseID(c, "role_id")
	if !ok {
		return
	}
	var form dto.RoleForm
	if err := c.ShouldBind(&form); err != nil {
		redirectError(c, roleBase, err)
		return
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.roles.Update(ctx, id, form.Name, form.PermissionIDs); err != nil {
		redirectError(c, roleBase, err)
		return
	}
	redirectSuccess(c, roleBase, "role updated")
}

func (h *RoleHandler) DeleteRole(c *gin.Context) {
	id, ok := parseID(c, "role_id")
	if !ok {
		return
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.roles.Delete(ctx, id); err != nil {
		redirectError(c, roleBase, err)
		return
	}
	redirectSuccess(c, roleBase, "role deleted")
}

func (h *RoleHandler) ListPermissions(c *gin.Context) {
	ctx, cancel := reqCtx(c)
	defer cancel()

	list, err := h.perms.GetAll(ctx)
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list})
}

func (h *RoleHandler) CreatePermission(c *gin.Context) {
	var form dto.PermissionForm
	if err := c.ShouldBind(&form); err != nil {
		redirectError(c, permissionBase, err)
		return
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.perms.Create(ctx, form.Name); err != nil {
		redirectError(c, permissionBase, err)
		return
	}
	redirectSuccess(c, permissionBase, "permission created")
}

func (h *RoleHandler) DeletePermission(c *gin.Context) {
	id, ok := parseID(c, "permission_id")
	if !ok {
		return
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.perms.Delete(ctx, id); err != nil {
		redirectError(c, permissionBase, err)
		return
	}
	redirectSuccess(c, permissionBase, "permission deleted")
}
