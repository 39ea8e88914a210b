package handlers

import (
	"net/http"

	"casexpert/middleware"
	"casexpert/models"
	"casexpert/services/user"
	"casexpert/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves login, the current account and admin account edits.
type UserHandler struct {
	Users user.UserService
}

func NewUserHandler(users user.UserService) *UserHandler {
	return &UserHandler{Users: users}
}

func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req models.LoginRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}
	resp, err := h.Users.Login(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	getLogger(c).Info("LoginHandler: session issued", zap.String("userID", resp.User.ID))
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) LogoutHandler(c *gin.Context) {
	if err := h.Users.Logout(c.Request.Context(), middleware.TokenFrom(c)); err != nil {
		respondError(c, utils.WrapError(utils.KindInternal, "failed to revoke session", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *UserHandler) MeHandler(c *gin.Context) {
	caller := middleware.CallerFrom(c)
	if caller == nil {
		respondError(c, utils.ErrUnauthorized)
		return
	}
	u, err := h.Users.Me(c.Request.Context(), *caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}

func (h *UserHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.Users.GetAllUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": users})
}

func (h *UserHandler) PatchUserHandler(c *gin.Context) {
	var patch models.UserPatch
	if err := bindJSON(c, &patch); err != nil {
		respondError(c, err)
		return
	}
	u, err := h.Users.PatchUser(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}
