package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cppla/ncnews/models"
	"github.com/cppla/ncnews/utils"
)

// UserStore is the storage the user handlers need.
type UserStore interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, username string) (models.User, error)
}

// UserController serves the public user directory.
type UserController struct {
	store UserStore
}

// NewUserController creates a new UserController instance.
func NewUserController(store UserStore) *UserController {
	return &UserController{store: store}
}

// ListUsers returns every user.
func (u *UserController) ListUsers(ctx *gin.Context) {
	users, err := u.store.ListUsers(ctx.Request.Context())
	if err != nil {
		fail(ctx, err)
		return
	}
	utils.Respond(ctx, http.StatusOK, gin.H{"users": users})
}

// GetUser returns one user by username.
func (u *UserController) GetUser(ctx *gin.Context) {
	user, err := u.store.GetUser(ctx.Request.Context(), ctx.Param("username"))
	if err != nil {
		fail(ctx, err)
		return
	}
	utils.Respond(ctx, http.StatusOK, gin.H{"user": user})
}
