package repository

import (
	"context"

	"github.com/cppla/ncnews/models"
	"github.com/cppla/ncnews/utils"
)

// ListUsers returns every user ordered by username.
func (r *Repository) ListUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := r.conn(ctx).Raw("SELECT username, name, avatar_url FROM users ORDER BY username").Scan(&users).Error; err != nil {
		return nil, utils.ClassifyDBError(err)
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// GetUser returns the user or NotFound(Username).
func (r *Repository) GetUser(ctx context.Context, username string) (models.User, error) {
	var user models.User
	err := r.scanOne(ctx, utils.EntityUsername, &user, "SELECT username, name, avatar_url FROM users WHERE username = ?", username)
	return user, err
}

// CheckUserExists returns NotFound(Username) when username is unknown.
func (r *Repository) CheckUserExists(ctx context.Context, username string) error {
	return r.exists(ctx, utils.EntityUsername, "SELECT EXISTS (SELECT 1 FROM users WHERE username = ?)", username)
}
