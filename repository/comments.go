package repository

import (
	"context"

	"github.com/cppla/ncnews/models"
	"github.com/cppla/ncnews/utils"
)

const commentColumns = "comment_id, article_id, author, body, votes, created_at"

// ListCommentsByArticle returns the article's comments, newest first. It does not
// check that the article exists; an unknown id yields an empty list.
func (r *Repository) ListCommentsByArticle(ctx context.Context, articleID int64) ([]models.Comment, error) {
	comments := []models.Comment{}
	err := r.conn(ctx).
		Raw("SELECT "+commentColumns+" FROM comments WHERE article_id = ? ORDER BY created_at DESC, comment_id DESC", articleID).
		Scan(&comments).Error
	if err != nil {
		return nil, utils.ClassifyDBError(err)
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return comments, nil
}

// InsertComment adds a comment to an article and returns the stored row.
func (r *Repository) InsertComment(ctx context.Context, articleID int64, author, body string) (models.Comment, error) {
	var comment models.Comment
	err := r.scanOne(ctx, utils.EntityComment, &comment,
		"INSERT INTO comments (article_id, author, body) VALUES (?, ?, ?) RETURNING "+commentColumns,
		articleID, author, body)
	return comment, err
}

// DeleteComment removes a comment. A missing id is NotFound(Comment).
func (r *Repository) DeleteComment(ctx context.Context, id int64) error {
	res := r.conn(ctx).Exec("DELETE FROM comments WHERE comment_id = ?", id)
	if res.Error != nil {
		return utils.ClassifyDBError(res.Error)
	}
	if res.RowsAffected == 0 {
		return utils.NotFound(utils.EntityComment)
	}
	return nil
}

// UpdateCommentVotes adds inc to the comment's votes and returns the updated row.
func (r *Repository) UpdateCommentVotes(ctx context.Context, id int64, inc int) (models.Comment, error) {
	var comment models.Comment
	err := r.scanOne(ctx, utils.EntityComment, &comment,
		"UPDATE comments SET votes = votes + ? WHERE comment_id = ? RETURNING "+commentColumns,
		inc, id)
	return comment, err
}

// CheckCommentExists returns NotFound(Comment) when no comment has id.
func (r *Repository) CheckCommentExists(ctx context.Context, id int64) error {
	return r.exists(ctx, utils.EntityComment, "SELECT EXISTS (SELECT 1 FROM comments WHERE comment_id = ?)", id)
}
