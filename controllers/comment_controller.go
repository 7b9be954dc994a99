package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cppla/ncnews/models"
	"github.com/cppla/ncnews/utils"
)

// CommentStore is the storage the comment handlers need.
type CommentStore interface {
	ListCommentsByArticle(ctx context.Context, articleID int64) ([]models.Comment, error)
	InsertComment(ctx context.Context, articleID int64, author, body string) (models.Comment, error)
	DeleteComment(ctx context.Context, id int64) error
	UpdateCommentVotes(ctx context.Context, id int64, inc int) (models.Comment, error)
	CheckArticleExists(ctx context.Context, id int64) error
	CheckUserExists(ctx context.Context, username string) error
}

// CommentController serves article comments and /api/comments.
type CommentController struct {
	store CommentStore
}

// NewCommentController creates a new CommentController instance.
func NewCommentController(store CommentStore) *CommentController {
	return &CommentController{store: store}
}

// ListComments returns an article's comments. The article check runs alongside the
// list query so that an unknown article is a 404 rather than an empty list.
func (cc *CommentController) ListComments(ctx *gin.Context) {
	id, err := pathID(ctx, "article_id")
	if err != nil {
		fail(ctx, err)
		return
	}
	comments, err := utils.JoinCheck(ctx.Request.Context(),
		func(c context.Context) ([]models.Comment, error) { return cc.store.ListCommentsByArticle(c, id) },
		func(c context.Context) error { return cc.store.CheckArticleExists(c, id) },
	)
	if err != nil {
		fail(ctx, err)
		return
	}
	utils.Respond(ctx, http.StatusOK, gin.H{"comments": comments})
}

// CreateComment adds a comment to an article. Shape errors are reported before any
// lookup; the article and username checks then run concurrently, and when both
// fail the article error is reported.
func (cc *CommentController) CreateComment(ctx *gin.Context) {
	id, err := pathID(ctx, "article_id")
	if err != nil {
		fail(ctx, err)
		return
	}

	var req struct {
		Username string `json:"username" binding:"required"`
		Body     string `json:"body" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		fail(ctx, utils.BadRequest("username and body are required"))
		return
	}
	body := utils.Sanitize(req.Body)
	if strings.TrimSpace(body) == "" {
		fail(ctx, utils.BadRequest("body cannot be empty"))
		return
	}

	reqCtx := ctx.Request.Context()
	// both checks always complete; a missing article outranks a missing user
	err = utils.JoinChecksInOrder(reqCtx,
		func(c context.Context) error { return cc.store.CheckArticleExists(c, id) },
		func(c context.Context) error { return cc.store.CheckUserExists(c, req.Username) },
	)
	if err != nil {
		fail(ctx, err)
		return
	}

	comment, err := cc.store.InsertComment(reqCtx, id, req.Username, body)
	if err != nil {
		fail(ctx, err)
		return
	}
	utils.Respond(ctx, http.StatusCreated, gin.H{"comment": comment})
}

// DeleteComment removes a comment and answers 204 with no body.
func (cc *CommentController) DeleteComment(ctx *gin.Context) {
	id, err := pathID(ctx, "comment_id")
	if err != nil {
		fail(ctx, err)
		return
	}
	if err := cc.store.DeleteComment(ctx.Request.Context(), id); err != nil {
		fail(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// PatchCommentVotes applies inc_votes to the comment.
func (cc *CommentController) PatchCommentVotes(ctx *gin.Context) {
	id, err := pathID(ctx, "comment_id")
	if err != nil {
		fail(ctx, err)
		return
	}
	inc, err := bindVotes(ctx)
	if err != nil {
		fail(ctx, err)
		return
	}
	comment, err := cc.store.UpdateCommentVotes(ctx.Request.Context(), id, inc)
	if err != nil {
		fail(ctx, err)
		return
	}
	utils.Respond(ctx, http.StatusOK, gin.H{"comment": comment})
}
