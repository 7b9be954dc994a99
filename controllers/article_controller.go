package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cppla/ncnews/models"
	"github.com/cppla/ncnews/repository"
	"github.com/cppla/ncnews/utils"
)

// ArticleStore is the storage the article handlers need.
type ArticleStore interface {
	ListArticles(ctx context.Context, q repository.ArticleQuery) (repository.ArticlePage, error)
	GetArticleByID(ctx context.Context, id int64) (models.Article, error)
	UpdateArticleVotes(ctx context.Context, id int64, inc int) (models.Article, error)
	InsertArticle(ctx context.Context, in models.NewArticle) (int64, error)
	CheckTopicExists(ctx context.Context, slug string) error
}

// ArticleController serves /api/articles.
type ArticleController struct {
	store ArticleStore
}

// NewArticleController creates a new ArticleController instance.
func NewArticleController(store ArticleStore) *ArticleController {
	return &ArticleController{store: store}
}

// ListArticles returns articles filtered by topic and sorted by sort_by/order,
// optionally paginated with limit/p. A topic filter that names no topic is a 404,
// while an existing topic without articles yields an empty list.
func (a *ArticleController) ListArticles(ctx *gin.Context) {
	q, err := repository.ParseArticleQuery(
		ctx.Query("topic"),
		ctx.Query("sort_by"),
		ctx.Query("order"),
		ctx.Query("limit"),
		ctx.Query("p"),
	)
	if err != nil {
		fail(ctx, err)
		return
	}

	var checkTopic func(context.Context) error
	if q.Topic != "" {
		checkTopic = func(c context.Context) error { return a.store.CheckTopicExists(c, q.Topic) }
	}

	page, err := utils.JoinCheck(ctx.Request.Context(),
		func(c context.Context) (repository.ArticlePage, error) { return a.store.ListArticles(c, q) },
		checkTopic,
	)
	if err != nil {
		fail(ctx, err)
		return
	}
	utils.Respond(ctx, http.StatusOK, page)
}

// GetArticle returns a single article with body and comment_count.
func (a *ArticleController) GetArticle(ctx *gin.Context) {
	id, err := pathID(ctx, "article_id")
	if err != nil {
		fail(ctx, err)
		return
	}
	article, err := a.store.GetArticleByID(ctx.Request.Context(), id)
	if err != nil {
		fail(ctx, err)
		return
	}
	utils.Respond(ctx, http.StatusOK, gin.H{"article": article})
}

// PatchArticleVotes applies inc_votes to the article.
func (a *ArticleController) PatchArticleVotes(ctx *gin.Context) {
	id, err := pathID(ctx, "article_id")
	if err != nil {
		fail(ctx, err)
		return
	}
	inc, err := bindVotes(ctx)
	if err != nil {
		fail(ctx, err)
		return
	}
	article, err := a.store.UpdateArticleVotes(ctx.Request.Context(), id, inc)
	if err != nil {
		fail(ctx, err)
		return
	}
	utils.Respond(ctx, http.StatusOK, gin.H{"article": article})
}

// CreateArticle inserts an article and serves it back as GetArticle would.
// Unknown author or topic are reported by the foreign keys.
func (a *ArticleController) CreateArticle(ctx *gin.Context) {
	var req struct {
		Author        string `json:"author" binding:"required"`
		Title         string `json:"title" binding:"required"`
		Body          string `json:"body" binding:"required"`
		Topic         string `json:"topic" binding:"required"`
		ArticleImgURL string `json:"article_img_url"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		fail(ctx, utils.BadRequest("invalid article payload"))
		return
	}

	in := models.NewArticle{
		Author:        req.Author,
		Title:         strings.TrimSpace(utils.SanitizeStrict(req.Title)),
		Body:          utils.Sanitize(req.Body),
		Topic:         req.Topic,
		ArticleImgURL: strings.TrimSpace(req.ArticleImgURL),
	}
	if in.Title == "" || strings.TrimSpace(in.Body) == "" {
		fail(ctx, utils.BadRequest("title and body cannot be empty"))
		return
	}

	id, err := a.store.InsertArticle(ctx.Request.Context(), in)
	if err != nil {
		fail(ctx, err)
		return
	}
	article, err := a.store.GetArticleByID(ctx.Request.Context(), id)
	if err != nil {
		fail(ctx, err)
		return
	}
	utils.Respond(ctx, http.StatusCreated, gin.H{"article": article})
}
