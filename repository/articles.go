package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/cppla/ncnews/models"
	"github.com/cppla/ncnews/utils"
)

// ArticlePage is one page of the article list and the size of the unpaginated result.
type ArticlePage struct {
	Articles   []models.ArticleSummary `json:"articles"`
	TotalCount int64                   `json:"total_count"`
}

// summarySelect selects the list projection; the LEFT JOIN keeps zero-comment articles.
func summarySelect() sq.SelectBuilder {
	return builder.
		Select(
			"a.article_id",
			"a.author",
			"a.title",
			"a.topic",
			"a.created_at",
			"a.votes",
			"a.article_img_url",
			"COUNT(c.comment_id)::INT AS comment_count",
		).
		From("articles a").
		LeftJoin("comments c ON c.article_id = a.article_id").
		GroupBy("a.article_id")
}

// ListArticles returns the articles matching q together with the total match count.
// It does not check that q.Topic exists; an unknown topic simply matches nothing.
func (r *Repository) ListArticles(ctx context.Context, q ArticleQuery) (ArticlePage, error) {
	page := ArticlePage{Articles: []models.ArticleSummary{}}

	orderBy, err := q.orderBy()
	if err != nil {
		return page, err
	}

	list := summarySelect().OrderBy(orderBy...)
	count := builder.Select("COUNT(*)").From("articles a")
	if q.Topic != "" {
		list = list.Where(sq.Eq{"a.topic": q.Topic})
		count = count.Where(sq.Eq{"a.topic": q.Topic})
	}
	if q.Limit > 0 {
		list = list.Limit(uint64(q.Limit)).Offset(uint64((q.Page - 1) * q.Limit))
	}

	countSQL, countArgs, err := count.ToSql()
	if err != nil {
		return page, utils.Internal(err)
	}
	if err := r.conn(ctx).Raw(countSQL, countArgs...).Scan(&page.TotalCount).Error; err != nil {
		return page, utils.ClassifyDBError(err)
	}

	listSQL, listArgs, err := list.ToSql()
	if err != nil {
		return page, utils.Internal(err)
	}
	if err := r.conn(ctx).Raw(listSQL, listArgs...).Scan(&page.Articles).Error; err != nil {
		return page, utils.ClassifyDBError(err)
	}
	if page.Articles == nil {
		page.Articles = []models.ArticleSummary{}
	}
	return page, nil
}

// GetArticleByID returns the full article including body and comment_count.
func (r *Repository) GetArticleByID(ctx context.Context, id int64) (models.Article, error) {
	var article models.Article
	query, args, err := summarySelect().
		Column("a.body").
		Where(sq.Eq{"a.article_id": id}).
		ToSql()
	if err != nil {
		return article, utils.Internal(err)
	}
	err = r.scanOne(ctx, utils.EntityArticle, &article, query, args...)
	return article, err
}

const updateArticleVotesSQL = `
WITH updated AS (
	UPDATE articles SET votes = votes + ? WHERE article_id = ?
	RETURNING *
)
SELECT u.article_id, u.author, u.title, u.topic, u.created_at, u.votes, u.article_img_url, u.body,
	(SELECT COUNT(*) FROM comments c WHERE c.article_id = u.article_id)::INT AS comment_count
FROM updated u`

// UpdateArticleVotes adds inc (which may be negative) to the article's votes in one
// statement and returns the updated article. A missing id is NotFound(Article).
func (r *Repository) UpdateArticleVotes(ctx context.Context, id int64, inc int) (models.Article, error) {
	var article models.Article
	err := r.scanOne(ctx, utils.EntityArticle, &article, updateArticleVotesSQL, inc, id)
	return article, err
}

// InsertArticle inserts a new article and returns its generated id. An empty
// ArticleImgURL leaves the column to the database default. Unknown author or
// topic surface as foreign-key constraint errors.
func (r *Repository) InsertArticle(ctx context.Context, in models.NewArticle) (int64, error) {
	columns := []string{"author", "title", "body", "topic"}
	values := []interface{}{in.Author, in.Title, in.Body, in.Topic}
	if in.ArticleImgURL != "" {
		columns = append(columns, "article_img_url")
		values = append(values, in.ArticleImgURL)
	}

	query, args, err := builder.
		Insert("articles").
		Columns(columns...).
		Values(values...).
		Suffix("RETURNING article_id").
		ToSql()
	if err != nil {
		return 0, utils.Internal(err)
	}

	var id int64
	if err := r.conn(ctx).Raw(query, args...).Scan(&id).Error; err != nil {
		return 0, utils.ClassifyDBError(err)
	}
	return id, nil
}

// CheckArticleExists returns NotFound(Article) when no article has id.
func (r *Repository) CheckArticleExists(ctx context.Context, id int64) error {
	return r.exists(ctx, utils.EntityArticle, "SELECT EXISTS (SELECT 1 FROM articles WHERE article_id = ?)", id)
}
