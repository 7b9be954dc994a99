package repository

import (
	"strconv"

	"github.com/cppla/ncnews/utils"
)

const (
	// MaxPageSize bounds the limit query parameter.
	MaxPageSize = 100
	// DefaultPageSize applies when p is given without limit.
	DefaultPageSize = 10
)

// sortColumns maps the accepted sort_by values to their SQL expressions.
// Only these strings are ever interpolated into ORDER BY.
var sortColumns = map[string]string{
	"author":          "a.author",
	"title":           "a.title",
	"article_id":      "a.article_id",
	"created_at":      "a.created_at",
	"article_img_url": "a.article_img_url",
	"topic":           "a.topic",
	"comment_count":   "comment_count",
}

// ArticleQuery is a validated set of list-articles options.
type ArticleQuery struct {
	Topic  string
	SortBy string
	Order  string
	// Limit is zero when the caller did not ask for pagination.
	Limit int
	Page  int
}

// ParseArticleQuery validates raw query-string values. Empty strings select defaults.
// An unknown sort_by is NotFound(Column); a bad order, limit or p is BadRequest.
func ParseArticleQuery(topic, sortBy, order, limit, page string) (ArticleQuery, error) {
	q := ArticleQuery{Topic: topic, SortBy: "created_at", Order: "desc"}

	if sortBy != "" {
		if _, ok := sortColumns[sortBy]; !ok {
			return q, utils.NotFound(utils.EntityColumn)
		}
		q.SortBy = sortBy
	}

	if order != "" {
		if order != "asc" && order != "desc" {
			return q, utils.BadRequest("order must be asc or desc")
		}
		q.Order = order
	}

	if limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 1 || n > MaxPageSize {
			return q, utils.BadRequest("limit must be between 1 and 100")
		}
		q.Limit = n
	}

	if page != "" {
		n, err := strconv.Atoi(page)
		if err != nil || n < 1 {
			return q, utils.BadRequest("p must be a positive integer")
		}
		q.Page = n
		if q.Limit == 0 {
			q.Limit = DefaultPageSize
		}
	}
	if q.Limit > 0 && q.Page == 0 {
		q.Page = 1
	}
	return q, nil
}

// orderBy returns the ORDER BY clauses for q, re-checking the allow-list.
func (q ArticleQuery) orderBy() ([]string, error) {
	col, ok := sortColumns[q.SortBy]
	if !ok {
		return nil, utils.NotFound(utils.EntityColumn)
	}
	dir := "DESC"
	switch q.Order {
	case "asc":
		dir = "ASC"
	case "desc", "":
	default:
		return nil, utils.BadRequest("order must be asc or desc")
	}
	clauses := []string{col + " " + dir}
	if q.SortBy != "article_id" {
		clauses = append(clauses, "a.article_id "+dir)
	}
	return clauses, nil
}
