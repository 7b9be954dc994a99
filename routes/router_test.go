package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cppla/ncnews/config"
	"github.com/cppla/ncnews/controllers"
	"github.com/cppla/ncnews/middleware"
)

func newMockRouter(t *testing.T) (http.Handler, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 logger.Discard,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	cfg := config.AppConfig{GinMode: "test", AllowedOrigins: []string{"*"}}
	return SetupRouter(cfg, db), mock
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCatalogAndFallback(t *testing.T) {
	r, _ := newMockRouter(t)

	w := serve(r, http.MethodGet, "/api", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, string(controllers.EndpointsJSON()), w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/not-a-route"},
		{http.MethodGet, "/not-an-api"},
		{http.MethodPost, "/api/topics"},
		{http.MethodDelete, "/api/articles/1"},
	} {
		w := serve(r, tc.method, tc.path, "")
		assert.Equal(t, http.StatusNotFound, w.Code, tc.method+" "+tc.path)
		assert.JSONEq(t, `{"msg":"Not found"}`, w.Body.String())
	}
}

func TestHealth(t *testing.T) {
	r, _ := newMockRouter(t)
	w := serve(r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestCORS(t *testing.T) {
	r, _ := newMockRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/api", nil)
	req.Header.Set("Origin", "https://frontend.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestListArticlesWithTopic(t *testing.T) {
	r, mock := newMockRouter(t)
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM topics WHERE slug = \$1\)`).
		WithArgs("mitch").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM articles a WHERE a\.topic = \$1`).
		WithArgs("mitch").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectQuery(`FROM articles a LEFT JOIN comments c`).
		WithArgs("mitch").
		WillReturnRows(sqlmock.NewRows([]string{"article_id", "author", "title", "topic", "created_at", "votes", "article_img_url", "comment_count"}).
			AddRow(int64(1), "butter_bridge", "Living in the shadow of a great man", "mitch", time.Now(), 100, "https://example.com/a.jpg", 11))

	w := serve(r, http.MethodGet, "/api/articles?topic=mitch", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Articles []map[string]interface{} `json:"articles"`
		Total    int64                    `json:"total_count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.EqualValues(t, 1, body.Total)
	require.Len(t, body.Articles, 1)
	assert.EqualValues(t, 11, body.Articles[0]["comment_count"])
	assert.NotContains(t, body.Articles[0], "body")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListArticlesUnknownTopic(t *testing.T) {
	r, mock := newMockRouter(t)
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM topics`).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	// the list may or may not run before the failed check cancels it
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM articles a`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))
	mock.ExpectQuery(`FROM articles a LEFT JOIN comments c`).
		WillReturnRows(sqlmock.NewRows([]string{"article_id"}))

	w := serve(r, http.MethodGet, "/api/articles?topic=nonexistent_topic", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"msg":"Topic not found"}`, w.Body.String())
}

func TestCreateCommentForeignKeyRace(t *testing.T) {
	r, mock := newMockRouter(t)
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM articles`).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM users`).
		WithArgs("lurker").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	// the user disappears between the check and the insert
	mock.ExpectQuery(`INSERT INTO comments`).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "comments_author_fkey"})

	w := serve(r, http.MethodPost, "/api/articles/2/comments", `{"username":"lurker","body":"an example comment body"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"msg":"Username not found"}`, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDatabaseFailureIsInternal(t *testing.T) {
	r, mock := newMockRouter(t)
	mock.ExpectQuery(`SELECT slug, description FROM topics`).
		WillReturnError(&pgconn.PgError{Code: "57P01", Message: "terminating connection due to administrator command"})

	w := serve(r, http.MethodGet, "/api/topics", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"msg":"Internal server error"}`, w.Body.String())
}
