package routes

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cppla/ncnews/config"
	"github.com/cppla/ncnews/controllers"
	"github.com/cppla/ncnews/middleware"
	"github.com/cppla/ncnews/repository"
	"github.com/cppla/ncnews/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(cfg config.AppConfig, db *gorm.DB) *gin.Engine {
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())

	accessLog, err := utils.NewRollingFileLogger(cfg.GinPath, cfg)
	if err != nil {
		utils.Sugar.Warnf("gin access log %q unavailable, using application log: %v", cfg.GinPath, err)
		accessLog = utils.Logger
	}
	r.Use(utils.Ginzap(accessLog, time.RFC3339, true))
	r.Use(utils.RecoveryWithZap(accessLog, true))

	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", middleware.HeaderRequestID},
		ExposeHeaders: []string{"Content-Length", middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))
	r.Use(middleware.ErrorHandler())

	r.GET("/health", func(ctx *gin.Context) {
		pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()
		if err := config.Ping(pingCtx, db); err != nil {
			_ = ctx.Error(err)
			ctx.Abort()
			return
		}
		utils.Respond(ctx, http.StatusOK, gin.H{"status": "ok"})
	})

	repo := repository.New(db)
	apiController := controllers.NewAPIController()
	topicController := controllers.NewTopicController(repo)
	articleController := controllers.NewArticleController(repo)
	commentController := controllers.NewCommentController(repo)
	userController := controllers.NewUserController(repo)

	api := r.Group("/api")
	api.GET("", apiController.GetEndpoints)

	topics := api.Group("/topics")
	topics.GET("", topicController.ListTopics)
	topics.GET("/:slug", topicController.GetTopic)

	articles := api.Group("/articles")
	articles.GET("", articleController.ListArticles)
	articles.POST("", articleController.CreateArticle)
	articles.GET("/:article_id", articleController.GetArticle)
	articles.PATCH("/:article_id", articleController.PatchArticleVotes)
	articles.GET("/:article_id/comments", commentController.ListComments)
	articles.POST("/:article_id/comments", commentController.CreateComment)

	comments := api.Group("/comments")
	comments.DELETE("/:comment_id", commentController.DeleteComment)
	comments.PATCH("/:comment_id", commentController.PatchCommentVotes)

	users := api.Group("/users")
	users.GET("", userController.ListUsers)
	users.GET("/:username", userController.GetUser)

	// gin answers unknown methods on known paths here too, since HandleMethodNotAllowed is off
	r.NoRoute(func(ctx *gin.Context) {
		utils.Error(ctx, http.StatusNotFound, utils.MsgNotFound)
	})

	return r
}
