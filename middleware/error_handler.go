package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cppla/ncnews/utils"
)

// translator turns an error into a status and client message, or declines with ok=false
// so the next translator in the chain can try.
type translator func(err error) (status int, msg string, ok bool)

// foreignKeyMessages selects the 404 message for a violated foreign key.
var foreignKeyMessages = map[string]string{
	"articles_author_fkey":     "Author not found",
	"articles_topic_fkey":      "Topic not found",
	"comments_article_id_fkey": "Article not found",
	"comments_author_fkey":     "Username not found",
}

// chain runs in order. Application errors come first because they carry no SQLSTATE.
var chain = []translator{
	translateAppError,
	translateConstraint,
	translateInternal,
}

// ErrorHandler writes the response for the last error a handler attached with ctx.Error.
// Handlers attach the error and abort without writing a body.
func ErrorHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Next()

		if len(ctx.Errors) == 0 || ctx.Writer.Written() {
			return
		}
		err := ctx.Errors.Last().Err
		status, msg := Translate(err)

		if status >= http.StatusInternalServerError {
			utils.Logger.Error("request failed",
				zap.String("request_id", ctx.GetString(utils.ContextRequestIDKey)),
				zap.String("method", ctx.Request.Method),
				zap.String("path", ctx.Request.URL.Path),
				zap.Error(err))
		}
		utils.Error(ctx, status, msg)
	}
}

// Translate maps err to its HTTP status and message.
func Translate(err error) (int, string) {
	for _, t := range chain {
		if status, msg, ok := t(err); ok {
			return status, msg
		}
	}
	return http.StatusInternalServerError, utils.MsgInternal
}

func translateAppError(err error) (int, string, bool) {
	ae, ok := utils.AsAppError(err)
	if !ok {
		return 0, "", false
	}
	switch ae.Kind {
	case utils.KindNotFound:
		return http.StatusNotFound, ae.Error(), true
	case utils.KindBadRequest:
		return http.StatusBadRequest, utils.MsgBadRequest, true
	}
	return 0, "", false
}

// translateConstraint handles classified constraint errors and raw *pgconn.PgError values alike.
func translateConstraint(err error) (int, string, bool) {
	var code, constraint string
	if ae, ok := utils.AsAppError(err); ok && ae.Kind == utils.KindConstraint {
		code, constraint = ae.Code, ae.Constraint
	} else if c, cn, ok := utils.PgErrorCode(err); ok {
		code, constraint = c, cn
	} else {
		return 0, "", false
	}

	switch code {
	case utils.CodeInvalidTextRepresentation, utils.CodeNumericValueOutOfRange, utils.CodeNotNullViolation:
		return http.StatusBadRequest, utils.MsgBadRequest, true
	case utils.CodeForeignKeyViolation:
		if msg, ok := foreignKeyMessages[constraint]; ok {
			return http.StatusNotFound, msg, true
		}
		return http.StatusNotFound, utils.MsgInvalidForeignKey, true
	}
	return 0, "", false
}

func translateInternal(error) (int, string, bool) {
	return http.StatusInternalServerError, utils.MsgInternal, true
}
