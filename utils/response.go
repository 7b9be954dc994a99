package utils

import "github.com/gin-gonic/gin"

// Client-facing error messages.
const (
	MsgBadRequest        = "Bad request"
	MsgNotFound          = "Not found"
	MsgInvalidForeignKey = "Invalid foreign key"
	MsgInternal          = "Internal server error"
)

// ErrorBody is the body of every error response.
type ErrorBody struct {
	Msg string `json:"msg"`
}

// Respond writes a JSON response with the given status code.
func Respond(ctx *gin.Context, status int, data interface{}) {
	ctx.JSON(status, data)
}

// Error writes the standard error body.
func Error(ctx *gin.Context, status int, msg string) {
	ctx.JSON(status, ErrorBody{Msg: msg})
}
