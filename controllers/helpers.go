package controllers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cppla/ncnews/utils"
)

// fail hands err to the error middleware and stops the handler chain.
func fail(ctx *gin.Context, err error) {
	_ = ctx.Error(err)
	ctx.Abort()
}

// pathID parses a positive integer path parameter that fits the INT id columns.
// Anything else is a bad request.
func pathID(ctx *gin.Context, name string) (int64, error) {
	raw := ctx.Param(name)
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id < 1 {
		return 0, utils.BadRequest(name + " must be a positive integer")
	}
	return id, nil
}

// votesRequest is the body of both vote PATCH endpoints. The pointer distinguishes a
// missing inc_votes from zero; a non-integer value fails JSON binding.
type votesRequest struct {
	IncVotes *int `json:"inc_votes" binding:"required"`
}

// bindVotes returns inc_votes, which must fit the INT votes column.
func bindVotes(ctx *gin.Context) (int, error) {
	var req votesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return 0, utils.BadRequest("inc_votes must be an integer")
	}
	inc := *req.IncVotes
	if inc < math.MinInt32 || inc > math.MaxInt32 {
		return 0, utils.BadRequest("inc_votes out of range")
	}
	return inc, nil
}
