package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentrecords/internal/middleware"
)

// parseID reads the :id path parameter. An id that is not a positive integer
// cannot name a record, so it is answered with notFound and ok is false.
func parseID(ctx *gin.Context, notFound error) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		middleware.HandleAPIError(ctx, notFound)
		return 0, false
	}
	return id, true
}
