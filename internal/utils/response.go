package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/osa911/contactapi/internal/api/dto/common"
)

// HandleSuccess sends a success envelope with a message
func HandleSuccess(c *gin.Context, message string) {
	c.JSON(http.StatusOK, common.NewSuccessResponse(message))
}

// HandleNotFound answers unknown routes
func HandleNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, common.NewErrorResponse(common.MsgNotFound))
}
