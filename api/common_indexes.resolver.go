package api

import (
	"github.com/gin-gonic/gin"
)

func (m ApiHandler) commonIndexes(c *gin.Context) {
	quotes, err := m.IndexService.GetCommonIndexes(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, successResponse(quotes))
}
