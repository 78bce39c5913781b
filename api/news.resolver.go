package api

import (
	"github.com/gin-gonic/gin"
)

func (m ApiHandler) news(c *gin.Context) {
	articles, err := m.NewsService.GetNewsForHoldings(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, successResponse(articles))
}
