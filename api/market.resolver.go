package api

import (
	"github.com/gin-gonic/gin"
)

func (m ApiHandler) marketData(c *gin.Context) {
	quotes, err := m.MarketService.GetMarketData(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, successResponse(quotes))
}
