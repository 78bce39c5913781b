package api

import (
	"github.com/gin-gonic/gin"
)

func (m ApiHandler) myHoldings(c *gin.Context) {
	valuation, err := m.ValuationService.GetHoldingsValuation(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, successResponse(valuation))
}
