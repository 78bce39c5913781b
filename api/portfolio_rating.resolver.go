package api

import (
	"github.com/gin-gonic/gin"
)

func (m ApiHandler) portfolioRating(c *gin.Context) {
	rating, err := m.RatingService.GetPortfolioRating(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, successResponse(rating))
}
