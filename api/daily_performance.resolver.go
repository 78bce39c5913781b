package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) dailyPerformance(c *gin.Context) {
	var endDate *time.Time
	if raw := c.Query("endDate"); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			returnErrorJson(fmt.Errorf("invalid endDate %q: %w", raw, err), c)
			return
		}
		endDate = &parsed
	}

	points, err := m.DailyPerformanceService.GetDailyPerformance(c.Request.Context(), endDate)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, successResponse(points))
}
