package api

import (
	"github.com/gin-gonic/gin"
)

func (m ApiHandler) assetAllocation(c *gin.Context) {
	slices, err := m.AllocationService.GetAssetAllocation(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, successResponse(slices))
}
