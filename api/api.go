package api

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"io"
	"stockfolio/internal"
	"stockfolio/internal/db/models/postgres/public/model"
	"stockfolio/internal/logger"
	"stockfolio/internal/repository"
	"stockfolio/internal/service"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type ApiHandler struct {
	Db                      *sql.DB
	ValuationService        service.ValuationService
	DailyPerformanceService service.DailyPerformanceService
	AllocationService       service.AllocationService
	RatingService           service.RatingService
	IndexService            service.IndexService
	NewsService             service.NewsService
	MarketService           service.MarketService
	StockHoldingRepository  repository.StockHoldingRepository
	PriceHistoryRepository  repository.PriceHistoryRepository
	ApiRequestRepository    repository.ApiRequestRepository
	Config                  internal.PortfolioConfig
}

// responseEnvelope is the wire shape of every response: {code, message,
// data}, data null on error.
type responseEnvelope struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func successResponse(data interface{}) responseEnvelope {
	return responseEnvelope{Code: 200, Message: "success", Data: data}
}

func errorResponse(message string) responseEnvelope {
	return responseEnvelope{Code: 500, Message: message, Data: nil}
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	lg := logger.New()

	router := gin.Default()
	router.Use(cors.Default())
	router.Use(func(ctx *gin.Context) {
		ctx.Request = ctx.Request.WithContext(
			context.WithValue(ctx.Request.Context(), logger.ContextKey, lg))
		ctx.Next()
	})
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to stockfolio"})
	})
	router.GET("/portfolio/my-holdings", m.myHoldings)
	router.GET("/portfolio/daily-performance", m.dailyPerformance)
	router.GET("/portfolio/asset-allocation", m.assetAllocation)
	router.GET("/portfolio/rating", m.portfolioRating)
	router.GET("/indexes/common-indexes", m.commonIndexes)
	router.GET("/market", m.marketData)
	router.GET("/news", m.news)
	router.POST("/update-prices", m.updatePrices)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

// returnErrorJson logs the detailed cause and hands the caller a generic
// 500 envelope; the client never sees the distinction between upstream
// failures.
func returnErrorJson(err error, c *gin.Context) {
	logger.FromContext(c.Request.Context()).Error(err.Error())
	c.AbortWithStatusJSON(500, errorResponse("internal server error"))
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	log := logger.FromContext(ctx.Request.Context())

	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: ctx.Writer}
	ctx.Writer = w

	body, err := ctx.GetRawData()
	if err != nil {
		log.Warnf("failed to get raw request data: %s", err.Error())
	}
	ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

	start := time.Now().UTC()
	req, err := m.ApiRequestRepository.Add(m.Db, model.APIRequest{
		IPAddress:   internal.StrPointer(ctx.ClientIP()),
		Method:      ctx.Request.Method,
		Route:       ctx.Request.URL.Path,
		RequestBody: internal.StrPointer(string(body)),
		StartTs:     start,
	})
	if err != nil {
		log.Warnf("failed to record api request: %s", err.Error())
	}

	ctx.Next()

	if req != nil {
		req.DurationMs = internal.Int64Pointer(time.Since(start).Milliseconds())
		req.StatusCode = internal.Int32Pointer(int32(ctx.Writer.Status()))
		req.ResponseBody = internal.StrPointer(w.body.String())

		err = m.ApiRequestRepository.Update(m.Db, *req)
		if err != nil {
			log.Warnf("failed to update api request: %s", err.Error())
		}
	}
}
