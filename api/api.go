package api

import (
	"errors"
	"findata/internal/domain"
	"findata/internal/logger"
	"findata/internal/repository"
	"findata/internal/service"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

type ApiHandler struct {
	RefreshService         service.RefreshService
	RegistryService        service.RegistryService
	InsightService         service.InsightService
	AssetMetricsRepository repository.AssetMetricsRepository
	Prefix                 string
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	group := router.Group(m.Prefix)
	group.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "welcome to the financial data aggregator"})
	})
	group.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	group.GET("/all_symbols", m.allSymbols)
	group.POST("/add_symbol", m.addSymbol)
	group.GET("/assets", m.listAssets)
	group.GET("/assets/export", m.exportAssets)
	group.GET("/metrics/:symbol", m.getMetrics)
	group.GET("/compare", m.compareAssets)
	group.POST("/ingest", m.ingest)
	group.GET("/summary", m.summary)
	group.POST("/analysis", m.analysis)

	return router
}

// NewServer binds the router to port; the caller owns ListenAndServe
// and Shutdown
func (m ApiHandler) NewServer(port int) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           m.InitializeRouterEngine(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func statusFromErr(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidSymbol),
		errors.Is(err, domain.ErrAlreadyTracked),
		errors.Is(err, domain.ErrEmptyQuestion):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrNotConfigured):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrGenerationFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, statusFromErr(err))
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	log := logger.FromContext(c.Request.Context())
	if code >= 500 {
		log.Errorf("request failed with %d: %s", code, err.Error())
	} else {
		log.Infof("request rejected with %d: %s", code, err.Error())
	}
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func (m ApiHandler) logRequestMiddleware(c *gin.Context) {
	requestID := c.GetHeader(requestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Header(requestIDHeader, requestID)

	log := logger.FromContext(c.Request.Context()).With("requestID", requestID)
	c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), log))

	start := time.Now()
	c.Next()

	route := c.FullPath()
	if route == "" {
		route = c.Request.URL.Path
	}
	log.Infow(
		"handled request",
		"method", c.Request.Method,
		"route", route,
		"status", c.Writer.Status(),
		"latencyMs", time.Since(start).Milliseconds(),
	)
}
