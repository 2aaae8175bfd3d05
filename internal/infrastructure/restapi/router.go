package restapi

import (
	"net/http"

	"starknet_balance_checker/internal/app/port"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterOptions toggles the optional surfaces of the router.
type RouterOptions struct {
	SwaggerEnabled bool
	SwaggerFile    string // served at /docs/swagger.yaml
}

// SetupRouter wires the REST API, health, metrics and swagger routes.
func SetupRouter(handler *BalanceHandler, logger port.Logger, opts RouterOptions) *gin.Engine {
	router := gin.New()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(corsConfig))
	router.Use(LoggerMiddleware(logger))
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/balances/:address", handler.GetBalancesHandler)
		v1.GET("/balances/:address/tokens/:tokenAddress", handler.GetCustomTokenBalanceHandler)
		v1.GET("/tokens", handler.GetTokensHandler)
		v1.GET("/tokens/:tokenAddress", handler.GetTokenInfoHandler)
	}

	if opts.SwaggerEnabled {
		router.StaticFile("/docs/swagger.yaml", opts.SwaggerFile)
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/docs/swagger.yaml")))
	}

	return router
}
