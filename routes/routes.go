package routes

import (
	"net/http"

	"marketfeed/cache"
	"marketfeed/client"
	"marketfeed/config"
	"marketfeed/controller"
	"marketfeed/middleware"
	"marketfeed/model"
	"marketfeed/repository"
	"marketfeed/service"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/mongo"
)

func SetupRouter(db *mongo.Database, cfg *config.SystemConfigs) *gin.Engine {
	r := gin.New()

	cfgManager := config.NewConfigManager(&model.RuntimeConfig{
		DebugMode:   cfg.Config.DebugMode,
		RateLimiter: cfg.Config.RateLimiter,
	})

	r.Use(middleware.ZerologMiddleware())
	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.CORS(cfg.Config.FrontendUrls))
	r.Use(middleware.RateLimiter(cfgManager))

	tuning := cfg.FetchTuning()

	// --- 1. Clients ---
	yahooClient := client.NewYahooClient(tuning.Timeout)
	avClient := client.NewAlphaVantageClient(cfg.Config.AlphaVantageKey, tuning.Timeout)
	nseClient := client.NewNseClient()

	// --- 2. Repositories ---
	watchlistRepo := repository.NewWatchlistRepository(db)

	// --- 3. Services (Dependency Injection) ---
	seriesCache := cache.NewSeriesCache(tuning.CacheTTL)
	marketSvc := service.NewMarketService(yahooClient, avClient, tuning, seriesCache)
	watchlistSvc := service.NewWatchlistService(watchlistRepo)
	indicesSvc := service.NewIndicesService(nseClient)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// --- 4. Routes & Controllers ---
	api := r.Group("/api")
	{

		// Health Check
		controller.NewHealthController().RegisterRoutes(api)

		// Market Data Endpoints
		controller.NewMarketController(marketSvc, watchlistSvc).RegisterRoutes(api)

		// Index & Market Status Endpoints
		controller.NewIndicesController(indicesSvc).RegisterRoutes(api)

		// Watchlist Endpoints
		controller.NewWatchlistController(watchlistSvc).RegisterRoutes(api)
	}

	// --- 5. Admin API (Huma) ---
	adminMux := http.NewServeMux()
	humaCfg := huma.DefaultConfig("MarketFeed Admin API", "1.0.0")
	humaCfg.OpenAPIPath = "/api/admin/openapi"
	humaCfg.DocsPath = "/api/admin/docs"
	humaCfg.SchemasPath = "/api/admin/schemas"

	adminApi := humago.New(adminMux, humaCfg)
	adminApi.UseMiddleware(middleware.HumaLogger())
	controller.NewAdminController(cfg, cfgManager, marketSvc, indicesSvc).RegisterRoutes(adminApi)
	r.Any("/api/admin/*any", gin.WrapH(adminMux))

	return r
}
