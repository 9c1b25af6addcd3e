package router

import (
	"net/http"

	"github.com/Aashish23092/finguide-ai/config"
	"github.com/Aashish23092/finguide-ai/handler"
	"github.com/Aashish23092/finguide-ai/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Upload       *handler.UploadHandler
	Chat         *handler.ChatHandler
	Transactions *handler.TransactionHandler
	Tax          *handler.TaxHandler
}

func SetupRouter(cfg *config.Config, h Handlers, logger zerolog.Logger) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))
	r.Use(cors.New(corsConfig(cfg.CORS)))

	r.MaxMultipartMemory = cfg.Server.MaxUploadBytes()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "FinGuide AI",
		})
	})

	api := r.Group("/api")
	{
		api.POST("/chat", h.Chat.Chat)
		api.POST("/upload", h.Upload.UploadStatement)

		txns := api.Group("/transactions")
		{
			txns.GET("", h.Transactions.List)
			txns.POST("", h.Transactions.Add)
			txns.POST("/import", h.Transactions.Import)
		}
		api.GET("/dashboard", h.Transactions.Dashboard)

		tax := api.Group("/tax")
		{
			tax.POST("/gst", h.Tax.GST)
			tax.GET("/gst/rates", h.Tax.GSTRates)
			tax.POST("/liability", h.Tax.Liability)
			tax.POST("/compare", h.Tax.Compare)
		}
	}

	return r
}

func corsConfig(c config.CORSConfig) cors.Config {
	cc := cors.DefaultConfig()
	if len(c.AllowedOrigins) == 0 || (len(c.AllowedOrigins) == 1 && c.AllowedOrigins[0] == "*") {
		cc.AllowAllOrigins = true
	} else {
		cc.AllowOrigins = c.AllowedOrigins
	}
	return cc
}
