package handlers

import (
	"ember_sculpt/internal/logger"
	"ember_sculpt/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires the HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler. A nil log discards output.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{services: services, log: log.Component("http")}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerAPIRoutes(router)

	// Snapshot stream for rendering clients.
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.userIdMiddleware)
	{
		h.registerCandleRoutes(api)
		h.registerPlaybackRoutes(api)
		h.registerLogRoutes(api)
	}
}

func (h *Handler) registerCandleRoutes(api *gin.RouterGroup) {
	candle := api.Group("/candle")
	{
		candle.GET("/state", h.getSnapshot)
		candle.GET("/chart.png", h.getChart)
		// Body example: {"initial_height":"12","calc_mode":"endDate"}
		candle.POST("/edit", h.editCandle)
		candle.POST("/reset", h.resetCandle)
		candle.GET("/config", h.exportConfig)
		candle.POST("/config", h.importConfig)
	}
}

func (h *Handler) registerPlaybackRoutes(api *gin.RouterGroup) {
	playback := api.Group("/playback")
	{
		playback.POST("/play", h.play)
		playback.POST("/pause", h.pause)
		playback.POST("/toggle", h.toggle)
		// Body example: {"offset_ms":5400000}
		playback.POST("/seek", h.seek)
	}
}

func (h *Handler) registerLogRoutes(api *gin.RouterGroup) {
	logs := api.Group("/logs")
	{
		logs.GET("/", h.getLogs)
	}
}
