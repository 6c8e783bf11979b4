package handlers

import (
	"net/http"

	"image_enhancer/internal/logger"
	"image_enhancer/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
// The table below is the single place mapping path+method to handler and its
// auth requirement; everything else receives identity through the request
// context set by userIdMiddleware, never through process-wide state.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Bundled assets such as the default profile picture.
	router.Static("/static", "./static")

	// Health endpoint
	router.GET("/health", h.health)

	// Public auth endpoints
	router.POST("/register", h.register)
	router.POST("/login", h.login)

	// Protected endpoints
	authed := router.Group("/", h.userIdMiddleware)
	{
		authed.GET("/logout", h.logout)
		authed.POST("/logout", h.logout)
		authed.GET("/dashboard", h.getDashboard)
		authed.POST("/dashboard", h.uploadImage)
		authed.POST("/save_settings", h.saveSettings)
		authed.GET("/download/*filepath", h.download)
		authed.GET("/activity", h.getActivity)
		authed.GET("/ws", h.wsConnect)
	}

	return router
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}
