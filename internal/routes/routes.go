package routes

import (
	"net/http"

	"github.com/adeyemoadeniyi99-web/xviewerserver/internal/middlewares"
	"github.com/adeyemoadeniyi99-web/xviewerserver/internal/resolve"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func CreateMainRouter(resolver resolve.MediaResolver) http.Handler {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middlewares.LogMiddleware())
	router.Use(gzip.Gzip(gzip.DefaultCompression))
	router.Use(cors.Default())

	router.GET("/", HomeRoute)

	// two historical names for the same operation, kept for client
	// compatibility; output shape is the process-wide OUTPUT_MODE
	download := DownloadRoute(resolver)
	router.POST("/download", download)
	router.POST("/get-youtube-url", download)

	return router
}
