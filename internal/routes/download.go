package routes

import (
	"log/slog"
	"net/http"

	"github.com/adeyemoadeniyi99-web/xviewerserver/internal/middlewares"
	"github.com/adeyemoadeniyi99-web/xviewerserver/internal/resolve"
	"github.com/gin-gonic/gin"
)

func HomeRoute(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Backend server is running!"})
}

func DownloadRoute(resolver resolve.MediaResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		url, resErr := validateRequest(c)
		if resErr != nil {
			renderError(c, resErr)
			return
		}

		slog.Info("Resolving source URL", "id", c.GetString(middlewares.RequestId), "url", url)

		result, err := resolver.Resolve(c.Request.Context(), url)
		if err != nil {
			renderError(c, resolve.AsError(err))
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// validateRequest is the request gate. The URL itself is passed through
// verbatim: a malformed-but-present URL is the extraction engine's
// problem, surfaced later as a resolution failure.
func validateRequest(c *gin.Context) (string, *resolve.Error) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil || body == nil {
		return "", resolve.Invalid(resolve.NoBodyMessage)
	}

	url, _ := body["url"].(string)
	if url == "" {
		return "", resolve.Invalid(resolve.NoURLMessage)
	}

	return url, nil
}

func renderError(c *gin.Context, err *resolve.Error) {
	if err.Kind == resolve.Unexpected {
		slog.Error("Unclassified resolution failure", "err", err)
	}

	c.JSON(err.Status(), err.Body())
}
