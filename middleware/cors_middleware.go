package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the configured dashboard origins. Origins are fixed at
// startup; changing them means a restart, which is fine for a deploy-time
// setting.
func CORS(frontendUrls []string) gin.HandlerFunc {
	if len(frontendUrls) == 0 {
		frontendUrls = []string{"http://localhost:3000"}
	}

	return cors.New(cors.Config{
		AllowOrigins: frontendUrls,
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
			"X-Requested-With",
		},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,

		// how long the browser may cache the preflight response
		MaxAge: 12 * time.Hour,
	})
}
