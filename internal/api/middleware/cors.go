package middleware

import (
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// ConfigCORS allows the configured origins, or any origin when the list is
// empty or contains "*".
func ConfigCORS(allowedDomains []string) gin.HandlerFunc {
	conf := cors.DefaultConfig()
	if len(allowedDomains) == 0 || slices.Contains(allowedDomains, "*") {
		conf.AllowAllOrigins = true
	} else {
		conf.AllowOrigins = allowedDomains
	}
	conf.AllowHeaders = append(conf.AllowHeaders, "X-Request-ID")
	conf.ExposeHeaders = []string{"X-Request-ID"}

	return cors.New(conf)
}
