package root

import "github.com/gin-gonic/gin"

func RegisterRoutes(router gin.IRoutes, hosts HostnameResolver, probe SecretProbe) {
	router.GET("/", Handler(hosts, probe))
}
