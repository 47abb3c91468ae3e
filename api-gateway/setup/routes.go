package setup

import (
	"hospital-ops/api-gateway/internal/cache"
	"hospital-ops/api-gateway/internal/proxy"
	"hospital-ops/api-gateway/internal/utils"

	"github.com/gin-gonic/gin"
)

// ConfigureServiceProxies maps the gateway's route families onto the
// hospital backend. Each family gets its own cache bucket and role list,
// so a mutation inside a family only flushes that family's cached GETs.
func ConfigureServiceProxies(router *gin.RouterGroup, backendURL string, rc *cache.ResponseCache) {
	families := []struct {
		path   string
		family string
		roles  []string
	}{
		{"/department", "department", []string{"department", "admin"}},
		{"/work-order", "work-orders", []string{"electrician", "mechanical", "casual", "admin"}},
		{"/patient", "patient", []string{"patient"}},
		{"/appointment", "appointments", []string{"patient", "department", "admin"}},
		{"/medical-records", "medical-records", []string{"patient", "department", "admin"}},
		{"/equipment", "equipment", []string{"electrician", "mechanical", "admin"}},
	}

	for _, f := range families {
		group := router.Group(f.path)
		group.Use(utils.RequireRoles(f.roles...))
		group.Use(rc.Middleware(f.family))
		group.Any("", proxy.CreateProxy(backendURL, "/api"+f.path, f.path))
		group.Any("/*proxyPath", proxy.CreateProxy(backendURL, "/api"+f.path, f.path))
	}
}

// ConfigureAdminProxies wires the admin-only family.
func ConfigureAdminProxies(router *gin.RouterGroup, backendURL string, rc *cache.ResponseCache) {
	router.Use(rc.Middleware("admin"))
	router.Any("/*proxyPath", proxy.CreateProxy(backendURL, "/api/admin", "/admin"))
}
