// File: internal/handler/sitemap.go
package handler

import (
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"
)

// Endpoint is one registered method and path.
// swagger:model Endpoint
type Endpoint struct {
	Method string `json:"method" example:"GET"`
	Path   string `json:"path" example:"/planets/:id"`
}

// swagger:model SitemapResponse
type SitemapResponse struct {
	Endpoints []Endpoint `json:"endpoints"`
}

// SitemapHandler 列出所有已註冊的路由
// @Summary     Sitemap
// @Description 回傳所有 API 路徑與方法
// @Tags        health
// @Produce     json
// @Success     200 {object} SitemapResponse
// @Router      / [get]
func SitemapHandler(routes func() []*echo.Route) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, SitemapResponse{Endpoints: endpoints(routes())})
	}
}

func endpoints(routes []*echo.Route) []Endpoint {
	seen := make(map[Endpoint]struct{}, len(routes))
	out := make([]Endpoint, 0, len(routes))
	for _, r := range routes {
		ep := Endpoint{Method: r.Method, Path: r.Path}
		if ep.Path == "" {
			ep.Path = "/"
		}
		if _, ok := seen[ep]; ok {
			continue
		}
		seen[ep] = struct{}{}
		out = append(out, ep)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return out[i].Method < out[j].Method
	})
	return out
}
