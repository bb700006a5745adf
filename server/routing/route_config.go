package routing

import "net/http"

// RouteConfig is the matching information for a single http.HandlerFunc
type RouteConfig struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}
