package routes

import "fmt"
import "net/http"
import "github.com/gymadmin/api/server/metrics"
import "github.com/gymadmin/api/server/routing"

func health(response http.ResponseWriter, request *http.Request) {
	response.Header().Add("Content-Type", "application/json")
	fmt.Fprintf(response, "{\"status\":\"ok\"}\n")
}

// NewStatusRouter returns the liveness and metrics routes.
func NewStatusRouter() routing.Multiplex {
	scrape := metrics.Handler()

	return routing.Multiplex{
		routing.RouteConfig{Method: "GET", Pattern: "/api/status", Handler: health},
		routing.RouteConfig{Method: "GET", Pattern: "/metrics", Handler: scrape.ServeHTTP},
	}
}
