package routing

import "strings"
import "net/http"

// Multiplex is an ordered list of route configs searched per request.
type Multiplex []RouteConfig

// Match returns the handler func whose method and pattern match the request,
// or nil. Method comparison is case-insensitive.
func (list Multiplex) Match(request *http.Request) http.HandlerFunc {
	for _, config := range list {
		if config.Pattern == request.URL.Path && strings.EqualFold(config.Method, request.Method) {
			return config.Handler
		}
	}

	return nil
}
