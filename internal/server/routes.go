package server

import (
	"net/http"
	"sort"
	"strings"
)

// RouteDoc describes one registered route for the self-documenting
// GET /api/routes listing the game shell consumes.
type RouteDoc struct {
	Method      string `json:"method"`
	Pattern     string `json:"pattern"`
	Summary     string `json:"summary,omitempty"`
	ExampleBody string `json:"example_body,omitempty"`
	// Action marks routes that mutate the simulation.
	Action bool `json:"action"`
}

// RouteRegistry collects docs as routes are registered. The zero value is
// ready to use.
type RouteRegistry struct {
	routes []RouteDoc
}

func (rr *RouteRegistry) Add(doc RouteDoc) {
	rr.routes = append(rr.routes, doc)
}

// List returns the docs sorted by pattern then method, so the listing is
// stable regardless of registration order.
func (rr *RouteRegistry) List() []RouteDoc {
	out := make([]RouteDoc, len(rr.routes))
	copy(out, rr.routes)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Pattern != out[j].Pattern {
			return out[i].Pattern < out[j].Pattern
		}
		return out[i].Method < out[j].Method
	})
	return out
}

// Handle registers h on mux and records its doc. methodAndPattern is the
// ServeMux form, e.g. "POST /api/units/{index}/buy". Anything other than a
// GET is documented as an action.
func Handle(mux *http.ServeMux, rr *RouteRegistry, methodAndPattern, summary, exampleBody string, h http.HandlerFunc) {
	method, pattern, _ := strings.Cut(methodAndPattern, " ")
	rr.Add(RouteDoc{
		Method:      method,
		Pattern:     pattern,
		Summary:     summary,
		ExampleBody: exampleBody,
		Action:      method != http.MethodGet,
	})
	mux.HandleFunc(methodAndPattern, h)
}
