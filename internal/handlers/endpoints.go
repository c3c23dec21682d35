package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// Endpoint is one row of the route table. The router registers Handler on
// Method and Path; the documentation page and /debug render the rest.
type Endpoint struct {
	Method  string
	Path    string
	Summary string
	Handler gin.HandlerFunc
}

// DisplayPath renders gin path parameters the way the docs page shows them.
func (e Endpoint) DisplayPath() string {
	return strings.ReplaceAll(e.Path, ":id", "<id>")
}

// MethodClass is the CSS class of the method badge.
func (e Endpoint) MethodClass() string {
	return strings.ToLower(e.Method)
}

func (e Endpoint) String() string {
	return e.Method + " " + e.DisplayPath()
}

// Section groups the endpoints of one resource.
type Section struct {
	Key       string
	Title     string
	Endpoints []Endpoint
}

func listing(sections []Section) map[string][]string {
	out := make(map[string][]string, len(sections))
	for _, s := range sections {
		routes := make([]string, 0, len(s.Endpoints))
		for _, e := range s.Endpoints {
			routes = append(routes, e.String())
		}
		out[s.Key] = routes
	}
	return out
}
