package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/km-arc/go-instantiation/framework/container"
)

// ServiceInfo describes one registry entry.
type ServiceInfo struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Position int    `json:"position"`
}

// ListServices enumerates services in registration order. Names are display
// names only, so two entries may share one.
func ListServices(services *container.ServiceCollection) []ServiceInfo {
	out := make([]ServiceInfo, 0, services.Len())
	services.ForEach(func(id container.ServiceIdentifier, instance any) {
		out = append(out, ServiceInfo{
			Name:     id.Name(),
			Type:     fmt.Sprintf("%T", instance),
			Position: len(out),
		})
	})
	return out
}

// ServicesHandler serves GET /services. ?name= filters by name prefix.
func ServicesHandler(services *container.ServiceCollection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		prefix := NewRequest(r).Query("name")
		list := ListServices(services)
		if prefix != "" {
			filtered := list[:0]
			for _, info := range list {
				if strings.HasPrefix(info.Name, prefix) {
					filtered = append(filtered, info)
				}
			}
			list = filtered
		}
		NewResponse(w).Success(list)
	}
}

// ServiceHandler serves GET /services/{name}: every entry with that name.
func ServiceHandler(services *container.ServiceCollection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := NewRequest(r).RouteParam("name")
		var matches []ServiceInfo
		for _, info := range ListServices(services) {
			if info.Name == name {
				matches = append(matches, info)
			}
		}
		if len(matches) == 0 {
			NewResponse(w).NotFound(fmt.Sprintf("Service [%s] is not registered.", name))
			return
		}
		NewResponse(w).Success(matches)
	}
}
