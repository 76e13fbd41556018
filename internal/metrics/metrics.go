// Package metrics defines Prometheus instrumentation for the server.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RegisteredUsers counts successful user registrations.
	RegisteredUsers = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "users_registered_total",
			Help: "Total number of successfully registered users",
		},
	)

	// NotesCreated counts successfully created notes.
	NotesCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "notes_created_total",
			Help: "Total number of created notes",
		},
	)

	// SharedNoteViews counts public reads of notes via their share token.
	SharedNoteViews = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "shared_note_views_total",
			Help: "Total number of shared note fetches by token",
		},
	)

	// RequestsTotal counts handled HTTP requests by method, route and status.
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of handled HTTP requests",
		},
		[]string{"method", "route", "status"},
	)
)

// Init registers all collectors with the default registry.
func Init() {
	prometheus.MustRegister(RegisteredUsers)
	prometheus.MustRegister(NotesCreated)
	prometheus.MustRegister(SharedNoteViews)
	prometheus.MustRegister(RequestsTotal)
}

// Handler returns the HTTP handler serving the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
