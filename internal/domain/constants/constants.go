// Package constants defines identifiers shared across configuration and infrastructure.
package constants

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// External route providers
const (
	RouteProviderGoogle = "google"
	RouteProviderMapbox = "mapbox"
)
