// Package constants holds shared domain-level constant values.
package constants

const (
	// PubSubProviderLocal routes events to a local HTTP endpoint for development.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle routes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)
