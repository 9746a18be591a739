// Package constants holds shared domain constants.
package constants

// Pub/Sub provider names accepted by the pubsub.provider config key.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// VisitorCookieName is the cookie carrying the opaque cart visitor token.
const VisitorCookieName = "optika_visitor"
