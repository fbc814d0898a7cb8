// Package constants holds shared domain-level constants.
package constants

// Pub/Sub provider identifiers, matched against the pubsub.provider config
// value.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Deployment environment identifiers, matched against the env.env config
// value.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)
