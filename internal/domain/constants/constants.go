// Package constants holds shared domain constants.
package constants

// Pub/Sub provider names accepted in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// ProductID of the one-time paid digital product.
const ProductID = "Success_Pathway_Guide"
