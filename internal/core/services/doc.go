// Package services holds the stateful coordination over the pure domain
// model: the batch write coordinator and the shape cache. Services contain
// the core business logic and orchestrate calls to driven ports (adapters).
package services
