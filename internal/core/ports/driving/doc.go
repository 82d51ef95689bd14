// Package driving defines the interfaces through which the outside
// world (HTTP API, CLI) drives the core services.
package driving
