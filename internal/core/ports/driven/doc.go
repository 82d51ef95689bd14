// Package driven defines the interfaces the core depends on.
// Adapters under internal/providers and internal/adapters/driven
// implement these.
package driven
