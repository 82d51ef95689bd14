// Package domain contains the core types for EventScout.
// It has no dependencies on other internal packages.
package domain
