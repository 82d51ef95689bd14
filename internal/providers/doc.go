// Package providers holds plumbing shared by the provider adapters:
// request throttling and JSON helpers for the loosely-typed payloads
// event APIs return. The adapters themselves live in subpackages, one
// per provider.
package providers
