// Package normaliser cleans and canonicalises raw activity records.
// Providers return text, dates and times in whatever shape their API
// uses; everything passes through here exactly once before a search
// response is assembled.
package normaliser
