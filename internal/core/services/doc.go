// Package services contains the core orchestration logic: the provider
// waterfall, the sample-data fallback, and the final normalization
// pass.
package services
