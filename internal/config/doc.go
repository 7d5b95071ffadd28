// Package config provides configuration loading, merging, and validation
// facilities for the collaboration client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// [GetStructuredConfig] returns the merged raw view and [GetClientConfig]
// narrows it to the validated settings the client runtime consumes.
package config
