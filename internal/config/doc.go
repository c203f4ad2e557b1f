// Package config loads and merges application configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// The merge order is env → flags → JSON, with later non-zero values
// winning. Both binaries share one [StructuredConfig]; each derives its
// own validated view ([ClientConfig] for the sync agent, [ServerConfig]
// for the blob-store server).
package config
