// Package config provides configuration loading, merging, defaulting and
// validation for the shipment tracker server.
//
// Configuration is assembled from multiple sources. A non-zero value from an
// earlier source wins over the same field from a later one:
//  1. Environment variables, after an optional dotenv file is loaded
//  2. Command-line flags
//  3. JSON config file
//
// Fields still empty after merging receive defaults (see defaults.go), and
// the result is validated before [GetStructuredConfig] returns it.
package config
