// Package config provides configuration loading, merging, and validation
// facilities for the movie-manager client and its local API stub.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The main entry points are [GetClientConfig] for the interactive client and
// [GetServerConfig] for the stub server. Both build on [GetStructuredConfig].
package config
