// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for every field they set):
//  1. .env file
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//  5. Built-in defaults
//
// The main entry point is [GetStructuredConfig], shared by the server and the
// admin tool.
package config
