// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// The API key may also come from the TRANSPORT_NSW_API_KEY environment
// variable, which takes precedence over the file.
package config
