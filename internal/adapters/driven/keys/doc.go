// Package keys stores the user's Plurk consumer key pair and optional
// access token pair in a TOML file under the data directory.
package keys
