// Package app provides the command bodies of the saes-client CLI.
// It wires the configuration into the HTTP client, the S-AES API client and
// the service layer, runs the requested operation and prints its result.
package app
