// Package saes provides a Go client for the S-AES backend API.
// It covers binary block encryption and decryption, ASCII/base64 encryption,
// CBC mode with server-generated IVs, and the meet-in-the-middle key recovery
// for double S-AES. Every call is a JSON POST issued through the shared HTTP
// client, and every response is unwrapped from the backend's {code, message, data} envelope.
package saes
