// Package saes turns command-line input into S-AES backend calls.
// It parses cipher modes and known plaintext/ciphertext pairs, dispatches
// each operation to the matching API endpoint, and keeps per-session
// request statistics.
package saes
