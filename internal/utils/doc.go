// Package utils provides a collection of helper functions for common tasks,
// such as reading input files, normalizing user input and content type validation.
// It is designed to simplify repetitive operations and ensure consistency across the application.
package utils
