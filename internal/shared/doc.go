// Package shared provides common utilities and test helpers used across the
// salesclean codebase. It serves as a central location for functionality that
// doesn't belong to any specific domain or architectural layer.
//
// The testutil subpackage provides log capture helpers so tests can assert
// on structured log output without parsing formatted text.
//
// This package should not contain business logic, domain-specific code, or
// dependencies on other internal packages.
package shared
