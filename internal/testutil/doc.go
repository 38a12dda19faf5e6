// Package testutil provides fixture helpers for building throwaway
// project trees in tests.
package testutil
