// Package tui provides terminal user interface components for
// teamforge-ctl, currently the interactive picker used to accept or
// reject suggested agents after an analysis.
package tui
