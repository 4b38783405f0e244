// Package ui provides theme and color support for the terminal surfaces.
// It defines color schemes and exposes ANSI escape code accessors so the
// CLI, the calibration reports and the TUI render consistently.
//
// The package is a shared leaf dependency: anything that prints colored
// output depends on it, which keeps presentation concerns out of the
// arithmetic and verification packages.
package ui
