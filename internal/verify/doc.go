// Package verify implements the differential verification harness. It
// generates randomized inputs and cross-checks the accelerated limb
// primitives against the portable implementations, and the bitwise and
// comparison engines against their own algebraic laws. Cases are
// reproducible from the run seed.
package verify
