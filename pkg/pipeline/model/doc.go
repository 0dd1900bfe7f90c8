// Package model provides the data structures shared between the pipeline
// package and its options. It defines the step information exposed to
// options and the option contract itself.
package model
