// Package srs implements the repetition-gap progression of tracked entries:
// every re-solve on a new day moves an entry one step along a fixed table of
// day intervals until it reaches the terminal Done stage.
package srs
