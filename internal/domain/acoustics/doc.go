// Package acoustics defines the voice metrics computed for an uploaded recording
// and the contract of the engine that computes them.
package acoustics
