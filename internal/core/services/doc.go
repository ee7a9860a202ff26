// Package services implements the driving port interfaces.
// Services orchestrate calls to driven ports (adapters).
package services
