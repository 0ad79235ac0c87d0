// Package cli implements the commands of the computor binary on top of the
// engine, the adapters and the loaded configuration.
package cli
