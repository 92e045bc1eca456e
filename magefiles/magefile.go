//go:build mage

// Package main provides build targets for the flaneur project using Mage.
//
// Usage:
//
//	mage build       Compile the stroll binary to bin/
//	mage test:all    Run all tests
//	mage test:race   Run all tests under the race detector
//	mage test:cover  Run all tests with coverage
//	mage lint        Run golangci-lint
//	mage fmt         Check gofmt cleanliness
//	mage clean       Remove build artifacts
//	mage install     Install stroll to GOPATH/bin
//	mage stats       Print Go LOC and documentation word counts
package main
