// Package flaneur identifies the module release.
package flaneur

// Version is the flaneur release reported by the stroll CLI.
const Version = "0.1.0"
