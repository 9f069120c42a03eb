// Package provider defines the gap-fill backend interface and implementations.
package provider

import "github.com/ZaguanLabs/lexiloc"

// GapFiller is the interface for backends that translate phrases missing
// from a target dictionary.
// This is an alias to the main package interface for convenience.
type GapFiller = lexiloc.GapFiller

// FillRequest is an alias to the main package type.
type FillRequest = lexiloc.FillRequest
