// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildFixture(bopts, cons...). Resolves cfg, runs cons in order.
//   - All public factories are declared in impl_*.go, one topology per file.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical fixtures.

package builder

import (
	"fmt"
)

// Constructor applies a deterministic fixture mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Preserve determinism for the same config and call order.
type Constructor func(f *Fixture, cfg builderConfig) error

// BuildFixture resolves the builder configuration from bopts and applies all
// constructors in order to a fresh Fixture. Any constructor error is wrapped
// with the context "BuildFixture: %w" and returned immediately.
//
// Constructors compose: vertices already present are reused, so e.g. a Path
// and a Star over the same ID scheme share their common vertices.
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildFixture(bopts []BuilderOption, cons ...Constructor) (*Fixture, error) {
	cfg := newBuilderConfig(bopts...)
	f := newFixture()

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildFixture: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(f, cfg); err != nil {
			return nil, fmt.Errorf("BuildFixture: %w", err)
		}
	}

	return f, nil
}

// Generate is a convenience wrapper around BuildFixture for a single
// constructor, returning the fixture as a ready *graph.Graph.
func Generate(con Constructor, bopts ...BuilderOption) (*StringGraph, error) {
	f, err := BuildFixture(bopts, con)
	if err != nil {
		return nil, err
	}

	return f.Build()
}
