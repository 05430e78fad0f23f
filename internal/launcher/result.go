// Package launcher implements the query aggregation core of Beacon:
// a set of providers is fanned out for every query, their asynchronous
// answers are merged into a per-query deduplicated cache, and the entry
// for the query currently in the prompt is ranked and published.
package launcher

import "context"

// Result is a single scored match produced by a provider.
//
// Results are immutable after construction. Equals defines the identity
// used for deduplication and must be reflexive, symmetric and transitive;
// each provider chooses its own identity (a file result compares by
// absolute path, an app result by desktop-entry ID). Scores from
// different providers share one total order: higher wins, ties keep
// first-seen order.
type Result interface {
	// Title is the primary display text.
	Title() string

	// Tooltip is secondary descriptive text (path, expression, command).
	Tooltip() string

	// Score is the match quality, higher = better.
	Score() int

	// Icon is an opaque display handle; the TUI renders it as a glyph.
	Icon() string

	// Equals reports whether other denotes the same logical target.
	Equals(other Result) bool

	// Activate performs the result's side effect: launch the app, copy
	// the value, open the file or URL, spawn the command.
	Activate(ctx context.Context) error
}

// Provider is one search domain. Query may complete synchronously or on
// background goroutines and invokes onResults zero or more times with
// the matches it found. A provider may be queried again for newer text
// before an older invocation has reported; it must not assume in-order
// or exactly-once delivery relative to other providers. Failures are
// contained: a provider that cannot answer reports nothing.
type Provider interface {
	Name() string
	Query(ctx context.Context, text string, onResults func([]Result))
}
