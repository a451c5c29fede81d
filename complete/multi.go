// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package complete

import "strings"

// Multi completes the last term of a delimiter separated list.
type Multi struct {

	// Delimiter separates the terms.
	Delimiter string
}

// Seed returns the last term of the given text,
// without leading spaces.
func (m Multi) Seed(text string) string {
	if i := strings.LastIndex(text, m.Delimiter); i >= 0 && m.Delimiter != "" {
		text = text[i+len(m.Delimiter):]
	}
	return strings.TrimLeft(text, " \t")
}

// Complete returns the given text with its last term
// replaced by the given completion.
func (m Multi) Complete(text, completion string) string {
	if m.Delimiter == "" {
		return completion
	}
	terms := strings.Split(text, m.Delimiter)
	if len(terms) < 2 {
		return completion
	}
	return strings.Join(terms[:len(terms)-1], m.Delimiter) + m.Delimiter + " " + completion
}

// Matches returns the completions of the last term of
// the given text, as by [MatchSeedString].
func (m Multi) Matches(candidates []string, text string) []string {
	return MatchSeedString(candidates, m.Seed(text))
}
