// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package complete provides completion of the terms of the
// delimiter separated filter lists.
package complete

import (
	"cmp"
	"slices"
	"strings"
	"unicode"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// MatchSeedString returns a list of matches given a list of string
// possibilities and a seed. It checks whether different
// transformations of each possible completion contain a lowercase
// version of the seed. Matches are sorted by [MatchPrecedence],
// and then by their similarity to the seed. It returns nil if
// there are no matches.
func MatchSeedString(completions []string, seed string) []string {
	if len(seed) == 0 {
		// everything matches
		return completions
	}

	var matches []string
	lseed := strings.ToLower(seed)

	for _, c := range completions {
		if IsSeedMatching(lseed, c) {
			matches = append(matches, c)
		}
	}
	jw := metrics.NewJaroWinkler()
	jw.CaseSensitive = false
	slices.SortStableFunc(matches, func(a, b string) int {
		return cmp.Or(
			cmp.Compare(MatchPrecedence(lseed, a), MatchPrecedence(lseed, b)),
			cmp.Compare(strutil.Similarity(lseed, b, jw), strutil.Similarity(lseed, a, jw)),
		)
	})
	return matches
}

// IsSeedMatching returns whether the given lowercase seed matches
// the given completion string. It checks whether different
// transformations of the completion contain the lowercase
// version of the seed.
func IsSeedMatching(lseed string, completion string) bool {
	lc := strings.ToLower(completion)
	if strings.Contains(lc, lseed) {
		return true
	}

	// stripped version of completion (space delimited words,
	// split at camel case, with no punctuation and symbols)
	var sb strings.Builder
	prev := rune(0)
	for _, r := range completion {
		switch {
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			r = ' '
		case unicode.IsUpper(r) && unicode.IsLower(prev):
			sb.WriteRune(' ')
		}
		sb.WriteRune(unicode.ToLower(r))
		prev = r
	}
	cs := sb.String()
	if strings.Contains(strings.Join(strings.Fields(cs), " "), lseed) {
		return true
	}

	// the initials (first letters) of every field
	ci := ""
	for _, f := range strings.Fields(cs) {
		ci += string([]rune(f)[0])
	}
	return strings.Contains(ci, lseed)
}

// MatchPrecedence returns the sorting precedence of the given
// completion relative to the given lowercase seed. The completion
// is assumed to already match the seed by [IsSeedMatching]. A
// lower return value indicates a higher precedence.
func MatchPrecedence(lseed string, completion string) int {
	lc := strings.ToLower(completion)
	if strings.HasPrefix(lc, lseed) {
		return 0
	}
	if len(lseed) > 0 && strings.HasPrefix(lc, lseed[:1]) {
		return 1
	}
	return 2
}
