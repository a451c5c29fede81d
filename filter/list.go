// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filter

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// List is a parsed filter list of terms.
type List []string

// ParseList returns the terms of the given delimiter separated string,
// with spaces trimmed and empty terms dropped.
func ParseList(s, delimiter string) List {
	var l List
	for _, t := range strings.Split(s, delimiter) {
		if t = strings.TrimSpace(t); t != "" {
			l = append(l, t)
		}
	}
	return l
}

// Match returns whether the given string matches the list, ignoring
// case. An empty list matches everything. A list of one term matches
// strings containing it, and a list of more terms matches strings
// equal to one of them.
func (l List) Match(s string) bool {
	switch len(l) {
	case 0:
		return true
	case 1:
		fold := cases.Fold()
		return strings.Contains(fold.String(s), fold.String(l[0]))
	}
	fold := cases.Fold()
	s = fold.String(s)
	return slices.ContainsFunc(l, func(t string) bool {
		return fold.String(t) == s
	})
}

// String returns the terms joined by the given delimiter and a space.
func (l List) String(delimiter string) string {
	return strings.Join(l, delimiter+" ")
}
