// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package complete

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchSeedString(t *testing.T) {
	classes := []string{"Blur", "Merge2", "Transform", "Grade", "ColorCorrect", "EdgeBlur", "Bokeh"}
	assert.Equal(t, classes, MatchSeedString(classes, ""))
	assert.Equal(t, []string{"Blur", "EdgeBlur"}, MatchSeedString(classes, "blur"))
	assert.Equal(t, []string{"ColorCorrect"}, MatchSeedString(classes, "cc"))
	assert.Equal(t, []string{"Merge2"}, MatchSeedString(classes, "ME"))
	assert.Nil(t, MatchSeedString(classes, "xyz"))

	got := MatchSeedString(classes, "b")
	assert.Equal(t, []string{"Blur", "Bokeh"}, got[:2], "prefix matches first")
	assert.ElementsMatch(t, []string{"Blur", "Bokeh", "EdgeBlur"}, got)
}

func TestIsSeedMatching(t *testing.T) {
	assert.True(t, IsSeedMatching("tile", "tile_color"))
	assert.True(t, IsSeedMatching("tile color", "tile_color"))
	assert.True(t, IsSeedMatching("tc", "tile_color"))
	assert.False(t, IsSeedMatching("ct", "tile_color"))
}

func TestMatchPrecedence(t *testing.T) {
	assert.Equal(t, 0, MatchPrecedence("ti", "tile_color"))
	assert.Equal(t, 1, MatchPrecedence("tc", "tile_color"))
	assert.Equal(t, 2, MatchPrecedence("color", "tile_color"))
}

func TestMulti(t *testing.T) {
	m := Multi{Delimiter: ","}
	assert.Equal(t, "Bl", m.Seed("Bl"))
	assert.Equal(t, "Me", m.Seed("Blur,  Me"))
	assert.Equal(t, "", m.Seed("Blur, "))
	assert.Equal(t, "Merge2", m.Complete("Me", "Merge2"))
	assert.Equal(t, "Blur, Merge2", m.Complete("Blur, Me", "Merge2"))
	assert.Equal(t, "Blur,Grade, Merge2", m.Complete("Blur,Grade,Me", "Merge2"))

	text := "Blur, Me"
	matches := m.Matches([]string{"Blur", "Merge2", "Grade"}, text)
	assert.Equal(t, []string{"Merge2"}, matches)
	text = m.Complete(text, matches[0])
	assert.Equal(t, "Merge2", m.Seed(text))
	assert.Equal(t, text, m.Complete(text, m.Seed(text)))
}
