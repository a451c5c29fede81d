// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.NoError(t, c.Validate())
	assert.Equal(t, ",", c.Delimiter)
	assert.Equal(t, 0.08, c.Colors.MixNoKnob)
	assert.Equal(t, 0.3, c.Colors.MixHasKnob)
	assert.Equal(t, 80, c.Editor.CellWidth)
	assert.Equal(t, 28, c.Editor.CellHeight)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "nodetable.toml")
	data := `
delimiter = ";"

[colors]
mix_has_knob = 0.5
base = "#101010"

[editor]
cell_width = 100
`
	require.NoError(t, os.WriteFile(fn, []byte(data), 0666))
	c, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, ";", c.Delimiter)
	assert.Equal(t, 0.5, c.Colors.MixHasKnob)
	assert.Equal(t, 0.08, c.Colors.MixNoKnob)
	assert.Equal(t, 100, c.Editor.CellWidth)
	assert.Equal(t, 28, c.Editor.CellHeight)
	assert.Equal(t, color.NRGBA{0x10, 0x10, 0x10, 0xFF}, c.RowBase(0))
	assert.Equal(t, color.NRGBA{0x32, 0x32, 0x32, 0xFF}, c.RowBase(1))
}

func TestOpenInvalid(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(fn, []byte("delimiter = \"\"\n"), 0666))
	_, err := Open(fn)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(fn, []byte("delimiter = \n"), 0666))
	_, err = Open(fn)
	assert.Error(t, err)
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "saved.toml")
	c := Default()
	c.WarnNodes = 10
	require.NoError(t, c.Save(fn))
	o, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, c, o)
}

func TestLoadExplicitMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
