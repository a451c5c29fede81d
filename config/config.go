// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of the node table:
// filter syntax, colors, and editor layout. It replaces values that
// would otherwise be read from application wide singletons, and is
// passed explicitly to the components that need it.
package config

import (
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"

	"cogentcore.org/nodetable/base/errors"
	"cogentcore.org/nodetable/colors"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// FileName is the name of the configuration file in the home directory.
const FileName = ".nodetable.toml"

// Config is the main config struct.
type Config struct {

	// Delimiter separates the terms of the class, name and knob filters.
	Delimiter string `toml:"delimiter"`

	// WarnNodes is the number of nodes above which loading the
	// selection asks for confirmation first.
	WarnNodes int `toml:"warn_nodes"`

	// Colors are the cell colors.
	Colors Colors `toml:"colors"`

	// Editor is the layout and precision of cell editors.
	Editor Editor `toml:"editor"`
}

// Colors are the colors used for cell backgrounds.
type Colors struct {

	// Animated is the background of an animated knob, as 0-1 RGB channels.
	Animated []float64 `toml:"animated"`

	// KeyAt is the background of an animated knob
	// with a key at the current frame.
	KeyAt []float64 `toml:"key_at"`

	// MixNoKnob is the amount of node color mixed into
	// the background of a cell whose node has no such knob.
	MixNoKnob float64 `toml:"mix_no_knob"`

	// MixHasKnob is the amount of node color mixed into
	// the background of a cell with a knob.
	MixHasKnob float64 `toml:"mix_has_knob"`

	// Base is the palette base color of even rows, as a hex string.
	Base string `toml:"base"`

	// AlternateBase is the palette base color of odd rows.
	AlternateBase string `toml:"alternate_base"`
}

// Editor is the layout and precision of cell editors.
type Editor struct {

	// CellWidth is the width of one numeric field of an array editor.
	CellWidth int `toml:"cell_width"`

	// CellHeight is the height of one row of an array editor.
	CellHeight int `toml:"cell_height"`

	// Decimals is the precision of numeric editor fields.
	Decimals int `toml:"decimals"`

	// ColorChipDecimals is the precision of packed color editors,
	// high enough not to lose precision on the round trip.
	ColorChipDecimals int `toml:"color_chip_decimals"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Delimiter: ",",
		WarnNodes: 150,
		Colors: Colors{
			Animated:      []float64{0.312839, 0.430188, 0.544651},
			KeyAt:         []float64{0.165186, 0.385106, 0.723738},
			MixNoKnob:     0.08,
			MixHasKnob:    0.3,
			Base:          "#2A2A2A",
			AlternateBase: "#323232",
		},
		Editor: Editor{
			CellWidth:         80,
			CellHeight:        28,
			Decimals:          8,
			ColorChipDecimals: 20,
		},
	}
}

// Validate returns an error if the configuration can not be used.
func (c *Config) Validate() error {
	var errs []error
	if c.Delimiter == "" {
		errs = append(errs, errors.New("delimiter must not be empty"))
	}
	if c.Colors.MixNoKnob < 0 || c.Colors.MixNoKnob > 1 {
		errs = append(errs, fmt.Errorf("mix_no_knob %g out of range [0, 1]", c.Colors.MixNoKnob))
	}
	if c.Colors.MixHasKnob < 0 || c.Colors.MixHasKnob > 1 {
		errs = append(errs, fmt.Errorf("mix_has_knob %g out of range [0, 1]", c.Colors.MixHasKnob))
	}
	for _, hex := range []string{c.Colors.Base, c.Colors.AlternateBase} {
		if _, err := colors.FromHex(hex); err != nil {
			errs = append(errs, err)
		}
	}
	if c.Editor.CellWidth <= 0 || c.Editor.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("editor cell size %dx%d must be positive", c.Editor.CellWidth, c.Editor.CellHeight))
	}
	return errors.Join(errs...)
}

// AnimatedColor returns [Colors.Animated] as a color.
func (c *Config) AnimatedColor() color.Color {
	return colors.FromFloats(c.Colors.Animated...)
}

// KeyAtColor returns [Colors.KeyAt] as a color.
func (c *Config) KeyAtColor() color.Color {
	return colors.FromFloats(c.Colors.KeyAt...)
}

// RowBase returns the palette base color for the given row,
// alternating between [Colors.Base] and [Colors.AlternateBase].
func (c *Config) RowBase(row int) color.Color {
	hex := c.Colors.Base
	if row%2 == 1 {
		hex = c.Colors.AlternateBase
	}
	return errors.Log1(colors.FromHex(hex))
}

// DefaultPath returns the path of the configuration file
// in the home directory of the user.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, FileName), nil
}

// Open reads the configuration from the given TOML file.
// Settings missing from the file keep their default values.
func Open(filename string) (*Config, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := toml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("config.Open %s: %w", filename, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config.Open %s: %w", filename, err)
	}
	return c, nil
}

// Load is [Open] for the given file, or for [DefaultPath]
// if filename is empty. A missing default file is not an error
// and results in the [Default] configuration.
func Load(filename string) (*Config, error) {
	if filename != "" {
		return Open(filename)
	}
	path, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	c, err := Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return c, err
}

// Save writes the configuration to the given TOML file.
func (c *Config) Save(filename string) error {
	b, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}
