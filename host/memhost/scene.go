// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memhost

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"slices"

	"cogentcore.org/nodetable/base/errors"
	"cogentcore.org/nodetable/colors"
	"cogentcore.org/nodetable/host"
	"github.com/Masterminds/semver/v3"
	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"
)

// SceneVersion is the version of the scene documents written by [Host.Scene].
const SceneVersion = "1.0.0"

// sceneConstraint is the range of scene versions that can be read.
var sceneConstraint, _ = semver.NewConstraint("^1")

// Scene is the YAML document describing the contents of a [Host].
type Scene struct {

	// Version is the semantic version of the document format.
	Version string `yaml:"version"`

	// Frame is the current frame.
	Frame float64 `yaml:"frame,omitempty"`

	// Formats are the names of the formats.
	Formats []string `yaml:"formats,omitempty"`

	// Classes are the default tile colors by class, as hex strings.
	Classes map[string]string `yaml:"classes,omitempty"`

	// Preferences are boolean preferences by name.
	Preferences map[string]bool `yaml:"preferences,omitempty"`

	// Nodes are the nodes, groups before the nodes inside them.
	Nodes []NodeSpec `yaml:"nodes"`
}

// NodeSpec is the description of one node in a [Scene].
type NodeSpec struct {
	Name      string     `yaml:"name"`
	Class     string     `yaml:"class"`
	X         float64    `yaml:"x,omitempty"`
	Y         float64    `yaml:"y,omitempty"`
	TileColor string     `yaml:"tile_color,omitempty"`
	FontColor string     `yaml:"font_color,omitempty"`
	Selected  bool       `yaml:"selected,omitempty"`
	Knobs     []KnobSpec `yaml:"knobs,omitempty"`
}

// KnobSpec is the description of one knob in a [NodeSpec].
type KnobSpec struct {
	Name     string    `yaml:"name"`
	Kind     host.Kind `yaml:"kind"`
	Value    any       `yaml:"value"`
	Width    int       `yaml:"width,omitempty"`
	Height   int       `yaml:"height,omitempty"`
	Values   []string  `yaml:"values,omitempty"`
	Disabled bool      `yaml:"disabled,omitempty"`
	Hidden   bool      `yaml:"hidden,omitempty"`
	Keys     []float64 `yaml:"keys,omitempty"`
}

// FromScene returns a new [Host] with the contents of the given scene.
func FromScene(sc *Scene) (*Host, error) {
	if err := checkVersion(sc.Version); err != nil {
		return nil, err
	}
	h := New()
	h.frame = sc.Frame
	h.formats = sc.Formats
	for name, v := range sc.Preferences {
		h.preferences[name] = v
	}
	for class, hex := range sc.Classes {
		c, err := parseColor(hex)
		if err != nil {
			return nil, fmt.Errorf("class %s: %w", class, err)
		}
		h.defaultColors[class] = c
	}
	for _, ns := range sc.Nodes {
		n := h.AddNode(ns.Name, ns.Class).SetPosition(ns.X, ns.Y)
		n.selected = ns.Selected
		var err error
		if n.tileColor, err = parseColor(ns.TileColor); err != nil {
			return nil, fmt.Errorf("node %s: %w", ns.Name, err)
		}
		if n.fontColor, err = parseColor(ns.FontColor); err != nil {
			return nil, fmt.Errorf("node %s: %w", ns.Name, err)
		}
		for _, ks := range ns.Knobs {
			v, err := decodeValue(ks.Kind, ks.Value)
			if err != nil {
				return nil, fmt.Errorf("knob %s.%s: %w", ns.Name, ks.Name, err)
			}
			k := n.AddKnob(ks.Name, ks.Kind, v).SetEnabled(!ks.Disabled).SetVisible(!ks.Hidden).SetKeys(ks.Keys...)
			k.values = ks.Values
			if ks.Width > 0 {
				k.SetDims(ks.Width, max(ks.Height, 1))
			}
		}
	}
	return h, nil
}

// Scene returns the current contents of the host as a [Scene],
// sharing no memory with the host.
func (h *Host) Scene() *Scene {
	h.mu.RLock()
	defer h.mu.RUnlock()
	meta := Scene{
		Version:     SceneVersion,
		Frame:       h.frame,
		Formats:     h.formats,
		Preferences: h.preferences,
		Classes:     map[string]string{},
	}
	for class, c := range h.defaultColors {
		if c != colors.Unset {
			meta.Classes[class] = colors.AsHex(colors.Unpack(c))
		}
	}
	sc := &Scene{}
	errors.Log(copier.CopyWithOption(sc, &meta, copier.Option{DeepCopy: true}))
	for _, n := range h.nodes.values {
		ns := NodeSpec{Name: n.name, Class: n.class, X: n.x, Y: n.y, Selected: n.selected}
		if n.tileColor != colors.Unset {
			ns.TileColor = colors.AsHex(colors.Unpack(n.tileColor))
		}
		if n.fontColor != colors.Unset {
			ns.FontColor = colors.AsHex(colors.Unpack(n.fontColor))
		}
		for _, k := range n.knobs.values {
			ks := KnobSpec{Name: k.name, Kind: k.kind, Values: slices.Clone(k.values),
				Disabled: k.disabled, Hidden: k.hidden, Keys: slices.Clone(k.keys)}
			switch v := k.value.(type) {
			case []float64:
				ks.Value = slices.Clone(v)
			case uint32:
				ks.Value = host.FormatValue(v)
			default:
				ks.Value = v
			}
			if k.width > 0 {
				ks.Width, ks.Height = k.width, k.height
			}
			ns.Knobs = append(ns.Knobs, ks)
		}
		sc.Nodes = append(sc.Nodes, ns)
	}
	return sc
}

// Read reads a [Host] from the given YAML scene document.
func Read(r io.Reader) (*Host, error) {
	sc := &Scene{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(sc); err != nil {
		return nil, fmt.Errorf("memhost.Read: %w", err)
	}
	return FromScene(sc)
}

// Open reads a [Host] from the given YAML scene file.
func Open(filename string) (*Host, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	h, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return h, nil
}

// Write writes the host as a YAML scene document.
func (h *Host) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(h.Scene()); err != nil {
		return err
	}
	return enc.Close()
}

// Save writes the host to the given YAML scene file.
func (h *Host) Save(filename string) error {
	var b bytes.Buffer
	if err := h.Write(&b); err != nil {
		return err
	}
	return os.WriteFile(filename, b.Bytes(), 0666)
}

func checkVersion(version string) error {
	if version == "" {
		return nil
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("scene version %q: %w", version, err)
	}
	if !sceneConstraint.Check(v) {
		return fmt.Errorf("scene version %s is not supported, expected %s", v, sceneConstraint)
	}
	return nil
}

func parseColor(s string) (uint32, error) {
	if s == "" {
		return colors.Unset, nil
	}
	c, err := colors.FromHex(s)
	if err != nil {
		return 0, err
	}
	return colors.Pack(c), nil
}

// decodeValue converts a value decoded from YAML to the Go type of
// the given kind. Strings are parsed for non-string kinds.
func decodeValue(kind host.Kind, raw any) (any, error) {
	if raw == nil {
		return nil, nil
	}
	if s, ok := raw.(string); ok {
		switch kind {
		case host.Enumeration, host.Format, host.String, host.Other:
			return s, nil
		}
		return host.Parse(kind, s)
	}
	return host.Convert(kind, raw)
}
