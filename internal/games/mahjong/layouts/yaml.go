// Package layouts loads extra mahjong board layouts from YAML files.
// This package depends on core but core does not depend on layouts.
package layouts

import (
	"fmt"

	"gopkg.in/yaml.v3"

	platformcore "github.com/vovakirdan/tui-mahjong/internal/core"
	"github.com/vovakirdan/tui-mahjong/internal/games/mahjong/core"
)

// YAMLLayout is the on-disk form of a layout.
//
//	name: pyramid
//	title: Pyramid
//	tiles: 144
//	layers:
//	  - z: 0
//	    rects:
//	      - {x: 0, y: 0, w: 10, h: 8}
type YAMLLayout struct {
	Name   string      `yaml:"name"`
	Title  string      `yaml:"title,omitempty"`
	Tiles  int         `yaml:"tiles,omitempty"` // Expected slot count; 0 skips the check
	Layers []YAMLLayer `yaml:"layers"`
}

// YAMLLayer is one stacking level.
type YAMLLayer struct {
	Z     int        `yaml:"z"`
	Rects []YAMLRect `yaml:"rects"`
}

// YAMLRect is a run of slots.
type YAMLRect struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// ParseYAML decodes and validates a layout document.
func ParseYAML(data []byte) (core.Layout, error) {
	var yl YAMLLayout
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return core.Layout{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.Name == "" {
		return core.Layout{}, fmt.Errorf("layout has no name")
	}

	l := core.Layout{
		Name:   yl.Name,
		Title:  yl.Title,
		Layers: make([]core.Layer, 0, len(yl.Layers)),
	}
	if l.Title == "" {
		l.Title = yl.Name
	}

	for _, layer := range yl.Layers {
		rects := make([]platformcore.Rect, 0, len(layer.Rects))
		for _, r := range layer.Rects {
			rects = append(rects, platformcore.NewRect(r.X, r.Y, r.W, r.H))
		}
		l.Layers = append(l.Layers, core.Layer{Z: layer.Z, Rects: rects})
	}

	if err := core.Validate(l, yl.Tiles); err != nil {
		return core.Layout{}, err
	}
	return l, nil
}

// MarshalYAML encodes a layout in the on-disk form.
func MarshalYAML(l core.Layout) ([]byte, error) {
	yl := YAMLLayout{
		Name:   l.Name,
		Title:  l.Title,
		Tiles:  l.Count(),
		Layers: make([]YAMLLayer, 0, len(l.Layers)),
	}
	for _, layer := range l.Layers {
		yr := make([]YAMLRect, 0, len(layer.Rects))
		for _, r := range layer.Rects {
			yr = append(yr, YAMLRect{X: r.X, Y: r.Y, W: r.W, H: r.H})
		}
		yl.Layers = append(yl.Layers, YAMLLayer{Z: layer.Z, Rects: yr})
	}
	return yaml.Marshal(yl)
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
