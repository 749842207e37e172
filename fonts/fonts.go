// Package fonts bundles the default UI font and installs fonts into a
// toolkit's font registry.
package fonts

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
)

// DefaultSize is the pixel size the bundled font is installed at unless
// the caller picks another one.
const DefaultSize float32 = 16

var (
	// ErrMalformedFontData is returned when font bytes cannot be parsed.
	ErrMalformedFontData = errors.New("fonts: malformed font data")
	// ErrInvalidSize is returned for a pixel size that is not a finite,
	// strictly positive number.
	ErrInvalidSize = errors.New("fonts: invalid font size")
)

//go:embed GoRegular.ttf
var goRegularTTF []byte

// GoRegular is the bundled "Go Regular" TrueType font.
var GoRegular = NewAsset("Go Regular", goRegularTTF, DefaultSize)

// Asset is a font file held in memory plus the size it is normally used at.
// The bytes are shared, never copied, when the asset is installed.
type Asset struct {
	name string
	data []byte
	size float32
}

// NewAsset wraps raw TrueType/OpenType bytes.
func NewAsset(name string, data []byte, defaultSize float32) Asset {
	return Asset{name: name, data: data, size: defaultSize}
}

func (a Asset) Name() string { return a.name }

// Bytes returns the font file. Callers must not modify it.
func (a Asset) Bytes() []byte { return a.data }

// DefaultSize returns the pixel size the asset is meant to be used at.
func (a Asset) DefaultSize() float32 { return a.size }

// Target is anything holding a font registry the asset can be installed
// into.
//
// PatchFont must discard every font already registered and leave asset as
// the only, default font at sizeInPixels. Callers that registered fonts
// of their own lose them; installation owns the whole registry.
type Target interface {
	PatchFont(asset Asset, sizeInPixels float32) error
}

// Install replaces all fonts in target with the asset at sizeInPixels.
func (a Asset) Install(target Target, sizeInPixels float32) error {
	return Install(a, target, sizeInPixels)
}

// Install replaces all fonts in target with asset at sizeInPixels.
func Install(asset Asset, target Target, sizeInPixels float32) error {
	if err := ValidateSize(sizeInPixels); err != nil {
		return err
	}
	if len(asset.data) == 0 {
		return fmt.Errorf("%w: %s: no data", ErrMalformedFontData, asset.name)
	}
	return target.PatchFont(asset, sizeInPixels)
}

// ValidateSize checks that size is usable as a pixel size.
func ValidateSize(size float32) error {
	f := float64(size)
	if math.IsNaN(f) || math.IsInf(f, 0) || size <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}
	return nil
}
