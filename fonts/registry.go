package fonts

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rs/zerolog"
)

// Entry is one registered font.
type Entry struct {
	Asset  Asset
	Size   float32
	Source *text.GoTextFaceSource
	Face   *text.GoTextFace
}

// FaceRegistry is the toolkit's font registry: the parsed font sources
// available for drawing text. The first entry is the default font.
//
// FaceRegistry is not safe for concurrent mutation; the face cache alone
// is guarded so Face may be called from draw code.
type FaceRegistry struct {
	entries []Entry
	log     zerolog.Logger

	faceCache   map[float64]*text.GoTextFace
	faceCacheMu sync.Mutex
}

// Option configures a FaceRegistry.
type Option func(*FaceRegistry)

// WithLogger sets the logger used to report registry changes.
func WithLogger(l zerolog.Logger) Option {
	return func(r *FaceRegistry) { r.log = l }
}

// NewFaceRegistry returns an empty registry.
func NewFaceRegistry(opts ...Option) *FaceRegistry {
	r := &FaceRegistry{
		log:       zerolog.Nop(),
		faceCache: map[float64]*text.GoTextFace{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func parse(asset Asset) (*text.GoTextFaceSource, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(asset.data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedFontData, asset.name, err)
	}
	return src, nil
}

// Add parses asset and appends it to the registry.
func (r *FaceRegistry) Add(asset Asset, sizeInPixels float32) error {
	if err := ValidateSize(sizeInPixels); err != nil {
		return err
	}
	src, err := parse(asset)
	if err != nil {
		return err
	}
	r.add(asset, src, sizeInPixels)
	return nil
}

func (r *FaceRegistry) add(asset Asset, src *text.GoTextFaceSource, size float32) {
	r.entries = append(r.entries, Entry{
		Asset:  asset,
		Size:   size,
		Source: src,
		Face:   &text.GoTextFace{Source: src, Size: float64(size)},
	})
	r.resetFaceCache()
}

// Clear removes every registered font.
func (r *FaceRegistry) Clear() {
	r.entries = nil
	r.resetFaceCache()
}

// PatchFont implements Target. The font is parsed before anything is
// removed, so a malformed asset leaves the registry as it was.
func (r *FaceRegistry) PatchFont(asset Asset, sizeInPixels float32) error {
	if err := ValidateSize(sizeInPixels); err != nil {
		return err
	}
	src, err := parse(asset)
	if err != nil {
		return err
	}
	dropped := len(r.entries)
	r.Clear()
	r.add(asset, src, sizeInPixels)
	r.log.Debug().
		Str("font", asset.name).
		Str("family", src.Metadata().Family).
		Float32("size", sizeInPixels).
		Str("bytes", humanize.Bytes(uint64(len(asset.data)))).
		Int("dropped", dropped).
		Msg("font installed")
	return nil
}

// Len returns the number of registered fonts.
func (r *FaceRegistry) Len() int { return len(r.entries) }

// Entries returns a copy of the registered fonts in registration order.
func (r *FaceRegistry) Entries() []Entry {
	return append([]Entry(nil), r.entries...)
}

// Default returns the default font, or false when the registry is empty.
func (r *FaceRegistry) Default() (Entry, bool) {
	if len(r.entries) == 0 {
		return Entry{}, false
	}
	return r.entries[0], true
}

// Face returns a face of the default font at size, cached per size. With
// an empty registry it returns a face without a source.
func (r *FaceRegistry) Face(size float32) *text.GoTextFace {
	def, ok := r.Default()
	if !ok {
		return &text.GoTextFace{Size: float64(size)}
	}
	s := float64(size)
	r.faceCacheMu.Lock()
	defer r.faceCacheMu.Unlock()
	if f, ok := r.faceCache[s]; ok {
		return f
	}
	f := &text.GoTextFace{Source: def.Source, Size: s}
	r.faceCache[s] = f
	return f
}

func (r *FaceRegistry) resetFaceCache() {
	r.faceCacheMu.Lock()
	r.faceCache = map[float64]*text.GoTextFace{}
	r.faceCacheMu.Unlock()
}
