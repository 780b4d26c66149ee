// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surfio

import (
	"errors"
	"image/png"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/gogpu/surf"
)

// ErrUnsupportedFormat is returned when no encoder is registered for a
// format name or file extension.
var ErrUnsupportedFormat = errors.New("surfio: unsupported format")

// Encoder writes a surface to w.
type Encoder func(w io.Writer, s *surf.Surface, o *Options) error

// Options carries encoder settings. Encoders ignore fields that do not
// apply to their format.
type Options struct {
	// Quality is the JPEG quality, 1 to 100.
	Quality int

	// Compression is the PNG compression level.
	Compression png.CompressionLevel
}

// Option configures an Encode or Save call.
type Option func(*Options)

func defaultOptions() Options {
	return Options{Quality: 90}
}

// WithQuality sets the JPEG quality. Values are clamped to 1..100.
func WithQuality(q int) Option {
	return func(o *Options) {
		o.Quality = min(max(q, 1), 100)
	}
}

// WithCompression sets the PNG compression level.
func WithCompression(level png.CompressionLevel) Option {
	return func(o *Options) {
		o.Compression = level
	}
}

type encoderEntry struct {
	name string
	exts []string
	enc  Encoder
}

var (
	encodersMu sync.RWMutex
	encoders   = map[string]*encoderEntry{}
)

// RegisterEncoder adds an encoder under a format name, reachable from Save
// through the given file extensions (with or without the leading dot).
// Registering an existing name replaces the previous encoder.
func RegisterEncoder(name string, exts []string, enc Encoder) {
	if enc == nil {
		panic("surfio: RegisterEncoder with nil encoder")
	}
	e := &encoderEntry{name: strings.ToLower(name), enc: enc}
	for _, ext := range exts {
		e.exts = append(e.exts, "."+strings.TrimPrefix(strings.ToLower(ext), "."))
	}

	encodersMu.Lock()
	defer encodersMu.Unlock()
	encoders[e.name] = e
}

// UnregisterEncoder removes the encoder registered under name.
func UnregisterEncoder(name string) {
	encodersMu.Lock()
	defer encodersMu.Unlock()
	delete(encoders, strings.ToLower(name))
}

// Formats returns the names of all registered encoders, sorted.
func Formats() []string {
	encodersMu.RLock()
	defer encodersMu.RUnlock()

	names := make([]string, 0, len(encoders))
	for name := range encoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupEncoder(name string) (*encoderEntry, bool) {
	encodersMu.RLock()
	defer encodersMu.RUnlock()
	e, ok := encoders[strings.ToLower(name)]
	return e, ok
}

// FormatOf returns the name of the encoder registered for the extension of
// path.
func FormatOf(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))

	encodersMu.RLock()
	defer encodersMu.RUnlock()
	for _, e := range encoders {
		for _, x := range e.exts {
			if x == ext {
				return e.name, nil
			}
		}
	}
	return "", ErrUnsupportedFormat
}
