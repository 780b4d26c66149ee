// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surfio reads and writes surf surfaces in common image file
// formats.
//
// Decoding goes through the image package's format registry, so PNG,
// JPEG, GIF, BMP, TIFF and WebP are recognized by content. Animated GIFs
// decode into a transparent RGBA surface whose Frames hold the animation;
// every other file decodes into a single surface via [surf.FromImage].
//
//	s, format, err := surfio.Load("sprite.gif")
//
// Encoding is selected by format name, or by file extension in [Save]:
//
//	err := surfio.Save("out.png", s)
//	err := surfio.Encode(w, s, "jpeg", surfio.WithQuality(85))
//
// WebP is decode-only. Additional encoders can be added with
// [RegisterEncoder].
package surfio
