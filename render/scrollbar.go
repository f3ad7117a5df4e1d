// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

// ScrollState is the scrollback position in line units: Top is the index
// of the first visible line, Total the line count of the whole buffer,
// and Page the number of lines one screen shows.
type ScrollState struct {
	Top   float32
	Total float32
	Page  float32
}

// ThumbSpan converts the line-unit state into thumb fractions along the
// track, 0 at the top and 1 at the bottom. When the whole buffer fits on
// one page the thumb fills the track.
func (s ScrollState) ThumbSpan() (top, bottom float32) {
	if s.Total <= s.Page || s.Total <= 0 {
		return 0, 1
	}
	top = s.Top / s.Total
	bottom = (s.Top + s.Page) / s.Total
	if top < 0 {
		top = 0
	}
	if bottom > 1 {
		bottom = 1
	}
	return top, bottom
}
