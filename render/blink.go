// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// CursorBlink animates the cursor alpha as a smooth fade rather than a
// hard on/off toggle. Each half period tweens alpha between 1 and 0;
// when a tween finishes the direction flips.
type CursorBlink struct {
	halfPeriod float32
	tween      *gween.Tween
	fadingOut  bool
	alpha      float32
}

// NewCursorBlink creates a blink animation with the given half period in
// seconds (the time of one fade, out or in).
func NewCursorBlink(halfPeriod float32) *CursorBlink {
	return &CursorBlink{
		halfPeriod: halfPeriod,
		tween:      gween.New(1, 0, halfPeriod, ease.InOutSine),
		fadingOut:  true,
		alpha:      1,
	}
}

// Update advances the animation by dt seconds and returns the current
// cursor alpha in [0, 1].
func (b *CursorBlink) Update(dt float32) float32 {
	val, finished := b.tween.Update(dt)
	b.alpha = val
	if finished {
		if b.fadingOut {
			b.tween = gween.New(0, 1, b.halfPeriod, ease.InOutSine)
		} else {
			b.tween = gween.New(1, 0, b.halfPeriod, ease.InOutSine)
		}
		b.fadingOut = !b.fadingOut
	}
	return b.alpha
}

// Reset restarts the animation at full visibility. Called on keystrokes
// so the cursor is solid while typing.
func (b *CursorBlink) Reset() {
	b.tween = gween.New(1, 0, b.halfPeriod, ease.InOutSine)
	b.fadingOut = true
	b.alpha = 1
}

// Alpha returns the alpha from the last Update without advancing time.
func (b *CursorBlink) Alpha() float32 {
	return b.alpha
}
