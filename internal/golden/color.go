// Package golden holds hand-written fixtures in exactly the shape
// gen.EnumEmitter/gen.StructEmitter produce: the executable proof that the
// generated shape actually compiles and round-trips over the real Thrift
// binary protocol, since this repository never runs the Go toolchain on its
// own generator output.
package golden

// Color mirrors `enum Color { RED = 1, GREEN = 2, BLUE = 3 }`.
type Color int32

const (
	ColorRED   Color = 1
	ColorGREEN Color = 2
	ColorBLUE  Color = 3
)

// Code returns the numeric value of this Color member.
func (e Color) Code() int32 { return int32(e) }

// ColorFromCode looks up the Color member with the given numeric code.
// It reports false, not an error, for an unrecognized code — including
// signed negative or otherwise out-of-range values.
func ColorFromCode(code int32) (Color, bool) {
	switch code {
	case 1:
		return ColorRED, true
	case 2:
		return ColorGREEN, true
	case 3:
		return ColorBLUE, true
	}
	return Color(0), false
}
