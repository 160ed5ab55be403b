package frames

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Axis is a signed coordinate axis. It's used both as a token in a rotation name (where it stands for a
// counter-clockwise 90 degree rotation about that axis) and as a direction when describing coordinate conventions.
type Axis uint8

// The order of these constants is the generator order used to discover the rotation group, and so is the
// tie-break order for canonical names.
const (
	AxisNegZ Axis = iota
	AxisZ
	AxisNegY
	AxisY
	AxisNegX
	AxisX
)

// AllAxes lists the six signed axes in generator order.
var AllAxes = []Axis{AxisNegZ, AxisZ, AxisNegY, AxisY, AxisNegX, AxisX}

var axisVectors = [...]mgl64.Vec3{
	AxisNegZ: {0, 0, -1},
	AxisZ:    {0, 0, 1},
	AxisNegY: {0, -1, 0},
	AxisY:    {0, 1, 0},
	AxisNegX: {-1, 0, 0},
	AxisX:    {1, 0, 0},
}

var axisLetters = [...]byte{'Z', 'Z', 'Y', 'Y', 'X', 'X'}

// Vector returns the unit vector pointing along the Axis.
func (axis Axis) Vector() mgl64.Vec3 {
	return axisVectors[axis]
}

// Negative returns true if the Axis points down its coordinate axis (-X, -Y or -Z).
func (axis Axis) Negative() bool {
	return axis%2 == 0
}

// Opposite returns the Axis pointing the other way (-X for X, and so on).
func (axis Axis) Opposite() Axis {
	if axis.Negative() {
		return axis + 1
	}
	return axis - 1
}

// Component returns the index of the vector component the Axis runs along (0 for X, 1 for Y, 2 for Z).
func (axis Axis) Component() int {
	return 2 - int(axis/2)
}

// String returns the token form of the Axis, as used in rotation names ("X", "-Y", ...).
func (axis Axis) String() string {
	if axis.Negative() {
		return "-" + string(axisLetters[axis])
	}
	return string(axisLetters[axis])
}

// Identifier returns the Axis spelled so it can be used inside an identifier ("X", "NegY", ...).
func (axis Axis) Identifier() string {
	if axis.Negative() {
		return "Neg" + string(axisLetters[axis])
	}
	return string(axisLetters[axis])
}

// axisFromVector returns the Axis the given vector points along, if it is exactly a signed unit axis.
func axisFromVector(vec mgl64.Vec3) (Axis, bool) {
	for _, axis := range AllAxes {
		if axisVectors[axis] == vec {
			return axis, true
		}
	}
	return 0, false
}

// ParseAxis parses a single signed axis ("X", "-y", "+Z"). It's more lenient than the rotation name grammar, accepting
// lower case letters and a leading "+", since it's meant for describing conventions.
func ParseAxis(s string) (Axis, error) {
	text := strings.ToUpper(strings.TrimSpace(s))
	neg := false
	switch {
	case strings.HasPrefix(text, "-"):
		neg = true
		text = text[1:]
	case strings.HasPrefix(text, "+"):
		text = text[1:]
	}
	var axis Axis
	switch text {
	case "X":
		axis = AxisX
	case "Y":
		axis = AxisY
	case "Z":
		axis = AxisZ
	default:
		return 0, fmt.Errorf("%w: bad axis %q", ErrInvalidConvention, s)
	}
	if neg {
		axis = axis.Opposite()
	}
	return axis, nil
}
