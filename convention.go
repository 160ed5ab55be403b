package frames

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Handedness is the chirality of a coordinate convention.
type Handedness uint8

const (
	RightHanded Handedness = iota
	LeftHanded
)

func (h Handedness) String() string {
	if h == LeftHanded {
		return "left-handed"
	}
	return "right-handed"
}

// Convention describes a 3D coordinate convention by which signed axes point right, up, and forward (into the screen,
// the way a default camera looks).
type Convention struct {
	Name    string
	Right   Axis
	Up      Axis
	Forward Axis
}

var (
	// OpenGL, glTF, and Tetra3D: +Y up, camera looks down -Z.
	ConventionOpenGL = Convention{Name: "opengl", Right: AxisX, Up: AxisY, Forward: AxisNegZ}
	// Blender and 3ds Max: +Z up, front view looks down +Y.
	ConventionBlender = Convention{Name: "blender", Right: AxisX, Up: AxisZ, Forward: AxisY}
	// Unity and Direct3D: +Y up, camera looks down +Z.
	ConventionUnity = Convention{Name: "unity", Right: AxisX, Up: AxisY, Forward: AxisZ}
	// Unreal: +Z up, forward is +X.
	ConventionUnreal = Convention{Name: "unreal", Right: AxisY, Up: AxisZ, Forward: AxisX}
)

var conventions = map[string]Convention{
	"opengl":   ConventionOpenGL,
	"gltf":     ConventionOpenGL,
	"tetra3d":  ConventionOpenGL,
	"yup":      ConventionOpenGL,
	"blender":  ConventionBlender,
	"3dsmax":   ConventionBlender,
	"zup":      ConventionBlender,
	"unity":    ConventionUnity,
	"direct3d": ConventionUnity,
	"unreal":   ConventionUnreal,
}

// ConventionNames returns the names LookupConvention knows, sorted.
func ConventionNames() []string {
	names := make([]string, 0, len(conventions))
	for name := range conventions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupConvention returns a Convention by name ("blender", "gltf", ...), or parses one given as three comma-separated
// signed axes for right, up, and forward ("X,Z,Y").
func LookupConvention(name string) (Convention, error) {

	key := strings.ToLower(strings.TrimSpace(name))

	if c, ok := conventions[key]; ok {
		return c, nil
	}

	fields := strings.Split(key, ",")
	if len(fields) != 3 {
		return Convention{}, fmt.Errorf("%w: %q", ErrUnknownConvention, name)
	}

	axes := [3]Axis{}
	for i, f := range fields {
		axis, err := ParseAxis(f)
		if err != nil {
			return Convention{}, err
		}
		axes[i] = axis
	}

	c := Convention{Name: name, Right: axes[0], Up: axes[1], Forward: axes[2]}
	if err := c.Validate(); err != nil {
		return Convention{}, err
	}
	return c, nil

}

// Validate returns an error wrapping ErrInvalidConvention if the three axes don't run along three different components.
func (c Convention) Validate() error {
	if c.Right.Component() == c.Up.Component() || c.Up.Component() == c.Forward.Component() || c.Right.Component() == c.Forward.Component() {
		return fmt.Errorf("%w: %s", ErrInvalidConvention, c)
	}
	return nil
}

// Handedness returns whether the Convention is right- or left-handed. With forward pointing into the screen, a
// right-handed convention has right × up pointing back out towards the viewer.
func (c Convention) Handedness() Handedness {
	if c.Right.Vector().Cross(c.Up.Vector()) == c.Forward.Vector().Mul(-1) {
		return RightHanded
	}
	return LeftHanded
}

// basis returns the matrix with the Convention's right, up, and forward vectors as its first three columns.
func (c Convention) basis() mgl64.Mat4 {
	return mgl64.Mat4FromCols(
		c.Right.Vector().Vec4(0),
		c.Up.Vector().Vec4(0),
		c.Forward.Vector().Vec4(0),
		mgl64.Vec4{0, 0, 0, 1},
	)
}

func (c Convention) String() string {
	if c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("%s,%s,%s", c.Right, c.Up, c.Forward)
}

// ConventionTransform returns the rotation that takes coordinates in the from Convention to the same directions in the
// to Convention (so the from Convention's up vector becomes the to Convention's up vector, and so on). Conventions of
// different handedness can't be converted by a rotation, so an error wrapping ErrHandednessMismatch is returned for them.
func ConventionTransform(from, to Convention) (Transformation, error) {

	if err := from.Validate(); err != nil {
		return Transformation{}, err
	}
	if err := to.Validate(); err != nil {
		return Transformation{}, err
	}

	if from.Handedness() != to.Handedness() {
		return Transformation{}, fmt.Errorf("%w: %s is %s, %s is %s", ErrHandednessMismatch, from, from.Handedness(), to, to.Handedness())
	}

	id, ok := LookupMatrix(to.basis().Mul4(from.basis().Transpose()))
	if !ok {
		// Two valid conventions of the same handedness always differ by a group element.
		panic(fmt.Sprintf("frames: no rotation between conventions %s and %s", from, to))
	}

	return AxisRotation(id), nil

}
