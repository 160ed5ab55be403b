package frames

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlenderToGLTF(t *testing.T) {

	blender, err := LookupConvention("blender")
	require.NoError(t, err)
	gl, err := LookupConvention("glTF")
	require.NoError(t, err)

	tr, err := ConventionTransform(blender, gl)
	require.NoError(t, err)

	name, err := tr.Name()
	require.NoError(t, err)
	assert.Equal(t, "-X", name)

	// Blender's up (+Z) becomes glTF's up (+Y), and Blender's forward (+Y) becomes -Z.
	assert.Equal(t, mgl64.Vec3{0, 1, 0}, tr.TransformPoint(mgl64.Vec3{0, 0, 1}))
	assert.Equal(t, mgl64.Vec3{0, 0, -1}, tr.TransformPoint(mgl64.Vec3{0, 1, 0}))

	back, err := ConventionTransform(gl, blender)
	require.NoError(t, err)
	assert.Equal(t, tr.Inverse(), back)

}

func TestLeftHandedConventions(t *testing.T) {

	tr, err := ConventionTransform(ConventionUnity, ConventionUnreal)
	require.NoError(t, err)
	assert.Equal(t, MustParse("ZY"), tr)

	_, err = ConventionTransform(ConventionBlender, ConventionUnity)
	assert.ErrorIs(t, err, ErrHandednessMismatch)

	assert.Equal(t, RightHanded, ConventionOpenGL.Handedness())
	assert.Equal(t, RightHanded, ConventionBlender.Handedness())
	assert.Equal(t, LeftHanded, ConventionUnity.Handedness())
	assert.Equal(t, LeftHanded, ConventionUnreal.Handedness())

}

func TestSameConventionIsIdentity(t *testing.T) {
	tr, err := ConventionTransform(ConventionOpenGL, ConventionOpenGL)
	require.NoError(t, err)
	assert.Equal(t, KindIdentity, tr.Kind())
}

func TestLookupConventionAxes(t *testing.T) {

	c, err := LookupConvention("X,Z,Y")
	require.NoError(t, err)
	assert.Equal(t, ConventionBlender.Right, c.Right)
	assert.Equal(t, ConventionBlender.Up, c.Up)
	assert.Equal(t, ConventionBlender.Forward, c.Forward)

	_, err = LookupConvention("X,X,Y")
	assert.ErrorIs(t, err, ErrInvalidConvention)

	_, err = LookupConvention("X,Q,Y")
	assert.ErrorIs(t, err, ErrInvalidConvention)

	_, err = LookupConvention("maya-ish")
	assert.ErrorIs(t, err, ErrUnknownConvention)

	names := ConventionNames()
	assert.Contains(t, names, "blender")
	assert.IsNonDecreasing(t, names)

}

func TestEveryConventionPair(t *testing.T) {

	all := []Convention{}
	for _, right := range AllAxes {
		for _, up := range AllAxes {
			for _, forward := range AllAxes {
				c := Convention{Right: right, Up: up, Forward: forward}
				if c.Validate() == nil {
					all = append(all, c)
				}
			}
		}
	}

	require.Len(t, all, 48)

	for _, from := range all {
		for _, to := range all {

			tr, err := ConventionTransform(from, to)
			if from.Handedness() != to.Handedness() {
				assert.ErrorIs(t, err, ErrHandednessMismatch)
				continue
			}

			require.NoError(t, err, "%s -> %s", from, to)
			assert.Equal(t, to.Right.Vector(), tr.TransformPoint(from.Right.Vector()), "%s -> %s", from, to)
			assert.Equal(t, to.Up.Vector(), tr.TransformPoint(from.Up.Vector()), "%s -> %s", from, to)
			assert.Equal(t, to.Forward.Vector(), tr.TransformPoint(from.Forward.Vector()), "%s -> %s", from, to)

		}
	}

}
