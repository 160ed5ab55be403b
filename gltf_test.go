package frames

import (
	"bytes"
	"log"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestDocument creates a document with a single scene holding a root node "Cube" (at +Z) with one child.
func newTestDocument() *gltf.Document {
	doc := gltf.NewDocument()
	doc.Buffers = nil
	cube := &gltf.Node{Name: "Cube", Children: []int{1}}
	setFloats(cube.Translation[:], 0, 0, 1)
	setFloats(cube.Rotation[:], 0, 0, 0, 1)
	setFloats(cube.Scale[:], 1, 1, 1)
	doc.Nodes = append(doc.Nodes, cube, &gltf.Node{Name: "Child"})
	doc.Scenes[0].Nodes = []int{0}
	return doc
}

// captureLog redirects the standard logger for the duration of a test.
func captureLog(t *testing.T) *bytes.Buffer {
	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return buf
}

var halfSqrt2 = math.Sqrt2 / 2

func TestReorientWraps(t *testing.T) {

	doc := newTestDocument()
	require.NoError(t, ReorientDocument(doc, MustParse("-X"), nil))

	require.Len(t, doc.Nodes, 3)
	assert.Equal(t, []int{2}, doc.Scenes[0].Nodes)

	wrapper := doc.Nodes[2]
	assert.Equal(t, "Cube_reoriented", wrapper.Name)
	assert.Equal(t, []int{0}, wrapper.Children)
	assert.InDeltaSlice(t, []float64{-halfSqrt2, 0, 0, halfSqrt2}, getFloats(wrapper.Rotation[:]), 1e-9)
	assert.InDeltaSlice(t, []float64{0, 0, 0}, getFloats(wrapper.Translation[:]), 0)
	assert.InDeltaSlice(t, []float64{1, 1, 1}, getFloats(wrapper.Scale[:]), 0)

	// The old root is left as it was.
	assert.InDeltaSlice(t, []float64{0, 0, 1}, getFloats(doc.Nodes[0].Translation[:]), 0)

}

func TestReorientWrapsSharedRootsOnce(t *testing.T) {

	doc := newTestDocument()
	doc.Scenes = append(doc.Scenes, &gltf.Scene{Name: "Other", Nodes: []int{0, 1}})

	options := DefaultReorientOptions()
	options.WrapperSuffix = "_yup"
	require.NoError(t, ReorientDocument(doc, MustParse("-X"), options))

	require.Len(t, doc.Nodes, 4)
	assert.Equal(t, []int{2}, doc.Scenes[0].Nodes)
	assert.Equal(t, []int{2, 3}, doc.Scenes[1].Nodes)
	assert.Equal(t, "Cube_yup", doc.Nodes[2].Name)
	assert.Equal(t, "Child_yup", doc.Nodes[3].Name)

}

func TestReorientBakes(t *testing.T) {

	doc := newTestDocument()
	captureLog(t)

	require.NoError(t, ReorientDocument(doc, MustParse("-X"), &ReorientOptions{Bake: true}))

	require.Len(t, doc.Nodes, 2)
	cube := doc.Nodes[0]

	// (x, y, z) becomes (x, z, -y), so +Z ends up at +Y.
	assert.InDeltaSlice(t, []float64{0, 1, 0}, getFloats(cube.Translation[:]), 1e-9)
	assert.InDeltaSlice(t, []float64{-halfSqrt2, 0, 0, halfSqrt2}, getFloats(cube.Rotation[:]), 1e-9)

	// Children keep their local transforms.
	assert.InDeltaSlice(t, []float64{0, 0, 0}, getFloats(doc.Nodes[1].Translation[:]), 0)

}

func TestReorientBakesMatrix(t *testing.T) {

	doc := newTestDocument()
	captureLog(t)

	m := mgl64.Translate3D(0, 0, 2)
	setFloats(doc.Nodes[0].Matrix[:], m[:]...)

	require.NoError(t, ReorientDocument(doc, MustParse("-X"), &ReorientOptions{Bake: true}))

	baked := getFloats(doc.Nodes[0].Matrix[:])
	assert.InDeltaSlice(t, []float64{0, 2, 0}, baked[12:15], 1e-9)
	assert.InDelta(t, 1, baked[15], 0)

	// The TRS properties are ignored when a matrix is set.
	assert.InDeltaSlice(t, []float64{0, 0, 1}, getFloats(doc.Nodes[0].Translation[:]), 0)

}

func TestReorientBakeWarnsAboutAnimation(t *testing.T) {

	doc := newTestDocument()
	channel := &gltf.AnimationChannel{}
	channel.Target.Node = gltf.Index(0)
	channel.Target.Path = gltf.TRSRotation
	doc.Animations = append(doc.Animations, &gltf.Animation{Name: "Spin", Channels: []*gltf.AnimationChannel{channel}})
	doc.Skins = append(doc.Skins, &gltf.Skin{Name: "Rig", Joints: []int{0}})

	out := captureLog(t)

	require.NoError(t, ReorientDocument(doc, MustParse("-X"), &ReorientOptions{Bake: true}))
	assert.Contains(t, out.String(), "Warning: node Cube is animated")
	assert.Contains(t, out.String(), "Warning: node Cube is a skin joint")

}

func TestReorientEdgeCases(t *testing.T) {

	empty := gltf.NewDocument()
	empty.Scenes = nil
	assert.ErrorIs(t, ReorientDocument(empty, MustParse("X"), nil), ErrNoScenes)

	doc := newTestDocument()
	require.NoError(t, ReorientDocument(doc, Identity(), nil))
	assert.Len(t, doc.Nodes, 2)

	broken := newTestDocument()
	broken.Scenes[0].Nodes = []int{7}
	assert.Error(t, ReorientDocument(broken, MustParse("X"), nil))

}

func TestReorientFile(t *testing.T) {

	dir := t.TempDir()
	in := filepath.Join(dir, "cube.gltf")
	out := filepath.Join(dir, "cube.glb")

	require.NoError(t, gltf.Save(newTestDocument(), in))

	tr, err := ReorientFile(in, out, ConventionBlender, ConventionOpenGL, nil)
	require.NoError(t, err)
	assert.Equal(t, MustParse("-X"), tr)

	doc, err := gltf.Open(out)
	require.NoError(t, err)
	require.Len(t, doc.Nodes, 3)
	assert.Equal(t, "Cube_reoriented", doc.Nodes[2].Name)
	assert.Equal(t, []int{2}, doc.Scenes[0].Nodes)

	_, err = ReorientFile(in, out, ConventionBlender, ConventionUnity, nil)
	assert.ErrorIs(t, err, ErrHandednessMismatch)

	_, err = ReorientFile(filepath.Join(dir, "missing.gltf"), out, ConventionBlender, ConventionOpenGL, nil)
	assert.Error(t, err)

}

func BenchmarkReorientDocument(b *testing.B) {

	b.ReportAllocs()

	tr := MustParse("-X")

	for i := 0; i < b.N; i++ {
		doc := newTestDocument()
		if err := ReorientDocument(doc, tr, &ReorientOptions{Bake: true}); err != nil {
			b.Fatal(err)
		}
	}

}
