package frames

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/qmuntal/gltf"
)

// ReorientOptions controls how ReorientDocument applies a Transformation to a glTF document.
type ReorientOptions struct {
	// If Bake is true, the Transformation is applied directly to the root nodes of each scene. Otherwise (the default),
	// each root node is parented to a new node carrying the Transformation, which leaves animations and skins untouched.
	Bake bool
	// WrapperSuffix is appended to a root node's name to name the node created to hold it when Bake is false.
	WrapperSuffix string
}

// DefaultReorientOptions creates an instance of ReorientOptions with some sensible defaults.
func DefaultReorientOptions() *ReorientOptions {
	return &ReorientOptions{
		Bake:          false,
		WrapperSuffix: "_reoriented",
	}
}

// ReorientFile loads a .gltf or .glb file, reorients it from one coordinate Convention to another, and saves it to
// outPath (binary if outPath ends in .glb). It returns the Transformation that was applied.
func ReorientFile(inPath, outPath string, from, to Convention, options *ReorientOptions) (Transformation, error) {

	t, err := ConventionTransform(from, to)
	if err != nil {
		return Transformation{}, err
	}

	doc, err := gltf.Open(inPath)
	if err != nil {
		return Transformation{}, err
	}

	if err := ReorientDocument(doc, t, options); err != nil {
		return Transformation{}, fmt.Errorf("reorienting %s: %w", inPath, err)
	}

	if strings.EqualFold(filepath.Ext(outPath), ".glb") {
		err = gltf.SaveBinary(doc, outPath)
	} else {
		err = gltf.Save(doc, outPath)
	}

	return t, err

}

// ReorientDocument applies the Transformation to every scene of the glTF document, so that the whole scene is moved as
// one. Passing nil for options uses DefaultReorientOptions(). Each root node is only transformed once, even if
// several scenes share it.
func ReorientDocument(doc *gltf.Document, t Transformation, options *ReorientOptions) error {

	if len(doc.Scenes) == 0 {
		return ErrNoScenes
	}

	if options == nil {
		options = DefaultReorientOptions()
	}

	if t.Kind() == KindIdentity {
		return nil
	}

	roots := []int{}
	seen := map[int]bool{}
	for _, scene := range doc.Scenes {
		for _, root := range scene.Nodes {
			if root < 0 || root >= len(doc.Nodes) {
				return fmt.Errorf("scene %q refers to missing node %d", scene.Name, root)
			}
			if !seen[root] {
				seen[root] = true
				roots = append(roots, root)
			}
		}
	}

	if options.Bake {

		animated := animatedNodes(doc)
		jointNodes := joints(doc)

		for _, root := range roots {
			node := doc.Nodes[root]
			if animated[root] {
				log.Println("Warning: node " + node.Name + " is animated; its animation will overwrite the baked reorientation")
			}
			if jointNodes[root] {
				log.Println("Warning: node " + node.Name + " is a skin joint; baking moves the skeleton away from its bind pose")
			}
			bakeNode(node, t)
		}

		return nil

	}

	wrappers := map[int]int{}

	for _, root := range roots {
		wrapper := &gltf.Node{
			Name:     doc.Nodes[root].Name + options.WrapperSuffix,
			Children: []int{root},
		}
		setNodeTransform(wrapper, t)
		wrappers[root] = len(doc.Nodes)
		doc.Nodes = append(doc.Nodes, wrapper)
	}

	for _, scene := range doc.Scenes {
		for i, root := range scene.Nodes {
			scene.Nodes[i] = wrappers[root]
		}
	}

	return nil

}

// setNodeTransform sets a new node's TRS properties to the rigid Transformation given.
func setNodeTransform(node *gltf.Node, t Transformation) {
	q := t.Quaternion()
	offset := t.TransformPoint(mgl64.Vec3{})
	identity := mgl64.Ident4()
	setFloats(node.Matrix[:], identity[:]...)
	setFloats(node.Translation[:], offset[:]...)
	setFloats(node.Rotation[:], q.V[0], q.V[1], q.V[2], q.W)
	setFloats(node.Scale[:], 1, 1, 1)
}

// bakeNode applies the Transformation on top of the node's existing local transform.
func bakeNode(node *gltf.Node, t Transformation) {

	matrix := mgl64.Mat4{}
	copy(matrix[:], getFloats(node.Matrix[:]))

	if matrix != mgl64.Ident4() && matrix != (mgl64.Mat4{}) {
		matrix = t.Matrix().Mul4(matrix)
		setFloats(node.Matrix[:], matrix[:]...)
		return
	}

	translation := mgl64.Vec3{}
	copy(translation[:], getFloats(node.Translation[:]))

	rot := getFloats(node.Rotation[:])
	q := mgl64.Quat{W: rot[3], V: mgl64.Vec3{rot[0], rot[1], rot[2]}}
	if q.Len() == 0 {
		q = mgl64.QuatIdent()
	}

	translation = t.TransformPoint(translation)
	q = t.Quaternion().Mul(q).Normalize()

	setFloats(node.Translation[:], translation[:]...)
	setFloats(node.Rotation[:], q.V[0], q.V[1], q.V[2], q.W)

}

func animatedNodes(doc *gltf.Document) map[int]bool {
	animated := map[int]bool{}
	for _, anim := range doc.Animations {
		for _, channel := range anim.Channels {
			if channel.Target.Node == nil {
				continue
			}
			if channel.Target.Path == gltf.TRSTranslation || channel.Target.Path == gltf.TRSRotation {
				animated[*channel.Target.Node] = true
			}
		}
	}
	return animated
}

func joints(doc *gltf.Document) map[int]bool {
	jointNodes := map[int]bool{}
	for _, skin := range doc.Skins {
		for _, j := range skin.Joints {
			jointNodes[j] = true
		}
	}
	return jointNodes
}

// setFloats and getFloats copy node properties whichever float width the glTF library stores them in.
func setFloats[F float32 | float64](dst []F, src ...float64) {
	for i, v := range src {
		dst[i] = F(v)
	}
}

func getFloats[F float32 | float64](src []F) []float64 {
	out := make([]float64, len(src))
	for i, v := range src {
		out[i] = float64(v)
	}
	return out
}
