package frames

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/floats"
)

// group is the discovered rotation group of the cube. It's built once and only read afterwards.
type group struct {
	rotations  []Rotation // Indexed by RotationID
	byKey      map[matrixKey]RotationID
	byName     map[string]RotationID
	generators map[Axis]RotationID
	products   [GroupOrder][GroupOrder]RotationID // products[a][b] is "apply a, then b"
	inverses   [GroupOrder]RotationID
}

var (
	theGroup  *group
	groupOnce sync.Once
)

// probeVector is pushed through both the quaternion and the matrix form of every element to check they agree.
var probeVector = mgl64.Vec3{1, 2, 3}

const probeTolerance = 1e-6

// rotationGroup returns the process-wide rotation group, discovering it on first use. A failed consistency check is a
// bug in the discovery itself, so it panics rather than handing out a partial group.
func rotationGroup() *group {
	groupOnce.Do(func() {
		g, err := discover(AllAxes)
		if err != nil {
			panic(err)
		}
		theGroup = g
	})
	return theGroup
}

// generatorQuat returns the quaternion for a counter-clockwise quarter turn about the given axis.
func generatorQuat(axis Axis) mgl64.Quat {
	return mgl64.QuatRotate(math.Pi/2, axis.Vector())
}

type element struct {
	tokens []Axis
	quat   mgl64.Quat
	matrix mgl64.Mat4
}

// discover finds the full rotation group by breadth-first closure over the generators in the order given. The first
// (and therefore shortest) composition path to reach an element becomes its name; ties go to the earlier generator.
func discover(order []Axis) (*group, error) {

	elements := []element{{quat: mgl64.QuatIdent(), matrix: mgl64.Ident4()}}
	seen := map[matrixKey]int{keyOf(mgl64.Ident4()): 0}

	gens := make([]element, 0, len(order))
	queue := make([]int, 0, GroupOrder)

	for _, axis := range order {
		q := generatorQuat(axis)
		gen := element{tokens: []Axis{axis}, quat: q, matrix: roundMatrix(q.Mat4())}
		gens = append(gens, gen)
		key := keyOf(gen.matrix)
		if _, exists := seen[key]; exists {
			return nil, consistencyErrorf("generators", "generator %s duplicates an earlier element", axis)
		}
		seen[key] = len(elements)
		queue = append(queue, len(elements))
		elements = append(elements, gen)
	}

	for len(queue) > 0 {

		t := elements[queue[0]]
		queue = queue[1:]

		for _, gen := range gens {

			q := gen.quat.Mul(t.quat)
			m := gen.matrix.Mul4(t.matrix)

			key := keyOf(m)
			if _, exists := seen[key]; exists {
				continue
			}

			if fromQuat := roundMatrix(q.Mat4()); fromQuat != m {
				return nil, consistencyErrorf("quaternion", "%s%s: matrix from quaternion %s != composed matrix %s",
					FormatTokens(t.tokens), gen.tokens[0], formatMatrix(fromQuat), formatMatrix(m))
			}

			tokens := make([]Axis, 0, len(t.tokens)+1)
			tokens = append(append(tokens, t.tokens...), gen.tokens[0])

			seen[key] = len(elements)
			queue = append(queue, len(elements))
			elements = append(elements, element{tokens: tokens, quat: q, matrix: m})

			if len(elements) > GroupOrder {
				return nil, consistencyErrorf("count", "discovered more than %d elements", GroupOrder)
			}

		}

	}

	if len(elements) != GroupOrder {
		return nil, consistencyErrorf("count", "discovered %d elements, expected %d", len(elements), GroupOrder)
	}

	g := &group{
		rotations:  make([]Rotation, len(elements)),
		byKey:      make(map[matrixKey]RotationID, len(elements)),
		byName:     make(map[string]RotationID, len(elements)),
		generators: make(map[Axis]RotationID, len(order)),
	}

	for i, e := range elements {

		if !isSignedPermutation(e.matrix) {
			return nil, consistencyErrorf("permutation", "element %q has matrix %s", FormatTokens(e.tokens), formatMatrix(e.matrix))
		}

		viaQuat := sandwich(e.quat, probeVector)
		viaMatrix := e.matrix.Mul4x1(probeVector.Vec4(1)).Vec3()
		if !floats.EqualApprox(viaQuat[:], viaMatrix[:], probeTolerance) {
			return nil, consistencyErrorf("representation", "element %q rotates %v to %v by quaternion but %v by matrix",
				FormatTokens(e.tokens), probeVector, viaQuat, viaMatrix)
		}

		id := RotationID(i)
		g.rotations[i] = Rotation{
			id:      id,
			tokens:  e.tokens,
			quat:    e.quat,
			matrix:  e.matrix,
			formula: formulaFromMatrix(e.matrix),
		}
		g.byKey[keyOf(e.matrix)] = id
		g.byName[FormatTokens(e.tokens)] = id
	}

	for i, axis := range order {
		g.generators[axis] = RotationID(i + 1)
	}

	if err := g.buildTables(); err != nil {
		return nil, err
	}

	if err := g.checkNameLengths(); err != nil {
		return nil, err
	}

	return g, nil

}

// buildTables fills in the product and inverse tables, checking closure, that matrix composition matches quaternion
// composition, the identity laws, and that every element has exactly one inverse.
func (g *group) buildTables() error {

	for a := range g.rotations {
		for b := range g.rotations {

			ra, rb := g.rotations[a], g.rotations[b]
			m := rb.matrix.Mul4(ra.matrix)

			id, ok := g.byKey[keyOf(m)]
			if !ok {
				return consistencyErrorf("closure", "%q then %q leaves the group: %s", ra.Name(), rb.Name(), formatMatrix(m))
			}

			if fromQuat := roundMatrix(rb.quat.Mul(ra.quat).Mat4()); fromQuat != m {
				return consistencyErrorf("product", "%q then %q: quaternion product gives %s, matrix product %s",
					ra.Name(), rb.Name(), formatMatrix(fromQuat), formatMatrix(m))
			}

			g.products[a][b] = id

		}
	}

	for a := range g.rotations {

		if g.products[a][IdentityID] != RotationID(a) || g.products[IdentityID][a] != RotationID(a) {
			return consistencyErrorf("identity", "identity law fails for %q", g.rotations[a].Name())
		}

		found := 0
		for b := range g.rotations {
			if g.products[a][b] == IdentityID {
				g.inverses[a] = RotationID(b)
				found++
			}
		}
		if found != 1 {
			return consistencyErrorf("inverse", "%q has %d inverses", g.rotations[a].Name(), found)
		}

	}

	return nil

}

func (g *group) lookup(matrix mgl64.Mat4) (RotationID, bool) {
	key, ok := nearKey(matrix)
	if !ok {
		return 0, false
	}
	id, ok := g.byKey[key]
	return id, ok
}

// Rotations returns all 24 rotations of the group, indexed by RotationID.
func Rotations() []Rotation {
	return append([]Rotation(nil), rotationGroup().rotations...)
}

// RotationByID returns the Rotation with the given ID. It panics if the ID is not below GroupOrder.
func RotationByID(id RotationID) Rotation {
	return rotationGroup().rotations[id]
}

// GeneratorID returns the ID of the quarter turn about the given axis.
func GeneratorID(axis Axis) RotationID {
	return rotationGroup().generators[axis]
}

// Generators returns the IDs of the six quarter turns, in generator order (the same order as AllAxes).
func Generators() []RotationID {
	ids := make([]RotationID, len(AllAxes))
	for i, axis := range AllAxes {
		ids[i] = GeneratorID(axis)
	}
	return ids
}

// ComposeRotations returns the rotation equivalent to applying first, then second.
func ComposeRotations(first, second RotationID) RotationID {
	return rotationGroup().products[first][second]
}

// InverseRotation returns the rotation that undoes the given one.
func InverseRotation(id RotationID) RotationID {
	return rotationGroup().inverses[id]
}

// LookupMatrix finds the group element whose matrix equals the one given, allowing each entry to be off from -1, 0,
// or 1 by a tiny floating point error. The translation part must be zero.
func LookupMatrix(matrix mgl64.Mat4) (RotationID, bool) {
	return rotationGroup().lookup(matrix)
}

// RotationDistance returns the fewest quarter turns needed to get from one rotation to another.
func RotationDistance(from, to RotationID) int {
	g := rotationGroup()
	return len(g.rotations[g.products[g.inverses[from]][to]].tokens)
}
