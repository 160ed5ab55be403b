// Package frames converts vectors, quaternions, and matrices between 3D coordinate conventions (Y-up vs Z-up, glTF vs
// Blender, and so on) using the 24 axis-aligned rotations of the cube.
//
// The rotations are found once, on first use, by composing the six quarter turns about ±X, ±Y and ±Z until no new
// rotation turns up. Each rotation gets the shortest name that reaches it, spelled as the quarter turns to apply from
// left to right: "ZX" is a quarter turn about Z followed by one about X, "-X-X" a half turn about X, and "" the identity.
//
//	t := frames.MustParse("ZX")
//	t.TransformPoint(mgl64.Vec3{1, 2, 3}) // (-2, -3, 1)
//
// Axis rotations transform vectors by shuffling and negating components, without any multiplication. General rotations,
// translations, and sequences of them are also available through the same Transformation type.
package frames
