package frames

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Matrices in frames are mgl64.Mat4 values: column-major storage, transforming column vectors (M * v).
// Composing "apply a, then b" is b.Mul4(a).

// matrixKey is the integer form of a group element's matrix, used to look rotations up by their effect.
type matrixKey [16]int8

// matrixTolerance is how far a float matrix entry may drift from an integer and still be considered that integer
// when looking a matrix up in the rotation group.
const matrixTolerance = 1e-9

// roundMatrix rounds each entry of the matrix to the nearest integer. All group element matrices are made of
// -1, 0, and 1, so rounding the matrix built from a quaternion recovers the exact matrix.
func roundMatrix(matrix mgl64.Mat4) mgl64.Mat4 {
	for i := range matrix {
		matrix[i] = math.Round(matrix[i])
		if matrix[i] == 0 {
			matrix[i] = 0 // No negative zeroes
		}
	}
	return matrix
}

func keyOf(matrix mgl64.Mat4) matrixKey {
	key := matrixKey{}
	for i, v := range matrix {
		key[i] = int8(math.Round(v))
	}
	return key
}

// nearKey returns the key for a matrix whose entries are each within matrixTolerance of -1, 0, or 1 and whose rounded
// form is a signed permutation. Anything else (a translation, a scale, NaN) has no key.
func nearKey(matrix mgl64.Mat4) (matrixKey, bool) {
	for _, v := range matrix {
		if !(math.Abs(v) <= 1+matrixTolerance) || math.Abs(v-math.Round(v)) > matrixTolerance {
			return matrixKey{}, false
		}
	}
	if !isSignedPermutation(roundMatrix(matrix)) {
		return matrixKey{}, false
	}
	return keyOf(matrix), true
}

// isSignedPermutation returns true if the upper-left 3x3 block of the matrix holds exactly one non-zero entry, 1 or -1,
// per row and per column, and the rest of the matrix is the identity's.
func isSignedPermutation(matrix mgl64.Mat4) bool {

	for row := 0; row < 3; row++ {
		nonZero := 0
		for col := 0; col < 3; col++ {
			switch matrix.At(row, col) {
			case 0:
			case 1, -1:
				nonZero++
			default:
				return false
			}
		}
		if nonZero != 1 {
			return false
		}
	}

	for col := 0; col < 3; col++ {
		nonZero := 0
		for row := 0; row < 3; row++ {
			if matrix.At(row, col) != 0 {
				nonZero++
			}
		}
		if nonZero != 1 {
			return false
		}
	}

	return matrix.At(3, 0) == 0 && matrix.At(3, 1) == 0 && matrix.At(3, 2) == 0 &&
		matrix.At(0, 3) == 0 && matrix.At(1, 3) == 0 && matrix.At(2, 3) == 0 &&
		matrix.At(3, 3) == 1

}

// formatMatrix formats the matrix row by row, for error messages.
func formatMatrix(matrix mgl64.Mat4) string {
	var sb strings.Builder
	sb.WriteString("{")
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sb.WriteString(strconv.FormatFloat(matrix.At(row, col), 'f', -1, 64))
			if col < 3 {
				sb.WriteString(", ")
			}
		}
		if row < 3 {
			sb.WriteString("; ")
		}
	}
	sb.WriteString("}")
	return sb.String()
}
