package rangehighlight

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s = %v, want %v", name, got, want)
			return
		}
	}
}

func TestMultiplyAffineIdentity(t *testing.T) {
	m := [6]float64{2, 0, 0, 3, 10, 20}
	assertMatrix(t, "identity*m", multiplyAffine(identityTransform, m), m)
	assertMatrix(t, "m*identity", multiplyAffine(m, identityTransform), m)
}

func TestMultiplyAffineTranslateScale(t *testing.T) {
	translate := [6]float64{1, 0, 0, 1, 100, 50}
	scale := [6]float64{16, 0, 0, 16, 0, 0}
	m := multiplyAffine(translate, scale)
	x, y := transformPoint(m, 1, 1)
	if !approxEqual(x, 116, epsilon) || !approxEqual(y, 66, epsilon) {
		t.Errorf("transformPoint = (%v, %v), want (116, 66)", x, y)
	}
}

func TestInvertAffine(t *testing.T) {
	tests := []struct {
		name string
		m    [6]float64
	}{
		{"identity", identityTransform},
		{"translate", [6]float64{1, 0, 0, 1, -40, 12}},
		{"zoom", [6]float64{2.5, 0, 0, 2.5, 400, 300}},
		{"shear", [6]float64{1, 0.5, 0.25, 1, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertMatrix(t, "m*inv(m)", multiplyAffine(tt.m, invertAffine(tt.m)), identityTransform)
		})
	}
}

func TestInvertAffineSingular(t *testing.T) {
	assertMatrix(t, "inv(singular)", invertAffine([6]float64{0, 0, 0, 0, 5, 5}), identityTransform)
}
