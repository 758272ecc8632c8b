package colorspace_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/weaming/colormatrix/colorspace"
	"github.com/weaming/colormatrix/matrix"
)

func TestBradfordD50ToD65(t *testing.T) {
	got, err := colorspace.AdaptationMatrix(colorspace.Bradford, colorspace.D50WhitePoint, colorspace.D65WhitePoint)
	require.NoError(t, err)
	if diff := cmp.Diff(colorspace.BradfordD50ToD65, got, within(1e-6)); diff != "" {
		t.Errorf("Bradford D50->D65 mismatch (-want +got):\n%s", diff)
	}
}

func TestBradfordD65ToD50(t *testing.T) {
	got, err := colorspace.AdaptationMatrix(colorspace.Bradford, colorspace.D65WhitePoint, colorspace.D50WhitePoint)
	require.NoError(t, err)
	if diff := cmp.Diff(colorspace.BradfordD65ToD50, got, within(1e-6)); diff != "" {
		t.Errorf("Bradford D65->D50 mismatch (-want +got):\n%s", diff)
	}
}

func TestAdaptASTMWhites(t *testing.T) {
	d50, d65 := colorspace.ASTMWhite(colorspace.D50), colorspace.ASTMWhite(colorspace.D65)
	require.Equal(t, colorspace.D50WhitePoint, d50.XYZ())
	require.Equal(t, "D65", d65.Name)

	got, err := colorspace.Adapt(colorspace.Bradford, d50, d65)
	require.NoError(t, err)
	if diff := cmp.Diff(colorspace.BradfordD50ToD65, got, within(1e-6)); diff != "" {
		t.Errorf("Bradford D50->D65 mismatch (-want +got):\n%s", diff)
	}

	// 色度坐标推导的白点与公布矩阵相差约 3e-4
	xy, err := colorspace.Adapt(colorspace.Bradford, colorspace.D50, colorspace.D65)
	require.NoError(t, err)
	require.Greater(t, xy.MaxAbsDiff(colorspace.BradfordD50ToD65), 1e-4)

	require.Equal(t, colorspace.A, colorspace.ASTMWhite(colorspace.A))
}

func TestVonKriesD50ToD65(t *testing.T) {
	want := colorspace.Matrix3x3{
		0.9845002, -0.0546158, 0.0676324,
		-0.0059992, 1.0047864, 0.0012095,
		0.0000000, 0.0000000, 1.3194581,
	}
	got, err := colorspace.AdaptationMatrix(colorspace.VonKries, colorspace.D50WhitePoint, colorspace.D65WhitePoint)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got, within(1e-6)); diff != "" {
		t.Errorf("Von Kries D50->D65 mismatch (-want +got):\n%s", diff)
	}
}

func TestXYZScalingIsDiagonal(t *testing.T) {
	got, err := colorspace.AdaptationMatrix(colorspace.XYZScaling, colorspace.D50WhitePoint, colorspace.D65WhitePoint)
	require.NoError(t, err)
	want := matrix.Diagonal3x3(colorspace.Vector3{0.95047 / 0.96422, 1, 1.08883 / 0.82521})
	if diff := cmp.Diff(want, got, within(1e-15)); diff != "" {
		t.Errorf("XYZ scaling mismatch (-want +got):\n%s", diff)
	}
}

func TestAdaptationMapsWhiteToWhite(t *testing.T) {
	for _, b := range []colorspace.Basis{colorspace.Bradford, colorspace.VonKries, colorspace.XYZScaling, colorspace.CAT02} {
		t.Run(b.Name, func(t *testing.T) {
			m, err := colorspace.Adapt(b, colorspace.A, colorspace.D65)
			require.NoError(t, err)
			got := m.Apply(colorspace.A.XYZ())
			// Bradford 与 VonKries 的逆矩阵只有 7 位小数
			if diff := cmp.Diff(colorspace.D65.XYZ(), got, within(1e-6)); diff != "" {
				t.Errorf("source white does not map to destination white:\n%s", diff)
			}
		})
	}
}

func TestAdaptSameWhiteIsIdentity(t *testing.T) {
	m, err := colorspace.Adapt(colorspace.CAT02, colorspace.D65, colorspace.D65)
	require.NoError(t, err)
	if diff := cmp.Diff(matrix.Identity3x3(), m, within(1e-12)); diff != "" {
		t.Errorf("D65->D65 is not identity:\n%s", diff)
	}
}

func TestAdaptDegenerateSourceWhite(t *testing.T) {
	zero := colorspace.WhitePoint{Name: "zero", XY: colorspace.Chromaticity{X: 0.3, Y: 0}}
	_, err := colorspace.Adapt(colorspace.Bradford, zero, colorspace.D65)
	require.ErrorIs(t, err, matrix.ErrDegenerateMatrix)

	// 基矩阵把源白点映射出零分量
	_, err = colorspace.AdaptationMatrix(colorspace.XYZScaling, colorspace.Vector3{1, 0, 1}, colorspace.D65WhitePoint)
	require.ErrorIs(t, err, matrix.ErrDegenerateMatrix)
}

func TestNewBasis(t *testing.T) {
	b, err := colorspace.NewBasis("Bradford", colorspace.Bradford.M)
	require.NoError(t, err)
	if diff := cmp.Diff(colorspace.Bradford.Inv, b.Inv, within(1e-7)); diff != "" {
		t.Errorf("computed Bradford inverse differs from published (-want +got):\n%s", diff)
	}

	_, err = colorspace.NewBasis("singular", colorspace.Matrix3x3{})
	require.ErrorIs(t, err, matrix.ErrDegenerateMatrix)
}

func TestCAT02Inverse(t *testing.T) {
	if diff := cmp.Diff(matrix.Identity3x3(), colorspace.CAT02.M.Multiply(colorspace.CAT02.Inv), within(1e-12)); diff != "" {
		t.Errorf("CAT02 M*Inv is not identity:\n%s", diff)
	}
}
