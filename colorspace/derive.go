package colorspace

import (
	"fmt"

	"github.com/weaming/colormatrix/matrix"
)

// PrimaryMatrix 以三原色的 XYZ 作为列组成矩阵 (列依次为 R, G, B)
func PrimaryMatrix(p PrimarySet) Matrix3x3 {
	return matrix.FromColumns(p.Red.XYZ(), p.Green.XYZ(), p.Blue.XYZ())
}

// RGBToXYZMatrix 由三原色和白点推导线性 RGB → XYZ 矩阵
//
// S = M_p^-1 * W，结果的第 j 列为 M_p 第 j 列乘以 S[j]
func RGBToXYZMatrix(p PrimarySet, white Chromaticity) (Matrix3x3, error) {
	return rgbToXYZ(p, white.XYZ())
}

func rgbToXYZ(p PrimarySet, w Vector3) (Matrix3x3, error) {
	mp := PrimaryMatrix(p)
	mpInv, err := mp.Inverse()
	if err != nil {
		return Matrix3x3{}, fmt.Errorf("primaries: %w", err)
	}

	s := mpInv.Apply(w)
	return mp.ScaleColumns(s), nil
}

// XYZToRGBMatrix RGBToXYZMatrix 的逆
func XYZToRGBMatrix(p PrimarySet, white Chromaticity) (Matrix3x3, error) {
	return xyzToRGB(p, white.XYZ())
}

func xyzToRGB(p PrimarySet, w Vector3) (Matrix3x3, error) {
	m, err := rgbToXYZ(p, w)
	if err != nil {
		return Matrix3x3{}, err
	}
	inv, err := m.Inverse()
	if err != nil {
		return Matrix3x3{}, fmt.Errorf("rgb to xyz: %w", err)
	}
	return inv, nil
}

// XYZToRGBAdapted XYZ (srcWhite 下) → 目标 RGB 空间
//
//	XYZ_to_RGB_dst * adaptation(srcWhite -> dst.White)
func XYZToRGBAdapted(srcWhite WhitePoint, dst RGBSpace, basis Basis) (Matrix3x3, error) {
	toRGB, err := dst.FromXYZ()
	if err != nil {
		return Matrix3x3{}, err
	}
	if srcWhite.XYZ() == dst.White.XYZ() {
		return toRGB, nil
	}

	adapt, err := Adapt(basis, srcWhite, dst.White)
	if err != nil {
		return Matrix3x3{}, err
	}
	return toRGB.Multiply(adapt), nil
}

// ConversionMatrix 线性 RGB (src) → 线性 RGB (dst)，白点不同时经过色适应
func ConversionMatrix(src, dst RGBSpace, basis Basis) (Matrix3x3, error) {
	toXYZ, err := src.ToXYZ()
	if err != nil {
		return Matrix3x3{}, err
	}
	fromXYZ, err := XYZToRGBAdapted(src.White, dst, basis)
	if err != nil {
		return Matrix3x3{}, err
	}
	return fromXYZ.Multiply(toXYZ), nil
}
