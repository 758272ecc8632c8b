package colorspace

import "github.com/weaming/colormatrix/matrix"

type (
	Matrix3x3 = matrix.Matrix3x3
	Vector3   = matrix.Vector3
)

// Chromaticity CIE 1931 xy 色度坐标
type Chromaticity struct {
	X, Y float64
}

// XYZ 转换为 Y=1 的三刺激值
func (c Chromaticity) XYZ() Vector3 {
	return XYToXYZ(c.X, c.Y)
}

// XYToXYZ 色度坐标转三刺激值 (x/y, 1, (1-x-y)/y)
// y 为 0 时约定返回零向量，不报错
func XYToXYZ(x, y float64) Vector3 {
	if y == 0 {
		return Vector3{}
	}
	return Vector3{x / y, 1.0, (1 - x - y) / y}
}

// XYZToXY 三刺激值转色度坐标，X+Y+Z 为 0 时返回零色度
func XYZToXY(v Vector3) Chromaticity {
	sum := v.Sum()
	if sum == 0 {
		return Chromaticity{}
	}
	return Chromaticity{X: v[0] / sum, Y: v[1] / sum}
}

// PrimarySet RGB 色彩空间的三原色
type PrimarySet struct {
	Red, Green, Blue Chromaticity
}

// WhitePoint 参考白（标准光源）
//
// Tristimulus 非零时优先于 XY，用于复现按测量三刺激值公布的矩阵
type WhitePoint struct {
	Name        string
	XY          Chromaticity
	Tristimulus Vector3
}

// XYZ 白点的三刺激值 (Y=1)
func (w WhitePoint) XYZ() Vector3 {
	if w.Tristimulus != (Vector3{}) {
		return w.Tristimulus
	}
	return w.XY.XYZ()
}

func (w WhitePoint) String() string {
	return w.Name
}
