package colorspace

import (
	"fmt"

	"github.com/weaming/colormatrix/matrix"
)

// Basis 色适应所用的锥响应基矩阵及其逆矩阵
type Basis struct {
	Name string
	M    Matrix3x3
	Inv  Matrix3x3
}

// NewBasis 由基矩阵构造 Basis，逆矩阵通过求逆得到
func NewBasis(name string, m Matrix3x3) (Basis, error) {
	inv, err := m.Inverse()
	if err != nil {
		return Basis{}, fmt.Errorf("basis %s: %w", name, err)
	}
	return Basis{Name: name, M: m, Inv: inv}, nil
}

func mustBasis(name string, m Matrix3x3) Basis {
	b, err := NewBasis(name, m)
	if err != nil {
		panic(err)
	}
	return b
}

func (b Basis) String() string {
	return b.Name
}

// Bradford 基矩阵，逆矩阵取公布的 7 位小数值
var Bradford = Basis{
	Name: "Bradford",
	M: Matrix3x3{
		0.8951000, 0.2664000, -0.1614000,
		-0.7502000, 1.7135000, 0.0367000,
		0.0389000, -0.0685000, 1.0296000,
	},
	Inv: Matrix3x3{
		0.9869929, -0.1470543, 0.1599627,
		0.4323053, 0.5183603, 0.0492912,
		-0.0085287, 0.0400428, 0.9684867,
	},
}

// VonKries (Hunt-Pointer-Estevez) 基矩阵
var VonKries = Basis{
	Name: "VonKries",
	M: Matrix3x3{
		0.4002400, 0.7076000, -0.0808100,
		-0.2263000, 1.1653200, 0.0457000,
		0.0000000, 0.0000000, 0.9182200,
	},
	Inv: Matrix3x3{
		1.8599364, -1.1293816, 0.2198974,
		0.3611914, 0.6388125, -0.0000064,
		0.0000000, 0.0000000, 1.0890636,
	},
}

// XYZScaling 直接在 XYZ 上缩放
var XYZScaling = Basis{
	Name: "XYZScaling",
	M:    matrix.Identity3x3(),
	Inv:  matrix.Identity3x3(),
}

// CAT02 (CIECAM02) 基矩阵
var CAT02 = mustBasis("CAT02", Matrix3x3{
	0.7328, 0.4296, -0.1624,
	-0.7036, 1.6975, 0.0061,
	0.0030, 0.0136, 0.9834,
})

// AdaptationMatrix 计算从源白点到目标白点的色适应矩阵
//
//	result = Inv * diag(dst_resp / src_resp) * M
//
// 源白点在基空间中任一分量为 0 时返回 ErrDegenerateMatrix
func AdaptationMatrix(basis Basis, srcXYZ, dstXYZ Vector3) (Matrix3x3, error) {
	srcResponse := basis.M.Apply(srcXYZ)
	dstResponse := basis.M.Apply(dstXYZ)

	gains, err := dstResponse.DivideBy(srcResponse)
	if err != nil {
		return Matrix3x3{}, fmt.Errorf("%s adaptation gain: %w", basis.Name, err)
	}

	return basis.Inv.Multiply(matrix.Diagonal3x3(gains).Multiply(basis.M)), nil
}

// Adapt 以色度坐标给出白点的色适应矩阵
func Adapt(basis Basis, src, dst WhitePoint) (Matrix3x3, error) {
	m, err := AdaptationMatrix(basis, src.XYZ(), dst.XYZ())
	if err != nil {
		return Matrix3x3{}, fmt.Errorf("%s -> %s: %w", src.Name, dst.Name, err)
	}
	return m, nil
}
