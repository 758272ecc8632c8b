package matrix

import "math"

// Matrix3x3 表示 3x3 矩阵（行优先存储，m[i*3+j]）
type Matrix3x3 [9]float64

// Vector3 表示 3 维向量（XYZ、LMS 或线性 RGB 三刺激值）
type Vector3 [3]float64

// Identity3x3 返回 3x3 单位矩阵
func Identity3x3() Matrix3x3 {
	return Matrix3x3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Diagonal3x3 从向量创建对角矩阵
func Diagonal3x3(v Vector3) Matrix3x3 {
	return Matrix3x3{
		v[0], 0, 0,
		0, v[1], 0,
		0, 0, v[2],
	}
}

// FromRows 从二维数组创建矩阵
func FromRows(rows [3][3]float64) Matrix3x3 {
	return Matrix3x3{
		rows[0][0], rows[0][1], rows[0][2],
		rows[1][0], rows[1][1], rows[1][2],
		rows[2][0], rows[2][1], rows[2][2],
	}
}

// FromColumns 以三个向量作为列创建矩阵
func FromColumns(c0, c1, c2 Vector3) Matrix3x3 {
	return Matrix3x3{
		c0[0], c1[0], c2[0],
		c0[1], c1[1], c2[1],
		c0[2], c1[2], c2[2],
	}
}

// At 返回第 i 行第 j 列的元素
func (m Matrix3x3) At(i, j int) float64 {
	return m[i*3+j]
}

// Row 返回第 i 行
func (m Matrix3x3) Row(i int) Vector3 {
	return Vector3{m[i*3], m[i*3+1], m[i*3+2]}
}

// Column 返回第 j 列
func (m Matrix3x3) Column(j int) Vector3 {
	return Vector3{m[j], m[3+j], m[6+j]}
}

// Multiply3x3 计算两个 3x3 矩阵相乘 (a * b)
func Multiply3x3(a, b Matrix3x3) Matrix3x3 {
	var c Matrix3x3
	c[0] = a[0]*b[0] + a[1]*b[3] + a[2]*b[6]
	c[1] = a[0]*b[1] + a[1]*b[4] + a[2]*b[7]
	c[2] = a[0]*b[2] + a[1]*b[5] + a[2]*b[8]

	c[3] = a[3]*b[0] + a[4]*b[3] + a[5]*b[6]
	c[4] = a[3]*b[1] + a[4]*b[4] + a[5]*b[7]
	c[5] = a[3]*b[2] + a[4]*b[5] + a[5]*b[8]

	c[6] = a[6]*b[0] + a[7]*b[3] + a[8]*b[6]
	c[7] = a[6]*b[1] + a[7]*b[4] + a[8]*b[7]
	c[8] = a[6]*b[2] + a[7]*b[5] + a[8]*b[8]
	return c
}

// Multiply 矩阵乘法 (m * other)，右侧矩阵先作用于向量
func (m Matrix3x3) Multiply(other Matrix3x3) Matrix3x3 {
	return Multiply3x3(m, other)
}

// Apply 应用矩阵到向量 (matrix * vector)
func (m Matrix3x3) Apply(v Vector3) Vector3 {
	return Vector3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// Determinant 按第一行展开计算行列式
func (m Matrix3x3) Determinant() float64 {
	return m[0]*(m[4]*m[8]-m[7]*m[5]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Inverse 计算矩阵的逆（伴随矩阵 / 行列式）
// 行列式恰好为 0 时返回 ErrDegenerateMatrix
func (m Matrix3x3) Inverse() (Matrix3x3, error) {
	det := m.Determinant()
	if det == 0 {
		return Matrix3x3{}, ErrDegenerateMatrix
	}

	invDet := 1.0 / det

	var inv Matrix3x3
	inv[0] = (m[4]*m[8] - m[7]*m[5]) * invDet
	inv[1] = (m[2]*m[7] - m[1]*m[8]) * invDet
	inv[2] = (m[1]*m[5] - m[2]*m[4]) * invDet
	inv[3] = (m[5]*m[6] - m[3]*m[8]) * invDet
	inv[4] = (m[0]*m[8] - m[2]*m[6]) * invDet
	inv[5] = (m[3]*m[2] - m[0]*m[5]) * invDet
	inv[6] = (m[3]*m[7] - m[6]*m[4]) * invDet
	inv[7] = (m[6]*m[1] - m[0]*m[7]) * invDet
	inv[8] = (m[0]*m[4] - m[3]*m[1]) * invDet

	// 行列式非零但过小（或输入含 NaN）时结果可能溢出
	if !inv.IsFinite() {
		return Matrix3x3{}, ErrDegenerateMatrix
	}

	return inv, nil
}

// Inverse3x3 计算 3x3 矩阵的逆
func Inverse3x3(a Matrix3x3) (Matrix3x3, error) {
	return a.Inverse()
}

// Transpose 转置矩阵
func (m Matrix3x3) Transpose() Matrix3x3 {
	return Matrix3x3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Scale 缩放矩阵的所有元素
func (m Matrix3x3) Scale(s float64) Matrix3x3 {
	var result Matrix3x3
	for i := 0; i < 9; i++ {
		result[i] = m[i] * s
	}
	return result
}

// ScaleColumns 第 j 列乘以 s[j]（等价于 m * diag(s)）
func (m Matrix3x3) ScaleColumns(s Vector3) Matrix3x3 {
	var result Matrix3x3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			result[i*3+j] = m[i*3+j] * s[j]
		}
	}
	return result
}

// MaxAbsDiff 返回两个矩阵逐元素差的最大绝对值
func (m Matrix3x3) MaxAbsDiff(other Matrix3x3) float64 {
	maxDiff := 0.0
	for i := 0; i < 9; i++ {
		diff := math.Abs(m[i] - other[i])
		if diff > maxDiff {
			maxDiff = diff
		}
	}
	return maxDiff
}

// ApproxEqual 所有元素差都不超过 tol
func (m Matrix3x3) ApproxEqual(other Matrix3x3, tol float64) bool {
	return m.MaxAbsDiff(other) <= tol
}

// IsFinite 所有元素都不是 NaN 或 Inf
func (m Matrix3x3) IsFinite() bool {
	for _, x := range m {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// Scale 缩放向量
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v[0] * s, v[1] * s, v[2] * s}
}

// Add 向量加法
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{v[0] + other[0], v[1] + other[1], v[2] + other[2]}
}

// ComponentMul 逐分量乘法
func (v Vector3) ComponentMul(other Vector3) Vector3 {
	return Vector3{v[0] * other[0], v[1] * other[1], v[2] * other[2]}
}

// DivideBy 逐分量除法，任一除数为 0 时返回 ErrDegenerateMatrix
func (v Vector3) DivideBy(other Vector3) (Vector3, error) {
	var result Vector3
	for i := range v {
		if other[i] == 0 {
			return Vector3{}, ErrDegenerateMatrix
		}
		result[i] = v[i] / other[i]
	}
	return result, nil
}

// Sum 分量之和
func (v Vector3) Sum() float64 {
	return v[0] + v[1] + v[2]
}

// Clamp 将向量各分量限制在 [min, max] 范围内
func (v Vector3) Clamp(min, max float64) Vector3 {
	result := v
	for i := range result {
		if result[i] < min {
			result[i] = min
		} else if result[i] > max {
			result[i] = max
		}
	}
	return result
}
