package matrix

import "errors"

// ErrDegenerateMatrix 行列式或必需的分母恰好为 0
//
// 典型来源：共线的原色、两行相同的矩阵、y=0 的白点导致的零响应。
// 调用方用 errors.Is 判断，必要时用 fmt.Errorf("...: %w", err) 补充上下文。
var ErrDegenerateMatrix = errors.New("matrix: degenerate matrix")
