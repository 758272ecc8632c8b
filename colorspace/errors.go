package colorspace

import "errors"

var (
	// ErrUnknownSpace 名称无法解析为已知 RGB 色彩空间
	ErrUnknownSpace = errors.New("colorspace: unknown RGB space")

	// ErrUnknownWhitePoint 名称无法解析为已知白点
	ErrUnknownWhitePoint = errors.New("colorspace: unknown white point")

	// ErrUnknownBasis 名称无法解析为已知色适应基
	ErrUnknownBasis = errors.New("colorspace: unknown adaptation basis")
)
