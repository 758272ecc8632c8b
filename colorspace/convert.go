package colorspace

import "math"

// ApplyGamma 应用 gamma 校正
func ApplyGamma(value, gamma float64) float64 {
	if value <= 0 {
		return 0
	}
	return math.Pow(value, 1.0/gamma)
}

// RemoveGamma 移除 gamma 校正（线性化）
func RemoveGamma(value, gamma float64) float64 {
	if value <= 0 {
		return 0
	}
	return math.Pow(value, gamma)
}

// SRGBGamma sRGB gamma 曲线（精确版本）
func SRGBGamma(linear float64) float64 {
	if linear <= 0.0031308 {
		return 12.92 * linear
	}
	return 1.055*math.Pow(linear, 1.0/2.4) - 0.055
}

// SRGBInverseGamma sRGB 逆 gamma 曲线
func SRGBInverseGamma(srgb float64) float64 {
	if srgb <= 0.04045 {
		return srgb / 12.92
	}
	return math.Pow((srgb+0.055)/1.055, 2.4)
}

// BT.2020 OETF 常数（12 位精度）
const (
	bt2020Alpha = 1.09929682680944
	bt2020Beta  = 0.018053968510807
)

// BT2020OETF 场景线性 → BT.2020 编码值
func BT2020OETF(linear float64) float64 {
	if linear < bt2020Beta {
		return 4.5 * linear
	}
	return bt2020Alpha*math.Pow(linear, 0.45) - (bt2020Alpha - 1)
}

// BT2020InverseOETF BT2020OETF 的逆
func BT2020InverseOETF(v float64) float64 {
	if v < 4.5*bt2020Beta {
		return v / 4.5
	}
	return math.Pow((v+bt2020Alpha-1)/bt2020Alpha, 1/0.45)
}

// Encode 对线性 RGB 应用本空间的编码曲线
func (s RGBSpace) Encode(linear Vector3) Vector3 {
	var out Vector3
	for i, v := range linear {
		switch s.Transfer {
		case TransferSRGB:
			out[i] = SRGBGamma(v)
		case TransferBT2020:
			out[i] = BT2020OETF(v)
		case TransferGamma:
			out[i] = ApplyGamma(v, s.Gamma)
		default:
			out[i] = v
		}
	}
	return out
}

// Decode Encode 的逆
func (s RGBSpace) Decode(encoded Vector3) Vector3 {
	var out Vector3
	for i, v := range encoded {
		switch s.Transfer {
		case TransferSRGB:
			out[i] = SRGBInverseGamma(v)
		case TransferBT2020:
			out[i] = BT2020InverseOETF(v)
		case TransferGamma:
			out[i] = RemoveGamma(v, s.Gamma)
		default:
			out[i] = v
		}
	}
	return out
}

// ConvertRGBToXYZ 线性 RGB → XYZ
func ConvertRGBToXYZ(rgb Vector3, rgbToXYZ Matrix3x3) Vector3 {
	return rgbToXYZ.Apply(rgb)
}

// ConvertXYZToRGB 将 XYZ 转换到 RGB 色彩空间
func ConvertXYZToRGB(xyz Vector3, xyzToRGB Matrix3x3) Vector3 {
	return xyzToRGB.Apply(xyz)
}

// ConvertRGBToRGB 经由 XYZ 在两个 RGB 空间之间转换
func ConvertRGBToRGB(rgb Vector3, rgbToXYZ, xyzToRGB Matrix3x3) Vector3 {
	xyz := ConvertRGBToXYZ(rgb, rgbToXYZ)
	return ConvertXYZToRGB(xyz, xyzToRGB)
}
