package colorspace

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// 标准白点（CIE 1931 2° 观察者色度坐标）
var (
	D50 = WhitePoint{Name: "D50", XY: Chromaticity{0.34567, 0.35850}}
	D55 = WhitePoint{Name: "D55", XY: Chromaticity{0.33242, 0.34743}}
	D60 = WhitePoint{Name: "D60", XY: Chromaticity{0.32168, 0.33767}}
	D65 = WhitePoint{Name: "D65", XY: Chromaticity{0.31270, 0.32900}}
	A   = WhitePoint{Name: "A", XY: Chromaticity{0.44757, 0.40745}}
	C   = WhitePoint{Name: "C", XY: Chromaticity{0.31006, 0.31616}}
	E   = WhitePoint{Name: "E", XY: Chromaticity{1.0 / 3, 1.0 / 3}}
	DCI = WhitePoint{Name: "DCI", XY: Chromaticity{0.31400, 0.35100}}
)

// D65 白点三刺激值 (ASTM E308-01)
var D65WhitePoint = Vector3{0.95047, 1.0, 1.08883}

// D50 白点三刺激值 (ASTM E308-01)
var D50WhitePoint = Vector3{0.96422, 1.0, 0.82521}

// ASTMWhite 返回使用 ASTM 三刺激值的 D50/D65，其他白点原样返回
// 公布的 Bradford、sRGB、Adobe RGB 矩阵都基于这组数值
func ASTMWhite(w WhitePoint) WhitePoint {
	switch w.XY {
	case D50.XY:
		w.Tristimulus = D50WhitePoint
	case D65.XY:
		w.Tristimulus = D65WhitePoint
	}
	return w
}

// Transfer 编码曲线类型
type Transfer int

const (
	// TransferLinear 不做编码（Log 类曲线不在此处理）
	TransferLinear Transfer = iota
	// TransferGamma 纯幂函数
	TransferGamma
	// TransferSRGB sRGB 分段曲线
	TransferSRGB
	// TransferBT2020 ITU-R BT.2020 OETF（0.45 次幂 + 线性段）
	TransferBT2020
)

// RGBSpace RGB 色彩空间：三原色 + 白点 + 编码曲线
type RGBSpace struct {
	Name      string
	Primaries PrimarySet
	White     WhitePoint
	Transfer  Transfer
	Gamma     float64
}

func (s RGBSpace) String() string {
	return s.Name
}

// WithWhite 返回更换白点后的副本
func (s RGBSpace) WithWhite(w WhitePoint) RGBSpace {
	s.White = w
	return s
}

// ToXYZ 线性 RGB → XYZ（本空间白点下）
func (s RGBSpace) ToXYZ() (Matrix3x3, error) {
	m, err := rgbToXYZ(s.Primaries, s.White.XYZ())
	if err != nil {
		return Matrix3x3{}, fmt.Errorf("%s: %w", s.Name, err)
	}
	return m, nil
}

// FromXYZ XYZ（本空间白点下）→ 线性 RGB
func (s RGBSpace) FromXYZ() (Matrix3x3, error) {
	m, err := xyzToRGB(s.Primaries, s.White.XYZ())
	if err != nil {
		return Matrix3x3{}, fmt.Errorf("%s: %w", s.Name, err)
	}
	return m, nil
}

// 标准 RGB 色彩空间
var (
	SRGB = RGBSpace{
		Name: "sRGB",
		Primaries: PrimarySet{
			Red:   Chromaticity{0.6400, 0.3300},
			Green: Chromaticity{0.3000, 0.6000},
			Blue:  Chromaticity{0.1500, 0.0600},
		},
		White:    D65,
		Transfer: TransferSRGB,
	}

	AdobeRGB = RGBSpace{
		Name: "AdobeRGB",
		Primaries: PrimarySet{
			Red:   Chromaticity{0.6400, 0.3300},
			Green: Chromaticity{0.2100, 0.7100},
			Blue:  Chromaticity{0.1500, 0.0600},
		},
		White:    D65,
		Transfer: TransferGamma,
		Gamma:    563.0 / 256.0,
	}

	ProPhotoRGB = RGBSpace{
		Name: "ProPhotoRGB",
		Primaries: PrimarySet{
			Red:   Chromaticity{0.7347, 0.2653},
			Green: Chromaticity{0.1596, 0.8404},
			Blue:  Chromaticity{0.0366, 0.0001},
		},
		White:    D50,
		Transfer: TransferGamma,
		Gamma:    1.8,
	}

	Rec2020 = RGBSpace{
		Name: "Rec2020",
		Primaries: PrimarySet{
			Red:   Chromaticity{0.708, 0.292},
			Green: Chromaticity{0.170, 0.797},
			Blue:  Chromaticity{0.131, 0.046},
		},
		White:    D65,
		Transfer: TransferBT2020,
	}

	DisplayP3 = RGBSpace{
		Name: "DisplayP3",
		Primaries: PrimarySet{
			Red:   Chromaticity{0.680, 0.320},
			Green: Chromaticity{0.265, 0.690},
			Blue:  Chromaticity{0.150, 0.060},
		},
		White:    D65,
		Transfer: TransferSRGB,
	}

	// ARRI Alexa Wide Gamut 3 (LogC3)
	ArriWideGamut3 = RGBSpace{
		Name: "AWG",
		Primaries: PrimarySet{
			Red:   Chromaticity{0.6840, 0.3130},
			Green: Chromaticity{0.2210, 0.8480},
			Blue:  Chromaticity{0.0861, -0.1020},
		},
		White: D65,
	}

	// Sony S-Gamut3 (S-Log3)
	SGamut3 = RGBSpace{
		Name: "SG3",
		Primaries: PrimarySet{
			Red:   Chromaticity{0.730, 0.280},
			Green: Chromaticity{0.140, 0.855},
			Blue:  Chromaticity{0.100, -0.050},
		},
		White: D65,
	}

	// Panasonic V-Gamut (V-Log)
	VGamut = RGBSpace{
		Name: "VG",
		Primaries: PrimarySet{
			Red:   Chromaticity{0.730, 0.280},
			Green: Chromaticity{0.165, 0.840},
			Blue:  Chromaticity{0.100, -0.030},
		},
		White: D65,
	}
)

// 公布的参考矩阵，除 Rec.2020 外白点都取 ASTM 三刺激值

// sRGB 到 XYZ (D65) 的转换矩阵
var SRGBToXYZ = Matrix3x3{
	0.4124564, 0.3575761, 0.1804375,
	0.2126729, 0.7151522, 0.0721750,
	0.0193339, 0.1191920, 0.9503041,
}

// XYZ (D65) 到 sRGB 的转换矩阵
var XYZToSRGB = Matrix3x3{
	3.2404542, -1.5371385, -0.4985314,
	-0.9692660, 1.8760108, 0.0415560,
	0.0556434, -0.2040259, 1.0572252,
}

// Adobe RGB 到 XYZ (D65) 的转换矩阵
var AdobeRGBToXYZ = Matrix3x3{
	0.5767309, 0.1855540, 0.1881852,
	0.2973769, 0.6273491, 0.0752741,
	0.0270343, 0.0706872, 0.9911085,
}

// XYZ (D65) 到 Rec.2020 的转换矩阵，白点取 D65 色度坐标
var XYZToRec2020 = Matrix3x3{
	1.7166511, -0.3556707, -0.2533662,
	-0.6666843, 1.6164812, 0.0157685,
	0.0176398, -0.0427706, 0.9421031,
}

// ProPhoto RGB 到 XYZ (D50) 的转换矩阵
var ProPhotoRGBToXYZ = Matrix3x3{
	0.7976749, 0.1351917, 0.0313534,
	0.2880402, 0.7118741, 0.0000857,
	0.0000000, 0.0000000, 0.8252100,
}

// Bradford 色适应矩阵 (D65 → D50)
var BradfordD65ToD50 = Matrix3x3{
	1.0478112, 0.0228866, -0.0501270,
	0.0295424, 0.9904844, -0.0170491,
	-0.0092345, 0.0150436, 0.7521316,
}

// Bradford 色适应矩阵 (D50 → D65)
var BradfordD50ToD65 = Matrix3x3{
	0.9555766, -0.0230393, 0.0631636,
	-0.0282895, 1.0099416, 0.0210077,
	0.0122982, -0.0204830, 1.3299098,
}

var (
	spaces = map[string]RGBSpace{}
	whites = map[string]WhitePoint{}
	bases  = map[string]Basis{}
)

func init() {
	register(spaces, SRGB, "Rec709", "BT709", "Rec.709")
	register(spaces, AdobeRGB, "Adobe", "Adobe RGB (1998)")
	register(spaces, ProPhotoRGB, "ProPhoto", "ROMM", "ROMMRGB")
	register(spaces, Rec2020, "BT2020", "Rec.2020")
	register(spaces, DisplayP3, "P3", "P3-D65")
	register(spaces, ArriWideGamut3, "ArriWideGamut3", "AlexaWideGamut", "ARRI")
	register(spaces, SGamut3, "SGamut3", "S-Gamut3")
	register(spaces, VGamut, "VGamut", "V-Gamut")

	for _, w := range []WhitePoint{D50, D55, D60, D65, A, C, E, DCI} {
		register(whites, w)
	}
	register(whites, D60, "ACES")

	register(bases, Bradford)
	register(bases, VonKries, "HPE", "Von Kries")
	register(bases, XYZScaling, "XYZ", "Scaling", "None")
	register(bases, CAT02, "CIECAM02")
}

func register[T fmt.Stringer](table map[string]T, v T, aliases ...string) {
	table[normalize(v.String())] = v
	for _, a := range aliases {
		table[normalize(a)] = v
	}
}

// normalize 大小写折叠并去掉空白和分隔符
// Caser 有状态，每次新建
func normalize(name string) string {
	folded := cases.Fold().String(strings.TrimSpace(name))
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_', '.', '(', ')':
			return -1
		}
		return r
	}, folded)
}

// Lookup 按名称（不区分大小写，可用别名）查找 RGB 色彩空间
func Lookup(name string) (RGBSpace, error) {
	if s, ok := spaces[normalize(name)]; ok {
		return s, nil
	}
	return RGBSpace{}, fmt.Errorf("%w: %q", ErrUnknownSpace, name)
}

// LookupWhitePoint 按名称查找白点
func LookupWhitePoint(name string) (WhitePoint, error) {
	if w, ok := whites[normalize(name)]; ok {
		return w, nil
	}
	return WhitePoint{}, fmt.Errorf("%w: %q", ErrUnknownWhitePoint, name)
}

// LookupBasis 按名称查找色适应基
func LookupBasis(name string) (Basis, error) {
	if b, ok := bases[normalize(name)]; ok {
		return b, nil
	}
	return Basis{}, fmt.Errorf("%w: %q", ErrUnknownBasis, name)
}

// Spaces 返回所有已注册空间的规范名称
func Spaces() []string {
	return []string{
		SRGB.Name, AdobeRGB.Name, ProPhotoRGB.Name, Rec2020.Name,
		DisplayP3.Name, ArriWideGamut3.Name, SGamut3.Name, VGamut.Name,
	}
}
