package main

import (
	"fmt"
	"io"

	"github.com/weaming/colormatrix/colorspace"
	"github.com/weaming/colormatrix/output"
)

// whitePoint 按名称查找白点，-astm 时 D50/D65 换成 ASTM 三刺激值
func whitePoint(config *output.Config, name string) (colorspace.WhitePoint, error) {
	w, err := colorspace.LookupWhitePoint(name)
	if err != nil {
		return colorspace.WhitePoint{}, err
	}
	if config.ASTM {
		w = colorspace.ASTMWhite(w)
	}
	return w, nil
}

// space 同 whitePoint，作用于色彩空间的白点
func space(config *output.Config, s colorspace.RGBSpace) colorspace.RGBSpace {
	if config.ASTM {
		return s.WithWhite(colorspace.ASTMWhite(s.White))
	}
	return s
}

func lookupSpace(config *output.Config, name string) (colorspace.RGBSpace, error) {
	s, err := colorspace.Lookup(name)
	if err != nil {
		return colorspace.RGBSpace{}, err
	}
	return space(config, s), nil
}

func adaptCmd(config *output.Config) ([]output.NamedMatrix, error) {
	basis, err := colorspace.LookupBasis(config.Basis)
	if err != nil {
		return nil, err
	}
	src, err := whitePoint(config, config.From)
	if err != nil {
		return nil, err
	}
	dst, err := whitePoint(config, config.To)
	if err != nil {
		return nil, err
	}

	m, err := colorspace.Adapt(basis, src, dst)
	if err != nil {
		return nil, err
	}

	return []output.NamedMatrix{{
		Name:    fmt.Sprintf("M_%s_%s_to_%s", basis.Name, src.Name, dst.Name),
		Comment: fmt.Sprintf("%s adaptation %s -> %s", basis.Name, src.Name, dst.Name),
		M:       m,
	}}, nil
}

func rgbToXYZCmd(config *output.Config) ([]output.NamedMatrix, error) {
	s, err := lookupSpace(config, config.Space)
	if err != nil {
		return nil, err
	}
	m, err := s.ToXYZ()
	if err != nil {
		return nil, err
	}
	return []output.NamedMatrix{{
		Name:    fmt.Sprintf("M_%s_to_XYZ_%s", s.Name, s.White.Name),
		Comment: fmt.Sprintf("%s (linear) -> XYZ (%s)", s.Name, s.White.Name),
		M:       m,
	}}, nil
}

func xyzToRGBCmd(config *output.Config) ([]output.NamedMatrix, error) {
	s, err := lookupSpace(config, config.Space)
	if err != nil {
		return nil, err
	}
	white := s.White
	if config.White != "" {
		if white, err = whitePoint(config, config.White); err != nil {
			return nil, err
		}
	}
	basis, err := colorspace.LookupBasis(config.Basis)
	if err != nil {
		return nil, err
	}

	m, err := colorspace.XYZToRGBAdapted(white, s, basis)
	if err != nil {
		return nil, err
	}

	comment := fmt.Sprintf("XYZ (%s) -> %s (linear)", white.Name, s.Name)
	if white.XYZ() != s.White.XYZ() {
		comment += fmt.Sprintf("\nIncludes %s adaptation %s -> %s", basis.Name, white.Name, s.White.Name)
	}
	return []output.NamedMatrix{{
		Name:    fmt.Sprintf("M_XYZ_%s_to_%s", white.Name, s.Name),
		Comment: comment,
		M:       m,
	}}, nil
}

func convertSpaces(config *output.Config) (src, dst colorspace.RGBSpace, basis colorspace.Basis, err error) {
	if src, err = lookupSpace(config, config.From); err != nil {
		return
	}
	if dst, err = lookupSpace(config, config.To); err != nil {
		return
	}
	basis, err = colorspace.LookupBasis(config.Basis)
	return
}

func convertCmd(config *output.Config) ([]output.NamedMatrix, error) {
	src, dst, basis, err := convertSpaces(config)
	if err != nil {
		return nil, err
	}
	return conversion(src, dst, basis, src.Name, dst.Name, "")
}

func conversion(src, dst colorspace.RGBSpace, basis colorspace.Basis, srcLabel, dstLabel, comment string) ([]output.NamedMatrix, error) {
	m, err := colorspace.ConversionMatrix(src, dst, basis)
	if err != nil {
		return nil, err
	}
	if comment == "" {
		comment = fmt.Sprintf("%s (%s) -> %s (%s)", src.Name, src.White.Name, dst.Name, dst.White.Name)
	}
	return []output.NamedMatrix{{
		Name:    fmt.Sprintf("M_%s_%s_to_%s_%s", srcLabel, src.White.Name, dstLabel, dst.White.Name),
		Comment: comment,
		M:       m,
	}}, nil
}

// 管线头文件中的目标色域
var headerTargets = []struct {
	label   string
	space   colorspace.RGBSpace
	comment string
}{
	{"AWG", colorspace.ArriWideGamut3, "1. Alexa Wide Gamut (Arri LogC3)"},
	{"SG3", colorspace.SGamut3, "2. S-Gamut3 (S-Log3)"},
	{"Rec2020", colorspace.Rec2020, "3. Rec.2020 (F-Log)"},
	{"VG", colorspace.VGamut, "4. V-Gamut (V-Log)"},
	{"Rec709", colorspace.SRGB, "5. Rec.709 / sRGB (None / Gamma)"},
}

func headerCmd(config *output.Config) ([]output.NamedMatrix, error) {
	basis, err := colorspace.LookupBasis(config.Basis)
	if err != nil {
		return nil, err
	}

	pro := space(config, colorspace.ProPhotoRGB)
	toPro, err := pro.FromXYZ()
	if err != nil {
		return nil, err
	}
	mats := []output.NamedMatrix{{
		Name:    "M_XYZ_D50_to_ProPhoto",
		Comment: "XYZ (D50) -> ProPhoto RGB (D50)\nInverted from ProPhoto (D50) -> XYZ (D50)",
		M:       toPro,
	}}

	for i, t := range headerTargets {
		comment := t.comment
		if i == 0 {
			comment = fmt.Sprintf("Target Gamut Conversions (ProPhoto D50 -> Target D65)\nIncludes %s Adaptation D50 -> D65\n\n%s", basis.Name, comment)
		}
		m, err := conversion(pro, space(config, t.space), basis, "ProPhoto", t.label, comment)
		if err != nil {
			return nil, err
		}
		mats = append(mats, m...)
	}
	return mats, nil
}

// convertSample 经 XYZ 把单个线性 RGB 值从源空间转换到目标空间并输出编码后的结果
func convertSample(w io.Writer, config *output.Config) error {
	in, err := output.ParseVector(config.RGB)
	if err != nil {
		return fmt.Errorf("-rgb: %w", err)
	}
	src, dst, basis, err := convertSpaces(config)
	if err != nil {
		return err
	}
	toXYZ, err := src.ToXYZ()
	if err != nil {
		return err
	}
	fromXYZ, err := colorspace.XYZToRGBAdapted(src.White, dst, basis)
	if err != nil {
		return err
	}

	linear := colorspace.ConvertRGBToRGB(in, toXYZ, fromXYZ)
	encoded := dst.Encode(linear.Clamp(0, 1))

	p := config.Precision
	if p < 0 {
		p = 6
	}
	fmt.Fprintf(w, "linear:  [%.*f, %.*f, %.*f]\n", p, linear[0], p, linear[1], p, linear[2])
	fmt.Fprintf(w, "encoded: [%.*f, %.*f, %.*f]\n\n", p, encoded[0], p, encoded[1], p, encoded[2])
	return nil
}
