package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/weaming/colormatrix/colorspace"
	"github.com/weaming/colormatrix/matrix"
)

var errMismatch = errors.New("存在不一致的矩阵")

// check 一个推导结果与已发布矩阵的比较项
type check struct {
	name   string
	want   matrix.Matrix3x3
	tol    float64
	derive func() (matrix.Matrix3x3, error)
}

type result struct {
	name      string
	got, want matrix.Matrix3x3
	diff, tol float64
	err       error
}

func (r result) ok() bool {
	return r.err == nil && r.diff <= r.tol
}

var (
	astmD50 = colorspace.ASTMWhite(colorspace.D50)
	astmD65 = colorspace.ASTMWhite(colorspace.D65)
)

// bradford ASTM 三刺激值下的 Bradford D50 → D65
func bradford() (matrix.Matrix3x3, error) {
	return colorspace.Adapt(colorspace.Bradford, astmD50, astmD65)
}

func toXYZ(s colorspace.RGBSpace) func() (matrix.Matrix3x3, error) {
	return s.WithWhite(astmD65).ToXYZ
}

func adaptedFromD50(xyzToRGB matrix.Matrix3x3) func() (matrix.Matrix3x3, error) {
	return func() (matrix.Matrix3x3, error) {
		adapt, err := bradford()
		if err != nil {
			return matrix.Matrix3x3{}, err
		}
		return xyzToRGB.Multiply(adapt), nil
	}
}

func fromProPhoto(dst colorspace.RGBSpace) func() (matrix.Matrix3x3, error) {
	return func() (matrix.Matrix3x3, error) {
		return colorspace.ConversionMatrix(colorspace.ProPhotoRGB, dst, colorspace.Bradford)
	}
}

func checks() []check {
	return []check{
		{
			name:   "Bradford D50 -> D65",
			want:   colorspace.BradfordD50ToD65,
			tol:    1e-6,
			derive: bradford,
		},
		{
			name: "Bradford D65 -> D50",
			want: colorspace.BradfordD65ToD50,
			tol:  1e-6,
			derive: func() (matrix.Matrix3x3, error) {
				return colorspace.Adapt(colorspace.Bradford, astmD65, astmD50)
			},
		},
		{
			name: "XYZ (D50) -> sRGB",
			want: matrix.Matrix3x3{
				3.1338561, -1.6168667, -0.4906146,
				-0.9787684, 1.9161415, 0.0334540,
				0.0719453, -0.2289914, 1.4052427,
			},
			tol: 1e-6,
			derive: func() (matrix.Matrix3x3, error) {
				return colorspace.XYZToRGBAdapted(astmD50, colorspace.SRGB.WithWhite(astmD65), colorspace.Bradford)
			},
		},
		{
			name:   "sRGB -> XYZ (D65)",
			want:   colorspace.SRGBToXYZ,
			tol:    1e-6,
			derive: toXYZ(colorspace.SRGB),
		},
		{
			name:   "Adobe RGB -> XYZ (D65)",
			want:   colorspace.AdobeRGBToXYZ,
			tol:    1e-6,
			derive: toXYZ(colorspace.AdobeRGB),
		},
		{
			// 旧值只有约 4 位有效数字
			name: "XYZ (D50) -> Rec2020",
			want: matrix.Matrix3x3{
				1.64727856, -0.39359694, -0.23598106,
				-0.68261476, 1.64760981, 0.01281589,
				0.02966404, -0.06291913, 1.25343115,
			},
			tol:    5e-4,
			derive: adaptedFromD50(colorspace.XYZToRec2020),
		},
		{
			name: "M_XYZ_D50_to_ProPhoto",
			want: matrix.Matrix3x3{
				1.34595631, -0.25560998, -0.05111226,
				-0.54459674, 1.50816141, 0.02053506,
				0.00000000, 0.00000000, 1.21184464,
			},
			tol:    1e-6,
			derive: colorspace.ProPhotoRGB.FromXYZ,
		},
		{
			name: "M_ProPhoto_D50_to_AWG_D65",
			want: matrix.Matrix3x3{
				1.106372, -0.029053, -0.077319,
				-0.129433, 1.108779, 0.020653,
				0.005041, -0.051099, 1.046058,
			},
			tol:    1e-4,
			derive: fromProPhoto(colorspace.ArriWideGamut3),
		},
		{
			name: "M_ProPhoto_D50_to_SG3_D65",
			want: matrix.Matrix3x3{
				1.072319, -0.003596, -0.068723,
				-0.027327, 0.909242, 0.118085,
				0.013176, -0.015668, 1.002491,
			},
			tol:    1e-4,
			derive: fromProPhoto(colorspace.SGamut3),
		},
		{
			name: "M_ProPhoto_D50_to_Rec2020_D65",
			want: matrix.Matrix3x3{
				1.200620, -0.057500, -0.143119,
				-0.069926, 1.080609, -0.010683,
				0.005538, -0.040778, 1.035241,
			},
			tol:    1e-4,
			derive: fromProPhoto(colorspace.Rec2020),
		},
		{
			name: "M_ProPhoto_D50_to_VG_D65",
			want: matrix.Matrix3x3{
				1.115866, -0.042460, -0.073406,
				-0.028533, 0.936797, 0.091736,
				0.012848, -0.008158, 0.995310,
			},
			tol:    1e-4,
			derive: fromProPhoto(colorspace.VGamut),
		},
		{
			name: "M_ProPhoto_D50_to_Rec709_D65",
			want: matrix.Matrix3x3{
				2.034314, -0.727536, -0.306778,
				-0.228799, 1.231719, -0.002920,
				-0.008566, -0.153283, 1.161849,
			},
			tol:    1e-4,
			derive: fromProPhoto(colorspace.SRGB),
		},
	}
}

// verify 逐项推导并比较，tol > 0 时覆盖各项的容差
func verify(cs []check, tol float64) []result {
	results := make([]result, 0, len(cs))
	for _, c := range cs {
		r := result{name: c.name, want: c.want, tol: c.tol}
		if tol > 0 {
			r.tol = tol
		}
		r.got, r.err = c.derive()
		if r.err == nil {
			r.diff = r.got.MaxAbsDiff(c.want)
		}
		results = append(results, r)
	}
	return results
}

func printMatrix(w io.Writer, name string, m matrix.Matrix3x3) {
	fmt.Fprintf(w, "%s:\n", name)
	fmt.Fprintf(w, "  [%.8f, %.8f, %.8f]\n", m[0], m[1], m[2])
	fmt.Fprintf(w, "  [%.8f, %.8f, %.8f]\n", m[3], m[4], m[5])
	fmt.Fprintf(w, "  [%.8f, %.8f, %.8f]\n", m[6], m[7], m[8])
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("verify-matrices", flag.ContinueOnError)
	fs.SetOutput(stderr)
	tol := fs.Float64("tol", 0, "统一的最大允许误差（0 使用各项默认值）")
	verbose := fs.Bool("v", false, "输出推导值与参考值")
	if err := fs.Parse(args); err != nil {
		return err
	}

	fmt.Fprintln(stdout, "=== 矩阵校验 ===")
	fmt.Fprintln(stdout)

	failed := 0
	for _, r := range verify(checks(), *tol) {
		switch {
		case r.err != nil:
			failed++
			fmt.Fprintf(stdout, "✗ %s: %v\n", r.name, r.err)
			continue
		case r.ok():
			fmt.Fprintf(stdout, "✓ %s (最大误差 %.2e)\n", r.name, r.diff)
		default:
			failed++
			fmt.Fprintf(stdout, "✗ %s (最大误差 %.2e > %.0e)\n", r.name, r.diff, r.tol)
		}
		if *verbose || !r.ok() {
			printMatrix(stdout, "  推导值", r.got)
			printMatrix(stdout, "  参考值", r.want)
			fmt.Fprintln(stdout)
		}
	}

	fmt.Fprintln(stdout)
	if failed > 0 {
		fmt.Fprintf(stdout, "%d 项不一致\n", failed)
		return errMismatch
	}
	fmt.Fprintln(stdout, "全部一致")
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errMismatch) && !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		}
		os.Exit(1)
	}
}
