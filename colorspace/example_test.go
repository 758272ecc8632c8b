package colorspace_test

import (
	"fmt"

	"github.com/weaming/colormatrix/colorspace"
)

func ExampleAdaptationMatrix() {
	m, err := colorspace.AdaptationMatrix(colorspace.Bradford, colorspace.D50WhitePoint, colorspace.D65WhitePoint)
	if err != nil {
		fmt.Println(err)
		return
	}
	for i := 0; i < 3; i++ {
		fmt.Printf("%.6f, %.6f, %.6f\n", m.At(i, 0), m.At(i, 1), m.At(i, 2))
	}
	// Output:
	// 0.955577, -0.023039, 0.063164
	// -0.028290, 1.009942, 0.021008
	// 0.012298, -0.020483, 1.329910
}

func ExampleRGBToXYZMatrix() {
	m, err := colorspace.RGBToXYZMatrix(colorspace.SRGB.Primaries, colorspace.D65.XY)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("Y row: %.4f, %.4f, %.4f\n", m.At(1, 0), m.At(1, 1), m.At(1, 2))
	// Output:
	// Y row: 0.2126, 0.7152, 0.0722
}
