package colorspace_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/weaming/colormatrix/colorspace"
)

func TestLookup(t *testing.T) {
	cases := map[string]string{
		"sRGB":             "sRGB",
		"srgb":             "sRGB",
		"Rec.709":          "sRGB",
		"rec-709":          "sRGB",
		"Adobe RGB (1998)": "AdobeRGB",
		"prophoto":         "ProPhotoRGB",
		" ROMM RGB ":       "ProPhotoRGB",
		"BT2020":           "Rec2020",
		"display_p3":       "DisplayP3",
		"awg":              "AWG",
		"S-Gamut3":         "SG3",
		"v-gamut":          "VG",
	}
	for in, want := range cases {
		s, err := colorspace.Lookup(in)
		require.NoError(t, err, in)
		require.Equal(t, want, s.Name, in)
	}

	_, err := colorspace.Lookup("CMYK")
	require.ErrorIs(t, err, colorspace.ErrUnknownSpace)
}

func TestLookupAllSpaces(t *testing.T) {
	for _, name := range colorspace.Spaces() {
		s, err := colorspace.Lookup(name)
		require.NoError(t, err)
		require.Equal(t, name, s.Name)

		_, err = s.ToXYZ()
		require.NoError(t, err, name)
	}
}

func TestLookupWhitePoint(t *testing.T) {
	w, err := colorspace.LookupWhitePoint("d50")
	require.NoError(t, err)
	require.Equal(t, colorspace.D50, w)

	w, err = colorspace.LookupWhitePoint("ACES")
	require.NoError(t, err)
	require.Equal(t, colorspace.D60, w)

	_, err = colorspace.LookupWhitePoint("F2")
	require.ErrorIs(t, err, colorspace.ErrUnknownWhitePoint)
}

func TestLookupBasis(t *testing.T) {
	b, err := colorspace.LookupBasis("bradford")
	require.NoError(t, err)
	require.Equal(t, colorspace.Bradford, b)

	b, err = colorspace.LookupBasis("Von Kries")
	require.NoError(t, err)
	require.Equal(t, colorspace.VonKries, b)

	b, err = colorspace.LookupBasis("none")
	require.NoError(t, err)
	require.Equal(t, colorspace.XYZScaling, b)

	_, err = colorspace.LookupBasis("CAT16")
	require.ErrorIs(t, err, colorspace.ErrUnknownBasis)
}

func TestEncodeDecode(t *testing.T) {
	linear := colorspace.Vector3{0.0, 0.002, 0.5}

	for _, s := range []colorspace.RGBSpace{colorspace.SRGB, colorspace.ProPhotoRGB, colorspace.Rec2020, colorspace.SGamut3} {
		t.Run(s.Name, func(t *testing.T) {
			back := s.Decode(s.Encode(linear))
			for i := range linear {
				require.InDelta(t, linear[i], back[i], 1e-12)
			}
		})
	}

	// sRGB 线性段
	require.InDelta(t, 12.92*0.002, colorspace.SRGB.Encode(linear)[1], 1e-15)
	require.InDelta(t, 0.735356983, colorspace.SRGB.Encode(linear)[2], 1e-6)
	// BT.2020 OETF：线性段与 0.45 次幂段
	require.InDelta(t, 4.5*0.002, colorspace.Rec2020.Encode(linear)[1], 1e-15)
	require.InDelta(t, 0.705435553, colorspace.Rec2020.Encode(linear)[2], 1e-9)
	// Log 类空间不做编码
	require.Equal(t, linear, colorspace.VGamut.Encode(linear))
}

func TestBT2020OETFContinuous(t *testing.T) {
	// 两段在分界点处相接
	const beta = 0.018053968510807
	require.InDelta(t, colorspace.BT2020OETF(beta-1e-12), colorspace.BT2020OETF(beta), 1e-9)
	require.InDelta(t, beta, colorspace.BT2020InverseOETF(colorspace.BT2020OETF(beta)), 1e-12)
	require.InDelta(t, 1.0, colorspace.Rec2020.Decode(colorspace.Vector3{1, 1, 1})[0], 1e-12)
}

func TestGamma(t *testing.T) {
	require.Equal(t, 0.0, colorspace.ApplyGamma(-1, 2.2))
	require.Equal(t, 0.0, colorspace.RemoveGamma(0, 2.2))
	require.InDelta(t, 0.5, colorspace.RemoveGamma(colorspace.ApplyGamma(0.5, 1.8), 1.8), 1e-15)
	require.InDelta(t, 0.25, colorspace.SRGBInverseGamma(colorspace.SRGBGamma(0.25)), 1e-12)
}
