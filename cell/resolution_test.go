// SPDX-License-Identifier: MIT
package cell_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lattice/cell"
	"github.com/katalvlaran/lattice/vec3"
)

func TestResolution_Cubic(t *testing.T) {
	a := 100 * ang
	uc := cell.NewFromParameters(a, a, a, math.Pi/2, math.Pi/2, math.Pi/2)

	cases := []struct {
		h, k, l int
		want    float64
	}{
		{1, 0, 0, 1 / (2 * a)},
		{0, 0, 2, 1 / a},
		{1, 1, 0, math.Sqrt2 / (2 * a)},
		{-1, 1, 1, math.Sqrt(3) / (2 * a)},
	}
	for _, tc := range cases {
		got, err := uc.Resolution(tc.h, tc.k, tc.l)
		require.NoError(t, err)
		require.InEpsilonf(t, tc.want, got, 1e-12, "(%d %d %d)", tc.h, tc.k, tc.l)
	}

	got, err := uc.Resolution(0, 0, 0)
	require.NoError(t, err)
	require.Zero(t, got)
}

func TestReciprocalVector(t *testing.T) {
	uc := triclinic()
	rs, err := uc.Reciprocal()
	require.NoError(t, err)

	g, err := uc.ReciprocalVector(1, 0, 0)
	require.NoError(t, err)
	require.Equal(t, rs.A, g)

	for _, hkl := range [][3]int{{0, 1, 0}, {0, 0, 1}, {1, 2, 3}, {-2, 1, 4}, {3, -3, -1}} {
		want := vec3.Combine(float64(hkl[0]), rs.A, float64(hkl[1]), rs.B, float64(hkl[2]), rs.C)
		got, err := uc.ReciprocalVector(hkl[0], hkl[1], hkl[2])
		require.NoError(t, err)
		tol := 1e-12 * want.Len()
		require.InDeltaf(t, want.X, got.X, tol, "hkl %v", hkl)
		require.InDeltaf(t, want.Y, got.Y, tol, "hkl %v", hkl)
		require.InDeltaf(t, want.Z, got.Z, tol, "hkl %v", hkl)
	}

	g, err = uc.ReciprocalVector(0, 0, 0)
	require.NoError(t, err)
	require.Zero(t, g.Len())

	flat := cell.NewFromCartesian(vec3.New(1, 0, 0), vec3.New(0, 1, 0), vec3.New(1, 1, 0))
	_, err = flat.ReciprocalVector(1, 0, 0)
	require.ErrorIs(t, err, cell.ErrDegenerateBasis)
}

// TestResolution_MatchesReciprocalVector: the metric formula agrees with
// |h·a* + k·b* + l·c*| / 2.
func TestResolution_MatchesReciprocalVector(t *testing.T) {
	uc := triclinic()

	for _, hkl := range [][3]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 2, 3}, {-2, 1, 4}, {3, -3, -1}} {
		g, err := uc.ReciprocalVector(hkl[0], hkl[1], hkl[2])
		require.NoError(t, err)
		got, err := uc.Resolution(hkl[0], hkl[1], hkl[2])
		require.NoError(t, err)
		require.InEpsilonf(t, g.Len()/2, got, 1e-9, "hkl %v", hkl)
	}
}

func TestResolution_Degenerate(t *testing.T) {
	uc := cell.NewFromParameters(1*nm, 1*nm, 1*nm, cell.Deg2Rad(10), cell.Deg2Rad(10), cell.Deg2Rad(120))
	_, err := uc.Resolution(1, 0, 0)
	require.ErrorIs(t, err, cell.ErrDegenerateBasis)
}

func TestVolume(t *testing.T) {
	ortho := cell.NewFromParameters(50*ang, 70*ang, 90*ang, math.Pi/2, math.Pi/2, math.Pi/2)
	v, err := ortho.Volume()
	require.NoError(t, err)
	require.InEpsilon(t, 50*70*90*ang*ang*ang, v, 1e-12)

	p, err := triclinic().Parameters()
	require.NoError(t, err)
	ca, cb, cg := math.Cos(p.Alpha), math.Cos(p.Beta), math.Cos(p.Gamma)
	want := p.A * p.B * p.C * math.Sqrt(1-ca*ca-cb*cb-cg*cg+2*ca*cb*cg)
	v, err = triclinic().Volume()
	require.NoError(t, err)
	require.InEpsilon(t, want, v, 1e-9)

	// Left-handed axes still report a positive volume.
	lh := cell.NewFromCartesian(vec3.New(0, 1*nm, 0), vec3.New(1*nm, 0, 0), vec3.New(0, 0, 1*nm))
	v, err = lh.Volume()
	require.NoError(t, err)
	require.InEpsilon(t, 1e-27, v, 1e-12)

	// Reciprocal cells are measured in real space.
	rs, err := ortho.Reciprocal()
	require.NoError(t, err)
	v, err = cell.NewFromReciprocal(rs.A, rs.B, rs.C).Volume()
	require.NoError(t, err)
	require.InEpsilon(t, 50*70*90*ang*ang*ang, v, 1e-9)

	flat := cell.NewFromCartesian(vec3.New(1*nm, 0, 0), vec3.New(0, 1*nm, 0), vec3.New(1*nm, 1*nm, 0))
	v, err = flat.Volume()
	require.NoError(t, err)
	require.Zero(t, v)

	_, err = cell.NewFromParameters(1*nm, 1*nm, 1*nm, cell.Deg2Rad(10), cell.Deg2Rad(10), cell.Deg2Rad(120)).Volume()
	require.ErrorIs(t, err, cell.ErrDegenerateBasis)
}

func TestValidate(t *testing.T) {
	require.NoError(t, triclinic().Validate())
	require.NoError(t, cell.New().Validate())

	cases := []struct {
		name string
		uc   *cell.UnitCell
		want error
	}{
		{"negative length", cell.NewFromParameters(-1*nm, 1*nm, 1*nm, math.Pi/2, math.Pi/2, math.Pi/2), cell.ErrInvalidLength},
		{"NaN length", cell.NewFromParameters(1*nm, math.NaN(), 1*nm, math.Pi/2, math.Pi/2, math.Pi/2), cell.ErrInvalidLength},
		{"Inf length", cell.NewFromParameters(1*nm, 1*nm, math.Inf(1), math.Pi/2, math.Pi/2, math.Pi/2), cell.ErrInvalidLength},
		{"zero angle", cell.NewFromParameters(1*nm, 1*nm, 1*nm, 0, math.Pi/2, math.Pi/2), cell.ErrInvalidAngle},
		{"straight angle", cell.NewFromParameters(1*nm, 1*nm, 1*nm, math.Pi/2, math.Pi, math.Pi/2), cell.ErrInvalidAngle},
		{"open triple", cell.NewFromParameters(1*nm, 1*nm, 1*nm, cell.Deg2Rad(10), cell.Deg2Rad(10), cell.Deg2Rad(120)), cell.ErrInvalidAngle},
		{"parallel axes", cell.NewFromCartesian(vec3.New(1, 0, 0), vec3.New(0, 1, 0), vec3.New(2, 0, 0)), cell.ErrInvalidAngle},
		{"coplanar reciprocal", cell.NewFromReciprocal(vec3.New(1, 0, 0), vec3.New(0, 1, 0), vec3.New(1, 1, 0)), cell.ErrDegenerateBasis},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.uc.Validate(), tc.want)
		})
	}
}

func TestFormat(t *testing.T) {
	a := 100 * ang
	uc := cell.NewFromParameters(a, a, a, math.Pi/2, math.Pi/2, math.Pi/2)

	var buf bytes.Buffer
	require.NoError(t, uc.Format(&buf))
	out := buf.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 9, out)
	require.Equal(t, "  a     b     c         alpha   beta  gamma", lines[0])
	require.Equal(t, "10.00 10.00 10.00 nm     90.00  90.00  90.00 deg", lines[1])
	require.True(t, strings.HasPrefix(lines[2], "a = ( 1.000e-08"), lines[2])
	require.Contains(t, lines[5], "(modulus =  1.000e+08 m^-1)")
	require.Equal(t, "alphastar =  90.00 deg, betastar =  90.00 deg, gammastar =  90.00 deg", lines[8])

	require.Equal(t, out, uc.String())
}

func TestFormat_Degenerate(t *testing.T) {
	uc := cell.NewFromCartesian(vec3.New(1, 0, 0), vec3.New(0, 1, 0), vec3.New(1, 1, 0))

	var buf bytes.Buffer
	require.ErrorIs(t, uc.Format(&buf), cell.ErrDegenerateBasis)
	require.Zero(t, buf.Len(), "nothing is written on failure")

	s := uc.String()
	require.True(t, strings.HasPrefix(s, "UnitCell(cartesian: "), s)
	require.Contains(t, s, "degenerate basis")
}

func TestLogValue(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	uc := cell.NewFromParameters(7.8*nm, 7.8*nm, 3.8*nm, math.Pi/2, math.Pi/2, cell.Deg2Rad(120))
	logger.Info("cell", "uc", uc)

	var rec struct {
		UC map[string]any `json:"uc"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec), buf.String())
	require.Equal(t, "crystallographic", rec.UC["rep"])
	require.InDelta(t, 7.8, rec.UC["a_nm"], 1e-9)
	require.InDelta(t, 3.8, rec.UC["c_nm"], 1e-9)
	require.InDelta(t, 120.0, rec.UC["gamma_deg"], 1e-9)

	buf.Reset()
	logger.Info("cell", "uc", cell.NewFromReciprocal(vec3.Vec{}, vec3.Vec{}, vec3.Vec{}))
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec), buf.String())
	require.Equal(t, "reciprocal", rec.UC["rep"])
	require.Contains(t, rec.UC["error"], "degenerate basis")
}
