// SPDX-License-Identifier: MIT

package cell

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Compile-time assertions.
var (
	_ fmt.Stringer   = (*UnitCell)(nil)
	_ slog.LogValuer = (*UnitCell)(nil)
)

// Format writes a human-readable summary: parameters in nm and degrees, the
// real-space axes, the reciprocal axes with their moduli and the reciprocal
// inter-axial angles. Conversion failures are returned before anything is
// written.
func (uc *UnitCell) Format(w io.Writer) error {
	p, err := uc.Parameters()
	if err != nil {
		return err
	}
	axes, err := uc.Cartesian()
	if err != nil {
		return err
	}
	rs, err := uc.Reciprocal()
	if err != nil {
		return err
	}
	rl := rs.Lengths()
	ra := rs.Angles()

	var b strings.Builder
	b.WriteString("  a     b     c         alpha   beta  gamma\n")
	fmt.Fprintf(&b, "%5.2f %5.2f %5.2f nm    %6.2f %6.2f %6.2f deg\n",
		p.A*1e9, p.B*1e9, p.C*1e9,
		Rad2Deg(p.Alpha), Rad2Deg(p.Beta), Rad2Deg(p.Gamma))
	fmt.Fprintf(&b, "a = %s m\n", axes.A)
	fmt.Fprintf(&b, "b = %s m\n", axes.B)
	fmt.Fprintf(&b, "c = %s m\n", axes.C)
	fmt.Fprintf(&b, "astar = %s m^-1 (modulus = %10.3e m^-1)\n", rs.A, rl[0])
	fmt.Fprintf(&b, "bstar = %s m^-1 (modulus = %10.3e m^-1)\n", rs.B, rl[1])
	fmt.Fprintf(&b, "cstar = %s m^-1 (modulus = %10.3e m^-1)\n", rs.C, rl[2])
	fmt.Fprintf(&b, "alphastar = %6.2f deg, betastar = %6.2f deg, gammastar = %6.2f deg\n",
		Rad2Deg(ra[0]), Rad2Deg(ra[1]), Rad2Deg(ra[2]))

	_, err = io.WriteString(w, b.String())

	return err
}

// String returns the Format summary, or a one-line error description.
func (uc *UnitCell) String() string {
	var b strings.Builder
	if err := uc.Format(&b); err != nil {
		return fmt.Sprintf("UnitCell(%s: %v)", uc.Rep(), err)
	}

	return b.String()
}

// LogValue renders the cell as a structured slog group (lengths in nm,
// angles in degrees).
func (uc *UnitCell) LogValue() slog.Value {
	p, err := uc.Parameters()
	if err != nil {
		return slog.GroupValue(
			slog.String("rep", uc.Rep().String()),
			slog.String("error", err.Error()),
		)
	}

	return slog.GroupValue(
		slog.String("rep", uc.Rep().String()),
		slog.Float64("a_nm", p.A*1e9),
		slog.Float64("b_nm", p.B*1e9),
		slog.Float64("c_nm", p.C*1e9),
		slog.Float64("alpha_deg", Rad2Deg(p.Alpha)),
		slog.Float64("beta_deg", Rad2Deg(p.Beta)),
		slog.Float64("gamma_deg", Rad2Deg(p.Gamma)),
	)
}
