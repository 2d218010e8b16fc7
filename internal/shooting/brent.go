package shooting

import (
	"errors"
	"fmt"
	"math"

	"github.com/numlab/bvplab/internal/bvp"
)

const (
	brentMaxIter = 100
	brentEps     = 2.220446049250313e-16 // machine epsilon for float64
)

// findRoot locates a root of f in [lo, hi] with Brent's method:
// inverse quadratic interpolation where it helps, bisection where it
// does not. The bracket must straddle a sign change; there is no
// widening retry.
func findRoot(f func(float64) (float64, error), lo, hi, tol float64) (float64, error) {
	a, b := lo, hi
	fa, err := f(a)
	if err != nil {
		return 0, err
	}
	fb, err := f(b)
	if err != nil {
		return 0, err
	}

	if (fa > 0 && fb > 0) || (fa < 0 && fb < 0) {
		return 0, fmt.Errorf("%w: f(%g)=%g, f(%g)=%g", bvp.ErrNoSignChange, a, fa, b, fb)
	}

	c, fc := b, fb
	var d, e float64

	for iter := 0; iter < brentMaxIter; iter++ {
		if (fb > 0 && fc > 0) || (fb < 0 && fc < 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}

		tol1 := 2*brentEps*math.Abs(b) + 0.5*tol
		xm := 0.5 * (c - b)
		if math.Abs(xm) <= tol1 || fb == 0 {
			return b, nil
		}

		if math.Abs(e) >= tol1 && math.Abs(fa) > math.Abs(fb) {
			// Inverse quadratic interpolation, falling back to the
			// secant rule when only two points are distinct.
			s := fb / fa
			var p, q float64
			if a == c {
				p = 2 * xm * s
				q = 1 - s
			} else {
				q = fa / fc
				r := fb / fc
				p = s * (2*xm*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)
			min1 := 3*xm*q - math.Abs(tol1*q)
			min2 := math.Abs(e * q)
			if 2*p < math.Min(min1, min2) {
				e = d
				d = p / q
			} else {
				d = xm
				e = d
			}
		} else {
			d = xm
			e = d
		}

		a, fa = b, fb
		if math.Abs(d) > tol1 {
			b += d
		} else {
			b += math.Copysign(tol1, xm)
		}
		fb, err = f(b)
		if err != nil {
			return 0, err
		}
	}

	return 0, errors.New("shooting: root finder exceeded iteration limit")
}
