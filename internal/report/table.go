// Package report renders the three-way comparison: fixed-width table,
// terminal plot, SVG figure, and CSV/JSON exports.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/numlab/bvplab/internal/bvp"
)

// Table writes one row per grid point: x at two decimals, each
// method's y at eight, space-padded to fixed widths.
func Table(w io.Writer, g bvp.Grid, sols ...bvp.Solution) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := []string{"X"}
	for _, s := range sols {
		header = append(header, strings.ToUpper(s.Name()))
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for i := 0; i < g.Len(); i++ {
		row := []string{fmt.Sprintf("%.2f", g.At(i))}
		for _, s := range sols {
			row = append(row, fmt.Sprintf("%.8f", s.At(i)))
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	return tw.Flush()
}
