package report

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/numlab/bvplab/internal/bvp"
)

// WriteCSV emits a header of x plus one column per method, then one
// row per grid point.
func WriteCSV(w io.Writer, g bvp.Grid, sols ...bvp.Solution) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"x"}
	for _, s := range sols {
		header = append(header, s.Name())
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i := 0; i < g.Len(); i++ {
		row := []string{strconv.FormatFloat(g.At(i), 'f', 6, 64)}
		for _, s := range sols {
			row = append(row, strconv.FormatFloat(s.At(i), 'f', 8, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// Comparison is the JSON export shape.
type Comparison struct {
	Step    float64              `json:"step"`
	X       []float64            `json:"x"`
	Methods map[string][]float64 `json:"methods"`
}

// WriteJSON emits the grid and every method's samples as one document.
func WriteJSON(w io.Writer, g bvp.Grid, sols ...bvp.Solution) error {
	out := Comparison{
		Step:    g.Step(),
		X:       g.Points(),
		Methods: make(map[string][]float64, len(sols)),
	}
	for _, s := range sols {
		out.Methods[s.Name()] = s.Y()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
