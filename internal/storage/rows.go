package storage

import (
	"github.com/vovakirdan/notsure/internal/registry"
)

// RowsFromResults converts probe results into storable rows.
func RowsFromResults(results []registry.Result) []ResultRow {
	rows := make([]ResultRow, 0, len(results))
	for _, r := range results {
		row := ResultRow{
			Subject: r.Subject,
			Target:  r.Target,
			Hit:     r.Hit,
		}
		if r.HasSide {
			row.Side = r.Side.String()
		}
		if r.Intersection != nil {
			a, b := r.Intersection.Ends()
			row.Kind = r.Intersection.Kind.String()
			row.X1, row.Y1 = float64(a.X), float64(a.Y)
			row.X2, row.Y2 = float64(b.X), float64(b.Y)
		}
		rows = append(rows, row)
	}
	return rows
}
