// Package export renders derived views into downloadable formats.
package export

import (
	"bufio"
	"io"
	"strings"

	"github.com/protractor09/ai-dashboard/internal/dataset"
)

// WriteCSV writes the header and rows as comma-joined lines. Quoting is
// deliberately minimal to match the frontend's download helper: a cell is
// wrapped in quotes only when it contains a comma, nothing else is
// escaped. encoding/csv would quote more aggressively and change the
// bytes existing consumers expect.
func WriteCSV(w io.Writer, header []string, rows []dataset.Row) error {
	bw := bufio.NewWriter(w)

	if err := writeLine(bw, header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeLine(bw, row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeLine(w *bufio.Writer, cells []string) error {
	for i, cell := range cells {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(formatCell(cell)); err != nil {
			return err
		}
	}
	return w.WriteByte('\n')
}

// formatCell quotes a cell only when it contains a comma.
func formatCell(cell string) string {
	if strings.Contains(cell, ",") {
		return `"` + cell + `"`
	}
	return cell
}
