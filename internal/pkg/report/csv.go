package report

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/yigit/stit/internal/app/models"
)

// CSV writes the table for one record kind with a header row
func CSV(in Input, kind models.RecordKind) ([]byte, error) {
	var header []string
	var rows [][]string
	switch kind {
	case models.KindInternship:
		header, rows = in.InternshipHeader(), in.InternshipRows()
	case models.KindProject:
		header, rows = in.ProjectHeader(), in.ProjectRows()
	default:
		return nil, fmt.Errorf("unknown record kind %q", kind)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}
	return buf.Bytes(), nil
}
