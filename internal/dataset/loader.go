// Package dataset parses uploaded feedback workbooks into rows for the
// classification pipeline.
package dataset

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"feedback-insights-go/internal/types"
)

// TextColumn is the required feedback column header.
const TextColumn = "text"

// MissingColumnError reports an upload without the required column. It is a
// client-input error, detected before any classification work begins.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("upload must contain a %q column", e.Column)
}

// Parse reads the first sheet of an uploaded workbook. The text column is
// located case-insensitively; every other column is carried through untouched
// in Extras. Rows are returned in sheet order.
func Parse(r io.Reader) ([]types.FeedbackRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("upload has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, &MissingColumnError{Column: TextColumn}
	}

	header := rows[0]
	textIdx := -1
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), TextColumn) {
			textIdx = i
			break
		}
	}
	if textIdx == -1 {
		return nil, &MissingColumnError{Column: TextColumn}
	}

	out := make([]types.FeedbackRow, 0, len(rows)-1)
	for i, r := range rows {
		if i == 0 {
			continue
		}
		row := types.FeedbackRow{}
		if textIdx < len(r) {
			row.Text = r[textIdx]
		}
		for j, cell := range r {
			if j == textIdx || j >= len(header) {
				continue
			}
			name := strings.TrimSpace(header[j])
			if name == "" {
				continue
			}
			if row.Extras == nil {
				row.Extras = map[string]string{}
			}
			row.Extras[name] = cell
		}
		out = append(out, row)
	}
	return out, nil
}
