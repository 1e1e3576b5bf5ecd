package tabular

import (
	"fmt"

	"github.com/tealeg/xlsx"
)

// WorkbookSource serves tables out of a single .xlsx workbook, one sheet per
// logical table with the first row as the header. The whole workbook is read
// into memory when the source is opened; lookups are linear scans.
type WorkbookSource struct {
	path   string
	sheets map[string]*workbookTable
}

// OpenWorkbook reads the workbook at path. Sheets without a header row are
// kept and served as empty tables.
func OpenWorkbook(path string) (*WorkbookSource, error) {
	file, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}

	src := &WorkbookSource{path: path, sheets: make(map[string]*workbookTable)}
	for _, sheet := range file.Sheets {
		t := &workbookTable{name: sheet.Name}
		for i, row := range sheet.Rows {
			cells := make([]string, len(row.Cells))
			for j, cell := range row.Cells {
				cells[j] = cell.Value
			}
			if i == 0 {
				t.headers = cells
				t.binding = BindHeaders(cells)
				continue
			}
			t.cells = append(t.cells, cells)
		}
		src.sheets[sheet.Name] = t
	}
	return src, nil
}

// Table returns the sheet with the given name, or (nil, nil) when the
// workbook has no such sheet.
func (s *WorkbookSource) Table(name string) (Table, error) {
	t, ok := s.sheets[name]
	if !ok {
		return nil, nil
	}
	return t, nil
}

type workbookTable struct {
	name    string
	headers []string
	binding Binding
	cells   [][]string
}

func (t *workbookTable) Name() string      { return t.name }
func (t *workbookTable) Headers() []string { return t.headers }

func (t *workbookTable) Rows() ([]Row, error) {
	rows := make([]Row, len(t.cells))
	for i, c := range t.cells {
		rows[i] = NewRow(t.binding, c)
	}
	return rows, nil
}
