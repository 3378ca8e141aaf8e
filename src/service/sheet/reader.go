package sheet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"quality-trends/src/config"
	"quality-trends/src/model"
	"quality-trends/src/util"
)

// Reader loads period exports from XLSX files
type Reader struct {
	cfg config.InputConfig
}

// NewReader creates a new spreadsheet reader
func NewReader(cfg config.InputConfig) *Reader {
	return &Reader{cfg: cfg}
}

// Read loads all metric records from one period export. The first row is
// the header; the repository and branch columns are located by their
// configured header text, metric columns by the given metric names. Blank
// or non-numeric metric cells become nil values. Fully empty rows are
// skipped; rows with a missing repository or branch are kept as-is and
// left for the branch filter to exclude.
func (r *Reader) Read(path string, metrics []string) ([]model.MetricRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	sheetName := r.cfg.Sheet
	if sheetName == "" {
		sheetName = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q of %s: %w", sheetName, path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q of %s has no header row", sheetName, path)
	}

	columns, err := r.locateColumns(rows[0], metrics)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var records []model.MetricRecord
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}

		record := model.MetricRecord{
			Repository: cell(row, columns.repository),
			Branch:     cell(row, columns.branch),
			Values:     make(map[string]*float64, len(metrics)),
		}
		for _, metric := range metrics {
			record.Values[metric] = parseNumber(cell(row, columns.metrics[metric]))
		}
		records = append(records, record)
	}

	util.Debug("Read %d records from %s (sheet %q)", len(records), path, sheetName)
	return records, nil
}

type columnIndex struct {
	repository int
	branch     int
	metrics    map[string]int
}

func (r *Reader) locateColumns(header []string, metrics []string) (columnIndex, error) {
	idx := columnIndex{repository: -1, branch: -1, metrics: make(map[string]int, len(metrics))}
	for _, m := range metrics {
		idx.metrics[m] = -1
	}

	for col, name := range header {
		name = strings.TrimSpace(name)
		switch name {
		case r.cfg.RepositoryColumn:
			idx.repository = col
		case r.cfg.BranchColumn:
			idx.branch = col
		default:
			if _, ok := idx.metrics[name]; ok {
				idx.metrics[name] = col
			}
		}
	}

	if idx.repository < 0 {
		return idx, fmt.Errorf("missing column %q", r.cfg.RepositoryColumn)
	}
	if idx.branch < 0 {
		return idx, fmt.Errorf("missing column %q", r.cfg.BranchColumn)
	}
	for _, m := range metrics {
		if idx.metrics[m] < 0 {
			util.Warn("Metric column %q not found; its values will be null", m)
		}
	}
	return idx, nil
}

// cell returns the trimmed cell value at col, tolerating short rows.
func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

func isBlankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func parseNumber(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil {
		return nil
	}
	return &v
}
