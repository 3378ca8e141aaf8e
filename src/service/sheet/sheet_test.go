package sheet

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"quality-trends/src/config"
	"quality-trends/src/model"
)

func inputConfig() config.InputConfig {
	return config.InputConfig{
		RepositoryColumn: "Repository Name",
		BranchColumn:     "Branch",
	}
}

func writeExport(t *testing.T, dir string, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, v))
		}
	}

	path := filepath.Join(dir, "export.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReaderRead(t *testing.T) {
	path := writeExport(t, t.TempDir(), [][]any{
		{"Repository Name", "Branch", "Code Smell", "Duplications"},
		{"l3-angular-delta", "stg", 300, 1.5},
		{"l3-net-ipex-business", "stg-aks", "", 0.4},
		{"", "", "", ""},
		{"l3-laravel-pharmalys", "stage", "not-a-number", 2},
	})

	reader := NewReader(inputConfig())
	records, err := reader.Read(path, []string{"Code Smell", "Duplications"})
	require.NoError(t, err)

	require.Len(t, records, 3)

	first := records[0]
	assert.Equal(t, "l3-angular-delta", first.Repository)
	assert.Equal(t, "stg", first.Branch)
	require.NotNil(t, first.Value("Code Smell"))
	assert.Equal(t, float64(300), *first.Value("Code Smell"))
	require.NotNil(t, first.Value("Duplications"))
	assert.Equal(t, 1.5, *first.Value("Duplications"))

	// Blank and unparsable metric cells become null values.
	assert.Nil(t, records[1].Value("Code Smell"))
	assert.Nil(t, records[2].Value("Code Smell"))
}

func TestReaderMissingRequiredColumn(t *testing.T) {
	path := writeExport(t, t.TempDir(), [][]any{
		{"Name", "Branch", "Code Smell"},
		{"repo", "stg", 1},
	})

	reader := NewReader(inputConfig())
	_, err := reader.Read(path, []string{"Code Smell"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Repository Name")
}

func TestReaderMissingFile(t *testing.T) {
	reader := NewReader(inputConfig())
	_, err := reader.Read(filepath.Join(t.TempDir(), "absent.xlsx"), nil)
	assert.Error(t, err)
}

func TestWriterWrite(t *testing.T) {
	result := model.ComparisonResult{
		Metric: "Code Smell",
		Deltas: []model.MetricDelta{
			{
				Repository: "l3-angular-delta", Branch: "stg", CleanName: "angular-delta",
				Metric: "Code Smell", Before: 300, After: 270, Difference: -30,
			},
			{
				Repository: "l3-net-vorwerk", Branch: "stage", CleanName: "net-vorwerk",
				Metric: "Code Smell", Before: 100, After: 150, Difference: 50,
			},
		},
	}

	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, NewWriter().Write(result, nil, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheetName := "Code Smell Changes"
	assert.Equal(t, sheetName, f.GetSheetName(0))

	header, err := f.GetCellValue(sheetName, "F1")
	require.NoError(t, err)
	assert.Equal(t, "Code Smell Difference", header)

	repo, err := f.GetCellValue(sheetName, "A2")
	require.NoError(t, err)
	assert.Equal(t, "l3-angular-delta", repo)

	diff, err := f.GetCellValue(sheetName, "F2")
	require.NoError(t, err)
	assert.Equal(t, "-30", diff)

	// The two difference cells carry different fills (green vs red).
	styleImproved, err := f.GetCellStyle(sheetName, "F2")
	require.NoError(t, err)
	styleRegressed, err := f.GetCellStyle(sheetName, "F3")
	require.NoError(t, err)
	assert.NotEqual(t, styleImproved, styleRegressed)
}

func TestWriterWriteEmptyResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	result := model.ComparisonResult{Metric: "Duplications"}
	require.NoError(t, NewWriter().Write(result, nil, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	msg, err := f.GetCellValue("Duplications Changes", "A1")
	require.NoError(t, err)
	assert.Equal(t, "No significant changes in Duplications between first and second", msg)
}
