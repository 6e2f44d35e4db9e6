package integration

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rasmushaa/renting-vs-owning/internal/output"
)

func TestOutputGeneration(t *testing.T) {
	results := loadAndRun(t)

	for _, format := range []string{"console", "console-lite", "markdown"} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, output.WriteReport(&buf, results, format))
			assert.Contains(t, buf.String(), "High Rent")
		})
	}
}

func TestGenerateAllReports(t *testing.T) {
	dir := t.TempDir()
	files, err := output.GenerateReport(loadAndRun(t), "all", dir)
	require.NoError(t, err)

	var exts []string
	for _, f := range files {
		assert.Equal(t, dir, filepath.Dir(f))
		exts = append(exts, strings.TrimPrefix(filepath.Ext(f), "."))
	}
	assert.ElementsMatch(t, []string{"csv", "csv", "html", "json", "pdf", "xlsx"}, exts)
}
