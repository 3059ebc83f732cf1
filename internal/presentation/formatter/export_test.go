package formatter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dthphuong/copilot-status/internal/core/model"
)

func TestExportToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, ExportToFile(path, sampleStats()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var envelope ExportEnvelope
	require.NoError(t, sonic.Unmarshal(data, &envelope))

	assert.Equal(t, model.ProducerName, envelope.Metadata.ProducerName)
	assert.Equal(t, model.FormatVersion, envelope.Metadata.FormatVersion)
	assert.Equal(t, "2024-01-15", envelope.Metadata.QueriedDate)

	exported, err := time.Parse(time.RFC3339, envelope.Metadata.ExportTimestamp)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), exported, time.Minute)

	require.NotNil(t, envelope.Data)
	assert.Equal(t, 150, envelope.Data.TotalTokens)
	assert.Len(t, envelope.Data.HourlyBreakdown, 24)
}

func TestExportToFileBadPath(t *testing.T) {
	err := ExportToFile(filepath.Join(t.TempDir(), "missing", "export.json"), sampleStats())
	assert.Error(t, err)
}
