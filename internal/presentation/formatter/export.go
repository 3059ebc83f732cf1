package formatter

import (
	"fmt"
	"os"
	"time"

	"github.com/bytedance/sonic"

	"github.com/dthphuong/copilot-status/internal/core/model"
)

// ExportMetadata identifies who produced an exported stats file and when.
type ExportMetadata struct {
	ExportTimestamp string `json:"exportTimestamp"`
	ProducerName    string `json:"producerName"`
	FormatVersion   string `json:"formatVersion"`
	QueriedDate     string `json:"queriedDate"`
}

// ExportEnvelope is the on-disk format for persisted daily stats.
type ExportEnvelope struct {
	Metadata ExportMetadata    `json:"metadata"`
	Data     *model.DailyStats `json:"data"`
}

// ExportToFile writes the stats and a metadata envelope to path.
func ExportToFile(path string, stats *model.DailyStats) error {
	envelope := ExportEnvelope{
		Metadata: ExportMetadata{
			ExportTimestamp: time.Now().UTC().Format(time.RFC3339),
			ProducerName:    model.ProducerName,
			FormatVersion:   model.FormatVersion,
			QueriedDate:     stats.Date,
		},
		Data: stats,
	}

	data, err := sonic.ConfigDefault.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize export: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write export file %s: %w", path, err)
	}
	return nil
}
