package formatter

import (
	"io"

	"github.com/bytedance/sonic"

	"github.com/dthphuong/copilot-status/internal/core/model"
)

type JSONFormatter struct{}

func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

func (f *JSONFormatter) Format(w io.Writer, stats *model.DailyStats) error {
	data, err := sonic.ConfigDefault.MarshalIndent(stats, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
