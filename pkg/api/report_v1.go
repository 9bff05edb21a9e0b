// pkg/api/report_v1.go
package api

// ReportV1 is the stable JSON schema for one translation run.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ReportV1 struct {
	ElapsedSeconds float64 `json:"elapsed_seconds"`
	Input          string  `json:"input"`
	InputLength    int     `json:"input_length"`
	OutputLength   int     `json:"output_length"`
	Truncated      bool    `json:"truncated"`
	Unknown        int     `json:"unknown"`
	Stops          int     `json:"stops"`
	Threads        int     `json:"threads"`
	Lookup         string  `json:"lookup"` // "index" | "linear"
	FoldCase       bool    `json:"fold_case,omitempty"`
	Output         string  `json:"output,omitempty"`
}
