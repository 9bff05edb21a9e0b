// internal/writers/report.go
package writers

import (
	"fmt"
	"io"
	"time"

	json "github.com/goccy/go-json"

	"codonscan/pkg/api"
)

// FormatElapsed renders a duration in seconds with six decimals.
func FormatElapsed(d time.Duration) string {
	return fmt.Sprintf("%f", d.Seconds())
}

// WriteElapsed writes the bare timing line; no trailing newline.
func WriteElapsed(w io.Writer, d time.Duration) error {
	_, err := io.WriteString(w, FormatElapsed(d))
	return err
}

// WriteReport writes r as one JSON line.
func WriteReport(w io.Writer, r api.ReportV1) error {
	return json.NewEncoder(w).Encode(r)
}
