package extract

import (
	"bytes"
	"io"

	"github.com/ledongthuc/pdf"
)

func extractPDF(_ string, data []byte) string {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}
	reader, err := r.GetPlainText()
	if err != nil {
		return ""
	}
	out, err := io.ReadAll(reader)
	if err != nil {
		return ""
	}
	return string(out)
}
