package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// utf8BOM lets spreadsheet apps detect the encoding of non-Latin names
const utf8BOM = "\ufeff"

func CSV(t Table) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(t.Header); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	if err := w.WriteAll(t.Rows); err != nil {
		return nil, fmt.Errorf("failed to write csv rows: %w", err)
	}

	return buf.Bytes(), nil
}
