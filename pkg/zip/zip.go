package zip

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// Entry is one file in an export bundle.
type Entry struct {
	Filename string
	Data     []byte
}

// Archive packs the entries into a single zip archive. Order exports bundle
// the order payload together with its inspiration images for fulfillment.
func Archive(entries []Entry) ([]byte, error) {
	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)
	for _, entry := range entries {
		w, err := zw.Create(entry.Filename)
		if err != nil {
			return nil, fmt.Errorf("zip: create %q: %w", entry.Filename, err)
		}
		if _, err := w.Write(entry.Data); err != nil {
			return nil, fmt.Errorf("zip: write %q: %w", entry.Filename, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("zip: finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}
