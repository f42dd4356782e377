package savedata

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// WriteSnapshot writes a zstd-compressed copy of a raw save record.
func WriteSnapshot(w io.Writer, raw []byte) error {
	zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("snapshot writer: %w", err)
	}
	if _, err := zw.Write(raw); err != nil {
		_ = zw.Close()
		return fmt.Errorf("write snapshot: %w", err)
	}
	return zw.Close()
}

// ReadSnapshot decompresses a snapshot. The payload must be a JSON object so
// that a stray file is not imported as a save.
func ReadSnapshot(r io.Reader) ([]byte, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("snapshot reader: %w", err)
	}
	defer zr.Close()

	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("snapshot payload: %w", err)
	}
	return raw, nil
}
