package bench

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/klauspost/compress/gzip"
)

// ReadArtifact loads a gzip-compressed gob ResultSet from path.
func ReadArtifact(path string) (*ResultSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bench artifact %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("bench artifact %s: %w", path, err)
	}
	defer zr.Close() //nolint:errcheck

	var rs ResultSet
	if err := gob.NewDecoder(zr).Decode(&rs); err != nil {
		return nil, fmt.Errorf("decoding bench artifact %s: %w", path, err)
	}
	return &rs, nil
}

// WriteArtifact writes rs to path as gzip-compressed gob, replacing any
// existing file.
func WriteArtifact(path string, rs *ResultSet) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating bench artifact %s: %w", path, err)
	}

	zw := gzip.NewWriter(f)
	if err := gob.NewEncoder(zw).Encode(rs); err != nil {
		f.Close() //nolint:errcheck
		return fmt.Errorf("encoding bench artifact %s: %w", path, err)
	}
	if err := zw.Close(); err != nil {
		f.Close() //nolint:errcheck
		return fmt.Errorf("encoding bench artifact %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing bench artifact %s: %w", path, err)
	}
	return nil
}
