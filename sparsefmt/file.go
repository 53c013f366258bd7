// SPDX-License-Identifier: MIT

package sparsefmt

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/katalvlaran/sparsemat/sparse"
)

// CompressedExt marks files stored zstd-compressed.
const CompressedExt = ".zst"

// IsCompressed reports whether path is read and written through zstd.
func IsCompressed(path string) bool {
	return strings.EqualFold(filepath.Ext(path), CompressedExt)
}

// ReadFile decodes the matrix stored at path.
func ReadFile(path string) (*sparse.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if IsCompressed(path) {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		defer dec.Close()
		r = dec
	}

	m, err := Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return m, nil
}

// WriteFile encodes m to path, creating parent directories as needed and
// truncating any existing file.
func WriteFile(path string, m *sparse.Matrix) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if !IsCompressed(path) {
		return Encode(f, m)
	}

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	if err := Encode(enc, m); err != nil {
		_ = enc.Close()
		return err
	}
	return enc.Close()
}
