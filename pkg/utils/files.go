package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

// ErrEmptyArchive is returned when an archive holds no files.
var ErrEmptyArchive = errors.New("utils: archive is empty")

// LoadFile loads the given file and performs decompression if necessary.
// The compression is asserted from the file extension; archives (.zip,
// .7z) yield their first file.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	return Decompress(filepath.Ext(filename), data)
}

// Decompress decompresses data according to the given file extension.
// Unknown extensions return data as is.
func Decompress(ext string, data []byte) ([]byte, error) {
	var (
		decoder io.Reader
		err     error
	)
	r := bytes.NewReader(data)

	switch strings.ToLower(ext) {
	case ".gz":
		decoder, err = gzip.NewReader(r)
	case ".xz":
		decoder, err = xz.NewReader(r)
	case ".zst":
		var d *zstd.Decoder
		if d, err = zstd.NewReader(r); err == nil {
			defer d.Close()
			decoder = d
		}
	case ".lz4":
		decoder = lz4.NewReader(r)
	case ".zip":
		var zr *zip.Reader
		if zr, err = zip.NewReader(r, int64(len(data))); err != nil {
			break
		}
		if len(zr.File) == 0 {
			return nil, ErrEmptyArchive
		}
		// read the first file in the archive
		var rc io.ReadCloser
		if rc, err = zr.File[0].Open(); err == nil {
			defer rc.Close()
			decoder = rc
		}
	case ".7z":
		var sr *sevenzip.Reader
		if sr, err = sevenzip.NewReader(r, int64(len(data))); err != nil {
			break
		}
		if len(sr.File) == 0 {
			return nil, ErrEmptyArchive
		}
		// read the first file in the archive
		var rc io.ReadCloser
		if rc, err = sr.File[0].Open(); err == nil {
			defer rc.Close()
			decoder = rc
		}
	default:
		// return the data as is
		return data, nil
	}
	if err != nil {
		return nil, fmt.Errorf("utils: opening %s: %w", ext, err)
	}

	// read the decompressed data into a byte slice
	out, err := io.ReadAll(decoder)
	if err != nil {
		return nil, fmt.Errorf("utils: decompressing %s: %w", ext, err)
	}
	return out, nil
}
