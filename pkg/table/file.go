// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Hestia Earth

package table

import (
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Stdio is the path that names stdin or stdout.
const Stdio = "-"

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

type gzipReadCloser struct {
	gz *gzip.Reader
	f  *os.File
}

func (r *gzipReadCloser) Read(p []byte) (int, error) { return r.gz.Read(p) }

func (r *gzipReadCloser) Close() error {
	if err := r.gz.Close(); err != nil {
		r.f.Close()
		return err
	}
	return r.f.Close()
}

type gzipWriteCloser struct {
	gz *gzip.Writer
	f  *os.File
}

func (w *gzipWriteCloser) Write(p []byte) (int, error) { return w.gz.Write(p) }

func (w *gzipWriteCloser) Close() error {
	if err := w.gz.Close(); err != nil {
		w.f.Close()
		return err
	}
	return w.f.Close()
}

// OpenInput opens path for reading. Stdio means stdin, a ".gz" suffix means
// gzip-compressed content.
func OpenInput(path string) (io.ReadCloser, error) {
	if path == Stdio {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &gzipReadCloser{gz: gz, f: f}, nil
}

// CreateOutput creates path for writing. Stdio means stdout, a ".gz" suffix
// means gzip-compressed content.
func CreateOutput(path string) (io.WriteCloser, error) {
	if path == Stdio {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}
	return &gzipWriteCloser{gz: gzip.NewWriter(f), f: f}, nil
}
