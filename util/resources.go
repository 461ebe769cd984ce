// util/resources.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"bytes"
	"embed"
	"io"
	"io/fs"
	"path"

	"github.com/klauspost/compress/zstd"
)

//go:embed resources
var resourcesFS embed.FS

// Unfortunately, unlike io.ReadCloser, the zstd Decoder's Close() method
// doesn't return an error, so we need to make our own custom ReadCloser
// interface.
type ResourceReadCloser interface {
	io.Reader
	Close()
}

type bytesReadCloser struct {
	*bytes.Reader
}

func (bytesReadCloser) Close() {}

// LoadResource provides a ResourceReadCloser to access the specified file
// from the embedded resources directory; if it's zstd compressed, the
// Reader will handle decompression transparently. It panics if the file is
// not found since missing resources are pretty much impossible to recover
// from.
func LoadResource(p string) ResourceReadCloser {
	f, err := fs.ReadFile(resourcesFS, path.Join("resources", p))
	if err != nil {
		panic(err)
	}
	br := bytesReadCloser{bytes.NewReader(f)}

	if path.Ext(p) == ".zst" {
		zr, err := zstd.NewReader(br, zstd.WithDecoderConcurrency(0))
		if err != nil {
			panic(err)
		}
		return zr
	}

	return br
}

func LoadResourceBytes(path string) []byte {
	r := LoadResource(path)
	defer r.Close()

	b, err := io.ReadAll(r)
	if err != nil {
		panic(err)
	}
	return b
}

// ResourceExists returns true if the specified resource file exists.
func ResourceExists(p string) bool {
	_, err := fs.Stat(resourcesFS, path.Join("resources", p))
	return err == nil
}

// ListResources returns the names of the resource files in the given
// embedded directory.
func ListResources(dir string) []string {
	entries, err := fs.ReadDir(resourcesFS, path.Join("resources", dir))
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names
}
