package main

import (
	"archive/tar"
	"bufio"
	"compress/bzip2"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// zstdCloser adapts zstd.Decoder to io.ReadCloser; its Close has no
// error to report
type zstdCloser struct {
	*zstd.Decoder
}

func (z zstdCloser) Close() error {
	z.Decoder.Close()
	return nil
}

// Archive is a tar stream of .xyz records with the decompression
// layer picked from the file extension
type Archive struct {
	f  *os.File
	z  io.ReadCloser
	tr *tar.Reader
}

// OpenArchive opens the tar archive at name. The extension selects
// the decompressor: .bz2 (the format QM9 ships in), .gz/.tgz, .zst,
// or none for a bare .tar.
func OpenArchive(name string) (*Archive, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	var (
		r io.Reader = bufio.NewReader(f)
		z io.ReadCloser
	)
	switch filepath.Ext(name) {
	case ".bz2":
		r = bzip2.NewReader(r)
	case ".gz", ".tgz":
		zr, err := gzip.NewReader(r)
		if err != nil {
			f.Close()
			return nil, err
		}
		z, r = zr, zr
	case ".zst":
		zr, err := zstd.NewReader(r)
		if err != nil {
			f.Close()
			return nil, err
		}
		z = zstdCloser{zr}
		r = z
	}
	return &Archive{f: f, z: z, tr: tar.NewReader(r)}, nil
}

// Next advances to the next regular .xyz member and returns its name
// and a reader over its contents, valid until the following call.
// The error is io.EOF once the archive is exhausted.
func (a *Archive) Next() (string, io.Reader, error) {
	for {
		hdr, err := a.tr.Next()
		if err != nil {
			return "", nil, err
		}
		if hdr.Typeflag != tar.TypeReg ||
			!strings.HasSuffix(hdr.Name, ".xyz") {
			continue
		}
		return hdr.Name, a.tr, nil
	}
}

func (a *Archive) Close() error {
	if a.z != nil {
		a.z.Close()
	}
	return a.f.Close()
}

// WalkArchive calls fn once for every regular .xyz member of the
// archive at name, in archive order
func WalkArchive(name string, fn func(member string, r io.Reader) error) error {
	a, err := OpenArchive(name)
	if err != nil {
		return err
	}
	defer a.Close()
	for {
		member, r, err := a.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(member, r); err != nil {
			return err
		}
	}
}

// Unpack extracts every regular member of the archive at name under
// dir and returns the number of files written
func Unpack(name, dir string) (int, error) {
	a, err := OpenArchive(name)
	if err != nil {
		return 0, err
	}
	defer a.Close()
	var n int
	for {
		hdr, err := a.tr.Next()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}
		dst := filepath.Join(dir, hdr.Name)
		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return n, err
		}
		f, err := os.Create(dst)
		if err != nil {
			return n, err
		}
		if _, err := io.Copy(f, a.tr); err != nil {
			f.Close()
			return n, err
		}
		if err := f.Close(); err != nil {
			return n, err
		}
		n++
	}
}

// XYZFiles lists the .xyz entries of dir, sorted by name
func XYZFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".xyz") {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return files, nil
}
