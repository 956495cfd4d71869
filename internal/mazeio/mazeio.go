// Package mazeio opens and creates maze files, compressed or not.
//
// Compressed input is recognised by its magic bytes, so a gzip, zstd or lz4
// maze can be fed through standard input as well. Output compression is
// chosen by file extension.
package mazeio

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Stdio is the file name standing for standard input or output.
const Stdio = "-"

// Codec identifies a compression format.
type Codec int

const (
	Plain Codec = iota
	Gzip
	Zstd
	LZ4
)

func (c Codec) String() string {
	switch c {
	case Plain:
		return "plain"
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	}
	return fmt.Sprintf("codec(%d)", int(c))
}

var magics = []struct {
	codec Codec
	magic []byte
}{
	{Gzip, []byte{0x1f, 0x8b}},
	{Zstd, []byte{0x28, 0xb5, 0x2f, 0xfd}},
	{LZ4, []byte{0x04, 0x22, 0x4d, 0x18}},
}

// CodecFor picks the codec for a file name by its extension.
func CodecFor(name string) Codec {
	switch filepath.Ext(name) {
	case ".gz":
		return Gzip
	case ".zst":
		return Zstd
	case ".lz4":
		return LZ4
	}
	return Plain
}

// Sniff reports the codec of the stream behind r without consuming it.
func Sniff(r *bufio.Reader) (Codec, error) {
	head, err := r.Peek(4)
	if err != nil && !errors.Is(err, io.EOF) {
		return Plain, err
	}
	for _, m := range magics {
		if bytes.HasPrefix(head, m.magic) {
			return m.codec, nil
		}
	}
	return Plain, nil
}

type readCloser struct {
	io.Reader
	closers []func() error
}

func (rc *readCloser) Close() error {
	var errs []error
	for _, c := range rc.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}

// NewReader decompresses r if it starts with a known magic.
func NewReader(r io.Reader) (io.ReadCloser, error) {
	br := bufio.NewReader(r)
	codec, err := Sniff(br)
	if err != nil {
		return nil, fmt.Errorf("sniff maze stream: %w", err)
	}

	switch codec {
	case Gzip:
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("open gzip stream: %w", err)
		}
		return &readCloser{Reader: zr, closers: []func() error{zr.Close}}, nil
	case Zstd:
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("open zstd stream: %w", err)
		}
		return &readCloser{Reader: zr, closers: []func() error{func() error { zr.Close(); return nil }}}, nil
	case LZ4:
		return &readCloser{Reader: lz4.NewReader(br)}, nil
	}
	return &readCloser{Reader: br}, nil
}

// Open opens a maze file for reading. Stdio reads standard input.
func Open(name string) (io.ReadCloser, error) {
	if name == Stdio {
		return NewReader(os.Stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	rc, err := NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	inner := rc.(*readCloser)
	inner.closers = append(inner.closers, f.Close)
	return inner, nil
}

type writeCloser struct {
	io.Writer
	closers []func() error
}

// Close flushes every layer, innermost compressor first.
func (wc *writeCloser) Close() error {
	var errs []error
	for _, c := range wc.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}

// NewWriter compresses everything written to the result with codec.
// Closing it does not close w.
func NewWriter(w io.Writer, codec Codec) (io.WriteCloser, error) {
	switch codec {
	case Plain:
		bw := bufio.NewWriter(w)
		return &writeCloser{Writer: bw, closers: []func() error{bw.Flush}}, nil
	case Gzip:
		zw := gzip.NewWriter(w)
		return &writeCloser{Writer: zw, closers: []func() error{zw.Close}}, nil
	case Zstd:
		zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("create zstd stream: %w", err)
		}
		return &writeCloser{Writer: zw, closers: []func() error{zw.Close}}, nil
	case LZ4:
		zw := lz4.NewWriter(w)
		return &writeCloser{Writer: zw, closers: []func() error{zw.Close}}, nil
	}
	return nil, fmt.Errorf("unknown codec %v", codec)
}

// Create opens a maze file for writing, compressing by extension.
// Stdio writes uncompressed to standard output.
func Create(name string) (io.WriteCloser, error) {
	if name == Stdio {
		return NewWriter(os.Stdout, Plain)
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	wc, err := NewWriter(f, CodecFor(name))
	if err != nil {
		f.Close()
		return nil, err
	}
	inner := wc.(*writeCloser)
	inner.closers = append(inner.closers, f.Close)
	return inner, nil
}
