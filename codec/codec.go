// Package codec packs strings into compact printable text and back.
//
// A payload is the standard, padded base64 encoding of
//
//	[4-byte little-endian length of the input][gzip stream of the input]
//
// The length prefix tells [Codec.Decode] how many bytes to take from the
// decompressed stream. Decoding is strict: malformed input always fails with
// an error matching [ErrDecode], never with a silently wrong result.
package codec

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/AvigailEhrlich/Lab-General-Logger/pkg"
)

// Errors returned by the codec. Every decoding failure matches ErrDecode and
// one of ErrBase64, ErrPayloadShort, ErrLengthPrefix, or ErrDecompress.
//
//nolint:gochecknoglobals
var (
	ErrDecode = pkg.ErrDecode
	ErrEncode = pkg.ErrEncode

	ErrBase64       = pkg.ErrBase64
	ErrPayloadShort = pkg.ErrPayloadShort
	ErrLengthPrefix = pkg.ErrLengthPrefix
	ErrDecompress   = pkg.ErrDecompress

	ErrCompressLevel = pkg.ErrCompressLevel
)

// prefixSize is the size of the length prefix.
const prefixSize = 4

// DefaultLevel is the gzip level used by [New] and the package-level
// functions.
const DefaultLevel = gzip.DefaultCompression

// Codec encodes and decodes payloads. The zero Codec stores the gzip stream
// uncompressed; use [New] for a compressing one.
type Codec struct {
	level int
}

// Option configures a [Codec].
type Option func(Codec) Codec

// WithLevel sets the gzip compression level. Valid levels are
// gzip.HuffmanOnly, gzip.DefaultCompression, and 0 through 9.
func WithLevel(level int) Option {
	return func(c Codec) Codec {
		c.level = level

		return c
	}
}

// New returns a Codec using [DefaultLevel] unless overridden by opts.
func New(opts ...Option) (Codec, error) {
	c := Codec{level: DefaultLevel}

	for _, opt := range opts {
		if opt != nil {
			c = opt(c)
		}
	}

	if _, err := gzip.NewWriterLevel(io.Discard, c.level); err != nil {
		return Codec{}, pkg.ErrCompressLevel.Wrap(err)
	}

	return c, nil
}

// Level returns the gzip compression level.
func (c Codec) Level() int { return c.level }

//nolint:gochecknoglobals
var std = Codec{level: DefaultLevel}

// Encode packs text using the default Codec.
func Encode(text string) (string, error) { return std.Encode(text) }

// Decode unpacks a payload produced by [Encode] using the default Codec.
func Decode(payload string) (string, error) { return std.Decode(payload) }

// Encode packs text into a payload.
func (c Codec) Encode(text string) (string, error) {
	return c.EncodeBytes([]byte(text))
}

// Decode unpacks payload. Whitespace surrounding the payload is ignored.
// The bytes are returned as is, without UTF-8 validation.
func (c Codec) Decode(payload string) (string, error) {
	b, err := c.DecodeBytes(payload)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// EncodeBytes packs b into a payload.
func (c Codec) EncodeBytes(b []byte) (string, error) {
	if len(b) > math.MaxInt32 {
		return "", pkg.ErrEncode.Wrapf("input of %d bytes exceeds length prefix", len(b))
	}

	var buf bytes.Buffer

	buf.Grow(prefixSize + len(b)/2 + 32)
	buf.Write(binary.LittleEndian.AppendUint32(nil, uint32(len(b))))

	zw, err := gzip.NewWriterLevel(&buf, c.level)
	if err != nil {
		return "", pkg.ErrEncode.Wrap(pkg.ErrCompressLevel, err)
	}

	if _, err := zw.Write(b); err != nil {
		return "", pkg.ErrEncode.Wrap(err)
	}

	if err := zw.Close(); err != nil {
		return "", pkg.ErrEncode.Wrap(err)
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// DecodeBytes unpacks payload. Decompressed bytes beyond the length prefix
// are discarded. The gzip checksum is verified unless those bytes exceed a
// bound proportional to the payload size, in which case reading stops there.
func (Codec) DecodeBytes(payload string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
	if err != nil {
		return nil, pkg.ErrDecode.Wrap(pkg.ErrBase64, err)
	}

	if len(raw) < prefixSize {
		return nil, pkg.ErrDecode.Wrap(pkg.ErrPayloadShort,
			fmt.Errorf("%d bytes", len(raw)))
	}

	n := int32(binary.LittleEndian.Uint32(raw[:prefixSize]))
	if n < 0 {
		return nil, pkg.ErrDecode.Wrap(pkg.ErrLengthPrefix,
			fmt.Errorf("negative length %d", n))
	}

	zr, err := gzip.NewReader(bytes.NewReader(raw[prefixSize:]))
	if err != nil {
		return nil, pkg.ErrDecode.Wrap(pkg.ErrDecompress, err)
	}
	defer zr.Close()

	var out bytes.Buffer

	// The prefix is untrusted; grow with the data past this point.
	out.Grow(min(int(n), 4*len(raw)+64))

	copied, err := io.CopyN(&out, zr, int64(n))
	switch {
	case errors.Is(err, io.EOF):
		return nil, pkg.ErrDecode.Wrap(pkg.ErrLengthPrefix,
			fmt.Errorf("prefix %d exceeds %d decompressed bytes", n, copied))
	case err != nil:
		return nil, pkg.ErrDecode.Wrap(pkg.ErrDecompress, err)
	}

	if _, err := io.CopyN(io.Discard, zr, trailingLimit(len(raw))); err != nil &&
		!errors.Is(err, io.EOF) {
		return nil, pkg.ErrDecode.Wrap(pkg.ErrDecompress, err)
	}

	return out.Bytes(), nil
}

// Bounds on the decompressed bytes read past the length prefix.
const (
	trailingRatio = 16
	trailingFloor = 64 << 10
)

// trailingLimit returns how many decompressed bytes past the length prefix
// are read, to verify the gzip trailer, from a payload of size raw.
func trailingLimit(raw int) int64 {
	return int64(raw)*trailingRatio + trailingFloor
}
