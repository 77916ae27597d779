package codec

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"io"
	"strings"
	"testing"

	kgzip "github.com/klauspost/compress/gzip"
)

// frame builds a payload by hand from an explicit prefix and gzip stream.
func frame(prefix uint32, stream []byte) string {
	raw := binary.LittleEndian.AppendUint32(nil, prefix)

	return base64.StdEncoding.EncodeToString(append(raw, stream...))
}

func gzipBytes(t *testing.T, b []byte) []byte {
	t.Helper()

	var buf bytes.Buffer

	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(b); err != nil {
		t.Fatal(err)
	}

	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	return buf.Bytes()
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"ascii", "hello, world"},
		{"multibyte", "日本語テキスト ünïcödé 🚀"},
		{"control", "line1\r\nline2\x00\ttab"},
		{"repetitive", strings.Repeat("abcdefgh", 10_000)},
		{"invalid utf8", "\xff\xfe\xfd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := Encode(tt.text)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}

			got, err := Decode(payload)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}

			if got != tt.text {
				t.Errorf("round trip mismatch: got %d bytes, want %d", len(got), len(tt.text))
			}
		})
	}
}

func TestEncode_Framing(t *testing.T) {
	text := "framing check"

	payload, err := Encode(text)
	if err != nil {
		t.Fatal(err)
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		t.Fatalf("payload is not standard base64: %v", err)
	}

	if n := binary.LittleEndian.Uint32(raw[:4]); n != uint32(len(text)) {
		t.Errorf("length prefix = %d, want %d", n, len(text))
	}

	zr, err := gzip.NewReader(bytes.NewReader(raw[4:]))
	if err != nil {
		t.Fatalf("stream after prefix is not gzip: %v", err)
	}

	got, err := io.ReadAll(zr)
	if err != nil || string(got) != text {
		t.Errorf("gunzip = %q, %v", got, err)
	}
}

func TestEncode_Empty(t *testing.T) {
	payload, err := Encode("")
	if err != nil {
		t.Fatal(err)
	}

	raw, _ := base64.StdEncoding.DecodeString(payload)
	if len(raw) <= 4 {
		t.Fatalf("payload of %d bytes has no gzip stream", len(raw))
	}

	if !bytes.Equal(raw[:4], []byte{0, 0, 0, 0}) {
		t.Errorf("prefix = %v, want zero", raw[:4])
	}
}

func TestDecode_InteroperatesWithStandardGzip(t *testing.T) {
	text := "produced elsewhere"

	got, err := Decode(frame(uint32(len(text)), gzipBytes(t, []byte(text))))
	if err != nil || got != text {
		t.Errorf("Decode = %q, %v", got, err)
	}
}

func TestDecode_SurroundingWhitespace(t *testing.T) {
	payload, _ := Encode("padded")

	got, err := Decode("\n  " + payload + "\r\n")
	if err != nil || got != "padded" {
		t.Errorf("Decode = %q, %v", got, err)
	}
}

func TestDecode_ExtraBytesIgnored(t *testing.T) {
	got, err := Decode(frame(3, gzipBytes(t, []byte("abcdef"))))
	if err != nil || got != "abc" {
		t.Errorf("Decode = %q, %v", got, err)
	}
}

func TestDecode_TrailingDataBounded(t *testing.T) {
	stream := gzipBytes(t, make([]byte, 10<<20))

	// With a corrupt trailer, success shows the decoder stopped early.
	corrupt := bytes.Clone(stream)
	corrupt[len(corrupt)-8] ^= 0xff

	payload := frame(1, corrupt)

	if limit := trailingLimit(len(payload)); limit >= 10<<20 {
		t.Fatalf("trailingLimit = %d, test stream too small", limit)
	}

	got, err := Decode(payload)
	if err != nil || got != "\x00" {
		t.Errorf("Decode = %q, %v", got, err)
	}
}

func TestTrailingLimit(t *testing.T) {
	tests := []struct {
		raw  int
		want int64
	}{
		{0, trailingFloor},
		{4, 4*trailingRatio + trailingFloor},
		{1 << 20, 1<<20*trailingRatio + trailingFloor},
	}

	for _, tt := range tests {
		if got := trailingLimit(tt.raw); got != tt.want {
			t.Errorf("trailingLimit(%d) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestDecode_Errors(t *testing.T) {
	text := []byte("the quick brown fox jumps over the lazy dog")
	stream := gzipBytes(t, text)

	corrupt := bytes.Clone(stream)
	corrupt[len(corrupt)-8] ^= 0xff // CRC-32 of the trailer

	tests := []struct {
		name    string
		payload string
		want    error
	}{
		{"not base64", "this is not base64!", ErrBase64},
		{"three decoded bytes", "QUJD", ErrPayloadShort},
		{"empty", "", ErrPayloadShort},
		{"binary three bytes", base64.StdEncoding.EncodeToString([]byte{1, 2, 3}), ErrPayloadShort},
		{"prefix only", frame(0, nil), ErrDecompress},
		{"negative prefix", frame(0x80000000, stream), ErrLengthPrefix},
		{"prefix exceeds data", frame(uint32(len(text))+1, stream), ErrLengthPrefix},
		{"not gzip", frame(4, []byte("plain text")), ErrDecompress},
		{"bad checksum", frame(uint32(len(text)), corrupt), ErrDecompress},
		{"truncated", frame(uint32(len(text)), stream[:len(stream)-10]), ErrDecompress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.payload)
			if err == nil {
				t.Fatalf("Decode succeeded with %q", got)
			}

			if !errors.Is(err, ErrDecode) {
				t.Errorf("error %v does not match ErrDecode", err)
			}

			if !errors.Is(err, tt.want) {
				t.Errorf("error %v does not match %v", err, tt.want)
			}

			if got != "" {
				t.Errorf("Decode returned %q alongside an error", got)
			}
		})
	}
}

func TestNew_Levels(t *testing.T) {
	text := strings.Repeat("level ", 1000)

	for _, level := range []int{kgzip.HuffmanOnly, kgzip.DefaultCompression, 0, 1, 5, 9} {
		c, err := New(WithLevel(level))
		if err != nil {
			t.Fatalf("New(WithLevel(%d)): %v", level, err)
		}

		payload, err := c.Encode(text)
		if err != nil {
			t.Fatalf("level %d: Encode: %v", level, err)
		}

		// Any Codec decodes any payload.
		if got, err := (Codec{}).Decode(payload); err != nil || got != text {
			t.Errorf("level %d: Decode = %d bytes, %v", level, len(got), err)
		}
	}

	if _, err := New(WithLevel(42)); !errors.Is(err, ErrCompressLevel) {
		t.Errorf("New(WithLevel(42)) error = %v", err)
	}
}

func TestNew_Default(t *testing.T) {
	c, err := New()
	if err != nil || c.Level() != DefaultLevel {
		t.Errorf("New() = %v, %v", c.Level(), err)
	}
}

func FuzzRoundTrip(f *testing.F) {
	for _, seed := range []string{"", "a", "日本語", strings.Repeat("xy", 300)} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, text string) {
		payload, err := Encode(text)
		if err != nil {
			t.Fatal(err)
		}

		got, err := Decode(payload)
		if err != nil || got != text {
			t.Fatalf("round trip of %q = %q, %v", text, got, err)
		}
	})
}

func FuzzDecode(f *testing.F) {
	for _, seed := range []string{"", "AAAAAA==", "QUJD", "!!!"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, payload string) {
		if _, err := Decode(payload); err != nil && !errors.Is(err, ErrDecode) {
			t.Fatalf("error %v does not match ErrDecode", err)
		}
	})
}
