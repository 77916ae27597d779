package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/AvigailEhrlich/Lab-General-Logger/codec"
)

func runCtx(in string) (context.Context, *bytes.Buffer) {
	var out bytes.Buffer

	ctx := WithOutput(WithInput(context.Background(), strings.NewReader(in)), &out)

	return ctx, &out
}

func TestEncode_Run_Text(t *testing.T) {
	ctx, out := runCtx("")
	text := "hello lab"

	if err := (&Encode{InputFlags: InputFlags{Text: &text}, Level: -1}).Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got, err := codec.Decode(out.String())
	if err != nil || got != text {
		t.Errorf("decoded output = %q, %v", got, err)
	}

	if !strings.HasSuffix(out.String(), "\n") {
		t.Error("payload not newline terminated")
	}
}

func TestEncodeDecode_Run_Stdin(t *testing.T) {
	text := "multi\nline ünïcödé\n"

	ctx, encoded := runCtx(text)
	if err := (&Encode{Level: 9}).Run(ctx); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	ctx, decoded := runCtx(encoded.String())
	if err := (&Decode{}).Run(ctx); err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if decoded.String() != text {
		t.Errorf("round trip = %q, want %q", decoded.String(), text)
	}
}

func TestEncode_Run_BadLevel(t *testing.T) {
	ctx, _ := runCtx("x")

	err := (&Encode{Level: 99}).Run(ctx)
	if !errors.Is(err, ErrCodec) || !errors.Is(err, codec.ErrCompressLevel) {
		t.Errorf("error = %v", err)
	}
}

func TestDecode_Run_Malformed(t *testing.T) {
	ctx, out := runCtx("definitely not a payload")

	err := (&Decode{}).Run(ctx)
	if !errors.Is(err, ErrCodec) || !errors.Is(err, codec.ErrDecode) {
		t.Errorf("error = %v", err)
	}

	if out.Len() != 0 {
		t.Errorf("output written on failure: %q", out.String())
	}
}
