package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/AvigailEhrlich/Lab-General-Logger/codec"
	"github.com/AvigailEhrlich/Lab-General-Logger/log"
)

// InputFlags selects what a codec command reads.
type InputFlags struct {
	Text    *string  `help:"Use the given text instead of reading sources" short:"t"`
	Sources []string `arg:"" help:"Input file(s) or '-' for stdin" name:"source" optional:""`
}

// read returns the literal text if one was given, or else the contents of
// the sources in order.
func (in InputFlags) read(ctx context.Context) ([]byte, error) {
	if in.Text != nil {
		return []byte(*in.Text), nil
	}

	srcs, err := openSources(ctx, in.Sources)
	if err != nil {
		return nil, ErrReadInput.Wrap(err)
	}
	defer srcs.Close()

	data, err := io.ReadAll(srcs)
	if err != nil {
		return nil, ErrReadInput.Wrap(err)
	}

	return data, nil
}

// Encode packs its input into a compressed base64 payload.
type Encode struct {
	InputFlags `embed:""`

	Level int `default:"-1" help:"Gzip compression level (-2 to 9)" short:"l"`
}

// Run executes the encode command.
func (e *Encode) Run(ctx context.Context) error {
	c, err := codec.New(codec.WithLevel(e.Level))
	if err != nil {
		return ErrCodec.Wrap(err).With(slog.Int("level", e.Level))
	}

	data, err := e.read(ctx)
	if err != nil {
		return err
	}

	payload, err := c.EncodeBytes(data)
	if err != nil {
		return ErrCodec.Wrap(err)
	}

	log.DebugContext(ctx, "encoded",
		slog.Int("bytes", len(data)),
		slog.Int("payload", len(payload)),
	)

	if _, err := fmt.Fprintln(outputFrom(ctx), payload); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}

// Decode unpacks a payload produced by encode.
type Decode struct {
	InputFlags `embed:""`
}

// Run executes the decode command.
func (d *Decode) Run(ctx context.Context) error {
	data, err := d.read(ctx)
	if err != nil {
		return err
	}

	text, err := codec.Codec{}.DecodeBytes(string(data))
	if err != nil {
		return ErrCodec.Wrap(err).With(slog.Int("payload", len(data)))
	}

	log.DebugContext(ctx, "decoded",
		slog.Int("payload", len(data)),
		slog.Int("bytes", len(text)),
	)

	if _, err := outputFrom(ctx).Write(text); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}
