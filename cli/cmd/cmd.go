package cmd

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/AvigailEhrlich/Lab-General-Logger/settings"
)

// ContextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

type (
	inputKey    struct{}
	outputKey   struct{}
	resolverKey struct{}
)

// WithInput returns a new context.Context whose commands read standard input
// from r.
func WithInput(ctx context.Context, r io.Reader) context.Context {
	return context.WithValue(ctx, inputKey{}, r)
}

// WithOutput returns a new context.Context whose commands write their
// results to w.
func WithOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, outputKey{}, w)
}

// WithResolver returns a new context.Context carrying the settings resolver
// used by the settings and init commands.
func WithResolver(ctx context.Context, r settings.Resolver) context.Context {
	return context.WithValue(ctx, resolverKey{}, r)
}

func inputFrom(ctx context.Context) io.Reader {
	if r, ok := ctx.Value(inputKey{}).(io.Reader); ok && r != nil {
		return r
	}

	return os.Stdin
}

func outputFrom(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(outputKey{}).(io.Writer); ok && w != nil {
		return w
	}

	return os.Stdout
}

func resolverFrom(ctx context.Context) settings.Resolver {
	if r, ok := ctx.Value(resolverKey{}).(settings.Resolver); ok && r != nil {
		return r
	}

	return settings.New()
}
