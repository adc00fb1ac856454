package tools

import (
	"context"
	"fmt"

	"github.com/go-viper/mapstructure/v2"

	"github.com/rhobs/qiita-mcp/pkg/resultutil"
)

// Handler runs a tool with validated and defaulted arguments.
type Handler func(ctx context.Context, args map[string]any) *resultutil.Result

// Bind adapts a typed handler to a Handler. Arguments are decoded into T using
// the json struct tags of T.
func Bind[T any](fn func(ctx context.Context, input T) *resultutil.Result) Handler {
	return func(ctx context.Context, args map[string]any) *resultutil.Result {
		var input T
		if err := decodeArgs(args, &input); err != nil {
			return resultutil.NewErrorResultf("failed to decode arguments: %w", err)
		}
		return fn(ctx, input)
	}
}

func decodeArgs(args map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  out,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}
	return dec.Decode(args)
}
