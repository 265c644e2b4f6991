package xcontext

import "context"

type errorKey struct{}

func WithError(ctx context.Context, err error) context.Context {
	return context.WithValue(ctx, errorKey{}, err)
}

func Error(ctx context.Context) error {
	if err := ctx.Value(errorKey{}); err != nil {
		return err.(error)
	}

	return nil
}
