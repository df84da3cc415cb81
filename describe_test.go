package flare_test

import (
	"context"
	"strings"
	"testing"

	. "github.com/warpfork/go-wish"

	"go.polydawn.net/flare"
	"go.polydawn.net/flare/testutil"
)

func TestDescribe(t *testing.T) {
	t.Run("without a kit", func(t *testing.T) {
		Wish(t, flare.Describe(context.Background()), ShouldEqual,
			"no failure is being tracked in this context")
	})
	t.Run("with a kit but no incident", func(t *testing.T) {
		ctx := flare.Prime(context.Background())
		Wish(t, flare.Describe(ctx), ShouldEqual,
			"no failure is being tracked in this context")
	})
	t.Run("during a handler", func(t *testing.T) {
		var desc string
		err := flare.Dispatch(context.Background(), func(ctx context.Context) error {
			flare.Raise(ctx, errOpen, Name("z.txt"), Code(2))
			return nil
		}, flare.Plan{
			{Do: func(ctx context.Context, f *flare.Failure) error {
				desc = flare.Describe(ctx)
				return nil
			}},
		})
		testutil.WantNoError(t, err)
		testutil.WantEqual(t, strings.HasPrefix(desc, "failure context (incident "), true)
		testutil.WantEqual(t, strings.Contains(desc, "flare_test.Name = z.txt"), true)
		testutil.WantEqual(t, strings.Contains(desc, "flare_test.Code = 2"), true)
		// Raise leaves its calling card too.
		testutil.WantEqual(t, strings.Contains(desc, "flare.Origin = "), true)
	})
	t.Run("after resolution", func(t *testing.T) {
		ctx := flare.Prime(context.Background())
		flare.Dispatch(ctx, func(ctx context.Context) error {
			flare.Raise(ctx, errOpen, Name("z.txt"))
			return nil
		}, flare.Plan{
			{Do: func(ctx context.Context, f *flare.Failure) error { return nil }},
		})
		Wish(t, flare.Describe(ctx), ShouldEqual,
			"no failure is being tracked in this context")
	})
}
