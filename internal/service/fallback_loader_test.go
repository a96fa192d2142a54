package service_test

import (
	"context"
	"errors"
	"testing"

	"essentialfeed/backend/internal/service"

	"github.com/stretchr/testify/require"
)

func TestFallbackLoader_PrimarySuccessNeverTriggersFallback(t *testing.T) {
	primary := &countingLoader[string]{value: "primary"}
	fallback := &countingLoader[string]{value: "fallback"}

	got, err := service.NewFallbackLoader[string](primary, fallback).Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, "primary", got)
	require.Equal(t, 0, fallback.Calls())
}

func TestFallbackLoader_PrimaryFailureYieldsFallbackResult(t *testing.T) {
	fallbackErr := errors.New("fallback failed")
	cases := []struct {
		name       string
		primaryErr error
		fallback   *countingLoader[string]
		want       string
		wantErr    error
	}{
		{"connectivity then success", service.ErrConnectivity, &countingLoader[string]{value: "cached"}, "cached", nil},
		{"invalid data then success", service.ErrInvalidData, &countingLoader[string]{value: "cached"}, "cached", nil},
		{"any error then failure", errors.New("x"), &countingLoader[string]{err: fallbackErr}, "", fallbackErr},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			primary := &countingLoader[string]{err: tc.primaryErr}

			got, err := service.NewFallbackLoader[string](primary, tc.fallback).Load(context.Background())
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.NotErrorIs(t, err, tc.primaryErr)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tc.want, got)
			require.Equal(t, 1, tc.fallback.Calls())
		})
	}
}

func TestFallbackLoader_CanceledPrimaryDoesNotStartFallback(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	primary := service.LoaderFunc[string](func(ctx context.Context) (string, error) {
		cancel()
		return "", ctx.Err()
	})
	fallback := &countingLoader[string]{value: "fallback"}

	_, err := service.NewFallbackLoader[string](primary, fallback).Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 0, fallback.Calls())
}

func TestFallbackLoader_CancelReachesActiveFallback(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	primary := &countingLoader[string]{err: service.ErrConnectivity}
	fallback := service.LoaderFunc[string](func(ctx context.Context) (string, error) {
		cancel()
		<-ctx.Done()
		return "", ctx.Err()
	})

	_, err := service.NewFallbackLoader[string](primary, fallback).Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
