package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIs(t *testing.T) {
	sentinel := New(CodeCacheUnavailable, "mirror unavailable")
	wrapped := Wrap(sentinel, CodeRemoteUnreachable, "fetch failed")

	require.True(t, Is(wrapped, sentinel))
	require.False(t, Is(wrapped, New(CodeRefNotFound, "missing")))
}

func TestAs(t *testing.T) {
	err := fmt.Errorf("checkout: %w", New(CodeEmptyCheckout, "no files"))

	var platformErr PlatformError
	require.True(t, As(err, &platformErr))
	require.Equal(t, CodeEmptyCheckout, platformErr.Code())
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{
			name: "platform error",
			err:  New(CodeNoChartsFound, "no charts"),
			want: CodeNoChartsFound,
		},
		{
			name: "wrapped platform error reports outermost code",
			err:  Wrap(New(CodeExecutionFailed, "exit 1"), CodeToolFailure, "helm package failed"),
			want: CodeToolFailure,
		},
		{
			name: "fmt wrapped platform error",
			err:  fmt.Errorf("resolve: %w", New(CodeRefNotFound, "ref v9 not found")),
			want: CodeRefNotFound,
		},
		{
			name: "standard error",
			err:  stderrors.New("boom"),
			want: CodeUnknown,
		},
		{
			name: "nil error",
			err:  nil,
			want: CodeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, GetCode(tt.err))
		})
	}
}

func TestHasCode(t *testing.T) {
	inner := New(CodeCacheUnavailable, "lock failed")
	err := Wrap(fmt.Errorf("mirror: %w", inner), CodeRemoteUnreachable, "fetch failed")

	require.True(t, HasCode(err, CodeCacheUnavailable))
	require.True(t, HasCode(err, CodeRemoteUnreachable))
	require.False(t, HasCode(err, CodeRefNotFound))
	require.False(t, HasCode(nil, CodeUnknown))
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "unreachable remote",
			err:  New(CodeRemoteUnreachable, "connection refused"),
			want: true,
		},
		{
			name: "missing ref",
			err:  New(CodeRefNotFound, "no such ref"),
			want: false,
		},
		{
			name: "wrapping keeps retryable classification",
			err:  Wrap(New(CodeRemoteUnreachable, "timeout"), CodeInternal, "request failed"),
			want: true,
		},
		{
			name: "standard error is permanent",
			err:  stderrors.New("boom"),
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestDefaultClassification(t *testing.T) {
	for code, class := range defaultClassifications {
		require.Equal(t, class, New(code, "x").Classification(), code)
	}
	require.Equal(t, ClassificationPermanent, getDefaultClassification(ErrorCode("SOMETHING_ELSE")))
}
