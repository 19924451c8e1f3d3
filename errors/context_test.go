package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithContext(t *testing.T) {
	err := New(CodeRefNotFound, "ref not found")
	err = WithContext(err, "ref", "v1.2.3")
	err = WithContext(err, "path", "charts/app")

	ctx := err.Context()
	require.Len(t, ctx, 2)
	require.Equal(t, "v1.2.3", ctx["ref"])
	require.Equal(t, "charts/app", ctx["path"])
	require.Equal(t, CodeRefNotFound, err.Code())
}

func TestWithContext_StandardError(t *testing.T) {
	stdErr := stderrors.New("standard error")
	err := WithContext(stdErr, "key", "value")

	require.Equal(t, CodeUnknown, err.Code())
	require.Equal(t, ClassificationPermanent, err.Classification())
	require.Equal(t, stdErr, err.Unwrap())
	require.Equal(t, "value", err.Context()["key"])
}

func TestWithContext_NilError(t *testing.T) {
	require.Nil(t, WithContext(nil, "key", "value"))
	require.Nil(t, WithContextMap(nil, map[string]interface{}{"key": "value"}))
}

func TestWithContext_Immutability(t *testing.T) {
	original := New(CodeToolFailure, "helm failed")
	modified := WithContext(original, "step", "index")

	require.Nil(t, original.Context())
	require.Equal(t, "index", modified.Context()["step"])

	ctx := modified.Context()
	ctx["step"] = "package"
	require.Equal(t, "index", modified.Context()["step"])
}

func TestWithContextMap_Override(t *testing.T) {
	err := WithContext(New(CodeToolFailure, "helm failed"), "step", "inspect")
	err = WithContextMap(err, map[string]interface{}{
		"step":  "package",
		"chart": "app",
	})

	ctx := err.Context()
	require.Equal(t, "package", ctx["step"])
	require.Equal(t, "app", ctx["chart"])
}
