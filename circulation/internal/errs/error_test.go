package errs_test

import (
	"errors"
	"testing"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestWrappedSentinels(t *testing.T) {
	t.Parallel()

	err := pkgerrors.Wrapf(errs.ErrNotAvailable, "book %s is %s", "b1", "Issued")
	require.ErrorIs(t, err, errs.ErrNotAvailable)
	require.Contains(t, err.Error(), "book b1 is Issued")
	require.False(t, errs.IsStorage(err))
}

func TestStorageError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	err := pkgerrors.Wrap(errs.Storage("GetBook", cause), "issue")

	require.True(t, errs.IsStorage(err))
	require.ErrorIs(t, err, cause)
	require.NoError(t, errs.Storage("noop", nil))

	var se *errs.StorageError
	require.ErrorAs(t, err, &se)
	require.Equal(t, "GetBook", se.Op)
}
