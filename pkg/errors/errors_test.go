package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStoreErrorKeepsCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := fmt.Errorf("saving note: %w", NewStoreError("save", "notes", cause))

	require.True(t, IsStore(err))
	require.ErrorIs(t, err, cause)

	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	require.Equal(t, StoreFailureMessage, storeErr.Message)
	require.Equal(t, "save", storeErr.Operation)
	require.Equal(t, "notes", storeErr.Collection)
	require.Equal(t, CodeStore, storeErr.Code)
	require.Equal(t, "Something went wrong: connection refused", storeErr.Error())
}

func TestValidationErrorWithCauseKeepsType(t *testing.T) {
	cause := stderrors.New("bad input")
	var err error = NewValidationError("hex is not a supported base64 mode", "mode", "hex").WithCause(cause)

	require.True(t, IsValidation(err))
	require.False(t, IsStore(err))
	require.ErrorIs(t, err, cause)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "mode", ve.Field)
	require.Equal(t, 400, ve.StatusCode)
}

func TestBotErrorMessage(t *testing.T) {
	require.Equal(t, "boom", NewBotError("boom", CodeBotError, 500, nil).Error())
	require.Equal(t, "boom: inner", NewBotError("boom", CodeBotError, 500, nil).WithCause(stderrors.New("inner")).Error())
}

func TestCacheAndServiceErrors(t *testing.T) {
	cause := stderrors.New("timeout")

	cacheErr := NewCacheError("get failed", "get", "botkit:x", cause)
	require.ErrorIs(t, cacheErr, cause)
	require.Equal(t, "botkit:x", cacheErr.Key)

	svcErr := NewServiceError("send failed", "iris", "reply", cause)
	require.ErrorIs(t, svcErr, cause)
	require.Equal(t, CodeService, svcErr.Code)
}
