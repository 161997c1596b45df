package deepresearch_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/deepresearch"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := deepresearch.Errorf(deepresearch.ENOTFOUND, "research %q not found", "abc")

	assert.Equal(t, deepresearch.ENOTFOUND, deepresearch.ErrorCode(err))
	assert.Equal(t, "research \"abc\" not found", deepresearch.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, deepresearch.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, deepresearch.ErrorMessage(nil))
}

func TestErrorCode_UnwrapsWrappedErrors(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("submit: %w", deepresearch.Errorf(deepresearch.ECONFLICT, "already submitted"))

	assert.Equal(t, deepresearch.ECONFLICT, deepresearch.ErrorCode(err))
	assert.Equal(t, "already submitted", deepresearch.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("disk on fire")

	assert.Equal(t, deepresearch.EINTERNAL, deepresearch.ErrorCode(err))
	assert.Equal(t, "Internal error.", deepresearch.ErrorMessage(err))
}
