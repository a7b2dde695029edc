package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithMessagef(t *testing.T) {
	base := stderrors.New("upload failed")
	err := WithError(base).
		WithHint("failed to upload object").
		WithMessagef("bucket:%s, key:%s", "signatures", "sig/abc.png").
		Mark(ErrSystem)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "bucket:signatures, key:sig/abc.png")
	assert.Contains(t, err.Error(), "upload failed")
	assert.True(t, IsUnexpected(err))
	assert.True(t, stderrors.Is(err, base))
}

func TestWithMessageFormatting(t *testing.T) {
	plain := NewError("boom").WithMessage("while syncing").Error()
	formatted := NewErrorf("boom %d", 2).WithMessagef("while syncing %s", "levels").Error()

	assert.Contains(t, plain.Error(), "while syncing")
	assert.Contains(t, formatted.Error(), "while syncing levels")
	assert.Contains(t, formatted.Error(), "boom 2")
}
