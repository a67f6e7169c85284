package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorMessage(t *testing.T) {
	err := New(ErrCodeValidation, "username is required")
	assert.Equal(t, "VALIDATION: username is required", err.Error())
}

func TestWrapKeepsCause(t *testing.T) {
	cause := stderrors.New("disk I/O error")
	err := Wrap(cause, ErrCodeSchemaMigration, "schema migration failed")

	assert.Equal(t, "SCHEMA_MIGRATION: schema migration failed (caused by: disk I/O error)", err.Error())
	assert.True(t, stderrors.Is(err, cause), "wrapped cause must survive errors.Is")
}

func TestWrapfFormatsMessage(t *testing.T) {
	cause := stderrors.New("syntax error")
	err := Wrapf(cause, ErrCodeSchemaMigration, "creating unique index on %s", "dev_annotations")

	assert.Equal(t, ErrCodeSchemaMigration, err.Code)
	assert.Contains(t, err.Message, "dev_annotations")
}
