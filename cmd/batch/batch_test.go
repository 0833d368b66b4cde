package batch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joao-a-costa/ciuspt-ddl/cmd/batch"
)

func TestBatchCommandMetadata(t *testing.T) {
	assert.Equal(t, "batch", batch.Cmd.Use)
	assert.Contains(t, batch.Cmd.Short, "Batch convert")
	assert.Contains(t, batch.Cmd.Long, "ciuspt-ddl batch")
	assert.NotNil(t, batch.Cmd.Run)
}
