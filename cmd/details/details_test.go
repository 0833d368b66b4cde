package details_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joao-a-costa/ciuspt-ddl/cmd/details"
)

func TestDetailsCommandMetadata(t *testing.T) {
	assert.Equal(t, "details", details.Cmd.Use)
	assert.Contains(t, details.Cmd.Short, "CSV")
	assert.Contains(t, details.Cmd.Long, "ciuspt-ddl details")
	assert.NotNil(t, details.Cmd.Run)
}
