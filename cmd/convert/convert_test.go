package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joao-a-costa/ciuspt-ddl/cmd/convert"
)

func TestConvertCommandMetadata(t *testing.T) {
	assert.Equal(t, "convert", convert.Cmd.Use)
	assert.Contains(t, convert.Cmd.Short, "JSON")
	assert.Contains(t, convert.Cmd.Long, "ciuspt-ddl convert")
	assert.NotNil(t, convert.Cmd.Run)
}
