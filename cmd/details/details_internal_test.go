package details

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/joao-a-costa/ciuspt-ddl/internal/models"
)

func TestCountDiscounted(t *testing.T) {
	pct := decimal.NewFromInt(10)
	details := []models.Detail{
		{ItemID: "A"},
		{ItemID: "B", DiscountPercent: &pct},
		{ItemID: "C", DiscountPercent: &pct},
	}

	assert.Equal(t, 2, countDiscounted(details))
	assert.Equal(t, 0, countDiscounted(nil))
}
