package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemTransactionJSONOmitsUnsetOptionals(t *testing.T) {
	tx := ItemTransaction{
		CreateDate:             "2024-01-10",
		TotalAmount:            decimal.RequireFromString("100.00"),
		TotalTransactionAmount: decimal.RequireFromString("123.00"),
		Details:                []Detail{},
	}

	data, err := json.Marshal(&tx)
	require.NoError(t, err)
	payload := string(data)

	assert.NotContains(t, payload, "null")
	assert.NotContains(t, payload, "DeferredPaymentDate")
	assert.NotContains(t, payload, "ContractReferenceNumber")
	assert.NotContains(t, payload, "TotalGlobalDiscountAmount")
	assert.NotContains(t, payload, "Party")
	assert.NotContains(t, payload, "UnloadPlaceAddress")
	assert.Contains(t, payload, `"Details":[]`)
}

func TestItemTransactionJSONKeepsSetOptionals(t *testing.T) {
	dueDate := "2024-02-10"
	discount := decimal.RequireFromString("5.00")
	tx := ItemTransaction{
		CreateDate:                "2024-01-10",
		DeferredPaymentDate:       &dueDate,
		ContractReferenceNumber:   "ORD-1",
		TotalAmount:               decimal.RequireFromString("100.00"),
		TotalTransactionAmount:    decimal.RequireFromString("123.00"),
		TotalGlobalDiscountAmount: &discount,
		Party:                     &Party{FederalTaxID: "123456789"},
		UnloadPlaceAddress:        &UnloadPlaceAddress{PostalCode: "1000 Lisboa"},
		Details:                   []Detail{},
	}

	data, err := json.Marshal(&tx)
	require.NoError(t, err)
	payload := string(data)

	assert.Contains(t, payload, `"DeferredPaymentDate":"2024-02-10"`)
	assert.Contains(t, payload, `"ContractReferenceNumber":"ORD-1"`)
	assert.Contains(t, payload, `"FederalTaxID":"123456789"`)
	assert.Contains(t, payload, `"PostalCode":"1000 Lisboa"`)
}

func TestPartyJSONOmitsEmptyStrings(t *testing.T) {
	data, err := json.Marshal(&Party{OrganizationName: "Cliente SA"})
	require.NoError(t, err)

	assert.Equal(t, `{"OrganizationName":"Cliente SA"}`, string(data))
}

func TestUnloadPlaceAddressPostalCodeNeverOmitted(t *testing.T) {
	data, err := json.Marshal(&UnloadPlaceAddress{PostalCode: " "})
	require.NoError(t, err)

	assert.Equal(t, `{"PostalCode":" "}`, string(data))
}

func TestDetailJSON(t *testing.T) {
	quantity := int64(2)
	detail := Detail{
		ItemID:      "SKU1",
		Quantity:    &quantity,
		UnitPrice:   decimal.RequireFromString("50.00"),
		Description: "Widget",
	}

	data, err := json.Marshal(&detail)
	require.NoError(t, err)
	payload := string(data)

	assert.Contains(t, payload, `"Quantity":2`)
	assert.NotContains(t, payload, "DiscountPercent")
}

func TestDetailHasDiscount(t *testing.T) {
	detail := Detail{}
	assert.False(t, detail.HasDiscount())

	percent := decimal.RequireFromString("10")
	detail.DiscountPercent = &percent
	assert.True(t, detail.HasDiscount())
}

func TestFirstDeliveryLocation(t *testing.T) {
	assert.Nil(t, FirstDeliveryLocation(nil))
	assert.Nil(t, FirstDeliveryLocation([]Delivery{{}}))

	first := &LocationType{ID: "5601234567890"}
	deliveries := []Delivery{{DeliveryLocation: first}, {DeliveryLocation: &LocationType{ID: "other"}}}
	assert.Same(t, first, FirstDeliveryLocation(deliveries))
}
