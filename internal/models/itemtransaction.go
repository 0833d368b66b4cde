package models

import (
	"github.com/shopspring/decimal"
)

// ItemTransaction is the flattened record handed to downstream systems.
// Optional fields are pointers (or omitempty strings) so the JSON output
// drops them entirely instead of rendering null placeholders.
type ItemTransaction struct {
	CreateDate                string              `json:"CreateDate"`
	DeferredPaymentDate       *string             `json:"DeferredPaymentDate,omitempty"`
	ContractReferenceNumber   string              `json:"ContractReferenceNumber,omitempty"`
	TotalAmount               decimal.Decimal     `json:"TotalAmount"`
	TotalTransactionAmount    decimal.Decimal     `json:"TotalTransactionAmount"`
	TotalGlobalDiscountAmount *decimal.Decimal    `json:"TotalGlobalDiscountAmount,omitempty"`
	Party                     *Party              `json:"Party,omitempty"`
	CustomerParty             *Party              `json:"CustomerParty,omitempty"`
	SupplierParty             *Party              `json:"SupplierParty,omitempty"`
	UnloadPlaceAddress        *UnloadPlaceAddress `json:"UnloadPlaceAddress,omitempty"`
	Details                   []Detail            `json:"Details"`
}

// Party represents a flattened trading party. The GLN is taken from the
// first delivery location when one is present, independently of the party.
type Party struct {
	FederalTaxID     string `json:"FederalTaxID,omitempty"`
	OrganizationName string `json:"OrganizationName,omitempty"`
	AddressLine1     string `json:"AddressLine1,omitempty"`
	AddressLine2     string `json:"AddressLine2,omitempty"`
	PostalCode       string `json:"PostalCode,omitempty"`
	CountryID        string `json:"CountryID,omitempty"`
	GLN              string `json:"GLN,omitempty"`
}

// UnloadPlaceAddress represents the delivery address of the first delivery
// block. PostalCode is always the "{zone} {subentity}" composition, with an
// empty token kept when the underlying value is absent.
type UnloadPlaceAddress struct {
	AddressLine1 string `json:"AddressLine1,omitempty"`
	AddressLine2 string `json:"AddressLine2,omitempty"`
	PostalCode   string `json:"PostalCode"`
	CountryID    string `json:"CountryID,omitempty"`
}

// Detail represents one flattened document line. The csv tags drive the
// details export.
type Detail struct {
	ItemID          string           `json:"ItemID,omitempty" csv:"ItemID"`
	Quantity        *int64           `json:"Quantity,omitempty" csv:"Quantity"`
	UnitPrice       decimal.Decimal  `json:"UnitPrice" csv:"UnitPrice"`
	Description     string           `json:"Description,omitempty" csv:"Description"`
	DiscountPercent *decimal.Decimal `json:"DiscountPercent,omitempty" csv:"DiscountPercent"`
}

// HasDiscount reports whether the detail carries a discount percent.
func (d *Detail) HasDiscount() bool {
	return d.DiscountPercent != nil
}
