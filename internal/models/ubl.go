// Package models provides the data structures used throughout the application.
package models

import "encoding/xml"

// DocumentKind identifies which of the two supported UBL document shapes
// a payload carries. Exactly one kind is active per parse.
type DocumentKind string

const (
	// KindInvoice marks a UBL Invoice document.
	KindInvoice DocumentKind = "Invoice"
	// KindCreditNote marks a UBL CreditNote document.
	KindCreditNote DocumentKind = "CreditNote"
)

// UBLDocument is the tagged union of the two supported document shapes.
// Kind selects which of the two pointers is non-nil.
type UBLDocument struct {
	Kind       DocumentKind
	Invoice    *Invoice
	CreditNote *CreditNote
}

// Invoice represents the UBL Invoice document tree, limited to the
// aggregate components the mapper consumes.
type Invoice struct {
	XMLName                 xml.Name       `xml:"Invoice"`
	ID                      string         `xml:"ID"`
	IssueDate               string         `xml:"IssueDate"`
	DueDate                 string         `xml:"DueDate"`
	BuyerReference          string         `xml:"BuyerReference"`
	OrderReference          *OrderRef      `xml:"OrderReference"`
	AccountingSupplierParty SupplierParty  `xml:"AccountingSupplierParty"`
	AccountingCustomerParty CustomerParty  `xml:"AccountingCustomerParty"`
	Delivery                []Delivery     `xml:"Delivery"`
	LegalMonetaryTotal      *MonetaryTotal `xml:"LegalMonetaryTotal"`
	InvoiceLine             []InvoiceLine  `xml:"InvoiceLine"`
}

// CreditNote represents the UBL CreditNote document tree. Same shape as
// Invoice but without a due date and with credit note lines.
type CreditNote struct {
	XMLName                 xml.Name         `xml:"CreditNote"`
	ID                      string           `xml:"ID"`
	IssueDate               string           `xml:"IssueDate"`
	BuyerReference          string           `xml:"BuyerReference"`
	OrderReference          *OrderRef        `xml:"OrderReference"`
	AccountingSupplierParty SupplierParty    `xml:"AccountingSupplierParty"`
	AccountingCustomerParty CustomerParty    `xml:"AccountingCustomerParty"`
	Delivery                []Delivery       `xml:"Delivery"`
	LegalMonetaryTotal      *MonetaryTotal   `xml:"LegalMonetaryTotal"`
	CreditNoteLine          []CreditNoteLine `xml:"CreditNoteLine"`
}

// OrderRef represents the Order Reference
type OrderRef struct {
	ID string `xml:"ID"`
}

// SupplierParty represents the Accounting Supplier Party wrapper
type SupplierParty struct {
	Party PartyType `xml:"Party"`
}

// CustomerParty represents the Accounting Customer Party wrapper
type CustomerParty struct {
	Party PartyType `xml:"Party"`
}

// PartyType represents a Party (supplier or customer)
type PartyType struct {
	PartyIdentification []PartyIdentification `xml:"PartyIdentification"`
	PartyName           []PartyName           `xml:"PartyName"`
	PostalAddress       *AddressType          `xml:"PostalAddress"`
}

// PartyIdentification represents a Party Identification entry
type PartyIdentification struct {
	ID string `xml:"ID"`
}

// PartyName represents a Party Name entry
type PartyName struct {
	Name string `xml:"Name"`
}

// AddressType represents a postal address
type AddressType struct {
	StreetName           string   `xml:"StreetName"`
	AdditionalStreetName string   `xml:"AdditionalStreetName"`
	CityName             string   `xml:"CityName"`
	PostalZone           string   `xml:"PostalZone"`
	CountrySubentity     string   `xml:"CountrySubentity"`
	Country              *Country `xml:"Country"`
}

// Country represents the Country block of an address
type Country struct {
	IdentificationCode string `xml:"IdentificationCode"`
}

// Delivery represents a Delivery block
type Delivery struct {
	ActualDeliveryDate string        `xml:"ActualDeliveryDate"`
	DeliveryLocation   *LocationType `xml:"DeliveryLocation"`
}

// LocationType represents a Delivery Location, optionally carrying a GLN
// in its ID element.
type LocationType struct {
	ID      string       `xml:"ID"`
	Address *AddressType `xml:"Address"`
}

// MonetaryTotal represents the Legal Monetary Total
type MonetaryTotal struct {
	LineExtensionAmount  Amount `xml:"LineExtensionAmount"`
	TaxExclusiveAmount   Amount `xml:"TaxExclusiveAmount"`
	TaxInclusiveAmount   Amount `xml:"TaxInclusiveAmount"`
	AllowanceTotalAmount Amount `xml:"AllowanceTotalAmount"`
	PayableAmount        Amount `xml:"PayableAmount"`
}

// Amount represents a monetary amount with a currency attribute
type Amount struct {
	Value      string `xml:",chardata"`
	CurrencyID string `xml:"currencyID,attr"`
}

// Quantity represents a quantity with a unit code attribute
type Quantity struct {
	Value    string `xml:",chardata"`
	UnitCode string `xml:"unitCode,attr"`
}

// AllowanceCharge represents an Allowance Charge entry on a line
type AllowanceCharge struct {
	ChargeIndicator         string `xml:"ChargeIndicator"`
	MultiplierFactorNumeric string `xml:"MultiplierFactorNumeric"`
	Amount                  Amount `xml:"Amount"`
}

// ItemType represents the Item block of a line
type ItemType struct {
	Description               []string            `xml:"Description"`
	Name                      string              `xml:"Name"`
	SellersItemIdentification *ItemIdentification `xml:"SellersItemIdentification"`
}

// ItemIdentification represents an item identification entry
type ItemIdentification struct {
	ID string `xml:"ID"`
}

// PriceType represents the Price block of a line
type PriceType struct {
	PriceAmount  Amount    `xml:"PriceAmount"`
	BaseQuantity *Quantity `xml:"BaseQuantity"`
}

// InvoiceLine represents one Invoice Line
type InvoiceLine struct {
	ID                  string            `xml:"ID"`
	InvoicedQuantity    *Quantity         `xml:"InvoicedQuantity"`
	LineExtensionAmount Amount            `xml:"LineExtensionAmount"`
	AllowanceCharge     []AllowanceCharge `xml:"AllowanceCharge"`
	Item                ItemType          `xml:"Item"`
	Price               *PriceType        `xml:"Price"`
}

// CreditNoteLine represents one Credit Note Line. It mirrors InvoiceLine
// but carries a credited quantity instead of an invoiced one.
type CreditNoteLine struct {
	ID                  string            `xml:"ID"`
	CreditedQuantity    *Quantity         `xml:"CreditedQuantity"`
	LineExtensionAmount Amount            `xml:"LineExtensionAmount"`
	AllowanceCharge     []AllowanceCharge `xml:"AllowanceCharge"`
	Item                ItemType          `xml:"Item"`
	Price               *PriceType        `xml:"Price"`
}

// FirstDeliveryLocation returns the delivery location of the first delivery
// block, or nil when no delivery carries one. When multiple deliveries are
// present only the first one is consulted.
func FirstDeliveryLocation(deliveries []Delivery) *LocationType {
	if len(deliveries) == 0 {
		return nil
	}
	return deliveries[0].DeliveryLocation
}
