package ciusptparser

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/joao-a-costa/ciuspt-ddl/internal/amountutils"
	"github.com/joao-a-costa/ciuspt-ddl/internal/config"
	"github.com/joao-a-costa/ciuspt-ddl/internal/dateutils"
	"github.com/joao-a-costa/ciuspt-ddl/internal/models"
	"github.com/joao-a-costa/ciuspt-ddl/internal/parsererror"
)

// Options controls mapping behavior that the source documents leave
// ambiguous.
type Options struct {
	// ContractReferenceSource selects where ContractReferenceNumber comes
	// from: config.ContractRefOrderReference (OrderReference/ID) or
	// config.ContractRefBuyerReference (BuyerReference). Observed CIUS-PT
	// emitters disagree, so neither choice is hard-coded.
	ContractReferenceSource string
}

// DefaultOptions returns the mapping options used when no configuration
// is supplied.
func DefaultOptions() Options {
	return Options{ContractReferenceSource: config.ContractRefOrderReference}
}

// MapDocument dispatches on the document kind and runs the matching rule
// set. The returned record is freshly built on every call.
func MapDocument(doc *models.UBLDocument, opts Options) (*models.ItemTransaction, error) {
	switch doc.Kind {
	case models.KindInvoice:
		return MapInvoice(doc.Invoice, opts)
	case models.KindCreditNote:
		return MapCreditNote(doc.CreditNote, opts)
	default:
		return nil, &parsererror.UnrecognizedDocumentTypeError{RootName: string(doc.Kind)}
	}
}

// MapInvoice flattens a UBL Invoice into an ItemTransaction. Members with
// no mapping rule are left unset.
func MapInvoice(invoice *models.Invoice, opts Options) (*models.ItemTransaction, error) {
	if invoice.LegalMonetaryTotal == nil {
		return nil, &parsererror.MissingStructureError{
			Kind:      string(models.KindInvoice),
			Structure: "LegalMonetaryTotal",
		}
	}
	if invoice.IssueDate == "" {
		return nil, &parsererror.MissingStructureError{
			Kind:      string(models.KindInvoice),
			Structure: "IssueDate",
		}
	}

	createDate, err := dateutils.NormalizeUBLDate(invoice.IssueDate)
	if err != nil {
		return nil, fmt.Errorf("invalid IssueDate: %w", err)
	}

	totals, discount, err := mapMonetaryTotal(string(models.KindInvoice), invoice.LegalMonetaryTotal)
	if err != nil {
		return nil, err
	}

	location := models.FirstDeliveryLocation(invoice.Delivery)

	tx := &models.ItemTransaction{
		CreateDate:                createDate,
		ContractReferenceNumber:   contractReference(invoice.BuyerReference, invoice.OrderReference, opts),
		TotalAmount:               totals.taxExclusive,
		TotalTransactionAmount:    totals.taxInclusive,
		TotalGlobalDiscountAmount: discount,
		Party:                     mapParty(&invoice.AccountingCustomerParty.Party, location),
		CustomerParty:             mapParty(&invoice.AccountingCustomerParty.Party, location),
		SupplierParty:             mapParty(&invoice.AccountingSupplierParty.Party, location),
	}

	// Due date is optional; a value that is not a date is treated the same
	// as an absent one.
	if invoice.DueDate != "" {
		if dueDate, err := dateutils.NormalizeUBLDate(invoice.DueDate); err == nil {
			tx.DeferredPaymentDate = &dueDate
		}
	}

	if location != nil {
		tx.UnloadPlaceAddress = mapUnloadPlaceAddress(location.Address)
	}

	details, err := mapInvoiceLines(invoice.InvoiceLine)
	if err != nil {
		return nil, err
	}
	tx.Details = details

	return tx, nil
}

// MapCreditNote flattens a UBL CreditNote into an ItemTransaction. The rule
// set matches MapInvoice except that no deferred payment date is ever set
// and the credit note lines feed the details.
func MapCreditNote(creditNote *models.CreditNote, opts Options) (*models.ItemTransaction, error) {
	if creditNote.LegalMonetaryTotal == nil {
		return nil, &parsererror.MissingStructureError{
			Kind:      string(models.KindCreditNote),
			Structure: "LegalMonetaryTotal",
		}
	}
	if creditNote.IssueDate == "" {
		return nil, &parsererror.MissingStructureError{
			Kind:      string(models.KindCreditNote),
			Structure: "IssueDate",
		}
	}

	createDate, err := dateutils.NormalizeUBLDate(creditNote.IssueDate)
	if err != nil {
		return nil, fmt.Errorf("invalid IssueDate: %w", err)
	}

	totals, discount, err := mapMonetaryTotal(string(models.KindCreditNote), creditNote.LegalMonetaryTotal)
	if err != nil {
		return nil, err
	}

	location := models.FirstDeliveryLocation(creditNote.Delivery)

	tx := &models.ItemTransaction{
		CreateDate:                createDate,
		ContractReferenceNumber:   contractReference(creditNote.BuyerReference, creditNote.OrderReference, opts),
		TotalAmount:               totals.taxExclusive,
		TotalTransactionAmount:    totals.taxInclusive,
		TotalGlobalDiscountAmount: discount,
		Party:                     mapParty(&creditNote.AccountingCustomerParty.Party, location),
		CustomerParty:             mapParty(&creditNote.AccountingCustomerParty.Party, location),
		SupplierParty:             mapParty(&creditNote.AccountingSupplierParty.Party, location),
	}

	if location != nil {
		tx.UnloadPlaceAddress = mapUnloadPlaceAddress(location.Address)
	}

	details, err := mapCreditNoteLines(creditNote.CreditNoteLine)
	if err != nil {
		return nil, err
	}
	tx.Details = details

	return tx, nil
}

// monetaryTotals carries the parsed mandatory amounts of the legal
// monetary total block.
type monetaryTotals struct {
	taxExclusive decimal.Decimal
	taxInclusive decimal.Decimal
}

func mapMonetaryTotal(kind string, total *models.MonetaryTotal) (monetaryTotals, *decimal.Decimal, error) {
	// The two mandatory amounts must carry a value; producing zeroed totals
	// from an empty element would hide a broken document.
	if strings.TrimSpace(total.TaxExclusiveAmount.Value) == "" {
		return monetaryTotals{}, nil, &parsererror.MissingStructureError{
			Kind:      kind,
			Structure: "TaxExclusiveAmount",
		}
	}
	if strings.TrimSpace(total.TaxInclusiveAmount.Value) == "" {
		return monetaryTotals{}, nil, &parsererror.MissingStructureError{
			Kind:      kind,
			Structure: "TaxInclusiveAmount",
		}
	}

	taxExclusive, err := amountutils.ParseAmount(total.TaxExclusiveAmount.Value)
	if err != nil {
		return monetaryTotals{}, nil, fmt.Errorf("invalid TaxExclusiveAmount: %w", err)
	}

	taxInclusive, err := amountutils.ParseAmount(total.TaxInclusiveAmount.Value)
	if err != nil {
		return monetaryTotals{}, nil, fmt.Errorf("invalid TaxInclusiveAmount: %w", err)
	}

	discount, err := amountutils.ParseOptionalAmount(total.AllowanceTotalAmount.Value)
	if err != nil {
		return monetaryTotals{}, nil, fmt.Errorf("invalid AllowanceTotalAmount: %w", err)
	}

	return monetaryTotals{taxExclusive: taxExclusive, taxInclusive: taxInclusive}, discount, nil
}

// contractReference picks the contract reference according to the
// configured source. An absent source value yields an unset field.
func contractReference(buyerReference string, orderReference *models.OrderRef, opts Options) string {
	switch opts.ContractReferenceSource {
	case config.ContractRefBuyerReference:
		return buyerReference
	default:
		if orderReference == nil {
			return ""
		}
		return orderReference.ID
	}
}

// mapParty flattens a UBL party plus the first delivery location into a
// Party. Every step tolerates absence and yields an unset field instead of
// failing.
func mapParty(party *models.PartyType, location *models.LocationType) *models.Party {
	mapped := &models.Party{}

	if len(party.PartyIdentification) > 0 {
		mapped.FederalTaxID = party.PartyIdentification[0].ID
	}
	if len(party.PartyName) > 0 {
		mapped.OrganizationName = party.PartyName[0].Name
	}
	if address := party.PostalAddress; address != nil {
		mapped.AddressLine1 = address.StreetName
		mapped.AddressLine2 = address.AdditionalStreetName
		mapped.PostalCode = address.PostalZone
		if address.Country != nil {
			mapped.CountryID = address.Country.IdentificationCode
		}
	}
	if location != nil {
		mapped.GLN = location.ID
	}

	return mapped
}

// mapUnloadPlaceAddress flattens a delivery address. The postal code is
// always the "{zone} {subentity}" composition with a single separating
// space, keeping an empty token when the underlying value is absent.
func mapUnloadPlaceAddress(address *models.AddressType) *models.UnloadPlaceAddress {
	mapped := &models.UnloadPlaceAddress{}

	var zone, subentity string
	if address != nil {
		mapped.AddressLine1 = address.StreetName
		mapped.AddressLine2 = address.AdditionalStreetName
		zone = address.PostalZone
		subentity = address.CountrySubentity
		if address.Country != nil {
			mapped.CountryID = address.Country.IdentificationCode
		}
	}
	mapped.PostalCode = fmt.Sprintf("%s %s", zone, subentity)

	return mapped
}

// mapInvoiceLines flattens invoice lines into details, one per line, in
// source order. The description uses the first item description entry; the
// item name is the fallback only when no description entry exists at all,
// so a present-but-empty entry stays empty.
func mapInvoiceLines(lines []models.InvoiceLine) ([]models.Detail, error) {
	details := make([]models.Detail, 0, len(lines))

	for i, line := range lines {
		detail, err := mapLine(line.InvoicedQuantity, line.Price, line.Item, line.AllowanceCharge)
		if err != nil {
			return nil, fmt.Errorf("invoice line %d: %w", i+1, err)
		}
		if len(line.Item.Description) == 0 {
			detail.Description = line.Item.Name
		}
		details = append(details, detail)
	}

	return details, nil
}

// mapCreditNoteLines flattens credit note lines. Unlike invoice lines, the
// description uses only the first item description entry, with no item
// name fallback.
func mapCreditNoteLines(lines []models.CreditNoteLine) ([]models.Detail, error) {
	details := make([]models.Detail, 0, len(lines))

	for i, line := range lines {
		detail, err := mapLine(line.CreditedQuantity, line.Price, line.Item, line.AllowanceCharge)
		if err != nil {
			return nil, fmt.Errorf("credit note line %d: %w", i+1, err)
		}
		details = append(details, detail)
	}

	return details, nil
}

// mapLine builds the kind-independent part of a detail from the line's
// quantity, price, item and allowance charges.
func mapLine(quantity *models.Quantity, price *models.PriceType, item models.ItemType, charges []models.AllowanceCharge) (models.Detail, error) {
	detail := models.Detail{UnitPrice: decimal.Zero}

	if quantity != nil && quantity.Value != "" {
		parsed, err := amountutils.ParseAmount(quantity.Value)
		if err != nil {
			return models.Detail{}, fmt.Errorf("invalid quantity: %w", err)
		}
		truncated := amountutils.TruncateToInt(parsed)
		detail.Quantity = &truncated
	}

	if price != nil {
		parsed, err := amountutils.ParseAmount(price.PriceAmount.Value)
		if err != nil {
			return models.Detail{}, fmt.Errorf("invalid price amount: %w", err)
		}
		detail.UnitPrice = parsed
	}

	if item.SellersItemIdentification != nil {
		detail.ItemID = item.SellersItemIdentification.ID
	}
	if len(item.Description) > 0 {
		detail.Description = item.Description[0]
	}

	if len(charges) > 0 && charges[0].MultiplierFactorNumeric != "" {
		percent, err := amountutils.ParseAmount(charges[0].MultiplierFactorNumeric)
		if err != nil {
			return models.Detail{}, fmt.Errorf("invalid multiplier factor: %w", err)
		}
		detail.DiscountPercent = &percent
	}

	return detail, nil
}
