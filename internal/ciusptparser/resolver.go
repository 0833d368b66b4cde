package ciusptparser

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/joao-a-costa/ciuspt-ddl/internal/models"
	"github.com/joao-a-costa/ciuspt-ddl/internal/parsererror"
)

// ResolveKind inspects the XML stream and maps the root element's local
// name to one of the two supported document kinds. The resolution happens
// before the typed load, because the loader has to be told which target
// shape to produce.
func ResolveKind(r io.Reader) (models.DocumentKind, error) {
	decoder := xml.NewDecoder(r)
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			return "", &parsererror.UnrecognizedDocumentTypeError{}
		}
		if err != nil {
			return "", &parsererror.ParseError{
				Stage: "resolve",
				Value: "document root",
				Err:   err,
			}
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch start.Name.Local {
		case string(models.KindInvoice):
			return models.KindInvoice, nil
		case string(models.KindCreditNote):
			return models.KindCreditNote, nil
		default:
			return "", &parsererror.UnrecognizedDocumentTypeError{RootName: start.Name.Local}
		}
	}
}

// ResolveKindFromString resolves the document kind of an in-memory payload.
func ResolveKindFromString(content string) (models.DocumentKind, error) {
	return ResolveKind(strings.NewReader(content))
}

// LoadDocument unmarshals the payload into the typed tree matching the
// resolved kind and wraps it in the tagged union the mapper dispatches on.
func LoadDocument(data []byte, kind models.DocumentKind) (*models.UBLDocument, error) {
	doc := &models.UBLDocument{Kind: kind}

	switch kind {
	case models.KindInvoice:
		var invoice models.Invoice
		if err := xml.Unmarshal(data, &invoice); err != nil {
			return nil, &parsererror.ParseError{
				Stage: "load",
				Value: string(kind),
				Err:   err,
			}
		}
		doc.Invoice = &invoice
	case models.KindCreditNote:
		var creditNote models.CreditNote
		if err := xml.Unmarshal(data, &creditNote); err != nil {
			return nil, &parsererror.ParseError{
				Stage: "load",
				Value: string(kind),
				Err:   err,
			}
		}
		doc.CreditNote = &creditNote
	default:
		return nil, &parsererror.UnrecognizedDocumentTypeError{RootName: string(kind)}
	}

	return doc, nil
}
