// Package xmlutils provides XML-related utility functions used throughout the application.
package xmlutils

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/xmlpath.v2"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// LoadXMLFile loads an XML file and returns the XML root node
func LoadXMLFile(xmlFilePath string) (*xmlpath.Node, error) {
	data, err := os.ReadFile(xmlFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read XML file: %w", err)
	}
	return ParseXMLString(string(data))
}

// ParseXMLString parses an in-memory XML payload and returns the root node
func ParseXMLString(content string) (*xmlpath.Node, error) {
	root, err := xmlpath.Parse(bytes.NewReader([]byte(content)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse XML content: %w", err)
	}
	return root, nil
}

// HasElement reports whether the document contains at least one element
// matching the given XPath expression.
func HasElement(root *xmlpath.Node, xpath string) bool {
	path, err := xmlpath.Compile(xpath)
	if err != nil {
		log.WithError(err).WithField("xpath", xpath).Error("Failed to compile XPath")
		return false
	}
	_, ok := path.String(root)
	return ok
}

// ExtractFromXML extracts values from an XML node using an XPath expression
func ExtractFromXML(root *xmlpath.Node, xpath string) ([]string, error) {
	path, err := xmlpath.Compile(xpath)
	if err != nil {
		return nil, fmt.Errorf("failed to compile XPath: %w", err)
	}

	var values []string
	iter := path.Iter(root)
	for iter.Next() {
		values = append(values, iter.Node().String())
	}

	return values, nil
}
