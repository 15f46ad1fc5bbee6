package epc

import "regexp"

type RemittanceKind int

const (
	RemittanceNone RemittanceKind = iota
	RemittanceReference
	RemittanceText
)

// Remittance holds either structured (reference) or unstructured (text)
// remittance information, never both.
type Remittance struct {
	kind  RemittanceKind
	value string
}

func (r Remittance) Kind() RemittanceKind {
	return r.kind
}

func (r Remittance) Reference() string {
	if r.kind == RemittanceReference {
		return r.value
	}
	return ""
}

func (r Remittance) Text() string {
	if r.kind == RemittanceText {
		return r.value
	}
	return ""
}

const (
	maxReferenceLength = 35
	maxTextLength      = 140
)

var referencePattern = regexp.MustCompile(`^[A-Za-z0-9':,.?\-+()/ ]*$`)
