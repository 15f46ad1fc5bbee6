package epc

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	ServiceTag     = "BCD"
	Identification = "SCT"
)

const (
	FieldServiceTag          = "service_tag"
	FieldVersion             = "version"
	FieldCharacterSet        = "character_set"
	FieldIdentification      = "identification"
	FieldBIC                 = "bic"
	FieldName                = "name"
	FieldIBAN                = "iban"
	FieldCurrency            = "currency"
	FieldAmount              = "amount"
	FieldPurpose             = "purpose"
	FieldRemittanceReference = "remittance_reference"
	FieldRemittanceText      = "remittance_text"
	FieldInformation         = "information"
)

const (
	maxNameLength        = 70
	maxIBANLength        = 34
	maxInformationLength = 70
	purposeLength        = 4
	currencyLength       = 3
)

const purposeChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Payment is the content of one EPC069-12 credit transfer QR code. Create it
// with New; the zero value lacks the fixed header fields. A Payment is not
// safe for concurrent mutation.
type Payment struct {
	serviceTag     string
	version        Version
	characterSet   CharacterSet
	identification string
	bic            string
	name           string
	iban           string
	currency       string
	amount         decimal.Decimal
	purpose        string
	remittance     Remittance
	information    string
}

func New() *Payment {
	return &Payment{
		serviceTag:     ServiceTag,
		version:        Version2,
		characterSet:   UTF8,
		identification: Identification,
		currency:       DefaultCurrency,
	}
}

func (p *Payment) ServiceTag() string {
	return p.serviceTag
}

func (p *Payment) Version() Version {
	return p.version
}

func (p *Payment) CharacterSet() CharacterSet {
	return p.characterSet
}

func (p *Payment) Identification() string {
	return p.identification
}

func (p *Payment) BIC() string {
	return p.bic
}

func (p *Payment) Name() string {
	return p.name
}

func (p *Payment) IBAN() string {
	return p.iban
}

func (p *Payment) Currency() string {
	return p.currency
}

func (p *Payment) Amount() decimal.Decimal {
	return p.amount
}

func (p *Payment) Purpose() string {
	return p.purpose
}

func (p *Payment) Remittance() Remittance {
	return p.remittance
}

func (p *Payment) RemittanceReference() string {
	return p.remittance.Reference()
}

func (p *Payment) RemittanceText() string {
	return p.remittance.Text()
}

func (p *Payment) Information() string {
	return p.information
}

func (p *Payment) SetServiceTag(tag string) error {
	if tag != ServiceTag {
		return invalid(FieldServiceTag, ErrInvalidFixedValue, "service tag must be %q, got %q", ServiceTag, tag)
	}
	p.serviceTag = tag
	return nil
}

func (p *Payment) SetVersion(v Version) error {
	if !v.Valid() {
		return invalid(FieldVersion, ErrInvalidEnumValue, "version must be 1 or 2, got %d", v)
	}
	p.version = v
	return nil
}

func (p *Payment) SetCharacterSet(cs CharacterSet) error {
	if !cs.Valid() {
		return invalid(FieldCharacterSet, ErrInvalidEnumValue, "character set must be between 1 and 8, got %d", cs)
	}
	p.characterSet = cs
	return nil
}

func (p *Payment) SetIdentification(id string) error {
	if id != Identification {
		return invalid(FieldIdentification, ErrInvalidFixedValue,
			"identification must be %q, got %q", Identification, id)
	}
	p.identification = id
	return nil
}

// SetBIC accepts an empty BIC; with version 1 Render still requires one.
func (p *Payment) SetBIC(bic string) error {
	if n := utf8.RuneCountInString(bic); n != 0 && n != 8 && n != 11 {
		return invalid(FieldBIC, ErrLengthExceeded, "BIC must be 8 or 11 characters, got %d", n)
	}
	p.bic = bic
	return nil
}

func (p *Payment) SetName(name string) error {
	if err := checkMaxLength(FieldName, name, maxNameLength); err != nil {
		return err
	}
	p.name = name
	return nil
}

func (p *Payment) SetIBAN(iban string) error {
	if err := checkMaxLength(FieldIBAN, iban, maxIBANLength); err != nil {
		return err
	}
	p.iban = iban
	return nil
}

// SetCurrency resets the currency to EUR when code is empty.
func (p *Payment) SetCurrency(code string) error {
	if code == "" {
		p.currency = DefaultCurrency
		return nil
	}
	if utf8.RuneCountInString(code) != currencyLength {
		return invalid(FieldCurrency, ErrInvalidFormat, "currency %q is not a 3 letter ISO 4217 code", code)
	}
	if !IsSupportedCurrency(code) {
		return invalid(FieldCurrency, ErrInvalidFormat, "currency %q is not supported", code)
	}
	p.currency = code
	return nil
}

// SetAmount takes the amount as decimal text, e.g. "10" or "12.5". An empty,
// zero or negative amount clears it.
func (p *Payment) SetAmount(raw string) error {
	amount, err := parseAmount(raw)
	if err != nil {
		return err
	}
	p.amount = amount
	return nil
}

func (p *Payment) SetPurpose(purpose string) error {
	if purpose == "" {
		p.purpose = ""
		return nil
	}
	if n := utf8.RuneCountInString(purpose); n != purposeLength {
		return invalid(FieldPurpose, ErrLengthExceeded, "purpose code must be 4 characters, got %d", n)
	}
	if strings.Trim(purpose, purposeChars) != "" {
		return invalid(FieldPurpose, ErrInvalidFormat, "purpose code %q must be capital letters A-Z", purpose)
	}
	p.purpose = purpose
	return nil
}

func (p *Payment) SetRemittanceReference(ref string) error {
	if err := checkMaxLength(FieldRemittanceReference, ref, maxReferenceLength); err != nil {
		return err
	}
	if ref == "" {
		if p.remittance.kind == RemittanceReference {
			p.remittance = Remittance{}
		}
		return nil
	}
	if p.remittance.kind == RemittanceText {
		return invalid(FieldRemittanceReference, ErrMutualExclusion,
			"use either structured or unstructured remittance information")
	}
	if !referencePattern.MatchString(ref) {
		return invalid(FieldRemittanceReference, ErrInvalidFormat,
			"remittance reference %q contains a character outside A-Z a-z 0-9 ':,.?-+()/ and space", ref)
	}
	p.remittance = Remittance{kind: RemittanceReference, value: ref}
	return nil
}

func (p *Payment) SetRemittanceText(text string) error {
	if err := checkMaxLength(FieldRemittanceText, text, maxTextLength); err != nil {
		return err
	}
	if text == "" {
		if p.remittance.kind == RemittanceText {
			p.remittance = Remittance{}
		}
		return nil
	}
	if p.remittance.kind == RemittanceReference {
		return invalid(FieldRemittanceText, ErrMutualExclusion,
			"use either structured or unstructured remittance information")
	}
	p.remittance = Remittance{kind: RemittanceText, value: text}
	return nil
}

func (p *Payment) SetInformation(info string) error {
	if err := checkMaxLength(FieldInformation, info, maxInformationLength); err != nil {
		return err
	}
	p.information = info
	return nil
}

// Render serializes the payment into the twelve line EPC payload. Trailing
// empty lines are dropped, empty lines in between are kept.
func (p *Payment) Render() (string, error) {
	if p.version == Version1 && p.bic == "" {
		return "", invalid(FieldBIC, ErrMissingRequiredField, "missing BIC of the beneficiary bank, required by version 1")
	}
	if p.name == "" {
		return "", invalid(FieldName, ErrMissingRequiredField, "missing name of the beneficiary")
	}
	if p.iban == "" {
		return "", invalid(FieldIBAN, ErrMissingRequiredField, "missing account number of the beneficiary")
	}

	lines := []string{
		p.serviceTag,
		fmt.Sprintf("%03d", p.version),
		strconv.Itoa(int(p.characterSet)),
		p.identification,
		p.bic,
		p.name,
		p.iban,
		FormatMoney(p.currency, p.amount),
		p.purpose,
		p.remittance.Reference(),
		p.remittance.Text(),
		p.information,
	}

	return strings.TrimRight(strings.Join(lines, "\n"), "\n"), nil
}

func checkMaxLength(field, value string, limit int) error {
	if n := utf8.RuneCountInString(value); n > limit {
		return invalid(field, ErrLengthExceeded, "%s cannot be longer than %d characters, got %d", field, limit, n)
	}
	return nil
}
