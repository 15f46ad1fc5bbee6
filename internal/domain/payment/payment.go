package payment

import (
	"github.com/mjohndus/sepa-qr-data/internal/domain/epc"
)

// Details is the caller-facing form of an EPC credit transfer. Zero Version
// and CharacterSet mean the defaults (2 and UTF-8).
type Details struct {
	Version             int    `json:"version,omitempty"`
	CharacterSet        int    `json:"character_set,omitempty"`
	BIC                 string `json:"bic,omitempty"`
	Name                string `json:"name"`
	IBAN                string `json:"iban"`
	Currency            string `json:"currency,omitempty"`
	Amount              string `json:"amount,omitempty"`
	Purpose             string `json:"purpose,omitempty"`
	RemittanceReference string `json:"remittance_reference,omitempty"`
	RemittanceText      string `json:"remittance_text,omitempty"`
	Information         string `json:"information,omitempty"`
}

func (d Details) Build() (*epc.Payment, error) {
	b := epc.NewBuilder()
	if d.Version != 0 {
		b.Version(epc.Version(d.Version))
	}
	if d.CharacterSet != 0 {
		b.CharacterSet(epc.CharacterSet(d.CharacterSet))
	}
	return b.
		BIC(d.BIC).
		Name(d.Name).
		IBAN(d.IBAN).
		Currency(d.Currency).
		Amount(d.Amount).
		Purpose(d.Purpose).
		RemittanceReference(d.RemittanceReference).
		RemittanceText(d.RemittanceText).
		Information(d.Information).
		Build()
}

func (d Details) Render() (string, error) {
	p, err := d.Build()
	if err != nil {
		return "", err
	}
	return p.Render()
}
