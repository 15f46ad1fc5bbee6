package epc

// Builder chains setters on a Payment. The first failing setter is kept and
// every later call becomes a no-op, so the error surfaces from Build.
//
//	payload, err := epc.NewBuilder().
//		Name("Red Cross").
//		IBAN("BE72000000001616").
//		Amount("10").
//		Render()
type Builder struct {
	payment *Payment
	err     error
}

func NewBuilder() *Builder {
	return &Builder{payment: New()}
}

func (b *Builder) apply(set func() error) *Builder {
	if b.err == nil {
		b.err = set()
	}
	return b
}

func (b *Builder) ServiceTag(tag string) *Builder {
	return b.apply(func() error { return b.payment.SetServiceTag(tag) })
}

func (b *Builder) Version(v Version) *Builder {
	return b.apply(func() error { return b.payment.SetVersion(v) })
}

func (b *Builder) CharacterSet(cs CharacterSet) *Builder {
	return b.apply(func() error { return b.payment.SetCharacterSet(cs) })
}

func (b *Builder) Identification(id string) *Builder {
	return b.apply(func() error { return b.payment.SetIdentification(id) })
}

func (b *Builder) BIC(bic string) *Builder {
	return b.apply(func() error { return b.payment.SetBIC(bic) })
}

func (b *Builder) Name(name string) *Builder {
	return b.apply(func() error { return b.payment.SetName(name) })
}

func (b *Builder) IBAN(iban string) *Builder {
	return b.apply(func() error { return b.payment.SetIBAN(iban) })
}

func (b *Builder) Currency(code string) *Builder {
	return b.apply(func() error { return b.payment.SetCurrency(code) })
}

func (b *Builder) Amount(raw string) *Builder {
	return b.apply(func() error { return b.payment.SetAmount(raw) })
}

func (b *Builder) Purpose(purpose string) *Builder {
	return b.apply(func() error { return b.payment.SetPurpose(purpose) })
}

func (b *Builder) RemittanceReference(ref string) *Builder {
	return b.apply(func() error { return b.payment.SetRemittanceReference(ref) })
}

func (b *Builder) RemittanceText(text string) *Builder {
	return b.apply(func() error { return b.payment.SetRemittanceText(text) })
}

func (b *Builder) Information(info string) *Builder {
	return b.apply(func() error { return b.payment.SetInformation(info) })
}

// Build returns the accumulated payment or the first setter error.
func (b *Builder) Build() (*Payment, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.payment, nil
}

func (b *Builder) Render() (string, error) {
	p, err := b.Build()
	if err != nil {
		return "", err
	}
	return p.Render()
}
