package epc

import "slices"

const DefaultCurrency = "EUR"

// ISO 4217 codes accepted by SetCurrency. The list is kept as published by
// the EPC QR reference implementations, withdrawn codes included.
var supportedCurrencies = map[string]struct{}{
	"ALL": {}, "AFN": {}, "ARS": {}, "AWG": {}, "AUD": {}, "AZN": {}, "BSD": {}, "BBD": {},
	"BDT": {}, "BYR": {}, "BZD": {}, "BMD": {}, "BOB": {}, "BAM": {}, "BWP": {}, "BGN": {},
	"BRL": {}, "BND": {}, "KHR": {}, "CAD": {}, "KYD": {}, "CLP": {}, "CNY": {}, "COP": {},
	"CRC": {}, "HRK": {}, "CUP": {}, "CZK": {}, "DKK": {}, "DOP": {}, "XCD": {}, "EGP": {},
	"SVC": {}, "EEK": {}, "EUR": {}, "FKP": {}, "FJD": {}, "GHC": {}, "GIP": {}, "GTQ": {},
	"GGP": {}, "GYD": {}, "HNL": {}, "HKD": {}, "HUF": {}, "ISK": {}, "INR": {}, "IDR": {},
	"IRR": {}, "IMP": {}, "ILS": {}, "JMD": {}, "JPY": {}, "JEP": {}, "KZT": {}, "KPW": {},
	"KRW": {}, "KGS": {}, "LAK": {}, "LVL": {}, "LBP": {}, "LRD": {}, "LTL": {}, "MKD": {},
	"MYR": {}, "MUR": {}, "MXN": {}, "MNT": {}, "MZN": {}, "NAD": {}, "NPR": {}, "ANG": {},
	"NZD": {}, "NIO": {}, "NGN": {}, "NOK": {}, "OMR": {}, "PKR": {}, "PAB": {}, "PYG": {},
	"PEN": {}, "PHP": {}, "PLN": {}, "QAR": {}, "RON": {}, "RUB": {}, "SHP": {}, "SAR": {},
	"RSD": {}, "SCR": {}, "SGD": {}, "SBD": {}, "SOS": {}, "ZAR": {}, "LKR": {}, "SEK": {},
	"CHF": {}, "SRD": {}, "SYP": {}, "TWD": {}, "THB": {}, "TTD": {}, "TRY": {}, "TRL": {},
	"TVD": {}, "UAH": {}, "GBP": {}, "USD": {}, "UYU": {}, "UZS": {}, "VEF": {}, "VND": {},
	"YER": {}, "ZWD": {},
}

// IsSupportedCurrency reports whether code is on the whitelist. The check is
// case-sensitive.
func IsSupportedCurrency(code string) bool {
	_, ok := supportedCurrencies[code]
	return ok
}

// SupportedCurrencies returns the whitelist in sorted order.
func SupportedCurrencies() []string {
	codes := make([]string, 0, len(supportedCurrencies))
	for code := range supportedCurrencies {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}
