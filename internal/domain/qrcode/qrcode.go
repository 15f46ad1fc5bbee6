package qrcode

// Generator turns a finished EPC payload into a QR symbol image. The payload
// is embedded as is.
type Generator interface {
	Generate(payload string) ([]byte, error)
}
