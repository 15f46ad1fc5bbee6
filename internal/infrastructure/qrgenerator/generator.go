package qrgenerator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	qr "github.com/skip2/go-qrcode"
	"golang.org/x/text/encoding/charmap"

	"github.com/mjohndus/sepa-qr-data/internal/domain/epc"
)

// EPC069-12 allows at most 331 bytes of payload and requires level M.
const MaxPayloadBytes = 331

var (
	ErrPayloadTooLarge      = errors.New("payload exceeds 331 bytes")
	ErrUnsupportedCharset   = errors.New("payload declares an unsupported character set")
	ErrUnencodableCharacter = errors.New("payload contains a character outside its declared character set")
)

var encoders = map[epc.CharacterSet]*charmap.Charmap{
	epc.ISO8859_1:  charmap.ISO8859_1,
	epc.ISO8859_2:  charmap.ISO8859_2,
	epc.ISO8859_4:  charmap.ISO8859_4,
	epc.ISO8859_5:  charmap.ISO8859_5,
	epc.ISO8859_7:  charmap.ISO8859_7,
	epc.ISO8859_10: charmap.ISO8859_10,
	epc.ISO8859_15: charmap.ISO8859_15,
}

type Generator struct {
	size int
}

func NewGenerator(size int) *Generator {
	return &Generator{size: size}
}

func (g *Generator) Generate(payload string) ([]byte, error) {
	content, err := Encode(payload)
	if err != nil {
		return nil, err
	}
	return qr.Encode(string(content), qr.Medium, g.size)
}

// Encode converts the payload into the bytes of the character set declared
// on its third line, then enforces the size limit on the result.
func Encode(payload string) ([]byte, error) {
	cs, err := declaredCharset(payload)
	if err != nil {
		return nil, err
	}

	content := []byte(payload)
	if cm, ok := encoders[cs]; ok {
		content, err = cm.NewEncoder().Bytes(content)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrUnencodableCharacter, cs)
		}
	}

	if len(content) > MaxPayloadBytes {
		return nil, ErrPayloadTooLarge
	}
	return content, nil
}

func declaredCharset(payload string) (epc.CharacterSet, error) {
	lines := strings.SplitN(payload, "\n", 4)
	if len(lines) < 3 {
		return 0, ErrUnsupportedCharset
	}
	n, err := strconv.Atoi(lines[2])
	if err != nil || !epc.CharacterSet(n).Valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedCharset, lines[2])
	}
	return epc.CharacterSet(n), nil
}
