package epc

type CharacterSet int

const (
	UTF8 CharacterSet = iota + 1
	ISO8859_1
	ISO8859_2
	ISO8859_4
	ISO8859_5
	ISO8859_7
	ISO8859_10
	ISO8859_15
)

var characterSetNames = map[CharacterSet]string{
	UTF8:       "UTF-8",
	ISO8859_1:  "ISO-8859-1",
	ISO8859_2:  "ISO-8859-2",
	ISO8859_4:  "ISO-8859-4",
	ISO8859_5:  "ISO-8859-5",
	ISO8859_7:  "ISO-8859-7",
	ISO8859_10: "ISO-8859-10",
	ISO8859_15: "ISO-8859-15",
}

func (c CharacterSet) Valid() bool {
	_, ok := characterSetNames[c]
	return ok
}

func (c CharacterSet) String() string {
	if name, ok := characterSetNames[c]; ok {
		return name
	}
	return "unknown"
}

type Version int

const (
	Version1 Version = 1
	Version2 Version = 2
)

func (v Version) Valid() bool {
	return v == Version1 || v == Version2
}
