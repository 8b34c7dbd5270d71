package isokey

// Windows holds the MSKLC scan code and virtual key name of a position.
type Windows struct {
	ScanCode string
	VK       string
}

var windows = [Count]Windows{
	E00: {"29", "OEM_3"},
	E01: {"02", "1"},
	E02: {"03", "2"},
	E03: {"04", "3"},
	E04: {"05", "4"},
	E05: {"06", "5"},
	E06: {"07", "6"},
	E07: {"08", "7"},
	E08: {"09", "8"},
	E09: {"0a", "9"},
	E10: {"0b", "0"},
	E11: {"0c", "OEM_MINUS"},
	E12: {"0d", "OEM_PLUS"},
	D01: {"10", "Q"},
	D02: {"11", "W"},
	D03: {"12", "E"},
	D04: {"13", "R"},
	D05: {"14", "T"},
	D06: {"15", "Y"},
	D07: {"16", "U"},
	D08: {"17", "I"},
	D09: {"18", "O"},
	D10: {"19", "P"},
	D11: {"1a", "OEM_4"},
	D12: {"1b", "OEM_6"},
	C01: {"1e", "A"},
	C02: {"1f", "S"},
	C03: {"20", "D"},
	C04: {"21", "F"},
	C05: {"22", "G"},
	C06: {"23", "H"},
	C07: {"24", "J"},
	C08: {"25", "K"},
	C09: {"26", "L"},
	C10: {"27", "OEM_1"},
	C11: {"28", "OEM_7"},
	C12: {"2b", "OEM_5"},
	B00: {"56", "OEM_102"},
	B01: {"2c", "Z"},
	B02: {"2d", "X"},
	B03: {"2e", "C"},
	B04: {"2f", "V"},
	B05: {"30", "B"},
	B06: {"31", "N"},
	B07: {"32", "M"},
	B08: {"33", "OEM_COMMA"},
	B09: {"34", "OEM_PERIOD"},
	B10: {"35", "OEM_2"},
}

func (k Key) Windows() Windows {
	return windows[k]
}
