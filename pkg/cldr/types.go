package cldr

import "encoding/xml"

type Keyboard struct {
	XMLName    xml.Name     `xml:"keyboard"`
	Locale     string       `xml:"locale,attr"`
	Version    Version      `xml:"version"`
	Names      []Name       `xml:"names>name"`
	KeyMaps    []KeyMap     `xml:"keyMap"`
	Transforms []Transforms `xml:"transforms"`
}

type Version struct {
	Platform string `xml:"platform,attr"`
	Number   string `xml:"number,attr"`
}

type Name struct {
	Value string `xml:"value,attr"`
}

type KeyMap struct {
	Modifiers string `xml:"modifiers,attr"`
	Maps      []Map  `xml:"map"`
}

type Map struct {
	ISO       string `xml:"iso,attr"`
	To        string `xml:"to,attr"`
	Transform string `xml:"transform,attr"`
	LongPress string `xml:"longPress,attr"`
}

type Transforms struct {
	Type       string      `xml:"type,attr"`
	Transforms []Transform `xml:"transform"`
}

type Transform struct {
	From string `xml:"from,attr"`
	To   string `xml:"to,attr"`
}
