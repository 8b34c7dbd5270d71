package xkb

import (
	"encoding/xml"
	"fmt"
	"os"
)

// Registry is the layout list from evdev.xml. It provides the human
// readable names of symbol files and their sections.
type Registry struct {
	XMLName    xml.Name           `xml:"xkbConfigRegistry"`
	LayoutList RegistryLayoutList `xml:"layoutList"`
}

type ConfigItem struct {
	Name        string   `xml:"name"`
	ShortDesc   string   `xml:"shortDescription"`
	Description string   `xml:"description"`
	Languages   []string `xml:"languageList>iso639Id"`
}

type RegistryVariant struct {
	ConfigItem ConfigItem `xml:"configItem"`
}

type RegistryLayout struct {
	ConfigItem  ConfigItem        `xml:"configItem"`
	VariantList []RegistryVariant `xml:"variantList>variant"`
}

type RegistryLayoutList struct {
	Layout []RegistryLayout `xml:"layout"`
}

func ParseRegistry(path string) (*Registry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	registry := &Registry{}
	err = xml.NewDecoder(file).Decode(registry)
	if err != nil {
		return nil, fmt.Errorf("decode xml: %w", err)
	}

	return registry, nil
}

// Description returns the name of a layout or one of its variants. The
// basic section is described by the layout itself.
func (r *Registry) Description(layout, variant string) string {
	if r == nil {
		return ""
	}
	for _, l := range r.LayoutList.Layout {
		if l.ConfigItem.Name != layout {
			continue
		}
		if variant == "" || variant == basicSection {
			return l.ConfigItem.Description
		}
		for _, v := range l.VariantList {
			if v.ConfigItem.Name == variant {
				return v.ConfigItem.Description
			}
		}
	}

	return ""
}

// Lookup finds the layout and variant for a description. The variant is
// empty when the description names a whole layout.
func (r *Registry) Lookup(description string) (layout, variant string, ok bool) {
	if r == nil {
		return "", "", false
	}
	for _, l := range r.LayoutList.Layout {
		if l.ConfigItem.Description == description {
			return l.ConfigItem.Name, "", true
		}

		for _, v := range l.VariantList {
			if v.ConfigItem.Description == description {
				return l.ConfigItem.Name, v.ConfigItem.Name, true
			}
		}
	}

	return "", "", false
}
