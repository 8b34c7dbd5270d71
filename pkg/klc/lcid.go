package klc

import "golang.org/x/text/language"

// Locale ID used by Windows for languages without an assigned LCID.
const customLocaleID = 0x2000

type windowsLocale struct {
	id   uint32
	name string
}

// windowsLocales maps language tags to Windows locale IDs and names.
var windowsLocales = map[string]windowsLocale{
	"cs":     {0x0405, "cs-CZ"},
	"da":     {0x0406, "da-DK"},
	"de":     {0x0407, "de-DE"},
	"el":     {0x0408, "el-GR"},
	"en":     {0x0409, "en-US"},
	"en-GB":  {0x0809, "en-GB"},
	"es":     {0x0c0a, "es-ES"},
	"et":     {0x0425, "et-EE"},
	"fi":     {0x040b, "fi-FI"},
	"fo":     {0x0438, "fo-FO"},
	"fr":     {0x040c, "fr-FR"},
	"hu":     {0x040e, "hu-HU"},
	"is":     {0x040f, "is-IS"},
	"it":     {0x0410, "it-IT"},
	"kl":     {0x046f, "kl-GL"},
	"lt":     {0x0427, "lt-LT"},
	"lv":     {0x0426, "lv-LV"},
	"nb":     {0x0414, "nb-NO"},
	"nl":     {0x0413, "nl-NL"},
	"nn":     {0x0814, "nn-NO"},
	"no":     {0x0414, "nb-NO"},
	"pl":     {0x0415, "pl-PL"},
	"pt":     {0x0816, "pt-PT"},
	"pt-BR":  {0x0416, "pt-BR"},
	"ro":     {0x0418, "ro-RO"},
	"ru":     {0x0419, "ru-RU"},
	"se":     {0x043b, "se-NO"},
	"se-FI":  {0x0c3b, "se-FI"},
	"se-SE":  {0x083b, "se-SE"},
	"sk":     {0x041b, "sk-SK"},
	"sma":    {0x183b, "sma-NO"},
	"sma-SE": {0x1c3b, "sma-SE"},
	"smj":    {0x103b, "smj-NO"},
	"smj-SE": {0x143b, "smj-SE"},
	"smn":    {0x243b, "smn-FI"},
	"sms":    {0x203b, "sms-FI"},
	"sv":     {0x041d, "sv-SE"},
	"tr":     {0x041f, "tr-TR"},
	"uk":     {0x0422, "uk-UA"},
}

// lookupLocale returns the Windows locale for a tag. Unknown languages get
// the custom locale ID and a name built from the tag, with Latn and 001
// filling in a missing script or region.
func lookupLocale(tag language.Tag) windowsLocale {
	if loc, ok := windowsLocales[tag.String()]; ok {
		return loc
	}

	base, _ := tag.Base()
	region, regionConf := tag.Region()
	if regionConf == language.Exact {
		if loc, ok := windowsLocales[base.String()+"-"+region.String()]; ok {
			return loc
		}
	}
	if loc, ok := windowsLocales[base.String()]; ok {
		return loc
	}

	script, scriptConf := tag.Script()
	scriptName := "Latn"
	if scriptConf == language.Exact {
		scriptName = script.String()
	}
	regionName := "001"
	if regionConf == language.Exact {
		regionName = region.String()
	}
	return windowsLocale{id: customLocaleID, name: base.String() + "-" + scriptName + "-" + regionName}
}
