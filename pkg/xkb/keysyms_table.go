package xkb

type keysym struct {
	name string
	r    rune
}

// keysymNames lists the preferred keysym names, taking precedence over the
// generated keysymdef.h table. Names in neither can still be written as
// U<hex> or as a numeric keysym. The first name for a character is the one
// written on export.
var keysymNames = []keysym{
	{"space", 0x0020},
	{"exclam", '!'},
	{"quotedbl", '"'},
	{"numbersign", '#'},
	{"dollar", '$'},
	{"percent", '%'},
	{"ampersand", '&'},
	{"apostrophe", '\''},
	{"parenleft", '('},
	{"parenright", ')'},
	{"asterisk", '*'},
	{"plus", '+'},
	{"comma", ','},
	{"minus", '-'},
	{"period", '.'},
	{"slash", '/'},
	{"0", '0'},
	{"1", '1'},
	{"2", '2'},
	{"3", '3'},
	{"4", '4'},
	{"5", '5'},
	{"6", '6'},
	{"7", '7'},
	{"8", '8'},
	{"9", '9'},
	{"colon", ':'},
	{"semicolon", ';'},
	{"less", '<'},
	{"equal", '='},
	{"greater", '>'},
	{"question", '?'},
	{"at", '@'},
	{"A", 'A'},
	{"B", 'B'},
	{"C", 'C'},
	{"D", 'D'},
	{"E", 'E'},
	{"F", 'F'},
	{"G", 'G'},
	{"H", 'H'},
	{"I", 'I'},
	{"J", 'J'},
	{"K", 'K'},
	{"L", 'L'},
	{"M", 'M'},
	{"N", 'N'},
	{"O", 'O'},
	{"P", 'P'},
	{"Q", 'Q'},
	{"R", 'R'},
	{"S", 'S'},
	{"T", 'T'},
	{"U", 'U'},
	{"V", 'V'},
	{"W", 'W'},
	{"X", 'X'},
	{"Y", 'Y'},
	{"Z", 'Z'},
	{"bracketleft", '['},
	{"backslash", '\\'},
	{"bracketright", ']'},
	{"asciicircum", '^'},
	{"underscore", '_'},
	{"grave", '`'},
	{"a", 'a'},
	{"b", 'b'},
	{"c", 'c'},
	{"d", 'd'},
	{"e", 'e'},
	{"f", 'f'},
	{"g", 'g'},
	{"h", 'h'},
	{"i", 'i'},
	{"j", 'j'},
	{"k", 'k'},
	{"l", 'l'},
	{"m", 'm'},
	{"n", 'n'},
	{"o", 'o'},
	{"p", 'p'},
	{"q", 'q'},
	{"r", 'r'},
	{"s", 's'},
	{"t", 't'},
	{"u", 'u'},
	{"v", 'v'},
	{"w", 'w'},
	{"x", 'x'},
	{"y", 'y'},
	{"z", 'z'},
	{"braceleft", '{'},
	{"bar", '|'},
	{"braceright", '}'},
	{"asciitilde", '~'},
	{"nobreakspace", 0x00A0},
	{"exclamdown", 0x00A1},
	{"cent", 0x00A2},
	{"sterling", 0x00A3},
	{"currency", 0x00A4},
	{"yen", 0x00A5},
	{"brokenbar", 0x00A6},
	{"section", 0x00A7},
	{"diaeresis", 0x00A8},
	{"copyright", 0x00A9},
	{"ordfeminine", 0x00AA},
	{"guillemetleft", 0x00AB},
	{"notsign", 0x00AC},
	{"hyphen", 0x00AD},
	{"registered", 0x00AE},
	{"macron", 0x00AF},
	{"degree", 0x00B0},
	{"plusminus", 0x00B1},
	{"twosuperior", 0x00B2},
	{"threesuperior", 0x00B3},
	{"acute", 0x00B4},
	{"mu", 0x00B5},
	{"paragraph", 0x00B6},
	{"periodcentered", 0x00B7},
	{"cedilla", 0x00B8},
	{"onesuperior", 0x00B9},
	{"ordmasculine", 0x00BA},
	{"guillemetright", 0x00BB},
	{"onequarter", 0x00BC},
	{"onehalf", 0x00BD},
	{"threequarters", 0x00BE},
	{"questiondown", 0x00BF},
	{"Agrave", 0x00C0},
	{"Aacute", 0x00C1},
	{"Acircumflex", 0x00C2},
	{"Atilde", 0x00C3},
	{"Adiaeresis", 0x00C4},
	{"Aring", 0x00C5},
	{"AE", 0x00C6},
	{"Ccedilla", 0x00C7},
	{"Egrave", 0x00C8},
	{"Eacute", 0x00C9},
	{"Ecircumflex", 0x00CA},
	{"Ediaeresis", 0x00CB},
	{"Igrave", 0x00CC},
	{"Iacute", 0x00CD},
	{"Icircumflex", 0x00CE},
	{"Idiaeresis", 0x00CF},
	{"ETH", 0x00D0},
	{"Ntilde", 0x00D1},
	{"Ograve", 0x00D2},
	{"Oacute", 0x00D3},
	{"Ocircumflex", 0x00D4},
	{"Otilde", 0x00D5},
	{"Odiaeresis", 0x00D6},
	{"multiply", 0x00D7},
	{"Oslash", 0x00D8},
	{"Ugrave", 0x00D9},
	{"Uacute", 0x00DA},
	{"Ucircumflex", 0x00DB},
	{"Udiaeresis", 0x00DC},
	{"Yacute", 0x00DD},
	{"THORN", 0x00DE},
	{"ssharp", 0x00DF},
	{"agrave", 0x00E0},
	{"aacute", 0x00E1},
	{"acircumflex", 0x00E2},
	{"atilde", 0x00E3},
	{"adiaeresis", 0x00E4},
	{"aring", 0x00E5},
	{"ae", 0x00E6},
	{"ccedilla", 0x00E7},
	{"egrave", 0x00E8},
	{"eacute", 0x00E9},
	{"ecircumflex", 0x00EA},
	{"ediaeresis", 0x00EB},
	{"igrave", 0x00EC},
	{"iacute", 0x00ED},
	{"icircumflex", 0x00EE},
	{"idiaeresis", 0x00EF},
	{"eth", 0x00F0},
	{"ntilde", 0x00F1},
	{"ograve", 0x00F2},
	{"oacute", 0x00F3},
	{"ocircumflex", 0x00F4},
	{"otilde", 0x00F5},
	{"odiaeresis", 0x00F6},
	{"division", 0x00F7},
	{"oslash", 0x00F8},
	{"ugrave", 0x00F9},
	{"uacute", 0x00FA},
	{"ucircumflex", 0x00FB},
	{"udiaeresis", 0x00FC},
	{"yacute", 0x00FD},
	{"thorn", 0x00FE},
	{"ydiaeresis", 0x00FF},
	{"Aogonek", 0x0104},
	{"aogonek", 0x0105},
	{"Lstroke", 0x0141},
	{"lstroke", 0x0142},
	{"Sacute", 0x015A},
	{"sacute", 0x015B},
	{"Scaron", 0x0160},
	{"scaron", 0x0161},
	{"Scedilla", 0x015E},
	{"scedilla", 0x015F},
	{"Tcaron", 0x0164},
	{"tcaron", 0x0165},
	{"Zacute", 0x0179},
	{"zacute", 0x017A},
	{"Zcaron", 0x017D},
	{"zcaron", 0x017E},
	{"Zabovedot", 0x017B},
	{"zabovedot", 0x017C},
	{"Racute", 0x0154},
	{"racute", 0x0155},
	{"Abreve", 0x0102},
	{"abreve", 0x0103},
	{"Lacute", 0x0139},
	{"lacute", 0x013A},
	{"Cacute", 0x0106},
	{"cacute", 0x0107},
	{"Ccaron", 0x010C},
	{"ccaron", 0x010D},
	{"Eogonek", 0x0118},
	{"eogonek", 0x0119},
	{"Ecaron", 0x011A},
	{"ecaron", 0x011B},
	{"Dcaron", 0x010E},
	{"dcaron", 0x010F},
	{"Dstroke", 0x0110},
	{"dstroke", 0x0111},
	{"Nacute", 0x0143},
	{"nacute", 0x0144},
	{"Ncaron", 0x0147},
	{"ncaron", 0x0148},
	{"Odoubleacute", 0x0150},
	{"odoubleacute", 0x0151},
	{"Rcaron", 0x0158},
	{"rcaron", 0x0159},
	{"Uring", 0x016E},
	{"uring", 0x016F},
	{"Udoubleacute", 0x0170},
	{"udoubleacute", 0x0171},
	{"Tcedilla", 0x0162},
	{"tcedilla", 0x0163},
	{"Gbreve", 0x011E},
	{"gbreve", 0x011F},
	{"Iabovedot", 0x0130},
	{"idotless", 0x0131},
	{"Hstroke", 0x0126},
	{"hstroke", 0x0127},
	{"Gcircumflex", 0x011C},
	{"gcircumflex", 0x011D},
	{"Jcircumflex", 0x0134},
	{"jcircumflex", 0x0135},
	{"Scircumflex", 0x015C},
	{"scircumflex", 0x015D},
	{"Ubreve", 0x016C},
	{"ubreve", 0x016D},
	{"Ccircumflex", 0x0108},
	{"ccircumflex", 0x0109},
	{"Amacron", 0x0100},
	{"amacron", 0x0101},
	{"Emacron", 0x0112},
	{"emacron", 0x0113},
	{"Imacron", 0x012A},
	{"imacron", 0x012B},
	{"Omacron", 0x014C},
	{"omacron", 0x014D},
	{"Umacron", 0x016A},
	{"umacron", 0x016B},
	{"Iogonek", 0x012E},
	{"iogonek", 0x012F},
	{"Uogonek", 0x0172},
	{"uogonek", 0x0173},
	{"Gcedilla", 0x0122},
	{"gcedilla", 0x0123},
	{"Kcedilla", 0x0136},
	{"kcedilla", 0x0137},
	{"Lcedilla", 0x013B},
	{"lcedilla", 0x013C},
	{"Ncedilla", 0x0145},
	{"ncedilla", 0x0146},
	{"Rcedilla", 0x0156},
	{"rcedilla", 0x0157},
	{"Tslash", 0x0166},
	{"tslash", 0x0167},
	{"ENG", 0x014A},
	{"eng", 0x014B},
	{"kra", 0x0138},
	{"OE", 0x0152},
	{"oe", 0x0153},
	{"Ydiaeresis", 0x0178},
	{"SCHWA", 0x018F},
	{"schwa", 0x0259},
	{"EZH", 0x01B7},
	{"ezh", 0x0292},
	{"EuroSign", 0x20AC},
	{"endash", 0x2013},
	{"emdash", 0x2014},
	{"ellipsis", 0x2026},
	{"dagger", 0x2020},
	{"doubledagger", 0x2021},
	{"leftsinglequotemark", 0x2018},
	{"rightsinglequotemark", 0x2019},
	{"singlelowquotemark", 0x201A},
	{"leftdoublequotemark", 0x201C},
	{"rightdoublequotemark", 0x201D},
	{"doublelowquotemark", 0x201E},
	{"trademark", 0x2122},
	{"notequal", 0x2260},
	{"lessthanequal", 0x2264},
	{"greaterthanequal", 0x2265},
	{"infinity", 0x221E},
	{"leftarrow", 0x2190},
	{"uparrow", 0x2191},
	{"rightarrow", 0x2192},
	{"downarrow", 0x2193},
	{"enspace", 0x2002},
	{"emspace", 0x2003},
	{"permille", 0x2030},
	{"caret", 0x2038},
	{"abovedot", 0x02D9},
	{"breve", 0x02D8},
	{"caron", 0x02C7},
	{"ogonek", 0x02DB},
	{"doubleacute", 0x02DD},
	{"prime", 0x2032},
	{"doubleprime", 0x2033},
	{"numerosign", 0x2116},
	{"approxeq", 0x2248},
	{"identical", 0x2261},
}

// Older names accepted on input but never written.
var keysymAliases = []keysym{
	{"guillemotleft", 0x00AB},
	{"guillemotright", 0x00BB},
	{"masculine", 0x00BA},
	{"Eth", 0x00D0},
	{"Thorn", 0x00DE},
}

// deadKeysymNames maps dead_* keysyms to the character recorded in the
// dead key inventory.
var deadKeysymNames = []keysym{
	{"dead_grave", '`'},
	{"dead_acute", 0x00B4},
	{"dead_circumflex", '^'},
	{"dead_tilde", '~'},
	{"dead_macron", 0x00AF},
	{"dead_breve", 0x02D8},
	{"dead_abovedot", 0x02D9},
	{"dead_diaeresis", 0x00A8},
	{"dead_abovering", 0x02DA},
	{"dead_doubleacute", 0x02DD},
	{"dead_caron", 0x02C7},
	{"dead_cedilla", 0x00B8},
	{"dead_ogonek", 0x02DB},
	{"dead_iota", 0x037A},
	{"dead_belowdot", 0x0323},
	{"dead_hook", 0x0309},
	{"dead_horn", 0x031B},
	{"dead_stroke", 0x0338},
	{"dead_abovecomma", 0x0313},
	{"dead_abovereversedcomma", 0x0314},
	{"dead_doublegrave", 0x030F},
	{"dead_belowring", 0x0325},
	{"dead_belowmacron", 0x0331},
	{"dead_belowcircumflex", 0x032D},
	{"dead_belowtilde", 0x0330},
	{"dead_belowbreve", 0x032E},
	{"dead_belowdiaeresis", 0x0324},
	{"dead_invertedbreve", 0x0311},
	{"dead_belowcomma", 0x0326},
	{"dead_currency", 0x00A4},
	{"dead_greek", 0x03BC},
}
