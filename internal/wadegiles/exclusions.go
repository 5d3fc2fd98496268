package wadegiles

// English words that collide with Wade-Giles syllables. Conversion of these
// is skipped in conservative mode; hyphen groups and aggressive mode
// override.

// Excluded regardless of case. These are almost never Chinese names.
var excludedAnyCase = map[string]struct{}{
	"to": {},
	"no": {},
	"so": {},
}

// Excluded only when the span is all-lowercase. A capitalized form is more
// likely a proper noun ("Sung Dynasty") and still converts.
var excludedLowercase = map[string]struct{}{
	"to":   {},
	"no":   {},
	"so":   {},
	"hung": {}, // past tense of "hang"
	"sung": {}, // past tense of "sing"
	"lung": {}, // body organ
	"tang": {}, // sharp taste
	"tan":  {}, // skin color
	"pan":  {}, // cooking vessel
	"pen":  {}, // writing instrument
	"pin":  {}, // fastening device
	"ping": {}, // network ping
	"ting": {}, // sound
}

// Single-letter syllables that collide with English words or articles.
// Converted only inside a hyphen group or under aggressive mode.
var contextSensitive = map[string]struct{}{
	"i": {},
	"a": {},
	"o": {},
}
