package tables

// Banned is the set of words stripped from every generated text.
var Banned = []string{"savage", "barbaric", "primitive"}

// GunpowderEras holds era fragments under which gunpowder terms are
// period-appropriate.
var GunpowderEras = []string{"Gunpowder", "Song", "Yuan", "Ottoman"}

// GunpowderNames holds faction names that always field gunpowder.
var GunpowderNames = []string{"Chinese"}

// Anachronisms maps a gunpowder-era term to its pre-gunpowder replacement.
var Anachronisms = [][2]string{
	{"bombards", "catapults"},
	{"rifles", "bows"},
}

// MismatchBlocklist holds culture and unit tokens that must not appear in a
// prompt unless the matchup names them.
var MismatchBlocklist = []string{
	"samurai", "ninja", "ronin", "vikings", "viking", "knights", "janissary", "janissaries",
	"muskets", "rifles", "bombards", "aztecs", "maya", "incas", "mongols", "huns", "celts",
	"greeks", "romans", "byzantines", "ottomans", "zulu", "mali", "ethiopians", "carthage",
	"persians", "chinese", "han", "tang", "song", "yuan", "ming", "qing", "koreans", "khmer", "thai", "vietnamese",
}
