package faction

func stats(ranged, cavalry, infantry, armor, discipline, siege, logistics, naval int) Attributes {
	return Attributes{
		Ranged:     ranged,
		Cavalry:    cavalry,
		Infantry:   infantry,
		Armor:      armor,
		Discipline: discipline,
		Siege:      siege,
		Logistics:  logistics,
		Naval:      naval,
	}
}

func list(items ...string) []string { return items }

// Catalog returns the built-in factions in their canonical order.
func Catalog() []Faction {
	return []Faction{
		// East Asia
		New("Han Dynasty", "Classical China", stats(4, 3, 4, 3, 4, 3, 4, 3), list("plains", "hills"), list("imperial red", "jade green"), list("crossbows", "chariots", "drums")),
		New("Tang Dynasty", "Golden Age China", stats(4, 3, 4, 3, 4, 3, 4, 3), list("plains", "urban"), list("silk banners", "dragon gold"), list("heavy cavalry", "crossbows", "artistry")),
		New("Song Dynasty", "Medieval China", stats(4, 2, 3, 3, 4, 4, 4, 3), list("river valleys", "urban"), list("porcelain blue", "ink black"), list("gunpowder arrows", "siege engines", "scholar warriors")),
		New("Yuan Dynasty", "Mongol China", stats(5, 5, 3, 3, 4, 4, 5, 3), list("steppe", "plains"), list("jade and sable", "storm skies"), list("horse archers", "mass cavalry", "keshik guards")),
		New("Ming Dynasty", "Early Modern China", stats(4, 3, 4, 4, 4, 5, 5, 4), list("plains", "walls"), list("vermilion", "forbidden purple"), list("arquebuses", "fortress cannons", "dragon fleets")),
		New("Qing Dynasty", "Late Imperial China", stats(4, 4, 4, 4, 4, 4, 4, 4), list("plains", "urban"), list("yellow banners", "imperial silver"), list("banner armies", "matchlocks", "cavalry")),
		New("Samurai", "Feudal Japan", stats(3, 2, 4, 3, 4, 2, 3, 3), list("hills", "forests"), list("lacquered black", "blood red"), list("katana duel", "yumi volleys", "bushido")),
		New("Ashigaru", "Feudal Japan", stats(3, 2, 3, 2, 3, 2, 3, 2), list("plains", "hills"), list("peasant brown", "spear lines"), list("yari spear wall", "arquebus", "ashigaru levy")),
		New("Ninja", "Feudal Japan", stats(4, 1, 2, 1, 4, 1, 2, 1), list("forests", "urban"), list("shadow black", "midnight blue"), list("assassins", "smoke bombs", "stealth raids")),
		New("Koreans", "Three Kingdoms/Joseon", stats(3, 3, 3, 3, 3, 3, 3, 3), list("hills", "coast"), list("turtle ships", "crimson armor"), list("archers", "swords", "navy")),
		New("Khmer", "Angkor", stats(3, 2, 3, 3, 3, 3, 3, 3), list("river valleys", "urban"), list("stone grey", "jungle green"), list("war elephants", "temple guards", "fortresses")),
		New("Thai", "Ayutthaya", stats(3, 3, 3, 2, 3, 2, 3, 2), list("plains", "river valleys"), list("golden spires", "saffron"), list("elephants", "archers", "palace guards")),
		New("Vietnamese", "Medieval", stats(3, 3, 3, 2, 3, 2, 3, 2), list("forests", "river valleys"), list("jungle mist", "bronze drums"), list("guerrilla warfare", "spears", "boats")),
		New("Mongols", "Steppe Empire", stats(5, 5, 2, 2, 4, 3, 5, 1), list("steppe", "plains"), list("cold steppe blues", "dust storms"), list("horse archers", "encirclement", "keshik charge")),
		New("Huns", "Late Antiquity", stats(4, 5, 1, 1, 3, 1, 3, 1), list("steppe", "plains"), list("storm grey", "leather"), list("composite bows", "raids", "scorched earth")),
		New("Tatars", "Steppe", stats(4, 4, 2, 2, 3, 2, 3, 1), list("plains", "steppe"), list("sable brown", "steppe haze"), list("raids", "sabres", "horse bows")),
		New("Tibetans", "Himalayan", stats(3, 2, 3, 2, 3, 2, 3, 2), list("hills", "snow"), list("mountain mist", "prayer flags"), list("yak cavalry", "slings", "monastery warriors")),
		New("Burmese", "Pagan", stats(3, 2, 3, 2, 3, 2, 3, 2), list("river valleys", "forests"), list("golden pagodas", "teak wood"), list("war elephants", "spears", "temple guards")),
		New("Japanese Clans", "Sengoku", stats(3, 2, 4, 3, 4, 2, 3, 3), list("hills", "forests"), list("clan banners", "steel grey"), list("katana", "yari", "teppo")),
		New("Chinese Warlords", "Warring States", stats(4, 3, 4, 3, 3, 3, 3, 3), list("plains", "hills"), list("bronze", "warring colors"), list("crossbows", "chariots", "infantry")),

		// Classical and medieval Europe
		New("Romans", "Classical", stats(2, 2, 5, 4, 5, 5, 5, 3), list("plains", "hills"), list("iron red", "sandstone"), list("testudo", "pilum volley", "eagle standards")),
		New("Greeks", "Classical", stats(2, 2, 4, 3, 4, 3, 4, 4), list("hills", "coast"), list("bronze", "Aegean blue"), list("phalanx", "triremes", "hoplons")),
		New("Spartans", "Classical Greek", stats(2, 1, 5, 4, 5, 2, 3, 1), list("hills", "plains"), list("bronze red cloaks", "laconic steel"), list("phalanx wall", "shield clash", "spear thrust")),
		New("Vikings", "Norse", stats(2, 1, 4, 3, 3, 2, 2, 5), list("coast", "snow"), list("cold blue", "storm seas"), list("longships", "axes", "shield wall")),
		New("Carthaginians", "Classical", stats(2, 2, 3, 3, 3, 3, 4, 5), list("coast", "plains"), list("Tyrian purple", "sunlit harbors"), list("elephants", "quinqueremes", "mercenary lines")),
		New("Celts", "Iron Age", stats(2, 2, 3, 2, 2, 1, 2, 2), list("forests", "hills"), list("verdant greens", "storm-grey"), list("war cries", "chariots", "wild charge")),
		New("Byzantines", "Medieval", stats(3, 3, 4, 3, 4, 4, 4, 4), list("urban", "hills"), list("imperial gold", "purple cloaks"), list("cataphracts", "Greek fire", "defensive lines")),
		New("Knights", "High Medieval", stats(2, 4, 4, 4, 3, 2, 3, 2), list("plains", "hills"), list("steel and heraldry", "castle stone"), list("lance charge", "plate armor", "standards")),
		New("Gauls", "Iron Age", stats(2, 2, 3, 2, 2, 1, 2, 2), list("forests", "plains"), list("wode-blue", "forest haze"), list("horns", "chariots", "wild charge")),
		New("Macedonians", "Classical", stats(2, 2, 5, 3, 4, 3, 4, 3), list("plains", "hills"), list("royal purple", "sarissa shine"), list("phalanx", "cavalry wedge", "siege towers")),

		// Middle East
		New("Persians", "Achaemenid", stats(3, 3, 3, 2, 3, 3, 4, 3), list("plains", "desert"), list("lapis", "amber"), list("Immortals", "war elephants", "chariots")),
		New("Ottomans", "Gunpowder Empire", stats(4, 3, 4, 3, 4, 5, 4, 4), list("plains", "urban"), list("emerald", "smoke"), list("janissaries", "bombards", "crescent")),
		New("Mughals", "Early Modern India", stats(4, 3, 4, 3, 4, 4, 4, 3), list("plains", "river valleys"), list("silk brocade", "marble domes"), list("war elephants", "matchlocks", "archers")),
		New("Arabs", "Early Islamic", stats(3, 4, 3, 2, 3, 2, 3, 3), list("desert", "plains"), list("desert gold", "crescent silver"), list("cavalry charge", "archery", "faith")),
		New("Turks", "Seljuk", stats(3, 3, 3, 3, 3, 3, 3, 2), list("plains", "hills"), list("silk banners", "desert steel"), list("cavalry charge", "archery volleys", "siege engines")),

		// Africa
		New("Egyptians", "Bronze to Late", stats(2, 2, 3, 2, 3, 3, 3, 3), list("desert", "river valleys"), list("sunstone", "Nile reeds"), list("chariots", "archers", "sacred standards")),
		New("Mali", "Sahelian Medieval", stats(2, 2, 3, 2, 3, 2, 4, 2), list("desert", "river valleys"), list("gold dust", "Sahara dusk"), list("cavalry", "griots", "caravans")),
		New("Ethiopians", "Axumite/Solomonic", stats(3, 2, 3, 2, 3, 2, 3, 2), list("hills", "river valleys"), list("highland blues", "basalt"), list("spears", "rock-hewn lines", "shields")),
		New("Zulu", "19th c.", stats(2, 2, 4, 2, 4, 1, 2, 1), list("plains", "hills"), list("savanna gold", "storm build"), list("impi horns", "assegai", "shield rush")),
		New("Numidians", "North Africa", stats(2, 3, 2, 2, 3, 2, 3, 3), list("plains", "desert"), list("desert tan", "oasis green"), list("light cavalry", "javelins", "skirmishers")),
		New("Berbers", "North Africa", stats(2, 3, 2, 2, 3, 2, 3, 3), list("desert", "hills"), list("desert ochre", "Atlas blue"), list("cavalry raids", "mountain ambush", "desert warfare")),

		// Americas
		New("Aztecs", "Mesoamerican", stats(3, 1, 3, 2, 3, 1, 2, 1), list("plains", "forests"), list("earthy ochres", "jade"), list("jaguar warriors", "macuahuitl", "eagle knights")),
		New("Mayans", "Mesoamerican", stats(3, 1, 3, 2, 3, 1, 2, 1), list("forests", "hills"), list("verdigris", "jungle mist"), list("atlatl", "obsidian blades", "pyramids")),
		New("Incas", "Andean", stats(3, 1, 3, 2, 4, 2, 4, 2), list("hills", "river valleys"), list("andes slate", "sun gold"), list("slings", "terraces", "runners")),
		New("Native North Americans", "Varied", stats(3, 2, 2, 1, 3, 1, 2, 1), list("plains", "forests"), list("buffalo plains", "cedar smoke"), list("bows", "lances", "ambushes")),
		New("Cherokee", "Woodlands", stats(3, 2, 2, 1, 3, 1, 2, 1), list("forests", "hills"), list("forest green", "river stone"), list("bows", "tomahawks", "ambush")),
		New("Sioux", "Plains", stats(3, 4, 3, 2, 3, 1, 2, 1), list("plains", "hills"), list("buffalo hide", "prairie fire"), list("horse archers", "raids", "spears")),
		New("Iroquois", "Woodlands", stats(3, 2, 3, 2, 3, 1, 2, 1), list("forests", "hills"), list("longhouse wood", "forest mist"), list("bows", "axes", "ambush")),
		New("Toltecs", "Mesoamerican", stats(3, 1, 3, 2, 3, 1, 2, 1), list("plains", "forests"), list("stone grey", "jade green"), list("warriors", "pyramids", "obsidian blades")),
		New("Olmecs", "Mesoamerican", stats(2, 1, 2, 2, 2, 1, 2, 1), list("forests", "river valleys"), list("stone heads", "jungle green"), list("clubs", "ambush", "rituals")),

		// Indian subcontinent
		New("Indians", "Mauryan-Gupta", stats(3, 2, 3, 2, 3, 3, 3, 3), list("plains", "river valleys"), list("saffron and teak", "monsoon haze"), list("elephants", "chariots", "archers")),
		New("Rajputs", "Medieval India", stats(3, 4, 4, 3, 4, 2, 3, 2), list("plains", "hills"), list("rajput saffron", "desert pride"), list("cavalry charge", "honor duels", "fortress warfare")),
		New("Delhi Sultanate", "Medieval India", stats(4, 3, 4, 3, 4, 4, 4, 3), list("plains", "urban"), list("sultanate green", "minaret gold"), list("cavalry", "archers", "siege engines")),
		New("Marathas", "Early Modern India", stats(3, 4, 3, 2, 4, 2, 3, 2), list("hills", "plains"), list("saffron banners", "guerrilla brown"), list("guerrilla cavalry", "hill forts", "mobility")),
		New("Sikhs", "18th-19th c.", stats(3, 3, 4, 3, 4, 2, 3, 2), list("plains", "hills"), list("khalsa blue", "steel kirpan"), list("cavalry", "muskets", "warrior faith")),
	}
}
