// Package tables holds the static lookup data every generation step reads:
// terrain descriptions, weather, scenarios, commander traits, style packs and
// per-faction presets.
package tables

// Default keys used when a caller passes an unknown key.
const (
	DefaultScenario  = "open field"
	DefaultWeather   = "clear"
	DefaultStylePack = "Cinematic"
	DefaultCommander = "aggressive"

	ScenarioOpenField     = "open field"
	ScenarioAmbush        = "ambush"
	ScenarioRiverCrossing = "river crossing"
	ScenarioHillDefense   = "hill defense"
	ScenarioSiege         = "siege"
	ScenarioNaval         = "naval"

	TerrainPlains  = "plains"
	TerrainOpenSea = "open sea"
)

// Modifiers is a per-attribute multiplicative delta. A zero field means the
// attribute is not modified.
type Modifiers struct {
	Ranged     float64
	Cavalry    float64
	Infantry   float64
	Armor      float64
	Discipline float64
	Siege      float64
	Logistics  float64
	Naval      float64
}

// Values returns the non-zero deltas in a fixed attribute order.
func (m Modifiers) Values() []float64 {
	all := []float64{m.Ranged, m.Cavalry, m.Infantry, m.Armor, m.Discipline, m.Siege, m.Logistics, m.Naval}
	out := make([]float64, 0, len(all))
	for _, v := range all {
		if v != 0 {
			out = append(out, v)
		}
	}
	return out
}

// Scenario is a tactical situation.
type Scenario struct {
	Key         string
	Description string
	Modifiers   Modifiers
}

// Weather is a battlefield condition. Score is applied as (1 + Score) to both sides.
type Weather struct {
	Key        string
	Visibility string
	Score      float64
}

// CommanderTrait adds per-attribute bonuses before weighting and an
// initiative value used when picking the attacking side.
type CommanderTrait struct {
	Key        string
	Ranged     float64
	Cavalry    float64
	Armor      float64
	Discipline float64
	Logistics  float64
	Initiative float64
}

var terrainOrder = []string{
	"plains", "hills", "forests", "steppe", "desert", "coast", "urban", "walls", "river valleys", "open sea",
}

var terrain = map[string][]string{
	"plains":        {"sun-bleached flats", "rolling fields"},
	"hills":         {"misty foothills", "undulating ridgelines"},
	"forests":       {"dense woodland", "dark conifer stands"},
	"steppe":        {"endless grass seas", "cold steppe horizon"},
	"desert":        {"saffron dunes", "heat shimmer and sand haze"},
	"coast":         {"rocky shoreline", "spray and slate waves"},
	"urban":         {"broken walls and gatehouses", "narrow streets"},
	"walls":         {"battlements and siege towers"},
	"river valleys": {"broad river meanders", "fog over terraces"},
	"open sea":      {"whitecaps and spray", "overcast swells"},
}

var weatherOrder = []string{"clear", "fog", "rain", "snow", "windy"}

var weather = map[string]Weather{
	"clear": {Key: "clear", Visibility: ", crisp air", Score: 0.0},
	"fog":   {Key: "fog", Visibility: ", ground fog and haze", Score: -0.1},
	"rain":  {Key: "rain", Visibility: ", rain sheeting and churned mud", Score: -0.05},
	"snow":  {Key: "snow", Visibility: ", blowing snow and breath vapor", Score: -0.05},
	"windy": {Key: "windy", Visibility: ", whipping banners and dust plumes", Score: -0.02},
}

var scenarioOrder = []string{
	ScenarioOpenField, ScenarioAmbush, ScenarioRiverCrossing, ScenarioHillDefense, ScenarioSiege, ScenarioNaval,
}

var scenarios = map[string]Scenario{
	ScenarioOpenField: {
		Key: ScenarioOpenField, Description: "battle lines form and advance",
		Modifiers: Modifiers{Cavalry: 0.1, Infantry: 0.05},
	},
	ScenarioAmbush: {
		Key: ScenarioAmbush, Description: "surprise strike on a flank",
		Modifiers: Modifiers{Discipline: -0.05, Cavalry: 0.05, Ranged: 0.05},
	},
	ScenarioRiverCrossing: {
		Key: ScenarioRiverCrossing, Description: "forcing a ford under fire",
		Modifiers: Modifiers{Discipline: 0.1, Ranged: 0.05, Cavalry: -0.05},
	},
	ScenarioHillDefense: {
		Key: ScenarioHillDefense, Description: "defender holds ridgeline",
		Modifiers: Modifiers{Discipline: 0.05, Infantry: 0.05, Ranged: 0.05},
	},
	ScenarioSiege: {
		Key: ScenarioSiege, Description: "walls, engines, attrition",
		Modifiers: Modifiers{Siege: 0.15, Logistics: 0.1},
	},
	ScenarioNaval: {
		Key: ScenarioNaval, Description: "oared rams, boarding, missiles",
		Modifiers: Modifiers{Naval: 0.3, Ranged: 0.05},
	},
}

var commanderOrder = []string{"aggressive", "defensive", "cunning", "logistician"}

var commanders = map[string]CommanderTrait{
	"aggressive":  {Key: "aggressive", Cavalry: 0.05, Initiative: 0.5},
	"defensive":   {Key: "defensive", Discipline: 0.05, Armor: 0.03, Initiative: -0.25},
	"cunning":     {Key: "cunning", Ranged: 0.05, Initiative: 0.25},
	"logistician": {Key: "logistician", Logistics: 0.08, Initiative: 0.1},
}

// TerrainKeys returns every terrain key in canonical order.
func TerrainKeys() []string { return append([]string(nil), terrainOrder...) }

// TerrainDescriptions returns the descriptions for key; an unknown key
// describes itself.
func TerrainDescriptions(key string) []string {
	if d, ok := terrain[key]; ok {
		return d
	}
	return []string{key}
}

// WeatherKeys returns every weather key in canonical order.
func WeatherKeys() []string { return append([]string(nil), weatherOrder...) }

// LookupWeather returns the named weather.
func LookupWeather(key string) (Weather, bool) {
	w, ok := weather[key]
	return w, ok
}

// WeatherOrDefault returns the named weather or clear weather.
func WeatherOrDefault(key string) Weather {
	if w, ok := weather[key]; ok {
		return w
	}
	return weather[DefaultWeather]
}

// ScenarioKeys returns every scenario key in canonical order.
func ScenarioKeys() []string { return append([]string(nil), scenarioOrder...) }

// LookupScenario returns the named scenario.
func LookupScenario(key string) (Scenario, bool) {
	s, ok := scenarios[key]
	return s, ok
}

// ScenarioOrDefault returns the named scenario or the open-field scenario.
func ScenarioOrDefault(key string) Scenario {
	if s, ok := scenarios[key]; ok {
		return s
	}
	return scenarios[DefaultScenario]
}

// CommanderKeys returns every commander trait key in canonical order.
func CommanderKeys() []string { return append([]string(nil), commanderOrder...) }

// LookupCommander returns the named trait.
func LookupCommander(key string) (CommanderTrait, bool) {
	c, ok := commanders[key]
	return c, ok
}

// Commander returns the named trait; an unknown trait carries no bonuses but
// keeps its name so rationale text still names it.
func Commander(key string) CommanderTrait {
	if c, ok := commanders[key]; ok {
		return c
	}
	return CommanderTrait{Key: key}
}
