package types

import "strings"

// Sport categories drive which profile fields apply:
// board (Skateboard, Surf, Snowboard, Skiing) = stance/snow style,
// bike (BMX, MTB) = foot forward, motor_other (Moto) = discipline.
const (
	CategoryBoard      = "board"
	CategoryBike       = "bike"
	CategoryMotorOther = "motor_other"
)

const DefaultSport = "Skateboard"

type SportOption struct {
	Category string `json:"category"`
	Name     string `json:"name"`
}

var SportOptions = []SportOption{
	{Category: CategoryBoard, Name: "Skateboard"},
	{Category: CategoryBoard, Name: "Surf"},
	{Category: CategoryBoard, Name: "Snowboard"},
	{Category: CategoryBoard, Name: "Skiing"},
	{Category: CategoryBike, Name: "BMX"},
	{Category: CategoryBike, Name: "MTB"},
	{Category: CategoryMotorOther, Name: "Moto"},
}

type StyleOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// SpotStyleOptionsBySport maps a sport to the riding styles a spot may be
// tagged with. The first entry is the fallback when an unknown style comes in.
var SpotStyleOptionsBySport = map[string][]StyleOption{
	"Skateboard": {
		{Value: "street", Label: "Street"},
		{Value: "vert", Label: "Vert"},
		{Value: "park", Label: "Park"},
		{Value: "freestyle", Label: "Freestyle"},
		{Value: "downhill", Label: "Downhill"},
	},
	"Snowboard": {
		{Value: "park_pipe", Label: "Park/Pipe"},
		{Value: "big_mountain", Label: "Big Mountain"},
		{Value: "backcountry", Label: "Backcountry"},
	},
	"Skiing": {
		{Value: "park_pipe", Label: "Park/Pipe"},
		{Value: "big_mountain", Label: "Big Mountain"},
		{Value: "backcountry", Label: "Backcountry"},
	},
	"Surf": {
		{Value: "beach", Label: "Beach"},
		{Value: "point", Label: "Point"},
		{Value: "reef", Label: "Reef"},
		{Value: "park", Label: "Park"},
		{Value: "street", Label: "Street"},
	},
	"BMX": {
		{Value: "park", Label: "Park"},
		{Value: "street", Label: "Street"},
		{Value: "dirt", Label: "Dirt"},
		{Value: "flatland", Label: "Flatland"},
		{Value: "diy", Label: "DIY"},
	},
	"MTB": {
		{Value: "park", Label: "Park"},
		{Value: "trail", Label: "Trail"},
		{Value: "downhill", Label: "Downhill"},
		{Value: "enduro", Label: "Enduro"},
		{Value: "dirt", Label: "Dirt"},
	},
	"Moto": {
		{Value: "freestyle", Label: "Freestyle"},
		{Value: "racing", Label: "Racing"},
		{Value: "enduro", Label: "Enduro"},
	},
}

// IsValidSport reports whether name is one of the fixed sport options.
func IsValidSport(name string) bool {
	for _, o := range SportOptions {
		if o.Name == name {
			return true
		}
	}
	return false
}

// SportCategory returns the category for a sport name, or "" when unknown.
func SportCategory(name string) string {
	for _, o := range SportOptions {
		if o.Name == name {
			return o.Category
		}
	}
	return ""
}

// NormalizeSport maps unknown sports to the default rather than rejecting.
func NormalizeSport(sport string) string {
	if IsValidSport(sport) {
		return sport
	}
	return DefaultSport
}

// NormalizeSpotType maps an unknown style to the sport's first valid option.
// Assumes sport has already been normalized.
func NormalizeSpotType(sport, spotType string) string {
	options := SpotStyleOptionsBySport[sport]
	if len(options) == 0 {
		options = SpotStyleOptionsBySport[DefaultSport]
	}
	for _, o := range options {
		if o.Value == spotType {
			return spotType
		}
	}
	return options[0].Value
}

// SpotTypeLabel resolves a style value to its display label, falling back to
// a title-cased version of the raw value for legacy rows.
func SpotTypeLabel(sport, value string) string {
	for _, o := range SpotStyleOptionsBySport[sport] {
		if o.Value == value {
			return o.Label
		}
	}
	if value == "" {
		return value
	}
	label := strings.ReplaceAll(value, "_", " ")
	return strings.ToUpper(label[:1]) + label[1:]
}

// Profile field applicability, by sport name.

func SportUsesStance(name string) bool {
	return name == "Skateboard" || name == "Surf" || name == "Snowboard"
}

func SportUsesSnowStyle(name string) bool {
	return name == "Skiing" || name == "Snowboard"
}

func SportUsesSkateStyle(name string) bool {
	return name == "Skateboard"
}

func SportUsesFootForward(name string) bool {
	return name == "BMX" || name == "MTB"
}

func SportUsesDiscipline(name string) bool {
	return name == "Moto"
}

var StanceValues = []string{"regular", "goofy"}

var SnowStyleValues = []string{"park_pipe", "big_mountain", "backcountry"}

var SkateStyleValues = []string{"street", "vert", "park", "freestyle", "downhill"}

var FootForwardValues = []string{"left", "right"}

var DisciplineValues = []string{"freestyle", "racing", "enduro"}

var ScoutingStatusValues = []string{"actively_scouting", "monitoring", "roster_full"}

var CreativeSpecialtyValues = []string{"Video", "Photo", "Drone"}

var CreativeEquipmentOptions = []string{
	"Cinema Camera", "DSLR/Mirrorless", "Drone", "Gimbal", "VX1000", "Lighting Kit",
}

// ContainsValue reports whether value is present in the allowed set.
func ContainsValue(allowed []string, value string) bool {
	for _, v := range allowed {
		if v == value {
			return true
		}
	}
	return false
}
