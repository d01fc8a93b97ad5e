// Package thing defines item kinds, item instances and the filters storage
// buildings use to decide what they accept.
package thing

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Category is the broad class of a kind.
type Category string

// Known categories.
const (
	CategoryItem     Category = "Item"
	CategoryBuilding Category = "Building"
	CategoryPawn     Category = "Pawn"
	CategoryPlant    Category = "Plant"
)

// RottableProps describes how a kind spoils.
type RottableProps struct {
	// TicksToRotStart is the rot progress at which the item is spoiled.
	TicksToRotStart float64 `yaml:"ticks_to_rot_start"`
}

// Def is an item kind. All items of a Def are interchangeable and may merge
// into a single stack.
type Def struct {
	Name            string         `yaml:"name"`
	Label           string         `yaml:"label"`
	Category        Category       `yaml:"category"`
	StackLimit      int            `yaml:"stack_limit"`
	EverHaulable    bool           `yaml:"ever_haulable"`
	MadeFromStuff   bool           `yaml:"made_from_stuff"`
	HasQuality      bool           `yaml:"has_quality"`
	IsCorpse        bool           `yaml:"is_corpse"`
	CountAsResource bool           `yaml:"count_as_resource"`
	Rottable        *RottableProps `yaml:"rottable,omitempty"`
	SoundDrop       string         `yaml:"sound_drop"`
}

// IsRottable returns true if items of this kind spoil over time.
func (d *Def) IsRottable() bool {
	return d != nil && d.Rottable != nil
}

// LabelCap returns the label with its first letter capitalized.
func (d *Def) LabelCap() string {
	return CapitalizeFirst(d.Label)
}

func (d *Def) String() string {
	if d == nil {
		return "<nil>"
	}

	return d.Name
}

// CapitalizeFirst upper-cases the first rune of s.
func CapitalizeFirst(s string) string {
	if s == "" {
		return s
	}

	r, size := utf8.DecodeRuneInString(s)

	return string(unicode.ToUpper(r)) + s[size:]
}

func normalizeName(name string) string {
	return strings.TrimSpace(name)
}
