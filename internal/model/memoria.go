package model

// Category is the role of an attack memoria. It selects the stat pair used by
// the damage formula and the target range.
type Category int32

const (
	CategoryNormalSingle Category = iota
	CategoryNormalArea
	CategorySpecialSingle
	CategorySpecialArea
)

// Categories lists every category in display order.
var Categories = []Category{CategoryNormalSingle, CategoryNormalArea, CategorySpecialSingle, CategorySpecialArea}

func (c Category) String() string {
	switch c {
	case CategoryNormalSingle:
		return "normal-single"
	case CategoryNormalArea:
		return "normal-area"
	case CategorySpecialSingle:
		return "special-single"
	case CategorySpecialArea:
		return "special-area"
	default:
		return "unknown"
	}
}

// Label returns the in-game name.
func (c Category) Label() string {
	switch c {
	case CategoryNormalSingle:
		return "通常単体"
	case CategoryNormalArea:
		return "通常範囲"
	case CategorySpecialSingle:
		return "特殊単体"
	case CategorySpecialArea:
		return "特殊範囲"
	default:
		return "?"
	}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	return c >= CategoryNormalSingle && c <= CategorySpecialArea
}

// IsSpecial reports whether the category uses Sp.ATK / Sp.DEF.
func (c Category) IsSpecial() bool {
	return c == CategorySpecialSingle || c == CategorySpecialArea
}

// IsArea reports whether the category hits an area.
func (c Category) IsArea() bool {
	return c == CategoryNormalArea || c == CategorySpecialArea
}

// Subtypes returns the skill-effect tiers allowed for the category.
func (c Category) Subtypes() []Subtype {
	switch c {
	case CategoryNormalSingle, CategorySpecialSingle:
		return []Subtype{SubtypeA4, SubtypeA5, SubtypeA6}
	case CategoryNormalArea:
		return []Subtype{SubtypeB3, SubtypeB4, SubtypeB5}
	case CategorySpecialArea:
		return []Subtype{SubtypeD3, SubtypeD4}
	default:
		return nil
	}
}

// Allows reports whether s is a valid subtype for c.
func (c Category) Allows(s Subtype) bool {
	for _, allowed := range c.Subtypes() {
		if allowed == s {
			return true
		}
	}
	return false
}

// Subtype is the skill-effect tier of an attack memoria.
type Subtype int32

const (
	SubtypeA4 Subtype = iota
	SubtypeA5
	SubtypeA6
	SubtypeB3
	SubtypeB4
	SubtypeB5
	SubtypeD3
	SubtypeD4
)

// Subtypes lists every subtype.
var Subtypes = []Subtype{SubtypeA4, SubtypeA5, SubtypeA6, SubtypeB3, SubtypeB4, SubtypeB5, SubtypeD3, SubtypeD4}

// String returns the ASCII key used in config files and lookup tables.
func (s Subtype) String() string {
	switch s {
	case SubtypeA4:
		return "A4"
	case SubtypeA5:
		return "A5"
	case SubtypeA6:
		return "A6"
	case SubtypeB3:
		return "B3"
	case SubtypeB4:
		return "B4"
	case SubtypeB5:
		return "B5"
	case SubtypeD3:
		return "D3"
	case SubtypeD4:
		return "D4"
	default:
		return "unknown"
	}
}

// Label returns the in-game name.
func (s Subtype) Label() string {
	switch s {
	case SubtypeA4:
		return "AⅣ"
	case SubtypeA5:
		return "AⅤ"
	case SubtypeA6:
		return "AⅥ"
	case SubtypeB3:
		return "BⅢ"
	case SubtypeB4:
		return "BⅣ"
	case SubtypeB5:
		return "BⅤ"
	case SubtypeD3:
		return "DⅢ"
	case SubtypeD4:
		return "DⅣ"
	default:
		return "?"
	}
}

// Breakthrough is the five-level enhancement rank of a memoria.
type Breakthrough int32

const (
	Breakthrough0 Breakthrough = iota
	Breakthrough1
	Breakthrough2
	Breakthrough3
	Breakthrough4
)

// Breakthroughs lists every tier from lowest to highest.
var Breakthroughs = []Breakthrough{Breakthrough0, Breakthrough1, Breakthrough2, Breakthrough3, Breakthrough4}

func (b Breakthrough) String() string {
	switch b {
	case Breakthrough0:
		return "lb0"
	case Breakthrough1:
		return "lb1"
	case Breakthrough2:
		return "lb2"
	case Breakthrough3:
		return "lb3"
	case Breakthrough4:
		return "lb4"
	default:
		return "unknown"
	}
}

// Label returns the in-game name.
func (b Breakthrough) Label() string {
	switch b {
	case Breakthrough0:
		return "0凸"
	case Breakthrough1:
		return "1凸"
	case Breakthrough2:
		return "2凸"
	case Breakthrough3:
		return "3凸"
	case Breakthrough4:
		return "4凸"
	default:
		return "?"
	}
}

// SupportSkill is the auxiliary skill carried by a support memoria.
type SupportSkill int32

const (
	SupportNone SupportSkill = iota
	DamageUp1
	DamageUp2
	DamageUp3
	DamageUp4
	DamageUp5
	DamageUp4Plus
	DamageUp5Plus
	DamageUp5PlusPlus
)

// SupportSkills lists every support skill including SupportNone.
var SupportSkills = []SupportSkill{
	SupportNone, DamageUp1, DamageUp2, DamageUp3, DamageUp4, DamageUp5,
	DamageUp4Plus, DamageUp5Plus, DamageUp5PlusPlus,
}

func (s SupportSkill) String() string {
	switch s {
	case SupportNone:
		return "none"
	case DamageUp1:
		return "dmg-up-1"
	case DamageUp2:
		return "dmg-up-2"
	case DamageUp3:
		return "dmg-up-3"
	case DamageUp4:
		return "dmg-up-4"
	case DamageUp5:
		return "dmg-up-5"
	case DamageUp4Plus:
		return "dmg-up-4+"
	case DamageUp5Plus:
		return "dmg-up-5+"
	case DamageUp5PlusPlus:
		return "dmg-up-5++"
	default:
		return "unknown"
	}
}

// Label returns the in-game name.
func (s SupportSkill) Label() string {
	switch s {
	case SupportNone:
		return "なし"
	case DamageUp1:
		return "ダメージUPⅠ"
	case DamageUp2:
		return "ダメージUPⅡ"
	case DamageUp3:
		return "ダメージUPⅢ"
	case DamageUp4:
		return "ダメージUPⅣ"
	case DamageUp5:
		return "ダメージUPⅤ"
	case DamageUp4Plus:
		return "ダメージUPⅣ+"
	case DamageUp5Plus:
		return "ダメージUPⅤ+"
	case DamageUp5PlusPlus:
		return "ダメージUPⅤ++"
	default:
		return "?"
	}
}
