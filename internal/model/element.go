package model

// Element is the damage type of a memoria. ElementNone is only valid where an
// element is optional (costumes, probability amplification target).
type Element int32

const (
	ElementNone Element = iota
	ElementFire
	ElementWater
	ElementWind
	ElementLight
	ElementDark
)

// ElementCount is the number of real elements (ElementNone excluded).
const ElementCount = 5

// Elements lists the real elements in display order.
var Elements = [ElementCount]Element{ElementFire, ElementWater, ElementWind, ElementLight, ElementDark}

// String returns the config key of the element.
func (e Element) String() string {
	switch e {
	case ElementNone:
		return "none"
	case ElementFire:
		return "fire"
	case ElementWater:
		return "water"
	case ElementWind:
		return "wind"
	case ElementLight:
		return "light"
	case ElementDark:
		return "dark"
	default:
		return "unknown"
	}
}

// Label returns the in-game name.
func (e Element) Label() string {
	switch e {
	case ElementNone:
		return "なし"
	case ElementFire:
		return "火"
	case ElementWater:
		return "水"
	case ElementWind:
		return "風"
	case ElementLight:
		return "光"
	case ElementDark:
		return "闇"
	default:
		return "?"
	}
}

// Valid reports whether e is one of the five real elements.
func (e Element) Valid() bool {
	return e >= ElementFire && e <= ElementDark
}

// ElementRates holds one rate per real element. It is a value type so a
// Scenario holding it stays immutable when copied.
type ElementRates [ElementCount]float64

// UniformRates returns rates with v for every element.
func UniformRates(v float64) ElementRates {
	var r ElementRates
	for i := range r {
		r[i] = v
	}
	return r
}

// Get returns the rate of e, or 0 for ElementNone.
func (r ElementRates) Get(e Element) float64 {
	if !e.Valid() {
		return 0
	}
	return r[e-1]
}

// With returns a copy of r with the rate of e replaced.
func (r ElementRates) With(e Element, v float64) ElementRates {
	if e.Valid() {
		r[e-1] = v
	}
	return r
}
