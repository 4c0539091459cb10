package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ErrUnknownName is returned when a name matches no enum value.
var ErrUnknownName = errors.New("unknown name")

// ParseElement accepts the config key ("fire") or the in-game label ("火").
func ParseElement(name string) (Element, error) {
	all := append([]Element{ElementNone}, Elements[:]...)
	return parseName("element", name, all, func(e Element) []string {
		return []string{e.String(), e.Label()}
	})
}

// ParseCategory accepts "normal-single" or "通常単体".
func ParseCategory(name string) (Category, error) {
	return parseName("category", name, Categories, func(c Category) []string {
		return []string{c.String(), c.Label()}
	})
}

// ParseSubtype accepts "A4" or "AⅣ".
func ParseSubtype(name string) (Subtype, error) {
	return parseName("subtype", name, Subtypes, func(s Subtype) []string {
		return []string{s.String(), s.Label()}
	})
}

// ParseBreakthrough accepts "lb4", "4" or "4凸".
func ParseBreakthrough(name string) (Breakthrough, error) {
	return parseName("breakthrough", name, Breakthroughs, func(b Breakthrough) []string {
		return []string{b.String(), strings.TrimPrefix(b.String(), "lb"), b.Label()}
	})
}

// ParseSupportSkill accepts "dmg-up-4+" or "ダメージUPⅣ+". An empty name is
// SupportNone.
func ParseSupportSkill(name string) (SupportSkill, error) {
	if strings.TrimSpace(name) == "" {
		return SupportNone, nil
	}
	return parseName("support skill", name, SupportSkills, func(s SupportSkill) []string {
		return []string{s.String(), s.Label()}
	})
}

func parseName[T any](kind, name string, values []T, names func(T) []string) (T, error) {
	token := strings.ToLower(strings.TrimSpace(name))
	for _, v := range values {
		for _, n := range names(v) {
			if token == strings.ToLower(n) {
				return v, nil
			}
		}
	}

	var zero T
	if hint, ok := closestName(token, values, names); ok {
		return zero, fmt.Errorf("%w: %s %q (did you mean %q?)", ErrUnknownName, kind, name, hint)
	}
	return zero, fmt.Errorf("%w: %s %q", ErrUnknownName, kind, name)
}

// closestName returns the candidate with the smallest edit distance, as long
// as the distance is within a third of the candidate length.
func closestName[T any](token string, values []T, names func(T) []string) (string, bool) {
	best, bestDist := "", -1
	for _, v := range values {
		for _, n := range names(v) {
			cand := strings.ToLower(n)
			dist := levenshtein.ComputeDistance(token, cand)
			if dist > suggestLimit(cand) {
				continue
			}
			if bestDist < 0 || dist < bestDist {
				best, bestDist = n, dist
			}
		}
	}
	return best, bestDist >= 0
}

func suggestLimit(cand string) int {
	n := len([]rune(cand))
	if n <= 3 {
		return 1
	}
	return n / 3
}
