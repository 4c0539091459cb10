package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/lbsim/internal/model"
)

// ScenarioFile is the YAML form of a model.Scenario. Enums are written by
// name ("fire", "normal-single", "A4", "lb4", "dmg-up-4+") and buffs by gauge
// level.
type ScenarioFile struct {
	Stats          StatsFile          `yaml:"stats"`
	Buffs          BuffsFile          `yaml:"buffs"`
	Attack         AttackFile         `yaml:"attack"`
	Support        []SupportFile      `yaml:"support"`
	Legendary      map[string]float64 `yaml:"legendary"`
	ProbabilityAmp ProbabilityAmpFile `yaml:"probability_amp"`
	Costume        CostumeFile        `yaml:"costume"`
	Corrections    CorrectionsFile    `yaml:"corrections"`
}

type StatsFile struct {
	Attack    int64 `yaml:"attack"`
	SpAttack  int64 `yaml:"sp_attack"`
	Defense   int64 `yaml:"defense"`
	SpDefense int64 `yaml:"sp_defense"`
	TargetHP  int64 `yaml:"target_hp"`
}

// BuffsFile holds gauge levels (-20..20) and flat attribute buffs.
type BuffsFile struct {
	AttackLevel      model.BuffLevel `yaml:"attack_level"`
	DefenseLevel     model.BuffLevel `yaml:"defense_level"`
	AttributeAttack  int64           `yaml:"attribute_attack"`
	AttributeDefense int64           `yaml:"attribute_defense"`
}

type AttackFile struct {
	Category     string `yaml:"category"`
	Subtype      string `yaml:"subtype"`
	Breakthrough string `yaml:"breakthrough"`
	Element      string `yaml:"element"`
}

type SupportFile struct {
	Skill        string `yaml:"skill"`
	Breakthrough string `yaml:"breakthrough"`
	Element      string `yaml:"element"`
}

type ProbabilityAmpFile struct {
	Element string  `yaml:"element"`
	Boost   float64 `yaml:"boost"`
}

type CostumeFile struct {
	Role              string  `yaml:"role"`
	RoleMultiplier    float64 `yaml:"role_multiplier"`
	Element           string  `yaml:"element"`
	ElementMultiplier float64 `yaml:"element_multiplier"`
}

// CorrectionsFile holds the remaining corrections. Charm and Theme apply to
// every element at the base rate unless overridden per element.
type CorrectionsFile struct {
	Charm         float64            `yaml:"charm"`
	CharmElements map[string]float64 `yaml:"charm_elements,omitempty"`
	Order         float64            `yaml:"order"`
	Counter       float64            `yaml:"counter"`
	Theme         float64            `yaml:"theme"`
	ThemeElements map[string]float64 `yaml:"theme_elements,omitempty"`
	Grace         bool               `yaml:"grace"`
	Neunwelt      bool               `yaml:"neunwelt"`
	Meteor        bool               `yaml:"meteor"`
	Barrier       bool               `yaml:"barrier"`
	Critical      bool               `yaml:"critical"`
	Opponent      OpponentFile       `yaml:"opponent"`
}

type OpponentFile struct {
	Element       string  `yaml:"element"`
	ReductionRate float64 `yaml:"reduction_rate"`
}

// DefaultScenarioFile returns the values of a fresh simulator form: equal
// level stats, no buffs, an A4 attack at 4凸 and an empty support deck.
func DefaultScenarioFile() ScenarioFile {
	return ScenarioFile{
		Stats: StatsFile{
			Attack:    500000,
			SpAttack:  500000,
			Defense:   300000,
			SpDefense: 300000,
			TargetHP:  1500000,
		},
		Attack: AttackFile{
			Category:     model.CategoryNormalSingle.String(),
			Subtype:      model.SubtypeA4.String(),
			Breakthrough: model.Breakthrough4.String(),
			Element:      model.ElementFire.String(),
		},
		ProbabilityAmp: ProbabilityAmpFile{Element: model.ElementNone.String()},
		Costume: CostumeFile{
			Role:              model.CategoryNormalSingle.String(),
			RoleMultiplier:    1.15,
			Element:           model.ElementNone.String(),
			ElementMultiplier: 1.0,
		},
		Corrections: CorrectionsFile{
			Charm:    1.1,
			Order:    1.0,
			Counter:  1.0,
			Theme:    1.0,
			Opponent: OpponentFile{Element: model.ElementNone.String()},
		},
	}
}

// LoadScenario loads a scenario file on top of DefaultScenarioFile.
// An empty path returns the defaults. Unknown keys are rejected.
func LoadScenario(path string) (ScenarioFile, error) {
	sf := DefaultScenarioFile()
	if path == "" {
		return sf, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return sf, fmt.Errorf("reading scenario %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sf); err != nil && !errors.Is(err, io.EOF) {
		return sf, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	return sf, nil
}

// ToScenario resolves names and levels into a validated model.Scenario.
// percentPerLevel converts gauge levels into percentages.
func (sf ScenarioFile) ToScenario(percentPerLevel int) (model.Scenario, error) {
	var (
		sc   model.Scenario
		errs []error
	)
	keep := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	sc.Stats = model.CombatantStats{
		Attack:    sf.Stats.Attack,
		SpAttack:  sf.Stats.SpAttack,
		Defense:   sf.Stats.Defense,
		SpDefense: sf.Stats.SpDefense,
		TargetHP:  sf.Stats.TargetHP,
	}

	sc.Buffs = model.FromLevels(sf.Buffs.AttackLevel, sf.Buffs.DefenseLevel, percentPerLevel)
	sc.Buffs.AttributeAttack = sf.Buffs.AttributeAttack
	sc.Buffs.AttributeDefense = sf.Buffs.AttributeDefense

	var err error
	sc.Attack.Category, err = model.ParseCategory(sf.Attack.Category)
	keep(wrapField("attack.category", err))
	sc.Attack.Subtype, err = model.ParseSubtype(sf.Attack.Subtype)
	keep(wrapField("attack.subtype", err))
	sc.Attack.Breakthrough, err = model.ParseBreakthrough(sf.Attack.Breakthrough)
	keep(wrapField("attack.breakthrough", err))
	sc.Attack.Element, err = model.ParseElement(sf.Attack.Element)
	keep(wrapField("attack.element", err))

	if len(sf.Support) > model.SupportSlots {
		keep(fmt.Errorf("support: %d slots, at most %d allowed", len(sf.Support), model.SupportSlots))
	}
	for i := range sc.Support {
		sc.Support[i].Breakthrough = model.Breakthrough4
	}
	for i, slot := range sf.Support[:min(len(sf.Support), model.SupportSlots)] {
		field := fmt.Sprintf("support[%d]", i)
		s := &sc.Support[i]
		s.Skill, err = model.ParseSupportSkill(slot.Skill)
		keep(wrapField(field+".skill", err))
		if slot.Breakthrough != "" {
			s.Breakthrough, err = model.ParseBreakthrough(slot.Breakthrough)
			keep(wrapField(field+".breakthrough", err))
		}
		s.Element, err = optionalElement(slot.Element)
		keep(wrapField(field+".element", err))
	}

	sc.Legendary, err = elementRates(0, sf.Legendary)
	keep(wrapField("legendary", err))

	sc.ProbabilityAmp.Element, err = optionalElement(sf.ProbabilityAmp.Element)
	keep(wrapField("probability_amp.element", err))
	sc.ProbabilityAmp.Boost = sf.ProbabilityAmp.Boost

	sc.Costume.Role, err = model.ParseCategory(sf.Costume.Role)
	keep(wrapField("costume.role", err))
	sc.Costume.Element, err = optionalElement(sf.Costume.Element)
	keep(wrapField("costume.element", err))
	sc.Costume.RoleMultiplier = sf.Costume.RoleMultiplier
	sc.Costume.ElementMultiplier = sf.Costume.ElementMultiplier

	c := sf.Corrections
	sc.Corrections = model.Corrections{
		Order:    c.Order,
		Counter:  c.Counter,
		Grace:    c.Grace,
		Neunwelt: c.Neunwelt,
		Meteor:   c.Meteor,
		Barrier:  c.Barrier,
		Critical: c.Critical,
	}
	sc.Corrections.Charm, err = elementRates(c.Charm, c.CharmElements)
	keep(wrapField("corrections.charm_elements", err))
	sc.Corrections.Theme, err = elementRates(c.Theme, c.ThemeElements)
	keep(wrapField("corrections.theme_elements", err))
	sc.Corrections.Opponent.Element, err = optionalElement(c.Opponent.Element)
	keep(wrapField("corrections.opponent.element", err))
	sc.Corrections.Opponent.ReductionRate = c.Opponent.ReductionRate

	if len(errs) > 0 {
		return model.Scenario{}, errors.Join(errs...)
	}
	if err := sc.Validate(); err != nil {
		return model.Scenario{}, err
	}
	return sc, nil
}

// FromScenario writes sc back in file form with canonical names.
func FromScenario(sc model.Scenario, percentPerLevel int) ScenarioFile {
	level := func(pct int) model.BuffLevel {
		if percentPerLevel <= 0 {
			return 0
		}
		return model.BuffLevel(pct / percentPerLevel)
	}

	sf := ScenarioFile{
		Stats: StatsFile{
			Attack:    sc.Stats.Attack,
			SpAttack:  sc.Stats.SpAttack,
			Defense:   sc.Stats.Defense,
			SpDefense: sc.Stats.SpDefense,
			TargetHP:  sc.Stats.TargetHP,
		},
		Buffs: BuffsFile{
			AttackLevel:      level(sc.Buffs.AttackPercent),
			DefenseLevel:     level(sc.Buffs.DefensePercent),
			AttributeAttack:  sc.Buffs.AttributeAttack,
			AttributeDefense: sc.Buffs.AttributeDefense,
		},
		Attack: AttackFile{
			Category:     sc.Attack.Category.String(),
			Subtype:      sc.Attack.Subtype.String(),
			Breakthrough: sc.Attack.Breakthrough.String(),
			Element:      sc.Attack.Element.String(),
		},
		Support:   make([]SupportFile, 0, model.SupportSlots),
		Legendary: rateMap(sc.Legendary),
		ProbabilityAmp: ProbabilityAmpFile{
			Element: sc.ProbabilityAmp.Element.String(),
			Boost:   sc.ProbabilityAmp.Boost,
		},
		Costume: CostumeFile{
			Role:              sc.Costume.Role.String(),
			RoleMultiplier:    sc.Costume.RoleMultiplier,
			Element:           sc.Costume.Element.String(),
			ElementMultiplier: sc.Costume.ElementMultiplier,
		},
		Corrections: CorrectionsFile{
			CharmElements: rateMap(sc.Corrections.Charm),
			Order:         sc.Corrections.Order,
			Counter:       sc.Corrections.Counter,
			ThemeElements: rateMap(sc.Corrections.Theme),
			Grace:         sc.Corrections.Grace,
			Neunwelt:      sc.Corrections.Neunwelt,
			Meteor:        sc.Corrections.Meteor,
			Barrier:       sc.Corrections.Barrier,
			Critical:      sc.Corrections.Critical,
			Opponent: OpponentFile{
				Element:       sc.Corrections.Opponent.Element.String(),
				ReductionRate: sc.Corrections.Opponent.ReductionRate,
			},
		},
	}
	for _, s := range sc.Support {
		sf.Support = append(sf.Support, SupportFile{
			Skill:        s.Skill.String(),
			Breakthrough: s.Breakthrough.String(),
			Element:      s.Element.String(),
		})
	}
	return sf
}

func wrapField(field string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", field, err)
}

func optionalElement(name string) (model.Element, error) {
	if name == "" {
		return model.ElementNone, nil
	}
	return model.ParseElement(name)
}

// elementRates starts every element at base and applies per-element overrides.
func elementRates(base float64, overrides map[string]float64) (model.ElementRates, error) {
	rates := model.UniformRates(base)
	var errs []error
	for name, v := range overrides {
		e, err := model.ParseElement(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if e == model.ElementNone {
			errs = append(errs, fmt.Errorf("%w: element %q has no rate", model.ErrUnknownName, name))
			continue
		}
		rates = rates.With(e, v)
	}
	return rates, errors.Join(errs...)
}

func rateMap(r model.ElementRates) map[string]float64 {
	m := make(map[string]float64, model.ElementCount)
	for _, e := range model.Elements {
		m[e.String()] = r.Get(e)
	}
	return m
}
