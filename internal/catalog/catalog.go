package catalog

import (
	"fmt"
	"slices"
	"sort"
)

// Catalog holds the static module, template, and assessment-criteria tables.
// It is constructed once at startup from configuration and read-only after.
type Catalog struct {
	modules   []Module
	byID      map[string]*Module
	templates map[TemplateKind]Template
	criteria  map[Difficulty]AssessmentCriteria
}

// build constructs a Catalog from decoded configuration, running the
// semantic checks the JSON Schema cannot express.
func build(cfg configDoc) (*Catalog, error) {
	c := &Catalog{
		byID:      make(map[string]*Module, len(cfg.Modules)),
		templates: make(map[TemplateKind]Template, len(cfg.Templates)),
		criteria:  make(map[Difficulty]AssessmentCriteria, len(cfg.Criteria)),
	}

	// Modules, sorted by ID for a deterministic display order.
	ids := make([]string, 0, len(cfg.Modules))
	for id := range cfg.Modules {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		mc := cfg.Modules[id]
		m := Module{
			ID:          id,
			Title:       mc.Title,
			Description: mc.Description,
			Topics:      slices.Clone(mc.Topics),
			HandsOn:     mc.HandsOn,
			Difficulty:  Difficulty(mc.Difficulty),
		}
		if !m.Difficulty.Valid() {
			return nil, &ErrInvalidConfig{Err: fmt.Errorf("module %q: unknown difficulty %q", id, mc.Difficulty)}
		}
		if len(m.Topics) == 0 {
			return nil, &ErrInvalidConfig{Err: fmt.Errorf("module %q: topics must be non-empty", id)}
		}
		c.modules = append(c.modules, m)
	}
	for i := range c.modules {
		c.byID[c.modules[i].ID] = &c.modules[i]
	}

	// Templates.
	for kind, tc := range cfg.Templates {
		k := TemplateKind(kind)
		if !k.Valid() {
			return nil, &ErrInvalidConfig{Err: fmt.Errorf("unknown presentation template %q", kind)}
		}
		if len(tc.Slides) == 0 {
			return nil, &ErrInvalidConfig{Err: fmt.Errorf("template %q: slides must be non-empty", kind)}
		}
		c.templates[k] = Template{Kind: k, Slides: slices.Clone(tc.Slides)}
	}

	// Assessment criteria: every difficulty present, every row sums to 100.
	for _, d := range AllDifficulties() {
		cc, ok := cfg.Criteria[string(d)]
		if !ok {
			return nil, &ErrInvalidConfig{Err: fmt.Errorf("assessment criteria missing for %q", d)}
		}
		ac := AssessmentCriteria{
			Understanding:  cc.Understanding,
			Application:    cc.Application,
			ProblemSolving: cc.ProblemSolving,
		}
		if ac.Sum() != 100 {
			return nil, &ErrInvalidConfig{Err: fmt.Errorf("assessment criteria for %q sum to %d, want 100", d, ac.Sum())}
		}
		c.criteria[d] = ac
	}

	return c, nil
}

// Module returns the module with the given ID.
func (c *Catalog) Module(id string) (Module, error) {
	m, ok := c.byID[id]
	if !ok {
		return Module{}, &ErrModuleNotFound{ID: id}
	}
	return *m, nil
}

// Modules returns all modules in display order.
func (c *Catalog) Modules() []Module {
	return slices.Clone(c.modules)
}

// ModuleCount returns the number of modules in the catalog.
func (c *Catalog) ModuleCount() int {
	return len(c.modules)
}

// Criteria returns the assessment criteria for a difficulty level.
// It is total over the closed enum; build guarantees all three rows exist.
// An unknown value falls back to the intermediate row rather than a zero
// struct so a corrupt caller still renders weights that sum to 100.
func (c *Catalog) Criteria(d Difficulty) AssessmentCriteria {
	if ac, ok := c.criteria[d]; ok {
		return ac
	}
	return c.criteria[DifficultyIntermediate]
}

// Template returns the slide template for a presentation kind.
func (c *Catalog) Template(kind TemplateKind) (Template, bool) {
	t, ok := c.templates[kind]
	return t, ok
}
