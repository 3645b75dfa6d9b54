// Package slides turns (template, slide index, optional module) triples into
// markdown slide bodies. Generation is pure: identical inputs always produce
// byte-identical output, so callers are free to cache.
package slides

import (
	"github.com/qaport/qaport/internal/catalog"
)

// Generator renders presentation slides from catalog data.
type Generator struct {
	catalog *catalog.Catalog
}

// New creates a Generator backed by the given catalog.
func New(c *catalog.Catalog) *Generator {
	return &Generator{catalog: c}
}

// builder produces the body for one slide position. The title is the
// configured slide name; mod is nil for module-free templates.
type builder func(g *Generator, title string, mod *catalog.Module) string

// builders maps each template kind to its ordered slide constructors.
// A slide position present in configuration but absent here is rejected
// rather than rendered empty.
var builders = map[catalog.TemplateKind][]builder{
	catalog.KindIntroduction:   {introWelcome, introJourney, introTools, introOutcomes},
	catalog.KindModuleOverview: {overviewIntro, overviewObjectives, overviewTopics, overviewActivities, overviewAssessment},
	catalog.KindHandsOnSession: {handsOnSetup, handsOnSteps, handsOnChallenges, handsOnPractices, handsOnNext},
	catalog.KindConclusion:     {conclusionTakeaways, conclusionResources, conclusionCommunity, conclusionCertification},
}

// Generate renders the slide at index for the given template kind.
// Module context is required for module_overview and hands_on_session and
// ignored otherwise.
func (g *Generator) Generate(kind catalog.TemplateKind, index int, mod *catalog.Module) (string, error) {
	if !kind.Valid() {
		return "", &ErrUnknownTemplate{Kind: kind}
	}
	tpl, ok := g.catalog.Template(kind)
	if !ok {
		return "", &ErrUnknownTemplate{Kind: kind}
	}
	if index < 0 || index >= len(tpl.Slides) {
		return "", &ErrSlideOutOfRange{Kind: kind, Index: index, Count: len(tpl.Slides)}
	}
	if kind.RequiresModule() && mod == nil {
		return "", &ErrMissingModuleContext{Kind: kind}
	}

	kindBuilders := builders[kind]
	if index >= len(kindBuilders) {
		// Configured slide with no mapped constructor.
		return "", &ErrSlideOutOfRange{Kind: kind, Index: index, Count: len(kindBuilders)}
	}

	return kindBuilders[index](g, tpl.Slides[index], mod), nil
}
