package slides

import (
	"fmt"
	"strings"

	"github.com/qaport/qaport/internal/catalog"
)

func overviewIntro(_ *Generator, title string, mod *catalog.Module) string {
	return fmt.Sprintf(`# %s: %s

## Module Overview
%s

## Target Audience
- **Difficulty Level**: %s
- **Hands-on Component**: %s
- **Prerequisites**: basic understanding of QA processes

## Module Structure
- **Duration**: 2-4 hours (flexible pacing)
- **Format**: interactive presentations plus practical exercises
- **Assessment**: hands-on projects and knowledge checks
- **Certification**: module completion certificate`,
		title, mod.Title, mod.Description, mod.Difficulty.Title(), mod.HandsOnMarker())
}

func overviewObjectives(_ *Generator, title string, mod *catalog.Module) string {
	return fmt.Sprintf(`# %s

By the end of **%s** you will be able to:

## Understand
- Core concepts and terminology
- Real-world applications in QA
- Benefits, limitations, and common pitfalls

## Apply
- Practical implementation techniques
- Integration with existing workflows
- Troubleshooting and optimization

## Create
- Custom solutions for your QA needs
- Automated testing enhancements
- Documentation and knowledge sharing

## Evaluate
- Effectiveness of AI solutions
- Quality metrics and KPIs
- Risk assessment and mitigation`, title, mod.Title)
}

func overviewTopics(_ *Generator, title string, mod *catalog.Module) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n## Deep Dive Topics\n", title)
	for _, topic := range mod.Topics {
		fmt.Fprintf(&b, "- **%s**\n", topic)
	}
	b.WriteString(`
## Focus Areas
- **Theoretical foundation**: understanding core concepts
- **Practical application**: real-world implementation
- **Industry standards**: best practices and compliance
- **Future trends**: emerging technologies and approaches

Each topic includes practical examples and real-world case studies.`)
	return b.String()
}

func overviewActivities(_ *Generator, title string, mod *catalog.Module) string {
	var b strings.Builder
	fmt.Fprintf(&b, `# %s

## Interactive Exercises
- **Live coding sessions** - build AI tools together
- **Problem-solving challenges** - real QA scenarios
- **Tool exploration** - hands-on with current AI platforms

## Practical Projects
1. **Mini-project**: quick implementation (30 minutes)
2. **Main project**: comprehensive solution (90 minutes)
3. **Extension challenge**: advanced features (optional)
`, title)
	if !mod.HandsOn {
		b.WriteString(`
## Note
This module has no graded hands-on component; the exercises above are
optional practice and the module completes through the assessment alone.`)
	} else {
		b.WriteString(`
## Completion
The main project is required for module completion and feeds your
hands-on project portfolio.`)
	}
	return b.String()
}

// overviewAssessment is the one slide where static catalog data and
// per-request module context combine: the three displayed weights come
// straight from the criteria table for the module's difficulty.
func overviewAssessment(g *Generator, title string, mod *catalog.Module) string {
	crit := g.catalog.Criteria(mod.Difficulty)
	return fmt.Sprintf(`# %s

## Evaluation Framework
Based on difficulty level: **%s**

## Assessment Components
- **Understanding** (%d%%): conceptual grasp
- **Application** (%d%%): practical implementation
- **Problem Solving** (%d%%): critical thinking

## Success Indicators
- Completion of hands-on projects
- Demonstration of key concepts
- Ability to adapt solutions
- Quality of implementation

A weighted total of 70%% or above completes the module.`,
		title, mod.Difficulty.Title(),
		crit.Understanding, crit.Application, crit.ProblemSolving)
}
