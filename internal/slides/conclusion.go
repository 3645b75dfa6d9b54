package slides

import (
	"fmt"

	"github.com/qaport/qaport/internal/catalog"
)

func conclusionTakeaways(_ *Generator, title string, _ *catalog.Module) string {
	return fmt.Sprintf(`# %s

## Skills Acquired
- **AI integration** in QA workflows
- **Prompt engineering** for testing scenarios
- **Tool development** using modern frameworks
- **Problem solving** with AI assistance

## Practical Outcomes
- Automated test generation tools
- AI-enhanced bug analysis systems
- Custom QA chatbots for team support

## Future Readiness
- Prepared for AI evolution in testing
- A foundation for continuous learning
- Connections with the AI-QA community

You're now equipped to lead AI transformation in QA!`, title)
}

func conclusionResources(_ *Generator, title string, _ *catalog.Module) string {
	return fmt.Sprintf(`# %s

## Essential Reading
- **"AI-Powered Testing"** - a practical foundation
- **Prompt engineering guides** - for QA-specific tasks
- **Quality assurance in the AI era** - industry perspectives

## Online Resources
- Official LLM API documentation and examples
- Open-source repositories with project templates
- Free notebook environments for experiments

## Staying Current
- Newsletters covering AI testing developments
- Conference talks on latest trends and techniques
- Tutorial series with step-by-step implementations`, title)
}

func conclusionCommunity(_ *Generator, title string, _ *catalog.Module) string {
	return fmt.Sprintf(`# %s

## Online Communities
- Professional AI-QA groups and forums
- Peer discussion boards for technical Q&A
- Real-time chat servers for quick help

## Professional Organizations
- **Association for Software Testing (AST)**
- **ISTQB** - certification and standards
- Local QA meetups for in-person networking

## Contributing Back
- Open-source contributions
- Knowledge sharing through posts and tutorials
- Mentoring newcomers to AI-enhanced QA`, title)
}

func conclusionCertification(_ *Generator, title string, _ *catalog.Module) string {
	return fmt.Sprintf(`# %s

## Foundation Level
- **AI-QA Fundamentals** - basic concepts and applications
- **Prompt Engineering for QA** - effective AI communication
- Duration: 4-6 weeks

## Practitioner Level
- **AI Test Automation Specialist** - advanced automation
- **QA AI Integration Expert** - workflow optimization
- Duration: 8-12 weeks

## Expert Level
- **AI-QA Solution Architect** - enterprise-level design
- Duration: 12-16 weeks

## Assessment Format
- **Practical projects** (60%%) - real-world implementations
- **Written examination** (25%%) - theoretical knowledge
- **Peer review** (15%%) - community evaluation

Your certification journey starts here!`, title)
}
