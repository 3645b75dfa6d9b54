package slides

import (
	"fmt"

	"github.com/qaport/qaport/internal/catalog"
)

func introWelcome(_ *Generator, title string, _ *catalog.Module) string {
	return fmt.Sprintf(`# %s

Welcome to the **AI-Driven Quality Assurance Professional Development Portal**!

## What You'll Experience
- **Practical AI integration** in QA workflows
- **Hands-on projects** with real-world applications
- **Template-driven learning** with structured presentations
- **AI tools and techniques** specific to QA professionals

## Our Approach
- **Theory + practice**: balance conceptual understanding with implementation
- **Personalized learning**: adapt to your experience level and interests
- **Community focus**: connect with fellow QA professionals exploring AI

Ready to transform your QA practice with AI? Let's begin!`, title)
}

func introJourney(_ *Generator, title string, _ *catalog.Module) string {
	return fmt.Sprintf(`# %s

## Core Modules Available
1. **Programming/Building Projects with AI** - build automation tools and chatbots
2. **Best Practices with AI** - learn effective and safe AI usage
3. **QA + AI Integration** - advanced testing process automation
4. **Knowledge Bases with AI** - create intelligent QA assistants
5. **AI Compliance & Governance** - ethical and legal frameworks
6. **Essential AI Concepts** - MCP, RAG, and fine-tuning basics

## Learning Paths
- **Beginner**: start with AI fundamentals and best practices
- **Intermediate**: focus on practical integration and tools
- **Advanced**: deep dive into custom solutions and governance

## Progress Tracking
- Real-time progress monitoring
- Skill acquisition tracking
- Hands-on project portfolio
- Personalized recommendations`, title)
}

func introTools(_ *Generator, title string, _ *catalog.Module) string {
	return fmt.Sprintf(`# %s

## AI Platforms
- **LLM APIs** - text generation and analysis
- **Agent frameworks** - building AI applications
- **Vector databases** - knowledge bases for QA docs

## QA-Specific Tools
- **Test automation frameworks** - Selenium and Playwright integration
- **API testing** - request suites with AI enhancement
- **Performance testing** - load tools with AI-driven analysis
- **Bug tracking** - issue trackers with AI insights

## Setup Requirements
- A development environment you can experiment in
- API keys for the AI services you plan to use
- Access to a sandboxed testing environment`, title)
}

func introOutcomes(_ *Generator, title string, _ *catalog.Module) string {
	return fmt.Sprintf(`# %s

## Immediate Outcomes
- **Automate repetitive QA tasks** using AI tools
- **Generate intelligent test cases** from requirements
- **Analyze bugs and failures** with AI assistance
- **Create custom QA chatbots** for your team

## Skill Development
- **Prompt engineering** for QA-specific tasks
- **AI model integration** in testing workflows
- **Knowledge base creation** for QA documentation
- **Compliance understanding** for AI in enterprise

## Long-term Impact
- Transform from traditional QA to AI-enhanced QA
- Lead AI adoption initiatives in your organization
- Mentor others and contribute to the future of quality assurance`, title)
}
