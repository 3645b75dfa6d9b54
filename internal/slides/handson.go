package slides

import (
	"fmt"

	"github.com/qaport/qaport/internal/catalog"
)

func handsOnSetup(_ *Generator, title string, mod *catalog.Module) string {
	return fmt.Sprintf(`# %s

Preparing your environment for **%s**.

## Technical Requirements
- A recent language runtime installed on your system
- A code editor you are comfortable in
- Terminal access and a package manager

## API Keys and Access
- **LLM API key** - for model calls during exercises
- **Testing environment** - a sandbox safe for experiments

## Verification Steps
1. Confirm your runtime version
2. Test package installation
3. Verify API connectivity
4. Check the project structure

Don't worry if you hit issues here - the common ones are covered two
slides ahead.`, title, mod.Title)
}

func handsOnSteps(_ *Generator, title string, mod *catalog.Module) string {
	return fmt.Sprintf(`# %s

## Today's Project
Building an **AI-powered test case generator** for %s.

## Implementation Steps
1. **Environment setup** (5 minutes) - imports and configuration
2. **Core function development** (20 minutes) - the generation function,
   prompt engineering for QA, validation and error handling
3. **Interface wiring** (15 minutes) - input forms and output display
4. **Integration and testing** (10 minutes) - connect components, test
   with sample data, refine based on results

## Iterative Development
Build, test, refine, repeat - with real-time feedback at each pass.`, title, mod.Title)
}

func handsOnChallenges(_ *Generator, title string, _ *catalog.Module) string {
	return fmt.Sprintf(`# %s

## Technical Issues
- **API rate limits**: implement proper throttling
- **Token limits**: optimize prompt length
- **Network connectivity**: add retry mechanisms
- **Package conflicts**: use isolated environments

## Conceptual Challenges
- **Prompt engineering**: crafting effective prompts
- **Model selection**: choosing the right AI model
- **Quality validation**: ensuring output quality

## Troubleshooting Tips
1. Check logs for detailed error messages
2. Test incrementally, in small steps
3. Use debugging tools before guessing
4. Ask for help - community support is available`, title)
}

func handsOnPractices(_ *Generator, title string, _ *catalog.Module) string {
	return fmt.Sprintf(`# %s

## Development Principles
- **Start simple**: begin with basic functionality
- **Iterate quickly**: rapid prototyping and testing
- **Document everything**: clear code and process notes
- **Test thoroughly**: validate all components

## Security and Compliance
- **API key management**: secure storage and rotation
- **Data privacy**: keep sensitive information out of prompts
- **Audit trails**: track all AI-assisted activities

## Quality Assurance
- Code reviews and peer validation
- Automated unit and integration tests
- Performance monitoring and user feedback`, title)
}

func handsOnNext(_ *Generator, title string, mod *catalog.Module) string {
	return fmt.Sprintf(`# %s

## Immediate Actions
- Complete the %s project
- Test it in your own environment
- Document your learnings and share with your team

## Skill Development
- Advanced prompt engineering
- API integration mastery
- Performance optimization

## Continuous Learning
- Follow industry trends and experiment with new tools
- Practice regularly and seek feedback
- Build portfolio projects toward certification`, title, mod.Title)
}
