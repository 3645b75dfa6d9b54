package catalog

// TemplateKind identifies one of the four presentation styles.
type TemplateKind string

const (
	KindIntroduction   TemplateKind = "introduction"
	KindModuleOverview TemplateKind = "module_overview"
	KindHandsOnSession TemplateKind = "hands_on_session"
	KindConclusion     TemplateKind = "conclusion"
)

// AllTemplateKinds returns the template kinds in presentation order.
func AllTemplateKinds() []TemplateKind {
	return []TemplateKind{KindIntroduction, KindModuleOverview, KindHandsOnSession, KindConclusion}
}

// Valid reports whether k is a known template kind.
func (k TemplateKind) Valid() bool {
	switch k {
	case KindIntroduction, KindModuleOverview, KindHandsOnSession, KindConclusion:
		return true
	}
	return false
}

// Label returns a display name for the template kind.
func (k TemplateKind) Label() string {
	switch k {
	case KindIntroduction:
		return "Introduction"
	case KindModuleOverview:
		return "Module Overview"
	case KindHandsOnSession:
		return "Hands-on Session"
	case KindConclusion:
		return "Conclusion"
	default:
		return string(k)
	}
}

// RequiresModule reports whether slides of this kind need module context.
func (k TemplateKind) RequiresModule() bool {
	return k == KindModuleOverview || k == KindHandsOnSession
}

// Template is the ordered slide-name sequence for one presentation kind.
// The slide count is configuration-derived, not fixed in code.
type Template struct {
	Kind   TemplateKind
	Slides []string
}
