package slides

import (
	"fmt"

	"github.com/qaport/qaport/internal/catalog"
)

// ErrUnknownTemplate indicates the requested presentation kind does not exist.
type ErrUnknownTemplate struct {
	Kind catalog.TemplateKind
}

func (e *ErrUnknownTemplate) Error() string {
	return fmt.Sprintf("unknown presentation template: %q", e.Kind)
}

// ErrSlideOutOfRange indicates the slide index is outside the template's
// configured slide sequence.
type ErrSlideOutOfRange struct {
	Kind  catalog.TemplateKind
	Index int
	Count int
}

func (e *ErrSlideOutOfRange) Error() string {
	return fmt.Sprintf("slide %d out of range for template %q (have %d slides)", e.Index, e.Kind, e.Count)
}

// ErrMissingModuleContext indicates a module-bound template was requested
// without module data.
type ErrMissingModuleContext struct {
	Kind catalog.TemplateKind
}

func (e *ErrMissingModuleContext) Error() string {
	return fmt.Sprintf("template %q requires module context", e.Kind)
}
