package entities

// SelectionMode decides which listed releases get inspected.
type SelectionMode int

const (
	// SelectDefault inspects releases newest first and stops after the first one
	// with a matching archive, whether or not that archive classifies.
	SelectDefault SelectionMode = iota
	// SelectAll inspects every release.
	SelectAll
	// SelectTag inspects only the release with the requested tag.
	SelectTag
)

// SelectionPolicy is the release-selection policy for one run.
type SelectionPolicy struct {
	Mode SelectionMode
	Tag  string
}

// NewSelectionPolicy builds a policy from CLI-style inputs. A tag wins over all.
func NewSelectionPolicy(all bool, tag string) SelectionPolicy {
	switch {
	case tag != "":
		return SelectionPolicy{Mode: SelectTag, Tag: tag}
	case all:
		return SelectionPolicy{Mode: SelectAll}
	default:
		return SelectionPolicy{Mode: SelectDefault}
	}
}

func (m SelectionMode) String() string {
	switch m {
	case SelectAll:
		return "all"
	case SelectTag:
		return "tag"
	default:
		return "default"
	}
}
