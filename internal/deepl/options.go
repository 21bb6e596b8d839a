package deepl

// SplitMode controls the provider's sentence splitting. Three observably
// different wire values, not a boolean.
type SplitMode int

const (
	// SplitDefault omits the parameter and leaves the choice to the provider.
	SplitDefault SplitMode = iota
	// SplitAll splits on punctuation and newlines.
	SplitAll
	// SplitNone disables splitting.
	SplitNone
	// SplitNoNewlines splits on punctuation only.
	SplitNoNewlines
)

func (m SplitMode) wire() string {
	switch m {
	case SplitAll:
		return "1"
	case SplitNone:
		return "0"
	case SplitNoNewlines:
		return "nonewlines"
	default:
		return "" // omitted
	}
}

// Formality selects the provider's formality register.
type Formality int

const (
	FormalityDefault Formality = iota
	FormalityMore
	FormalityLess
)

func (f Formality) wire() string {
	switch f {
	case FormalityMore:
		return "more"
	case FormalityLess:
		return "less"
	default:
		return "" // omitted
	}
}

// ModelType selects the provider's latency/quality trade-off.
type ModelType int

const (
	ModelDefault ModelType = iota
	ModelLatency
	ModelQuality
	ModelPreferLatency
	ModelPreferQuality
)

func (m ModelType) wire() string {
	switch m {
	case ModelLatency:
		return "latency_optimized"
	case ModelQuality:
		return "quality_optimized"
	case ModelPreferLatency:
		return "prefer_latency_optimized"
	case ModelPreferQuality:
		return "prefer_quality_optimized"
	default:
		return "" // omitted
	}
}

// Options is the per-request option set. Zero value means provider defaults;
// invalid combinations are not validated client-side, the provider is
// authoritative.
type Options struct {
	Split              SplitMode
	PreserveFormatting bool
	Formality          Formality
	Model              ModelType
}
