package rpcskema

// UnknownPolicy controls how unknown object keys are handled.
type UnknownPolicy int

const (
	UnknownStrip  UnknownPolicy = iota // Drop unknown keys (forward compatible).
	UnknownStrict                      // Reject unknown keys with an error.
)

// Severity expresses the severity level for issues raised by the tokenizer.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// Strictness configures enforcement for duplicate keys.
type Strictness struct {
	OnDuplicateKey Severity // Ignore, Warn or Error (duplicate JSON keys).
}

// ParseOpt bundles parsing options.
type ParseOpt struct {
	Strictness Strictness
	MaxDepth   int   // 0 disables the nesting limit.
	MaxBytes   int64 // 0 disables the size limit.
	FailFast   bool  // Stop at the first issue instead of collecting.
	// OnIssue receives non-fatal issues, such as duplicate keys under Warn.
	OnIssue func(Issue)
}

// Kind classifies the schemas held by a Registry.
type Kind int

const (
	KindScalar Kind = iota
	KindEnum
	KindObject
	KindUnion
)

func (k Kind) String() string {
	switch k {
	case KindEnum:
		return "enum"
	case KindObject:
		return "object"
	case KindUnion:
		return "union"
	default:
		return "scalar"
	}
}

// Tag is one row of an enum tag table: the in-model discriminant and its wire tag.
type Tag struct {
	Variant string
	Wire    string
}
