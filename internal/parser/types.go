package parser

type IntentKind int

const (
	Command IntentKind = iota
	Query
	Help
	Unknown
)

type Intent struct {
	Raw        string
	Normalised string
	Kind       IntentKind
	Verb       string
	Args       []string
	Confidence float64
	Clarify    *ClarifyQuestion
}

type ClarifyQuestion struct {
	Prompt  string
	Options []Intent
}

// ParseContext supplies the vocabularies fuzzy argument matching draws
// from. The parser itself knows nothing about game rules.
type ParseContext struct {
	Resources []string
	Cards     []string
}

type CommandDef struct {
	Canonical string
	Aliases   []string
	MinArgs   int
	MaxArgs   int
	// ArgKinds names the expected argument at each position: "index",
	// "resource" or "card". Unlisted positions are passed through.
	ArgKinds []string
}
