package parser

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type commandPhrase struct {
	canonical string
	alias     string
	tokens    []string
}

type Registry struct {
	commands map[string]CommandDef
	phrases  []commandPhrase
}

func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]CommandDef),
	}
}

func (r *Registry) RegisterCommand(c CommandDef) {
	c.Canonical = normaliseInput(c.Canonical)
	if c.Canonical == "" {
		return
	}
	r.commands[c.Canonical] = c

	r.phrases = append(r.phrases, commandPhrase{
		canonical: c.Canonical,
		alias:     c.Canonical,
		tokens:    tokenise(c.Canonical),
	})
	for _, a := range c.Aliases {
		n := normaliseInput(a)
		if n == "" {
			continue
		}
		r.phrases = append(r.phrases, commandPhrase{
			canonical: c.Canonical,
			alias:     n,
			tokens:    tokenise(n),
		})
	}
}

func (r *Registry) command(canonical string) (CommandDef, bool) {
	cmd, ok := r.commands[normaliseInput(canonical)]
	return cmd, ok
}

type commandCandidate struct {
	Canonical string
	Alias     string
	Consumed  int
	Score     float64
}

func (r *Registry) matchCommand(tokens []string) (commandCandidate, []commandCandidate) {
	if len(tokens) == 0 {
		return commandCandidate{}, nil
	}
	cands := make([]commandCandidate, 0, len(r.phrases))
	for _, phrase := range r.phrases {
		if len(phrase.tokens) == 0 {
			continue
		}
		consumed := min(len(tokens), len(phrase.tokens))
		prefix := strings.Join(tokens[:consumed], " ")

		if consumed == len(phrase.tokens) && prefix == phrase.alias {
			score := 1.0
			if phrase.alias != phrase.canonical {
				score = 0.97
			}
			cands = append(cands, commandCandidate{
				Canonical: phrase.canonical,
				Alias:     phrase.alias,
				Consumed:  consumed,
				Score:     score,
			})
			continue
		}

		if len(phrase.tokens) == 1 && strings.HasPrefix(phrase.alias, tokens[0]) && len(tokens[0]) >= 2 {
			cands = append(cands, commandCandidate{
				Canonical: phrase.canonical,
				Alias:     phrase.alias,
				Consumed:  1,
				Score:     0.9,
			})
			continue
		}

		if len(prefix) < 3 {
			continue
		}
		dist := levenshtein.ComputeDistance(prefix, phrase.alias)
		if dist > levenshteinLimit(len(phrase.alias)) {
			continue
		}
		cands = append(cands, commandCandidate{
			Canonical: phrase.canonical,
			Alias:     phrase.alias,
			Consumed:  consumed,
			Score:     0.72 - (0.08 * float64(dist)),
		})
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Score == cands[j].Score {
			return cands[i].Canonical < cands[j].Canonical
		}
		return cands[i].Score > cands[j].Score
	})

	if len(cands) == 0 {
		return commandCandidate{}, nil
	}
	best := cands[0]
	alts := make([]commandCandidate, 0, 4)
	seen := map[string]bool{best.Canonical: true}
	for _, c := range cands[1:] {
		if seen[c.Canonical] {
			continue
		}
		seen[c.Canonical] = true
		alts = append(alts, c)
		if len(alts) >= 4 {
			break
		}
	}
	return best, alts
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func DefaultRegistry() *Registry {
	r := NewRegistry()
	commands := []CommandDef{
		{Canonical: "help", Aliases: []string{"h", "commands", "?"}},
		{Canonical: "board", Aliases: []string{"map", "tiles"}},
		{Canonical: "stats", Aliases: []string{"players", "score", "scores"}},
		{Canonical: "settle", Aliases: []string{"settlement", "build settlement"}, MinArgs: 1, MaxArgs: 1, ArgKinds: []string{"index"}},
		{Canonical: "road", Aliases: []string{"build road"}, MinArgs: 1, MaxArgs: 1, ArgKinds: []string{"index"}},
		{Canonical: "city", Aliases: []string{"upgrade", "build city"}, MinArgs: 1, MaxArgs: 1, ArgKinds: []string{"index"}},
		{Canonical: "roll", Aliases: []string{"dice", "roll dice"}},
		{Canonical: "next", Aliases: []string{"end", "end turn", "done"}},
		{Canonical: "buy", Aliases: []string{"buy card", "draw"}},
		{Canonical: "play", Aliases: []string{"play card"}, MinArgs: 1, MaxArgs: 1, ArgKinds: []string{"card"}},
		{Canonical: "trade", Aliases: []string{"bank", "exchange"}, MinArgs: 2, MaxArgs: 2, ArgKinds: []string{"resource", "resource"}},
		{Canonical: "reshuffle", Aliases: []string{"regenerate", "new board"}},
		{Canonical: "reset", Aliases: []string{"clear", "restart"}},
		{Canonical: "save", MinArgs: 0, MaxArgs: 1},
		{Canonical: "load", MinArgs: 0, MaxArgs: 1},
		{Canonical: "quit", Aliases: []string{"exit", "q"}},
	}
	for _, cmd := range commands {
		r.RegisterCommand(cmd)
	}
	return r
}
