// Package parser turns free-form text into game intents. Matching is
// forgiving: aliases, prefixes and small typos all resolve, and close
// calls come back as a clarify question instead of a guess.
package parser

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
)

type Parser struct {
	registry *Registry
}

func New() *Parser {
	return &Parser{registry: DefaultRegistry()}
}

func (p *Parser) RegisterCommand(c CommandDef) {
	p.registry.RegisterCommand(c)
}

func (p *Parser) Parse(ctx ParseContext, raw string) Intent {
	intent := Intent{
		Raw:        raw,
		Normalised: normaliseInput(raw),
		Kind:       Unknown,
	}
	if intent.Normalised == "" {
		intent.Clarify = &ClarifyQuestion{Prompt: "Enter a command. Try help."}
		return intent
	}

	tokens := tokenise(intent.Normalised)
	cmdMatch, alternates := p.registry.matchCommand(tokens)
	if cmdMatch.Canonical == "" || cmdMatch.Score < 0.5 {
		intent.Clarify = &ClarifyQuestion{
			Prompt: "I couldn't map that to a command. Try help, board, stats, settle, road, city, roll, next, buy, play, trade.",
		}
		return intent
	}

	if len(alternates) > 0 && (cmdMatch.Score-alternates[0].Score) < 0.05 && alternates[0].Score > 0.65 {
		intent.Clarify = &ClarifyQuestion{
			Prompt: "Did you mean:",
			Options: []Intent{
				{Raw: raw, Normalised: cmdMatch.Canonical, Kind: commandKind(cmdMatch.Canonical), Verb: cmdMatch.Canonical, Confidence: cmdMatch.Score},
				{Raw: raw, Normalised: alternates[0].Canonical, Kind: commandKind(alternates[0].Canonical), Verb: alternates[0].Canonical, Confidence: alternates[0].Score},
			},
		}
		return intent
	}

	intent.Verb = cmdMatch.Canonical
	intent.Kind = commandKind(intent.Verb)
	intent.Confidence = clampScore(cmdMatch.Score)

	argTokens := tokens
	if cmdMatch.Consumed > 0 && len(tokens) >= cmdMatch.Consumed {
		argTokens = tokens[cmdMatch.Consumed:]
	}

	def, _ := p.registry.command(intent.Verb)
	if len(argTokens) < def.MinArgs {
		intent.Clarify = &ClarifyQuestion{Prompt: fmt.Sprintf("%s needs at least %d argument(s).", def.Canonical, def.MinArgs)}
		intent.Confidence = 0.42
		return intent
	}
	if len(argTokens) > def.MaxArgs {
		argTokens = argTokens[:def.MaxArgs]
		intent.Confidence = clampScore(intent.Confidence - 0.05)
	}

	resolved, clarify, argScore := resolveArgs(ctx, def, argTokens)
	if clarify != nil {
		intent.Clarify = clarify
		intent.Confidence = 0.45
		return intent
	}
	intent.Args = resolved
	if len(resolved) > 0 {
		intent.Confidence = clampScore((intent.Confidence * 0.75) + (argScore * 0.25))
	}

	if intent.Confidence < 0.52 && intent.Clarify == nil {
		intent.Clarify = &ClarifyQuestion{Prompt: "I have low confidence in that parse. Please rephrase."}
	}
	return intent
}

func commandKind(verb string) IntentKind {
	switch verb {
	case "help":
		return Help
	case "board", "stats":
		return Query
	default:
		return Command
	}
}

func resolveArgs(ctx ParseContext, def CommandDef, args []string) ([]string, *ClarifyQuestion, float64) {
	if len(args) == 0 {
		return nil, nil, 0.9
	}

	resolved := make([]string, 0, len(args))
	score := 0.9
	for i, token := range args {
		kind := ""
		if i < len(def.ArgKinds) {
			kind = def.ArgKinds[i]
		}
		switch kind {
		case "index":
			n, err := strconv.Atoi(token)
			if err != nil || n < 0 {
				return nil, &ClarifyQuestion{Prompt: fmt.Sprintf("%s takes a board index, got %q.", def.Canonical, token)}, 0.4
			}
			resolved = append(resolved, strconv.Itoa(n))
		case "resource":
			match, confidence := bestMatch(token, ctx.Resources)
			if match == "" {
				return nil, &ClarifyQuestion{Prompt: fmt.Sprintf("Unknown resource %q. Try %s.", token, strings.Join(ctx.Resources, ", "))}, 0.4
			}
			resolved = append(resolved, match)
			score = minScore(score, confidence)
		case "card":
			match, confidence := bestMatch(token, ctx.Cards)
			if match == "" {
				return nil, &ClarifyQuestion{Prompt: fmt.Sprintf("Unknown card %q. Try %s.", token, strings.Join(ctx.Cards, ", "))}, 0.4
			}
			resolved = append(resolved, match)
			score = minScore(score, confidence)
		default:
			resolved = append(resolved, token)
			score -= 0.02
		}
	}
	return resolved, nil, clampScore(score)
}

// bestMatch picks the closest vocabulary entry for a token: exact, then
// prefix, then within the levenshtein limit.
func bestMatch(token string, vocab []string) (string, float64) {
	token = normaliseInput(token)
	if token == "" || len(vocab) == 0 {
		return "", 0
	}
	type scored struct {
		val   string
		score float64
	}
	results := make([]scored, 0, len(vocab))
	for _, cand := range vocab {
		c := normaliseInput(cand)
		switch {
		case token == c:
			results = append(results, scored{cand, 1.0})
		case strings.HasPrefix(c, token) && len(token) >= 2:
			results = append(results, scored{cand, 0.9})
		default:
			dist := levenshtein.ComputeDistance(token, c)
			if dist > levenshteinLimit(len(c)) {
				continue
			}
			results = append(results, scored{cand, 0.72 - (0.08 * float64(dist))})
		}
	}
	if len(results) == 0 {
		return "", 0
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score == results[j].score {
			return results[i].val < results[j].val
		}
		return results[i].score > results[j].score
	})
	return results[0].val, results[0].score
}

func minScore(a, b float64) float64 {
	if b < a {
		return b
	}
	return a
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
