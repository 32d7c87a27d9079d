package nlp

import (
	"regexp"
	"strings"

	"github.com/jdkato/prose/v2"

	"github.com/Hariharasudhan07/FinanceApp/internal/patterns"
)

// ProseAnalyzer implements Analyzer on top of the prose tokenizer and
// tagger, augmented with regex-derived MONEY and DATE entities, since the
// stock model does not label monetary values.
type ProseAnalyzer struct{}

// NewProseAnalyzer returns a ready-to-use analyzer.
func NewProseAnalyzer() *ProseAnalyzer {
	return &ProseAnalyzer{}
}

var (
	likeNumPattern = regexp.MustCompile(`^\d[\d,]*(?:\.\d+)?$`)
	moneyPattern   = regexp.MustCompile(`(?i)(?:rs\.?|inr|usd|aed|eur|gbp|₹|\$|€|£)\s*\d[\d,]*(?:\.\d{1,2})?`)
)

// Analyze tokenizes and tags the text, derives entities and noun chunks.
func (p *ProseAnalyzer) Analyze(text string) (*Analysis, error) {
	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return nil, err
	}

	tokens := make([]Token, 0, len(doc.Tokens()))
	cursor := 0
	for _, t := range doc.Tokens() {
		start := cursor
		if idx := strings.Index(text[cursor:], t.Text); idx >= 0 {
			start = cursor + idx
			cursor = start + len(t.Text)
		}
		tokens = append(tokens, Token{
			Text:    t.Text,
			Lemma:   lemmatize(t.Text),
			POS:     mapPennTag(t.Tag),
			Start:   start,
			LikeNum: likeNumPattern.MatchString(t.Text),
		})
	}

	entities := deriveEntities(text, doc)
	labelTokens(tokens, entities)

	return &Analysis{
		Tokens:   tokens,
		Entities: entities,
		Chunks:   buildChunks(tokens),
	}, nil
}

// mapPennTag collapses Penn Treebank tags into the coarse classes the
// extractors work with.
func mapPennTag(tag string) string {
	switch {
	case strings.HasPrefix(tag, "VB"):
		return "VERB"
	case strings.HasPrefix(tag, "NN"):
		return "NOUN"
	case tag == "CD":
		return "NUM"
	case strings.HasPrefix(tag, "JJ"):
		return "ADJ"
	case tag == "IN" || tag == "TO":
		return "ADP"
	case strings.HasPrefix(tag, "RB"):
		return "ADV"
	case strings.HasPrefix(tag, "PRP"):
		return "PRON"
	case tag == "DT":
		return "DET"
	default:
		return "X"
	}
}

// deriveEntities combines the model's named entities with regex-derived
// MONEY and DATE spans.
func deriveEntities(text string, doc *prose.Document) []Entity {
	var entities []Entity

	cursor := 0
	for _, ent := range doc.Entities() {
		start := cursor
		if idx := strings.Index(text[cursor:], ent.Text); idx >= 0 {
			start = cursor + idx
			cursor = start + len(ent.Text)
		}
		entities = append(entities, Entity{
			Text:  ent.Text,
			Label: ent.Label,
			Start: start,
			End:   start + len(ent.Text),
		})
	}

	for _, loc := range moneyPattern.FindAllStringIndex(text, -1) {
		entities = append(entities, Entity{
			Text:  text[loc[0]:loc[1]],
			Label: "MONEY",
			Start: loc[0],
			End:   loc[1],
		})
	}

	for _, re := range []*regexp.Regexp{patterns.DateCompact, patterns.DateVerbose, patterns.DateStandard} {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			if overlapsAny(entities, loc[0], loc[1], "DATE") {
				continue
			}
			entities = append(entities, Entity{
				Text:  text[loc[0]:loc[1]],
				Label: "DATE",
				Start: loc[0],
				End:   loc[1],
			})
		}
	}

	return entities
}

func overlapsAny(entities []Entity, start, end int, label string) bool {
	for _, ent := range entities {
		if ent.Label == label && start < ent.End && end > ent.Start {
			return true
		}
	}
	return false
}

// labelTokens stamps each token with the label of the entity covering it.
func labelTokens(tokens []Token, entities []Entity) {
	for i := range tokens {
		for _, ent := range entities {
			if tokens[i].Start >= ent.Start && tokens[i].Start < ent.End {
				tokens[i].Entity = ent.Label
				break
			}
		}
	}
}

// buildChunks groups maximal runs of adjectives and nouns into noun chunks
// and links each to the nearest preceding verb. A preposition between the
// verb and the chunk makes the chunk a prepositional object.
func buildChunks(tokens []Token) []NounChunk {
	var chunks []NounChunk

	i := 0
	for i < len(tokens) {
		if tokens[i].POS != "NOUN" && tokens[i].POS != "ADJ" {
			i++
			continue
		}
		start := i
		hasNoun := false
		for i < len(tokens) && (tokens[i].POS == "NOUN" || tokens[i].POS == "ADJ") {
			if tokens[i].POS == "NOUN" {
				hasNoun = true
			}
			i++
		}
		if !hasNoun {
			continue
		}

		headVerb := -1
		for j := start - 1; j >= 0; j-- {
			if tokens[j].POS == "VERB" {
				headVerb = j
				break
			}
		}

		dep := "dobj"
		if headVerb >= 0 {
			for j := headVerb + 1; j < start; j++ {
				if tokens[j].POS == "ADP" {
					dep = "pobj"
					break
				}
			}
		}

		words := make([]string, 0, i-start)
		for j := start; j < i; j++ {
			words = append(words, tokens[j].Text)
		}
		chunks = append(chunks, NounChunk{Words: words, HeadVerb: headVerb, Dep: dep})
	}

	return chunks
}
