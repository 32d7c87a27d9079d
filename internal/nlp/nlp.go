// Package nlp provides the linguistic analysis used by the classifier and
// extractors: tokenization with part-of-speech tags and lemmas, named
// entities, and noun chunks tied to their governing verb.
package nlp

// Token is a single token with its character offset into the original text.
type Token struct {
	Text    string
	Lemma   string
	POS     string // coarse tag: VERB, NOUN, NUM, ADJ, ADP, X
	Entity  string // entity label covering this token, or ""
	Start   int
	LikeNum bool
}

// Entity is a labeled span of the original text.
type Entity struct {
	Text  string
	Label string
	Start int
	End   int
}

// NounChunk is a noun phrase with a link to the verb that governs it.
// HeadVerb is the index into Analysis.Tokens of the governing verb, or -1.
// Dep is "dobj" when the chunk directly follows the verb and "pobj" when a
// preposition sits between them.
type NounChunk struct {
	Words    []string
	HeadVerb int
	Dep      string
}

// Analysis is the result of analyzing one message.
type Analysis struct {
	Tokens   []Token
	Entities []Entity
	Chunks   []NounChunk
}

// Analyzer turns raw message text into an Analysis.
type Analyzer interface {
	Analyze(text string) (*Analysis, error)
}

// HasVerbLemma reports whether any verb token's lemma is in the given set.
func (a *Analysis) HasVerbLemma(lemmas map[string]bool) bool {
	for _, tok := range a.Tokens {
		if tok.POS == "VERB" && lemmas[tok.Lemma] {
			return true
		}
	}
	return false
}

// EntitiesLabeled returns the entities carrying the given label.
func (a *Analysis) EntitiesLabeled(label string) []Entity {
	var out []Entity
	for _, ent := range a.Entities {
		if ent.Label == label {
			out = append(out, ent)
		}
	}
	return out
}
