package domain

import "strings"

// Verdict is the outcome of a confirmation prompt.
type Verdict int

const (
	VerdictTimeout Verdict = iota
	VerdictAffirmative
	VerdictNegative
)

func (v Verdict) String() string {
	switch v {
	case VerdictAffirmative:
		return "affirmative"
	case VerdictNegative:
		return "negative"
	default:
		return "timeout"
	}
}

var (
	defaultAffirmative = []string{"yes", "y", "ye", "yeah", "yup", "yea", "ya", "hai", "si", "sí", "oui", "はい", "correct"}
	defaultNegative    = []string{"no", "n", "nah", "nope", "nop", "iie", "いいえ", "non", "fuck off"}
	defaultVocabulary  = NewVocabulary(defaultAffirmative, defaultNegative)
)

// Vocabulary holds the recognised affirmative and negative tokens. It is
// immutable once built; Extend returns a new value.
type Vocabulary struct {
	affirmative map[string]struct{}
	negative    map[string]struct{}
}

// NewVocabulary builds a vocabulary from token lists. Tokens are lower-cased and trimmed.
func NewVocabulary(affirmative, negative []string) Vocabulary {
	v := Vocabulary{
		affirmative: make(map[string]struct{}, len(affirmative)),
		negative:    make(map[string]struct{}, len(negative)),
	}
	addTokens(v.affirmative, affirmative)
	addTokens(v.negative, negative)
	return v
}

// DefaultVocabulary returns the built-in multilingual yes/no tokens.
func DefaultVocabulary() Vocabulary {
	return defaultVocabulary
}

// Extend returns a copy with extra tokens added to each side.
func (v Vocabulary) Extend(extraAffirmative, extraNegative []string) Vocabulary {
	if len(extraAffirmative) == 0 && len(extraNegative) == 0 {
		return v
	}
	out := Vocabulary{
		affirmative: make(map[string]struct{}, len(v.affirmative)+len(extraAffirmative)),
		negative:    make(map[string]struct{}, len(v.negative)+len(extraNegative)),
	}
	for token := range v.affirmative {
		out.affirmative[token] = struct{}{}
	}
	for token := range v.negative {
		out.negative[token] = struct{}{}
	}
	addTokens(out.affirmative, extraAffirmative)
	addTokens(out.negative, extraNegative)
	return out
}

// Classify maps already-normalised text to a verdict. The second result is
// false when the text belongs to neither side.
func (v Vocabulary) Classify(text string) (Verdict, bool) {
	if _, ok := v.affirmative[text]; ok {
		return VerdictAffirmative, true
	}
	if _, ok := v.negative[text]; ok {
		return VerdictNegative, true
	}
	return VerdictTimeout, false
}

// Size returns the number of affirmative and negative tokens.
func (v Vocabulary) Size() (int, int) {
	return len(v.affirmative), len(v.negative)
}

func addTokens(set map[string]struct{}, tokens []string) {
	for _, token := range tokens {
		token = strings.ToLower(strings.TrimSpace(token))
		if token != "" {
			set[token] = struct{}{}
		}
	}
}
