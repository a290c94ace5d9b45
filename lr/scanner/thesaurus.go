package scanner

// Thesaurus holds synonyms for words. A synonym may be a phrase of more than
// one word, like "set up".
type Thesaurus struct {
	synonyms map[string][]string
}

// NewThesaurus creates an empty thesaurus.
func NewThesaurus() *Thesaurus {
	return &Thesaurus{synonyms: make(map[string][]string)}
}

// DefaultThesaurus creates a thesaurus with synonyms for the words of the
// command language.
func DefaultThesaurus() *Thesaurus {
	th := NewThesaurus()
	th.AddSynonyms("called", "named")
	th.AddSynonyms("create", "construct", "build", "devise", "design", "establish",
		"forge", "form", "generate", "initiate", "invent", "make", "produce", "set up",
		"spawn")
	return th
}

// AddSynonyms adds synonyms for a word, replacing any previous ones.
func (th *Thesaurus) AddSynonyms(word string, synonyms ...string) {
	th.synonyms[normalize(word)] = synonyms
}

// IsSynonym checks if synonym is listed for word.
func (th *Thesaurus) IsSynonym(word, synonym string) bool {
	for _, s := range th.synonyms[normalize(word)] {
		if normalize(s) == normalize(synonym) {
			return true
		}
	}
	return false
}

// Synonyms returns the synonyms of a word.
func (th *Thesaurus) Synonyms(word string) []string {
	return th.synonyms[normalize(word)]
}
