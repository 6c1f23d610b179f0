package terminology

import "strings"

// Placeholder is substituted for a cross-reference when the code is absent
// from the dictionary or the field is unset.
const Placeholder = "-"

// Entry is one coded NAMASTE term with optional ICD-11 cross-references.
type Entry struct {
	Code        string `json:"code"`
	Display     string `json:"display"`
	ICD11TM2    string `json:"icd11_tm2,omitempty"`
	ICD11Biomed string `json:"icd11_biomed,omitempty"`
}

// Index is the in-memory dictionary. It is built once at startup and never
// mutated, so lookups need no locking.
type Index struct {
	entries []Entry
	byCode  map[string]Entry
}

func NewIndex(entries []Entry) *Index {
	byCode := make(map[string]Entry, len(entries))
	for _, e := range entries {
		byCode[e.Code] = e
	}
	return &Index{entries: entries, byCode: byCode}
}

func (ix *Index) Len() int {
	return len(ix.entries)
}

// Search returns entries whose display contains the query, case-insensitive,
// in load order. A blank query matches nothing rather than everything.
func (ix *Index) Search(query string) []Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []Entry{}
	}

	matches := []Entry{}
	for _, e := range ix.entries {
		if strings.Contains(strings.ToLower(e.Display), q) {
			matches = append(matches, e)
		}
	}
	return matches
}

// ByCode looks up an entry by exact code.
func (ix *Index) ByCode(code string) (Entry, bool) {
	e, ok := ix.byCode[code]
	return e, ok
}

// Enrich resolves the ICD-11 cross-references for a code. Unknown codes and
// unset fields come back as the placeholder; unknown codes are not an error.
func (ix *Index) Enrich(code string) (tm2, biomed string) {
	tm2, biomed = Placeholder, Placeholder
	e, ok := ix.byCode[code]
	if !ok {
		return tm2, biomed
	}
	if e.ICD11TM2 != "" {
		tm2 = e.ICD11TM2
	}
	if e.ICD11Biomed != "" {
		biomed = e.ICD11Biomed
	}
	return tm2, biomed
}
