package screening

// Rule identifies which match rule accepted a record.
type Rule string

const (
	RuleNone        Rule = ""
	RuleIDDocument  Rule = "id_document"
	RulePrimaryName Rule = "primary_name"
	RuleAlias       Rule = "alias"
)

// Match reports whether rec satisfies q and which rule decided it. Both
// arguments must already be normalized. This is pure logic with no side
// effects.
//
// Rule priority (first match wins):
//  1. Identity document - id number and issuing country
//  2. Primary name - first and last name
//  3. Alias - each a.k.a., falling back to the primary names
//
// The document type on the query is not consulted.
func Match(rec SdnRecord, q Query) (Rule, bool) {
	// Rule 1: identity document
	if q.ID != "" {
		for _, doc := range rec.IDList {
			if doc.IDNumber == q.ID && doc.IDCountry == q.Country {
				return RuleIDDocument, true
			}
		}
	}

	if !q.HasName() {
		return RuleNone, false
	}

	// Rule 2: primary name
	if rec.FirstName == q.FirstName && rec.LastName == q.LastName {
		return RulePrimaryName, true
	}

	// Rule 3: aliases
	for _, aka := range rec.AkaList {
		first, last := aka.FirstName, aka.LastName
		if first == "" {
			first = rec.FirstName
		}
		if last == "" {
			last = rec.LastName
		}
		if first == q.FirstName && last == q.LastName {
			return RuleAlias, true
		}
	}

	return RuleNone, false
}
