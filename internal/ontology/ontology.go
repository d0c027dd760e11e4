// Package ontology holds the static mapping tables used by the eligibility
// matcher: department synonym groups, the grade/semester lexicon, and the
// gender/military synonym dimensions. Tables are plain data built once and
// injected into the engines, so tests can substitute trimmed ontologies.
package ontology

// GradeEntry is one grade-lexicon entry: an academic level plus a 1-based
// cumulative semester count (1학년 1학기 = 1 ... 4학년 2학기 = 8, graduate
// semesters continue from 9).
type GradeEntry struct {
	Level    string
	Semester int
}

// SimpleDimension describes a text dimension (gender, military service)
// matched by synonym containment. Synonyms maps a canonical status to the
// notice expressions that denote it; Conflicts maps a status to the statuses
// whose explicit mention contradicts it. The "무관" key of Synonyms lists
// expressions meaning "no restriction".
type SimpleDimension struct {
	Synonyms  map[string][]string
	Conflicts map[string][]string
}

// Ontology bundles every static table the matcher consumes. Read-only after
// construction.
type Ontology struct {
	// DepartmentGroups maps a user department to the synonym and
	// parent-group strings a notice may use to include it.
	DepartmentGroups map[string][]string

	// GradeLexicon maps grade-level profile text to its (level, semester)
	// pair. Lookup is exact: unknown text degrades to ("N/A", 0).
	GradeLexicon map[string]GradeEntry

	// UniversalDepartment lists phrases that open a notice to every
	// department. Matched after whitespace stripping.
	UniversalDepartment []string

	Gender   SimpleDimension
	Military SimpleDimension

	// NoRestriction lists generic phrases that void any simple-text
	// requirement regardless of dimension.
	NoRestriction []string
}

// Default returns the production ontology.
func Default() *Ontology {
	return &Ontology{
		DepartmentGroups:    departmentGroups,
		GradeLexicon:        gradeLexicon,
		UniversalDepartment: universalDepartment,
		Gender: SimpleDimension{
			Synonyms:  genderSynonyms,
			Conflicts: genderConflicts,
		},
		Military: SimpleDimension{
			Synonyms:  militarySynonyms,
			Conflicts: militaryConflicts,
		},
		NoRestriction: noRestriction,
	}
}

// StatusOf resolves a free-text user value to the dimension's canonical
// status key, or "" when the value is not recognized.
func (d SimpleDimension) StatusOf(value string) string {
	if value == "" {
		return ""
	}
	for status, synonyms := range d.Synonyms {
		if status == value {
			return status
		}
		for _, syn := range synonyms {
			if syn == value {
				return status
			}
		}
	}
	return ""
}
