package teams

import "strings"

// mergedClubs maps the fragments of merged-club names onto the display name
// the league uses. Filenames often carry only half of a merged club, or spell
// the hyphen as "vs", so both fragments are required before folding.
var mergedClubs = []struct {
	first  string
	second string
	name   string
}{
	{"Bjerringbro", "Silkeborg", "Bjerringbro-Silkeborg"},
	{"Ribe", "Esbjerg", "Ribe-Esbjerg HH"},
	{"Mors", "Thy", "Mors-Thy Håndbold"},
}

// Clean replaces underscores with spaces and collapses runs of whitespace.
// Report filenames encode Danish characters and spaces as underscores, so
// "Aalborg_H_ndbold" cleans to "Aalborg H ndbold".
func Clean(name string) string {
	name = strings.ReplaceAll(name, "_", " ")
	return strings.Join(strings.Fields(name), " ")
}

// Normalize cleans a club name and folds merged clubs onto their display
// name. Normalize is idempotent: applying it twice yields the same result.
func Normalize(name string) string {
	name = Clean(name)
	for _, club := range mergedClubs {
		if strings.Contains(name, club.first) && strings.Contains(name, club.second) {
			return club.name
		}
	}
	return name
}
