package teams_test

import (
	"testing"

	"kampdata/internal/teams"
)

func TestCleanReplacesUnderscoresAndCollapsesSpaces(t *testing.T) {
	cases := map[string]string{
		"Aalborg_H_ndbold":        "Aalborg H ndbold",
		"Grindsted_GIF__H_ndbold": "Grindsted GIF H ndbold",
		"  KIF   Kolding  ":       "KIF Kolding",
		"GOG":                     "GOG",
		"":                        "",
	}
	for input, want := range cases {
		if got := teams.Clean(input); got != want {
			t.Fatalf("Clean(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNormalizeFoldsMergedClubs(t *testing.T) {
	cases := map[string]string{
		"Bjerringbro_vs_Silkeborg":  "Bjerringbro-Silkeborg",
		"Bjerringbro vs Silkeborg":  "Bjerringbro-Silkeborg",
		"Bjerringbro-Silkeborg":     "Bjerringbro-Silkeborg",
		"Ribe_vs_Esbjerg_HH":        "Ribe-Esbjerg HH",
		"Ribe vs Esbjerg":           "Ribe-Esbjerg HH",
		"Mors_vs_Thy":               "Mors-Thy Håndbold",
		"Mors-Thy_H_ndbold":         "Mors-Thy Håndbold",
		"Skjern_H_ndbold":           "Skjern H ndbold",
		"S_nderjyske_Herreh_ndbold": "S nderjyske Herreh ndbold",
	}
	for input, want := range cases {
		if got := teams.Normalize(input); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"Bjerringbro_vs_Silkeborg",
		"Ribe_vs_Esbjerg_HH",
		"Mors_vs_Thy_H_ndbold",
		"Aalborg_H_ndbold",
		"TMS Ringsted",
	}
	for _, input := range inputs {
		once := teams.Normalize(input)
		if twice := teams.Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %q: %q then %q", input, once, twice)
		}
	}
}
