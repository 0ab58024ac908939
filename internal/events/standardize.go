package events

import (
	"strings"
	"unicode"
)

// validPositions lists court position tokens in the order trailing-token
// extraction probes them.
var validPositions = []string{"Gbr", "HB", "HF", "PL", "ST", "VB", "VF", "1:e", "2:e"}

var validAction1 = map[string]struct{}{
	"Advarsel":              {},
	"Fejlaflevering":        {},
	"Fuld tid":              {},
	"Halvleg":               {},
	"Kamp slut":             {},
	"Mål":                   {},
	"Mål på straffe":        {},
	"Passivt spil":          {},
	"Regelfejl":             {},
	"Rødt kort, direkte":    {},
	"Skud blokeret":         {},
	"Skud forbi":            {},
	"Skud på stolpe":        {},
	"Skud reddet":           {},
	"Start":                 {},
	"Start 1:e halvleg":     {},
	"Start 2:e halvleg":     {},
	"Straffekast forbi":     {},
	"Straffekast på stolpe": {},
	"Straffekast reddet":    {},
	"Tabt bold":             {},
	"Tilkendt straffe":      {},
	"Time out":              {},
	"Udvisning":             {},
	"Video Proof":           {},
	"Video Proof slut":      {},
}

var validAction2 = map[string]struct{}{
	"Assist":        {},
	"Blok af (ret)": {},
	"Blokeret af":   {},
	"Bold erobret":  {},
	"Forårs. str.":  {},
	"Retur":         {},
}

// KnownPosition reports whether a token is a recognized court position.
func KnownPosition(token string) bool {
	for _, pos := range validPositions {
		if token == pos {
			return true
		}
	}
	return false
}

// KnownAction1 reports whether a value belongs to the primary action vocabulary.
func KnownAction1(action string) bool {
	_, ok := validAction1[action]
	return ok
}

// KnownAction2 reports whether a value belongs to the secondary action vocabulary.
func KnownAction2(action string) bool {
	_, ok := validAction2[action]
	return ok
}

// Standardize cleans up field placement mistakes the extraction commonly
// makes: position tokens stuck on the end of the primary action, player
// numbers landing in the position or secondary-action column, and shouted
// surnames arriving as a secondary action.
func Standardize(event MatchEvent) MatchEvent {
	out := event

	if event.Action1 != "" {
		base, position := splitTrailingPosition(event.Action1)
		if base != event.Action1 {
			out.Action1 = base
		}
		if position != "" {
			out.Position = position
		}
	}

	if event.Position != "" && isAllDigits(event.Position) {
		out.PlayerNumber = event.Position
		out.Position = ""
	}

	if event.Action2 != "" {
		switch {
		case event.Action2 == "1:e halvleg":
			out.Action1 = "Start 1:e halvleg"
			out.Action2 = ""
		case isAllDigits(strings.TrimSpace(event.Action2)):
			out.Player2Number = strings.TrimSpace(event.Action2)
			out.Action2 = ""
		case isShoutedName(event.Action2):
			out.PlayerName = appendSurname(event.PlayerName, event.Action2)
			out.Action2 = ""
		}
	}

	return out
}

// splitTrailingPosition strips a position token from the end of an action.
// Half-start actions legitimately end in "1:e halvleg"/"2:e halvleg" and are
// left alone.
func splitTrailingPosition(action string) (string, string) {
	if strings.HasPrefix(action, "Start") &&
		(strings.Contains(action, "1:e halvleg") || strings.Contains(action, "2:e halvleg")) {
		return action, ""
	}
	for _, pos := range validPositions {
		if strings.HasSuffix(action, " "+pos) {
			return strings.TrimSpace(action[:len(action)-len(pos)-1]), pos
		}
	}
	return action, ""
}

func appendSurname(name, surname string) string {
	if name == "" {
		return surname
	}
	return name + " " + surname
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// isShoutedName matches all-caps surnames: at least one letter and no
// lowercase letters.
func isShoutedName(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}
