package events

import "regexp"

var timePattern = regexp.MustCompile(`^\d{1,2}\.\d{2}$`)

// ValidTime reports whether a value is a well-formed mm.ss timestamp.
func ValidTime(value string) bool {
	return timePattern.MatchString(value)
}

// ValidWire reports whether a decoded wire event is usable: it must be a
// flat JSON object, Time must be a well-formed timestamp, and every field
// value must be a string or null. Invalid events are dropped rather than
// failing the whole chunk.
func ValidWire(event any) bool {
	record, ok := event.(map[string]any)
	if !ok || record == nil {
		return false
	}
	timeValue, ok := record["Time"].(string)
	if !ok || !ValidTime(timeValue) {
		return false
	}
	for _, value := range record {
		if value == nil {
			continue
		}
		if _, ok := value.(string); !ok {
			return false
		}
	}
	return true
}

// FromWire converts a validated wire event into a MatchEvent stamped with the
// chunk it came from. Missing and null fields become empty strings.
func FromWire(event map[string]any, section int) MatchEvent {
	str := func(key string) string {
		if value, ok := event[key].(string); ok {
			return value
		}
		return ""
	}
	return MatchEvent{
		Time:             str("Time"),
		ScoreUpdate:      str("ScoreUpdate"),
		TeamInitials:     str("TeamInitials"),
		Action1:          str("Action1"),
		Position:         str("Position"),
		PlayerNumber:     str("PlayerNumber"),
		PlayerName:       str("PlayerName"),
		Action2:          str("Action2"),
		Player2Number:    str("Player2Number"),
		Player2Name:      str("Player2Name"),
		GoalkeeperNumber: str("GoalkeeperNumber"),
		GoalkeeperName:   str("GoalkeeperName"),
		SectionNumber:    section,
	}
}
