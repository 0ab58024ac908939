package teams

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Matchup is the home/away pair extracted from a report filename.
type Matchup struct {
	Home string
	Away string
}

// filenameExceptions lists match-ups whose filenames defeat the generic
// parser because both the merged-club marker and the " - " separator appear.
// Checked by substring in order; the pairs are returned exactly as written
// here so downstream resolution sees the known alias spellings.
var filenameExceptions = []struct {
	fragment string
	matchup  Matchup
}{
	{"Bjerringbro_vs_Silkeborg_-_SAH___Skanderborg_AGF", Matchup{"Bjerringbro-Silkeborg", "SAH___Skanderborg_AGF"}},
	{"Mors_vs_Thy_H_ndbold_-_TTH_Holstebro", Matchup{"Mors-Thy_H_ndbold", "TTH_Holstebro"}},
	{"Ribe_vs_Esbjerg_HH_-_KIF_Kolding", Matchup{"Ribe-Esbjerg_HH", "KIF_Kolding"}},
	{"Ribe_vs_Esbjerg_HH_-_Nordsj_lland_H_ndbold", Matchup{"Ribe-Esbjerg_HH", "Nordsj_lland_H_ndbold"}},
	{"Bjerringbro_vs_Silkeborg_-_Skjern_H_ndbold", Matchup{"Bjerringbro-Silkeborg", "Skjern_H_ndbold"}},
}

// ParseError reports a filename the parser could not split into a match-up.
// Remainder holds the filename after the date prefix; Parts holds whatever
// fragments were recovered before parsing gave up.
type ParseError struct {
	Filename  string
	Remainder string
	Parts     []string
}

func (e *ParseError) Error() string {
	if e.Remainder != "" {
		return fmt.Sprintf("teams: unrecognized filename format %q (teams segment %q)", e.Filename, e.Remainder)
	}
	return fmt.Sprintf("teams: unrecognized filename format %q", e.Filename)
}

// ParseFilename extracts the home and away club from a report filename of the
// form date_hometeam_vs_awayteam.ext. Known problem filenames are handled by
// an explicit exception list; all other names are split on the match-up
// separator and normalized.
func ParseFilename(name string) (Matchup, error) {
	base := filepath.Base(name)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	parts := strings.SplitN(stem, "_", 2)
	if len(parts) != 2 || parts[1] == "" {
		return Matchup{}, &ParseError{Filename: base}
	}
	remainder := parts[1]

	for _, exc := range filenameExceptions {
		if strings.Contains(remainder, exc.fragment) {
			return exc.matchup, nil
		}
	}

	var home, away string
	if before, after, found := strings.Cut(remainder, " - "); found {
		// A second " - " means the name does not fit the matchup shape;
		// report it rather than guess which separator is the real one.
		if strings.Contains(after, " - ") {
			return Matchup{}, &ParseError{Filename: base, Remainder: remainder}
		}
		switch {
		case strings.Contains(before, "_vs_"):
			home = strings.Split(before, "_vs_")[0]
		case strings.Contains(before, "vs"):
			home = strings.Split(before, "vs")[0]
		default:
			home = before
		}
		away = after
	} else {
		var pieces []string
		switch {
		case strings.Contains(remainder, "_vs_"):
			pieces = strings.Split(remainder, "_vs_")
		case strings.Contains(remainder, "vs"):
			pieces = strings.Split(remainder, "vs")
		}
		if len(pieces) != 2 {
			return Matchup{}, &ParseError{Filename: base, Remainder: remainder, Parts: pieces}
		}
		home, away = pieces[0], pieces[1]
	}

	return Matchup{Home: Normalize(home), Away: Normalize(away)}, nil
}
