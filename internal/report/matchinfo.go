package report

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gosimple/slug"

	"kampdata/internal/services"
	"kampdata/internal/teams"
)

var (
	datePattern  = regexp.MustCompile(`(\d{1,2})-(\d{1,2})-(\d{4})`)
	teamsPattern = regexp.MustCompile(`KAMPHÆNDELSER\s+([^-]+)-([^0-9]+)`)
	fileStemSafe = regexp.MustCompile(`[^a-zA-Z0-9_.-]`)
)

// MatchInfo identifies a match: the date in dd-mm-yyyy form plus the club
// names as printed in the report banner.
type MatchInfo struct {
	Date     string
	HomeTeam string
	AwayTeam string
}

// ExtractMatchInfo pulls the match date and the club names out of report
// text. The date is the first d-m-yyyy occurrence, zero-padded; the clubs
// come from the text after the first match-events banner.
func ExtractMatchInfo(content string) (MatchInfo, error) {
	date := datePattern.FindStringSubmatch(content)
	if date == nil {
		return MatchInfo{}, services.Wrap(services.ErrValidation, "report", "match info", "no date found", nil)
	}
	day := zeroPad(date[1])
	month := zeroPad(date[2])

	clubs := teamsPattern.FindStringSubmatch(content)
	if clubs == nil {
		return MatchInfo{}, services.Wrap(services.ErrValidation, "report", "match info", "no club names found", nil)
	}

	return MatchInfo{
		Date:     fmt.Sprintf("%s-%s-%s", day, month, date[3]),
		HomeTeam: strings.TrimSpace(clubs[1]),
		AwayTeam: strings.TrimSpace(clubs[2]),
	}, nil
}

func zeroPad(v string) string {
	if len(v) == 1 {
		return "0" + v
	}
	return v
}

// FileStem builds the date_home_vs_away stem used when naming artifacts
// derived from this match, with filesystem-hostile characters replaced.
func (m MatchInfo) FileStem() string {
	stem := fmt.Sprintf("%s_%s_vs_%s", m.Date, m.HomeTeam, m.AwayTeam)
	return fileStemSafe.ReplaceAllString(stem, "_")
}

// Key returns a stable slug identifying the match, suitable as a storage key.
func (m MatchInfo) Key() string {
	return slug.Make(fmt.Sprintf("%s %s vs %s", m.Date, teams.Normalize(m.HomeTeam), teams.Normalize(m.AwayTeam)))
}
