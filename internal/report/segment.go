package report

import "strings"

const (
	// Event tables open with a column header row containing "Tid" and run
	// until the next match-events banner or the software footer.
	startMarker  = "Tid"
	bannerMarker = "KAMPHÆNDELSER"
	footerMarker = "Software"

	// chunkLines caps how many event rows travel in one extraction request.
	chunkLines = 24
)

// Chunk is one extraction-sized window of an event table. Every chunk repeats
// the table's header row so the extractor sees the column layout.
type Chunk struct {
	Number int
	Header string
	Lines  []string
}

// Text renders the chunk as the header followed by its rows.
func (c Chunk) Text() string {
	parts := make([]string, 0, len(c.Lines)+1)
	parts = append(parts, c.Header)
	parts = append(parts, c.Lines...)
	return strings.Join(parts, "\n")
}

// Segment splits report text into extraction chunks. Each event table is
// collected from its header row to the next banner or footer, then windowed
// into at most chunkLines rows per chunk. Chunk numbers are consecutive and
// 1-based across the whole report.
func Segment(content string) []Chunk {
	type table struct {
		header string
		rows   []string
	}

	var tables []table
	var current *table
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		if current == nil {
			if strings.Contains(line, startMarker) {
				tables = append(tables, table{header: line})
				current = &tables[len(tables)-1]
			}
			continue
		}
		if strings.Contains(line, bannerMarker) || strings.Contains(line, footerMarker) {
			current = nil
			continue
		}
		current.rows = append(current.rows, line)
	}

	var chunks []Chunk
	for _, tbl := range tables {
		for i := 0; i < len(tbl.rows); i += chunkLines {
			end := i + chunkLines
			if end > len(tbl.rows) {
				end = len(tbl.rows)
			}
			chunks = append(chunks, Chunk{
				Number: len(chunks) + 1,
				Header: tbl.header,
				Lines:  tbl.rows[i:end],
			})
		}
	}
	return chunks
}
