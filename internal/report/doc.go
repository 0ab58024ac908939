// Package report parses scraped handball match reports: locating the event
// table between its header and footer markers, windowing it into chunks small
// enough for structured extraction, and pulling the match date and club names
// out of the surrounding text.
package report
