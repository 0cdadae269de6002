// Package invite renders meeting suggestions as iCalendar invites.
package invite

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultTitle is the summary used when no title is configured.
	DefaultTitle = "Vendor–Distributor Meeting"
	// ContentType is the media type of rendered invites.
	ContentType = "text/calendar; charset=utf-8"

	timeLayout = "20060102T150405"
	maxLine    = 75
)

var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:meetbuddy:invite")) //nolint: gochecknoglobals

// ICS returns a calendar with a single event from start to end. Each instant is
// written as a floating local time in its own location, without a zone
// designator. The output only depends on its arguments.
func ICS(start, end time.Time, title string) string {
	var b strings.Builder

	writeLine(&b, "BEGIN:VCALENDAR")
	writeLine(&b, "VERSION:2.0")
	writeLine(&b, "PRODID:-//meetbuddy//Meeting Suggestions//EN")
	writeLine(&b, "CALSCALE:GREGORIAN")
	writeLine(&b, "BEGIN:VEVENT")
	writeLine(&b, "UID:"+UID(start, end, title).String()+"@meetbuddy")
	writeLine(&b, "DTSTART:"+start.Format(timeLayout))
	writeLine(&b, "DTEND:"+end.Format(timeLayout))
	writeLine(&b, "SUMMARY:"+escapeText(title))
	writeLine(&b, "END:VEVENT")
	writeLine(&b, "END:VCALENDAR")

	return b.String()
}

// UID derives the event identifier from the event fields. Downloading the same
// suggestion twice yields the same UID.
func UID(start, end time.Time, title string) uuid.UUID {
	name := start.UTC().Format(time.RFC3339) + "/" + end.UTC().Format(time.RFC3339) + "/" + title

	return uuid.NewSHA1(uidNamespace, []byte(name))
}

// Filename returns the download name of the invite for a ranked suggestion.
func Filename(rank int) string {
	return fmt.Sprintf("meeting_slot_%d.ics", rank)
}

func escapeText(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, "\r\n", "\\n")
	s = strings.ReplaceAll(s, "\n", "\\n")

	return s
}

// writeLine writes a content line terminated by CRLF, folding it into
// continuation lines of at most 75 octets without splitting a UTF-8 sequence.
func writeLine(b *strings.Builder, line string) {
	limit := maxLine
	for len(line) > limit {
		cut := limit
		for cut > 0 && !isRuneStart(line[cut]) {
			cut--
		}
		b.WriteString(line[:cut])
		b.WriteString("\r\n ")
		line = line[cut:]
		// the leading space counts towards the next line
		limit = maxLine - 1
	}
	b.WriteString(line)
	b.WriteString("\r\n")
}

func isRuneStart(c byte) bool {
	return c&0xC0 != 0x80 //nolint: mnd
}
