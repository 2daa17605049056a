package formatting

import (
	"regexp"
	"strings"
)

// entryStartRe matches a line that opens a new job entry: word/space
// characters, then a pipe separated by whitespace ("Company Name | ...").
var entryStartRe = regexp.MustCompile(`^[A-Za-z\s]+\s+\|\s+`)

// groupState tracks where the entry scanner is within a section body.
type groupState int

const (
	seekingEntry groupState = iota // before the first entry-start line
	inEntry                        // accumulating lines into an entry
)

// GroupJobEntries groups the body lines of a WORK EXPERIENCE section into
// ordered job entries. A new entry opens at every line matching the
// entry-start pattern; subsequent non-blank lines belong to that entry
// until the next entry-start line. Non-blank lines seen before the first
// entry-start line are discarded as noise.
func GroupJobEntries(bodyLines []string) []JobEntry {
	var entries []JobEntry
	var acc []string
	state := seekingEntry

	flush := func() {
		if len(acc) > 0 {
			entries = append(entries, parseJobEntry(acc))
			acc = nil
		}
	}

	for _, line := range bodyLines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if entryStartRe.MatchString(line) {
			flush()
			acc = []string{line}
			state = inEntry
			continue
		}
		if state == inEntry {
			acc = append(acc, line)
		}
	}
	flush()

	return entries
}

// parseJobEntry converts accumulated entry lines into a JobEntry. The
// first line is split on the first pipe into company and dates; a second
// line, if present, is the role title; everything after becomes bullets.
func parseJobEntry(lines []string) JobEntry {
	entry := JobEntry{}

	header, dates, found := strings.Cut(lines[0], "|")
	entry.Company = strings.TrimSpace(header)
	if found {
		entry.Dates = strings.TrimSpace(dates)
	}

	if len(lines) > 1 {
		entry.TitleLine = strings.TrimSpace(lines[1])
	}

	if len(lines) > 2 {
		for _, line := range lines[2:] {
			entry.Bullets = append(entry.Bullets, strings.TrimSpace(line))
		}
	}

	return entry
}
