package mdswagger

import "regexp"

// Precompiled marker patterns.
var (
	// !!swagger <file>!! - the file name may not contain whitespace, markup or a colon
	localMarker = regexp.MustCompile(`!!swagger(?: ([^\s<>&:!]+))?!!`)

	// !!swagger-http <url>!!
	remoteMarker = regexp.MustCompile(`!!swagger-http(?: (https?://[^\s!]+))?!!`)
)

// markerKind distinguishes local file markers from remote URL markers.
type markerKind int

const (
	markerLocal markerKind = iota
	markerRemote
)

// marker is one marker occurrence in a page.
type marker struct {
	kind  markerKind
	arg   string // Empty when the argument is missing
	start int
	end   int
}

// findMarker returns the leftmost marker at or after offset from.
func findMarker(text string, from int) (marker, bool) {
	if from >= len(text) {
		return marker{}, false
	}
	rest := text[from:]

	local := localMarker.FindStringSubmatchIndex(rest)
	remote := remoteMarker.FindStringSubmatchIndex(rest)

	var loc []int
	kind := markerLocal
	switch {
	case local == nil && remote == nil:
		return marker{}, false
	case local == nil:
		loc, kind = remote, markerRemote
	case remote == nil || local[0] < remote[0]:
		loc = local
	default:
		loc, kind = remote, markerRemote
	}

	m := marker{kind: kind, start: from + loc[0], end: from + loc[1]}
	if loc[2] >= 0 {
		m.arg = rest[loc[2]:loc[3]]
	}
	return m, true
}
