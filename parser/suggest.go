package parser

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// knownInstructions is the instruction vocabulary build engines accept,
// including the families this parser keeps as misc records.
var knownInstructions = []string{
	"ADD", "ARG", "CMD", "COPY", "ENTRYPOINT", "ENV", "EXPOSE", "FROM",
	"HEALTHCHECK", "LABEL", "MAINTAINER", "ONBUILD", "RUN", "SHELL",
	"STOPSIGNAL", "USER", "VOLUME", "WORKDIR",
}

// KnownInstruction reports whether word is a recognized instruction keyword,
// ignoring case.
func KnownInstruction(word string) bool {
	upper := strings.ToUpper(word)
	for _, k := range knownInstructions {
		if upper == k {
			return true
		}
	}
	return false
}

// SuggestInstruction proposes the closest known instruction keyword for a
// likely typo. Only near misses produce a suggestion; exact matches and
// distant words return false.
func SuggestInstruction(word string) (string, bool) {
	upper := strings.ToUpper(word)
	best := ""
	bestDist := 3 // anything further off is probably not a typo
	for _, k := range knownInstructions {
		d := fuzzy.LevenshteinDistance(upper, k)
		if d == 0 {
			return "", false
		}
		if d < bestDist {
			best = k
			bestDist = d
		}
	}
	return best, best != ""
}
