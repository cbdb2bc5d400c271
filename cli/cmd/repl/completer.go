package repl

import (
	"unicode/utf8"

	"github.com/sahilm/fuzzy"

	"github.com/zflat/launch/frontend"
	"github.com/zflat/launch/sub"
)

// maxCandidates limits how many completion candidates are displayed.
const maxCandidates = 8

// isWordBoundary returns true if the rune delimits words for completion
// purposes: whitespace, the substitution marker characters, and expression
// operator/punctuation characters.
func isWordBoundary(r rune) bool {
	switch r {
	case ' ', '\t',
		'$', '(', ')', '[', ']', '\'', '"',
		'+', '-', '*', '/', '%',
		'<', '>', '=', '!',
		'&', '|', ',', '?', ':', ';':
		return true
	}

	return false
}

// wordBounds returns the current word at the cursor position and its byte
// boundaries within input. The member-access dot is part of the word so that
// "statistics.me" completes to "statistics.mean".
func wordBounds(input string, cursor int) (word string, start, end int) {
	if cursor > len(input) {
		cursor = len(input)
	}

	start = cursor

	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if isWordBoundary(r) {
			break
		}

		start -= size
	}

	end = cursor

	for end < len(input) {
		r, size := utf8.DecodeRuneInString(input[end:])
		if isWordBoundary(r) {
			break
		}

		end += size
	}

	return input[start:end], start, end
}

// candidates returns the full set of completion names: substitution tags,
// module names, qualified module exports, and the unqualified exports of
// merged modules.
func candidates() []string {
	names := frontend.Tags()

	for _, module := range sub.ModuleNames() {
		names = append(names, module)

		mod, err := sub.LookupModule(module)
		if err != nil {
			continue
		}

		for _, export := range sub.ModuleExports(module) {
			names = append(names, module+"."+export)

			if mod.Merged() {
				names = append(names, export)
			}
		}
	}

	return names
}

// complete returns up to maxCandidates fuzzy matches for the word at the
// cursor, best match first. An empty word yields no candidates.
func complete(input string, cursor int) []string {
	word, _, _ := wordBounds(input, cursor)
	if word == "" {
		return nil
	}

	matches := fuzzy.Find(word, candidates())
	if len(matches) > maxCandidates {
		matches = matches[:maxCandidates]
	}

	found := make([]string, len(matches))
	for i, m := range matches {
		found[i] = m.Str
	}

	return found
}

// accept replaces the word at the cursor with the chosen candidate and
// returns the new input with the cursor position after the inserted text.
func accept(input string, cursor int, candidate string) (string, int) {
	_, start, end := wordBounds(input, cursor)

	return input[:start] + candidate + input[end:], start + len(candidate)
}
