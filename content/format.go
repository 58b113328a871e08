package content

import (
	"regexp"
	"strings"
	"unicode"

	"z3z/constants"
)

// The formatter turns raw textarea input into the stored content sequence:
// stanza lines for poems, paragraphs for articles. Sentence capitalization
// runs over every element afterwards.

var (
	blankLineSplit  = regexp.MustCompile(`\n\s*\n`)
	innerLinebreaks = regexp.MustCompile(`\s*\n\s*`)
)

// FormatContent dispatches on the collection's kind.
func FormatContent(coll Collection, raw string) []string {
	if coll.IsVerse() {
		return FormatVerse(raw)
	}
	return FormatProse(raw)
}

// FormatVerse splits on newlines and trims each line. Blank lines are kept
// as stanza breaks whenever the text contains a double newline anywhere;
// texts without one get their blank lines dropped. The trigger is global
// rather than per-line, which mirrors how the blog has always stored poems.
func FormatVerse(raw string) []string {
	raw = normalizeNewlines(raw)
	preserveBreaks := strings.Contains(raw, "\n\n")

	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" && !preserveBreaks {
			continue
		}
		out = append(out, CapitalizeSentences(line))
	}
	return trimBlankEdges(out)
}

// FormatProse splits text into paragraphs. With blank-line separators
// present it splits on them and collapses internal newlines to spaces.
// Without them it falls back to a heuristic: a short line that doesn't end
// a sentence is glued onto the running paragraph, anything else starts a
// new one.
func FormatProse(raw string) []string {
	raw = normalizeNewlines(raw)

	var out []string
	if strings.Contains(raw, "\n\n") {
		for _, block := range blankLineSplit.Split(raw, -1) {
			block = strings.TrimSpace(block)
			if block == "" {
				continue
			}
			block = innerLinebreaksToSpaces(block)
			out = append(out, CapitalizeSentences(block))
		}
		return out
	}

	var current string
	flush := func() {
		if current != "" {
			out = append(out, CapitalizeSentences(current))
			current = ""
		}
	}
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch {
		case current == "":
			current = line
		case len([]rune(line)) < constants.SHORT_LINE_THRESHOLD && !endsSentence(line):
			current += " " + line
		default:
			flush()
			current = line
		}
	}
	flush()
	return out
}

// CapitalizeSentences uppercases the first letter of the string and the
// first letter after every sentence-ending punctuation followed by
// whitespace.
func CapitalizeSentences(s string) string {
	runes := []rune(s)
	capNext := true
	afterPunct := false
	for i, r := range runes {
		switch {
		case r == '.' || r == '!' || r == '?':
			afterPunct = true
		case unicode.IsSpace(r):
			if afterPunct {
				capNext = true
				afterPunct = false
			}
		case unicode.IsLetter(r):
			if capNext {
				runes[i] = unicode.ToUpper(r)
			}
			capNext = false
			afterPunct = false
		default:
			afterPunct = false
		}
	}
	return string(runes)
}

func endsSentence(line string) bool {
	return strings.HasSuffix(line, ".") ||
		strings.HasSuffix(line, "!") ||
		strings.HasSuffix(line, "?")
}

func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

func innerLinebreaksToSpaces(s string) string {
	return innerLinebreaks.ReplaceAllString(s, " ")
}

// trimBlankEdges drops leading and trailing blank elements so preserved
// stanza breaks only ever sit between lines.
func trimBlankEdges(lines []string) []string {
	start := 0
	for start < len(lines) && lines[start] == "" {
		start++
	}
	end := len(lines)
	for end > start && lines[end-1] == "" {
		end--
	}
	return lines[start:end]
}
