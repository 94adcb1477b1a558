// Package textsplit provides word counting and budgeted prefix extraction
// used by the chunking pipeline. All sizes are measured in words, not
// provider tokens, so windowing decisions stay local and deterministic.
package textsplit

import (
	"regexp"
	"strings"
)

var (
	wordRe      = regexp.MustCompile(`\w+`)
	sentenceRe  = regexp.MustCompile(`([.!?]+)\s+`)
	paraBreakRe = regexp.MustCompile(`\n\s*\n`)
	spaceRunRe  = regexp.MustCompile(`[ \t]+`)
)

// CountWords counts maximal runs of word characters in text.
func CountWords(text string) int {
	return len(wordRe.FindAllStringIndex(text, -1))
}

// Words returns the word tokens of text in document order.
func Words(text string) []string {
	return wordRe.FindAllString(text, -1)
}

// Clean normalizes text for processing: paragraph breaks become exactly one
// blank line, runs of spaces and tabs collapse to a single space, and
// surrounding whitespace is trimmed.
func Clean(text string) string {
	text = paraBreakRe.ReplaceAllString(text, "\n\n")
	text = spaceRunRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// SplitByTarget extracts a prefix of approximately targetWords words from
// text and returns it together with the remaining text.
//
// Whole paragraphs are accumulated greedily. When a paragraph would
// overflow the budget and less than 80% of it is used, that paragraph is
// split into sentences and whole sentences are accumulated instead. The
// budget is a soft ceiling: a single sentence larger than the entire budget
// is included whole rather than cut mid-sentence.
//
// The prefix is always a contiguous prefix of text, so no characters are
// created or destroyed: text == prefix + skipped whitespace + remainder.
func SplitByTarget(text string, targetWords int) (prefix, remainder string) {
	if targetWords <= 0 || CountWords(text) <= targetWords {
		return text, ""
	}

	cut := 0  // byte offset where the accepted prefix ends
	used := 0 // words accepted so far
	pos := 0
	for pos < len(text) {
		paraEnd := len(text)
		next := len(text)
		if i := strings.Index(text[pos:], "\n\n"); i >= 0 {
			paraEnd = pos + i
			next = paraEnd + 2
		}

		words := CountWords(text[pos:paraEnd])
		if used+words <= targetWords {
			used += words
			cut = paraEnd
			pos = next
			continue
		}

		// This paragraph would overflow. Descend to sentences only if most
		// of the budget is still unused; otherwise accept the short prefix.
		if used < targetWords*8/10 {
			cut, used = takeSentences(text, pos, paraEnd, cut, used, targetWords)
		}
		break
	}

	prefix = text[:cut]
	remainder = strings.TrimLeft(text[cut:], "\n ")
	return prefix, remainder
}

// takeSentences accumulates whole sentences of text[start:end] into the
// prefix ending at cut until the budget runs out. If nothing has been
// accumulated at all, the first sentence is taken even when it alone
// exceeds the budget, guaranteeing forward progress.
func takeSentences(text string, start, end, cut, used, targetWords int) (int, int) {
	para := text[start:end]
	marks := sentenceRe.FindAllStringSubmatchIndex(para, -1)

	prev := 0
	for _, m := range marks {
		punctEnd, nextStart := m[3], m[1]
		if punctEnd <= prev {
			continue
		}
		words := CountWords(para[prev:punctEnd])
		if used+words > targetWords && used > 0 {
			return cut, used
		}
		used += words
		cut = start + punctEnd
		prev = nextStart
	}

	// Trailing text after the last sentence boundary.
	if prev < len(para) {
		words := CountWords(para[prev:])
		if words > 0 && (used+words <= targetWords || used == 0) {
			used += words
			cut = end
		}
	}
	return cut, used
}
