package services

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/stonynews/stonynews-cli/internal/core/domain"
)

const (
	// minSegmentLength is the trimmed rune count a segment must exceed to be kept.
	// Shorter segments are preamble or trailing boilerplate.
	minSegmentLength = 10

	// maxDirectSummaryLength bounds the summary of a fallback article, in runes.
	maxDirectSummaryLength = 600

	// citationsPerArticle is the width of each article's slice of the citation pool.
	citationsPerArticle = 2

	// timestampLayout is the local hour:minute display format.
	timestampLayout = "15:04"
)

// Field labels, matched case-insensitively. An optional space before the
// colon is accepted ("Titre :").
var (
	titleLabels    = []string{"titre", "title"}
	summaryLabels  = []string{"résumé", "resume", "summary"}
	categoryLabels = []string{"catégorie", "categorie", "category"}
)

// ParseArticles converts a raw completion into an ordered list of articles.
//
// The text is split on domain.SegmentDelimiter and short segments are dropped.
// Each surviving segment i receives citations[2i:2i+2] clipped to the pool.
// When the text has no delimiter, or no segment survives, but the text is not
// blank, exactly one direct article carrying the whole text and every citation
// is returned.
//
// ParseArticles never fails: missing or malformed fields take their defaults.
// It holds no state and is safe for concurrent use.
func ParseArticles(text string, citations []domain.Citation, topic string, batch time.Time) []domain.Article {
	if strings.TrimSpace(text) == "" {
		return []domain.Article{}
	}

	if !strings.Contains(text, domain.SegmentDelimiter) {
		return []domain.Article{directArticle(text, citations, topic, batch)}
	}

	segments := splitSegments(text)
	if len(segments) == 0 {
		return []domain.Article{directArticle(text, citations, topic, batch)}
	}

	articles := make([]domain.Article, 0, len(segments))
	for i, segment := range segments {
		articles = append(articles, parseSegment(segment, i, citations, batch))
	}
	return articles
}

// splitSegments splits text on the delimiter and keeps segments long enough to carry content.
func splitSegments(text string) []string {
	parts := strings.Split(text, domain.SegmentDelimiter)
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if utf8.RuneCountInString(strings.TrimSpace(part)) > minSegmentLength {
			segments = append(segments, part)
		}
	}
	return segments
}

// parseSegment extracts one article from a delimited block.
func parseSegment(segment string, index int, citations []domain.Citation, batch time.Time) domain.Article {
	article := domain.Article{
		ID:        articleID(batch, index),
		Title:     domain.DefaultArticleTitle,
		Summary:   "",
		Category:  domain.DefaultCategory,
		Sources:   citationSlice(citations, index),
		Timestamp: batch.Format(timestampLayout),
	}

	var haveTitle, haveSummary, haveCategory bool

	for _, line := range segmentLines(segment) {
		if value, ok := matchField(line, titleLabels); ok {
			if !haveTitle && value != "" {
				article.Title = value
				haveTitle = true
			}
			continue
		}
		if value, ok := matchField(line, summaryLabels); ok {
			if !haveSummary && value != "" {
				article.Summary = value
				haveSummary = true
			}
			continue
		}
		if value, ok := matchField(line, categoryLabels); ok {
			if !haveCategory && value != "" {
				article.Category = domain.ParseCategory(value)
				haveCategory = true
			}
		}
	}

	return article
}

// directArticle builds the single fallback article for unstructured output.
func directArticle(text string, citations []domain.Citation, topic string, batch time.Time) domain.Article {
	title := domain.DefaultArticleTitle
	if t := strings.TrimSpace(topic); t != "" {
		title = "Dossier : " + t
	}

	sources := make([]domain.Citation, len(citations))
	copy(sources, citations)

	return domain.Article{
		ID:        articleID(batch, 0),
		Title:     title,
		Summary:   directSummary(text),
		Category:  domain.DefaultCategory,
		Sources:   sources,
		Timestamp: domain.DirectTimestamp,
	}
}

// directSummary strips grammar markers from text and truncates it.
func directSummary(text string) string {
	text = strings.ReplaceAll(text, domain.SegmentDelimiter, "")
	text = strings.ReplaceAll(text, domain.SegmentTerminator, "")
	return truncateRunes(strings.TrimSpace(text), maxDirectSummaryLength)
}

// segmentLines returns the trimmed, non-empty lines of a segment, minus terminators.
func segmentLines(segment string) []string {
	raw := strings.Split(segment, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line == "" || line == domain.SegmentTerminator {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// citationSlice returns pool[2i:2i+2] clipped to the pool, as a fresh slice.
// Indices beyond the pool yield an empty slice; there is no wraparound.
func citationSlice(pool []domain.Citation, index int) []domain.Citation {
	start := index * citationsPerArticle
	if start >= len(pool) {
		return []domain.Citation{}
	}
	end := min(start+citationsPerArticle, len(pool))

	out := make([]domain.Citation, end-start)
	copy(out, pool[start:end])
	return out
}

// articleID combines the batch time and the segment index.
func articleID(batch time.Time, index int) string {
	return fmt.Sprintf("sn-%d-%d", batch.UnixMilli(), index)
}

// matchField reports whether line starts with one of labels followed by a colon,
// and returns the trimmed value. Markdown list markers and emphasis are tolerated.
func matchField(line string, labels []string) (string, bool) {
	clean := strings.TrimLeft(line, "-*#> \t")
	for _, label := range labels {
		rest, ok := cutPrefixFold(clean, label)
		if !ok {
			continue
		}
		rest = strings.TrimLeft(rest, " \t*")
		if !strings.HasPrefix(rest, ":") {
			continue
		}
		return strings.Trim(rest[1:], " \t*"), true
	}
	return "", false
}

// cutPrefixFold is strings.CutPrefix with Unicode case folding.
func cutPrefixFold(s, prefix string) (string, bool) {
	rest := s
	for _, want := range prefix {
		got, size := utf8.DecodeRuneInString(rest)
		if size == 0 || unicode.ToLower(got) != unicode.ToLower(want) {
			return "", false
		}
		rest = rest[size:]
	}
	return rest, true
}

// truncateRunes shortens s to at most limit runes without splitting a character.
func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}
