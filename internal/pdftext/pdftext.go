// Package pdftext extracts text and document facts from PDFs via pdfcpu.
//
// Extraction reads each page's content stream and decodes the literal
// strings of its text-showing operators. Text stored as hex-encoded CID
// sequences (some embedded-font subsets) is skipped rather than emitted as
// garbage.
package pdftext

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
)

// Info is the document-facts payload.
type Info struct {
	Path      string `json:"path"`
	PageCount int    `json:"page_count"`
}

// Text is the extraction payload.
type Text struct {
	Path      string `json:"path"`
	PageCount int    `json:"page_count"`
	Pages     []Page `json:"pages"`
}

// Page is one page's extracted text.
type Page struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// ReadInfo returns basic document facts.
func ReadInfo(path string) (*Info, error) {
	count, err := api.PageCountFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF: %w", err)
	}
	return &Info{Path: path, PageCount: count}, nil
}

// Extract pulls text from the given page range; from/to of 0 mean the
// whole document.
func Extract(path string, from, to int) (*Text, error) {
	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF: %w", err)
	}

	if from <= 0 {
		from = 1
	}
	if to <= 0 || to > ctx.PageCount {
		to = ctx.PageCount
	}
	if from > to {
		return nil, fmt.Errorf("invalid page range %d-%d", from, to)
	}

	result := &Text{Path: path, PageCount: ctx.PageCount}
	for pageNr := from; pageNr <= to; pageNr++ {
		reader, err := pdfcpu.ExtractPageContent(ctx, pageNr)
		if err != nil {
			return nil, fmt.Errorf("failed to extract page %d: %w", pageNr, err)
		}
		if reader == nil {
			result.Pages = append(result.Pages, Page{Number: pageNr})
			continue
		}

		content, err := io.ReadAll(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to read page %d content: %w", pageNr, err)
		}

		result.Pages = append(result.Pages, Page{
			Number: pageNr,
			Text:   decodeText(string(content)),
		})
	}

	return result, nil
}

var (
	// literal strings inside text blocks: (...) with escapes
	literalRe = regexp.MustCompile(`\((?:\\.|[^\\()])*\)`)
	// end of a text object; treated as a line break
	textObjectEndRe = regexp.MustCompile(`\bET\b`)
)

// decodeText walks a page content stream and joins the literal strings of
// its text operators, breaking lines at text-object boundaries.
func decodeText(content string) string {
	var lines []string
	for _, block := range textObjectEndRe.Split(content, -1) {
		var parts []string
		for _, match := range literalRe.FindAllString(block, -1) {
			if s := unescapeLiteral(match[1 : len(match)-1]); s != "" {
				parts = append(parts, s)
			}
		}
		if len(parts) > 0 {
			lines = append(lines, strings.Join(parts, " "))
		}
	}
	return strings.Join(lines, "\n")
}

// unescapeLiteral resolves PDF string escapes: \(, \), \\, \n, \r, \t and
// octal codes.
func unescapeLiteral(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(s) {
			break
		}
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case '(', ')', '\\':
			b.WriteByte(s[i])
		case '0', '1', '2', '3', '4', '5', '6', '7':
			j := i
			for j < len(s) && j < i+3 && s[j] >= '0' && s[j] <= '7' {
				j++
			}
			if code, err := strconv.ParseUint(s[i:j], 8, 16); err == nil && code < 256 {
				b.WriteByte(byte(code))
			}
			i = j - 1
		default:
			b.WriteByte(s[i])
		}
	}
	return strings.TrimSpace(b.String())
}
