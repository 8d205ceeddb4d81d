// Package lexical holds the small lexical utilities the parser layers its
// grammar on top of: a paragraph reader that segments recipe source on blank
// lines, and the English verb/past-participle matcher loops use to pair
// their open and close statements.
package lexical

import (
	"bufio"
	"io"
	"strings"
)

// ParagraphReader reads paragraphs (runs of non-blank lines separated by a
// single blank line) from an underlying text stream, tracking the 1-indexed
// source line number of each paragraph's first line so callers can attribute
// errors and instructions precisely. It is idempotent at EOF: once
// exhausted, ReadParagraph keeps returning io.EOF.
type ParagraphReader struct {
	sc       *bufio.Scanner
	nextLine int
	done     bool
}

// NewParagraphReader wraps r for paragraph-at-a-time reading.
func NewParagraphReader(r io.Reader) *ParagraphReader {
	return &ParagraphReader{sc: bufio.NewScanner(r), nextLine: 1}
}

// ReadParagraph returns the next paragraph's text (lines rejoined with "\n",
// blank separator excluded) and the 1-indexed line number of its first line.
// Leading blank lines before any content are skipped rather than treated as
// empty paragraphs, matching the grammar's rule that a blank line is always
// a separator, never content.
func (p *ParagraphReader) ReadParagraph() (text string, startLine int, err error) {
	if p.done {
		return "", 0, io.EOF
	}

	var lines []string
	start := p.nextLine

	for p.sc.Scan() {
		line := p.sc.Text()
		p.nextLine++
		if line == "" {
			if len(lines) > 0 {
				return strings.Join(lines, "\n"), start, nil
			}
			start = p.nextLine
			continue
		}
		lines = append(lines, line)
	}

	p.done = true
	if serr := p.sc.Err(); serr != nil {
		return "", 0, serr
	}
	if len(lines) == 0 {
		return "", 0, io.EOF
	}
	return strings.Join(lines, "\n"), start, nil
}
