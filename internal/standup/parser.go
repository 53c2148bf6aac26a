package standup

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

type parseState uint8

const (
	stateSeekingEntry parseState = iota
	stateInSection
)

// Parser turns standup markdown into entries.
type Parser struct {
	format    *Format
	headerRe  *regexp.Regexp
	subHeadRe *regexp.Regexp
	matchers  [sectionCount][]string
}

// NewParser returns a parser for files laid out with format.
func NewParser(format *Format) *Parser {
	p := &Parser{
		format:    format,
		headerRe:  markerPattern(format.HeaderDepth()),
		subHeadRe: markerPattern(format.SubHeaderDepth()),
	}
	for i := range sectionCount {
		label := format.Header(Section(i))
		p.matchers[i] = []string{label}
		if c := capitalize(label); c != label {
			p.matchers[i] = append(p.matchers[i], c)
		}
	}
	return p
}

// markerPattern matches exactly depth markers followed by whitespace.
func markerPattern(depth int) *regexp.Regexp {
	return regexp.MustCompile(`^` + strings.Repeat(regexp.QuoteMeta(HeaderMarker), depth) + `\s+`)
}

// record accumulates one entry while its block is being read.
type record struct {
	header  string
	line    int
	section Section
	tasks   [sectionCount][]string
}

// Parse reads every entry from r. Parsing is all-or-nothing: on error no
// entries are returned. The list keeps file order.
func (p *Parser) Parse(r io.Reader) (*EntryList, error) {
	list := NewEntryList()
	if r == nil {
		return list, nil
	}

	var (
		state   = stateSeekingEntry
		current *record
		lineNo  int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		switch {
		case p.headerRe.MatchString(line):
			if current != nil {
				entry, err := p.finalize(current)
				if err != nil {
					return nil, err
				}
				list.Append(entry)
			}
			current = &record{
				header:  p.headerRe.ReplaceAllString(line, ""),
				line:    lineNo,
				section: SectionNotes,
			}
			state = stateInSection

		case state == stateInSection && p.subHeadRe.MatchString(line):
			text := p.subHeadRe.ReplaceAllString(line, "")
			section, ok := p.determineSection(text)
			if !ok {
				return nil, &UnrecognizedSectionError{Line: lineNo, Text: strings.TrimSpace(text)}
			}
			current.section = section
			current.tasks[section] = []string{}

		case state == stateSeekingEntry:
			return nil, &MalformedFileError{Line: lineNo, Content: line}

		default:
			current.tasks[current.section] = append(current.tasks[current.section], p.stripBullet(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if current != nil {
		entry, err := p.finalize(current)
		if err != nil {
			return nil, err
		}
		list.Append(entry)
	}
	return list, nil
}

// determineSection returns the first section, in enum order, whose label is
// contained in text.
func (p *Parser) determineSection(text string) (Section, bool) {
	for i, labels := range p.matchers {
		for _, label := range labels {
			if strings.Contains(text, label) {
				return Section(i), true
			}
		}
	}
	return 0, false
}

func (p *Parser) stripBullet(line string) string {
	line = strings.TrimSpace(line)
	if rest, ok := strings.CutPrefix(line, p.format.BulletCharacter()); ok {
		return strings.TrimSpace(rest)
	}
	return line
}

func (p *Parser) finalize(rec *record) (*Entry, error) {
	date, err := p.format.ParseHeaderDate(rec.header)
	if err != nil {
		return nil, &MalformedFileError{
			Line:    rec.line,
			Content: strings.Repeat(HeaderMarker, p.format.HeaderDepth()) + " " + rec.header,
			Err:     err,
		}
	}
	return NewEntry(date,
		rec.tasks[SectionCurrent],
		rec.tasks[SectionPrevious],
		rec.tasks[SectionImpediments],
		rec.tasks[SectionNotes],
	)
}
