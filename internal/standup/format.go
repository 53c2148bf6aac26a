package standup

import (
	"path/filepath"
	"slices"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/ncruces/go-strftime"
)

const (
	// HeaderMarker prefixes entry headers and section sub-headers.
	HeaderMarker = "#"

	minHeaderDepth    = 1
	maxHeaderDepth    = 5
	minSubHeaderDepth = 2
	maxSubHeaderDepth = 6
)

// BulletCharacters lists the glyphs accepted as task bullets.
var BulletCharacters = []string{"-", "*"}

// Format describes how standup files are laid out on disk. The zero value is
// not usable; start from DefaultFormat and adjust it through the setters, each
// of which validates its input.
type Format struct {
	headerDepth      int
	subHeaderDepth   int
	bullet           string
	headers          [sectionCount]string
	order            []Section
	headerDateFormat string
	headerDateLayout string
	fileNameFormat   string
	fileNameLayout   string
	location         *time.Location
}

// DefaultFormat returns the stock layout: "# 2006-01-02" entry headers,
// "## Current" style sub-headers, dash bullets and "%Y_%m.md" month files.
func DefaultFormat() *Format {
	return &Format{
		headerDepth:    1,
		subHeaderDepth: 2,
		bullet:         "-",
		headers: [sectionCount]string{
			SectionCurrent:     "Current",
			SectionPrevious:    "Previous",
			SectionImpediments: "Impediments",
			SectionNotes:       "Notes",
		},
		order:            Sections(),
		headerDateFormat: "%Y-%m-%d",
		headerDateLayout: "2006-01-02",
		fileNameFormat:   "%Y_%m.md",
		fileNameLayout:   "2006_01.md",
		location:         time.Local,
	}
}

// Clone returns an independent copy of f.
func (f *Format) Clone() *Format {
	c := *f
	c.order = slices.Clone(f.order)
	return &c
}

func (f *Format) HeaderDepth() int         { return f.headerDepth }
func (f *Format) SubHeaderDepth() int      { return f.subHeaderDepth }
func (f *Format) BulletCharacter() string  { return f.bullet }
func (f *Format) HeaderDateFormat() string { return f.headerDateFormat }
func (f *Format) FileNameFormat() string   { return f.fileNameFormat }
func (f *Format) Location() *time.Location { return f.location }

// Header returns the configured label for section.
func (f *Format) Header(section Section) string {
	if int(section) >= sectionCount {
		return ""
	}
	return f.headers[section]
}

// SubHeaderOrder returns a copy of the section serialization order.
func (f *Format) SubHeaderOrder() []Section {
	return slices.Clone(f.order)
}

// SetHeaderDepth sets the number of markers before entry headers. It must be
// within 1..5 and below the sub-header depth.
func (f *Format) SetHeaderDepth(depth int) error {
	if depth < minHeaderDepth || depth > maxHeaderDepth {
		return invalidArgument("header depth %d out of bounds (%d..%d)", depth, minHeaderDepth, maxHeaderDepth)
	}
	if depth >= f.subHeaderDepth {
		return invalidArgument("header depth %d must be smaller than sub-header depth %d", depth, f.subHeaderDepth)
	}
	f.headerDepth = depth
	return nil
}

// SetSubHeaderDepth sets the number of markers before section sub-headers. It
// must be within 2..6 and above the header depth.
func (f *Format) SetSubHeaderDepth(depth int) error {
	if depth < minSubHeaderDepth || depth > maxSubHeaderDepth {
		return invalidArgument("sub-header depth %d out of bounds (%d..%d)", depth, minSubHeaderDepth, maxSubHeaderDepth)
	}
	if depth <= f.headerDepth {
		return invalidArgument("sub-header depth %d must be larger than header depth %d", depth, f.headerDepth)
	}
	f.subHeaderDepth = depth
	return nil
}

// SetDepths sets both depths at once, validating them as a pair.
func (f *Format) SetDepths(header, sub int) error {
	next := f.Clone()
	next.headerDepth = minHeaderDepth
	next.subHeaderDepth = maxSubHeaderDepth
	if err := next.SetHeaderDepth(header); err != nil {
		return err
	}
	if err := next.SetSubHeaderDepth(sub); err != nil {
		return err
	}
	f.headerDepth, f.subHeaderDepth = next.headerDepth, next.subHeaderDepth
	return nil
}

// SetBulletCharacter sets the task bullet. Only "-" and "*" are accepted.
func (f *Format) SetBulletCharacter(bullet string) error {
	if !slices.Contains(BulletCharacters, bullet) {
		return invalidArgument("bullet character must be %q or %q, got %q", BulletCharacters[0], BulletCharacters[1], bullet)
	}
	f.bullet = bullet
	return nil
}

// SetHeader sets the label used for section.
func (f *Format) SetHeader(section Section, label string) error {
	if int(section) >= sectionCount {
		return invalidArgument("unknown section %d", section)
	}
	label = strings.TrimSpace(label)
	if label == "" {
		return invalidArgument("%s header must not be empty", section)
	}
	f.headers[section] = label
	return nil
}

// SetSubHeaderOrder sets the serialization order from section names. The
// names must be exactly current, previous, impediments and notes in any order.
func (f *Format) SetSubHeaderOrder(names []string) error {
	if len(names) != sectionCount {
		return invalidArgument("sub-header order needs %d sections, got %d", sectionCount, len(names))
	}
	order := make([]Section, 0, sectionCount)
	for _, name := range names {
		section, err := ParseSection(strings.ToLower(strings.TrimSpace(name)))
		if err != nil {
			return err
		}
		if slices.Contains(order, section) {
			return invalidArgument("sub-header order lists %q twice", section)
		}
		order = append(order, section)
	}
	f.order = order
	return nil
}

// SetHeaderDateFormat sets the strftime template used for entry headers. The
// template must translate into a layout the parser can read back.
func (f *Format) SetHeaderDateFormat(format string) error {
	if strings.TrimSpace(format) == "" {
		return invalidArgument("header date format must not be empty")
	}
	layout, err := strftime.Layout(format)
	if err != nil {
		return invalidArgument("header date format %q: %v", format, err)
	}
	f.headerDateFormat = format
	f.headerDateLayout = layout
	return nil
}

// SetFileNameFormat sets the strftime template used to name month files.
func (f *Format) SetFileNameFormat(format string) error {
	if strings.TrimSpace(format) == "" {
		return invalidArgument("file name format must not be empty")
	}
	if strings.ContainsAny(strftime.Format(format, time.Now()), `/`+string(filepath.Separator)) {
		return invalidArgument("file name format %q must not contain a directory", format)
	}
	// Templates without a parse layout can still name files; they just
	// cannot be enumerated.
	layout, err := strftime.Layout(format)
	if err != nil {
		layout = ""
	}
	f.fileNameFormat = format
	f.fileNameLayout = layout
	return nil
}

// SetLocation sets the time zone header dates are parsed in.
func (f *Format) SetLocation(loc *time.Location) {
	if loc == nil {
		loc = time.Local
	}
	f.location = loc
}

// FileName returns the month file name for date.
func (f *Format) FileName(date time.Time) string {
	return strftime.Format(f.fileNameFormat, date)
}

// ParseFileName reads the month a file name was generated for.
func (f *Format) ParseFileName(name string) (time.Time, error) {
	if f.fileNameLayout == "" {
		return time.Time{}, invalidArgument("file name format %q cannot be parsed", f.fileNameFormat)
	}
	parsed, err := time.ParseInLocation(f.fileNameLayout, name, f.location)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(parsed.Year(), parsed.Month(), 1, 0, 0, 0, 0, f.location), nil
}

// FormatHeaderDate renders date with the header date template.
func (f *Format) FormatHeaderDate(date time.Time) string {
	return strftime.Format(f.headerDateFormat, date)
}

// ParseHeaderDate reads a date written with the header date template.
func (f *Format) ParseHeaderDate(text string) (time.Time, error) {
	parsed, err := time.ParseInLocation(f.headerDateLayout, strings.TrimSpace(text), f.location)
	if err != nil {
		return time.Time{}, err
	}
	return truncateDate(parsed), nil
}

// EntryHeader renders the header line for date.
func (f *Format) EntryHeader(date time.Time) string {
	return strings.Repeat(HeaderMarker, f.headerDepth) + " " + f.FormatHeaderDate(date)
}

// SectionHeader renders the sub-header line for section.
func (f *Format) SectionHeader(section Section) string {
	return strings.Repeat(HeaderMarker, f.subHeaderDepth) + " " + capitalize(f.Header(section))
}

// capitalize upper-cases the first rune of s and leaves the rest untouched.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
