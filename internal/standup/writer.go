package standup

import (
	"bufio"
	"bytes"
	"io"
)

// Serializer renders entries back into standup markdown.
type Serializer struct {
	format *Format
}

// NewSerializer returns a serializer for format.
func NewSerializer(format *Format) *Serializer {
	return &Serializer{format: format}
}

// Encode writes list to w in the list's current order. Empty sections are
// skipped and every entry block ends with a blank line.
func (s *Serializer) Encode(w io.Writer, list *EntryList) error {
	bw := bufio.NewWriter(w)
	for _, entry := range list.Entries() {
		s.writeEntry(bw, entry)
	}
	return bw.Flush()
}

// Render returns list as markdown.
func (s *Serializer) Render(list *EntryList) []byte {
	var buf bytes.Buffer
	_ = s.Encode(&buf, list)
	return buf.Bytes()
}

func (s *Serializer) writeEntry(w *bufio.Writer, entry *Entry) {
	w.WriteString(s.format.EntryHeader(entry.Date))
	w.WriteByte('\n')
	for _, section := range s.format.SubHeaderOrder() {
		tasks := entry.Tasks(section)
		if len(tasks) == 0 {
			continue
		}
		w.WriteString(s.format.SectionHeader(section))
		w.WriteByte('\n')
		for _, task := range tasks {
			w.WriteString(s.format.BulletCharacter())
			w.WriteByte(' ')
			w.WriteString(task)
			w.WriteByte('\n')
		}
	}
	w.WriteByte('\n')
}
