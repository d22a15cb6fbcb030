package record

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"time"

	"anketa/internal/core"
	"anketa/pkg/schema"
)

// numbered matches "<n>. <label>: <value>". The label stops at the first colon, so a
// label that itself contains a colon cannot be read back intact. Values cannot span
// lines; the text processors reject control characters for that reason.
var numbered = regexp.MustCompile(`^\d+\.\s*(.+?):\s*(.*)$`)

// utf8BOM prefixes records written by older Windows tooling.
var utf8BOM = []byte("\xEF\xBB\xBF")

// Codec converts surveys to and from the plain-text record format:
//
//	1. <label>: <value>
//	...
//	Анкета заполнена: dd.MM.yyyy
type Codec struct {
	clock core.Clock
}

// NewCodec creates a codec. The clock supplies the timestamp for records whose
// trailer date cannot be read.
func NewCodec(clock core.Clock) *Codec {
	return &Codec{clock: clock}
}

// Encode writes one numbered line per answer in iteration order, then the trailer.
func (c *Codec) Encode(answers *schema.Answers, createdAt time.Time) []byte {
	var buf bytes.Buffer
	n := 1
	for label, value := range answers.All() {
		fmt.Fprintf(&buf, "%d. %s: %s\n", n, label, value)
		n++
	}
	writeTrailer(&buf, createdAt)
	return buf.Bytes()
}

// EncodeSurvey encodes s. A survey without answers but with legacy fields set is
// written in the fixed five-line layout older readers expect.
func (c *Codec) EncodeSurvey(s *schema.Survey) []byte {
	if s.Answers.Len() > 0 {
		return c.Encode(s.Answers, s.CreatedAt)
	}
	return c.Encode(legacyAnswers(s), s.CreatedAt)
}

func writeTrailer(buf *bytes.Buffer, createdAt time.Time) {
	fmt.Fprintf(buf, "%s %s\n", schema.CompletedMarker, createdAt.Format(schema.DateLayout))
}

// Decode parses a record. Lines that are neither numbered answers nor the trailer are
// skipped. An unreadable trailer date falls back to the current time. Content with
// no recognizable line at all is a ParseError.
func (c *Codec) Decode(content []byte) (*schema.Survey, error) {
	now := c.clock.Now()
	answers := schema.NewAnswers()
	createdAt := now
	recognized := false

	content = bytes.TrimPrefix(content, utf8BOM)
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if idx := strings.Index(line, schema.CompletedMarker); idx >= 0 {
			recognized = true
			raw := strings.TrimSpace(line[idx+len(schema.CompletedMarker):])
			if t, err := time.ParseInLocation(schema.DateLayout, raw, now.Location()); err == nil {
				createdAt = t
			}
			continue
		}

		m := numbered.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		recognized = true
		answers.Set(strings.TrimSpace(m[1]), strings.TrimSpace(m[2]))
	}

	if !recognized {
		return nil, &core.ParseError{Message: "no answer lines or completion marker found"}
	}

	s := &schema.Survey{Answers: answers, CreatedAt: createdAt}
	ResolveLegacy(s)
	return s, nil
}
