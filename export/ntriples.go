package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Emit writes records in the given format.
func Emit(w io.Writer, records []Record, format Format) error {
	switch format {
	case FormatNTriples:
		return EmitNTriples(w, records)
	case FormatTurtle:
		return EmitTurtle(w, records)
	default:
		return fmt.Errorf("export.Emit: unsupported format %q", format)
	}
}

// EmitNTriples writes one N-Triples line per record.
func EmitNTriples(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)
	for _, rec := range records {
		if _, err := fmt.Fprintf(bw, "<%s> <%s> %s .\n",
			rec.Subject, rec.Predicate, formatObject(rec)); err != nil {
			return fmt.Errorf("export.EmitNTriples: %w", err)
		}
	}
	return bw.Flush()
}

// EmitTurtle writes records grouped by subject with prefix declarations.
// Turtle output is for inspection; round-trip loading uses N-Triples.
func EmitTurtle(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)

	prefixes := [][2]string{
		{"rdf", "http://www.w3.org/1999/02/22-rdf-syntax-ns#"},
		{"rdfs", "http://www.w3.org/2000/01/rdf-schema#"},
		{"skos", "http://www.w3.org/2004/02/skos/core#"},
		{"xsd", "http://www.w3.org/2001/XMLSchema#"},
	}
	for _, p := range prefixes {
		if _, err := fmt.Fprintf(bw, "@prefix %s: <%s> .\n", p[0], p[1]); err != nil {
			return fmt.Errorf("export.EmitTurtle: %w", err)
		}
	}
	if _, err := fmt.Fprintln(bw); err != nil {
		return fmt.Errorf("export.EmitTurtle: %w", err)
	}

	// Group consecutive records by subject, preserving record order.
	for i := 0; i < len(records); {
		subject := records[i].Subject
		j := i
		for j < len(records) && records[j].Subject == subject {
			j++
		}

		if _, err := fmt.Fprintf(bw, "<%s>\n", subject); err != nil {
			return fmt.Errorf("export.EmitTurtle: %w", err)
		}
		for k := i; k < j; k++ {
			terminator := " ;"
			if k == j-1 {
				terminator = " ."
			}
			if _, err := fmt.Fprintf(bw, "    <%s> %s%s\n",
				records[k].Predicate, formatObject(records[k]), terminator); err != nil {
				return fmt.Errorf("export.EmitTurtle: %w", err)
			}
		}
		if _, err := fmt.Fprintln(bw); err != nil {
			return fmt.Errorf("export.EmitTurtle: %w", err)
		}
		i = j
	}

	return bw.Flush()
}

// ParseNTriples reads N-Triples lines into records. Blank lines and
// #-comments are skipped. Parse errors carry the line number.
func ParseNTriples(r io.Reader) ([]Record, error) {
	var records []Record

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		rec, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("export.ParseNTriples: line %d: %w", lineNo, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("export.ParseNTriples: %w", err)
	}
	return records, nil
}

// parseLine parses a single `<s> <p> <o> .` or `<s> <p> "lit"@lang .` line.
func parseLine(line string) (Record, error) {
	rest := line

	subject, rest, err := parseIRI(rest)
	if err != nil {
		return Record{}, fmt.Errorf("subject: %w", err)
	}
	predicate, rest, err := parseIRI(rest)
	if err != nil {
		return Record{}, fmt.Errorf("predicate: %w", err)
	}

	rec := Record{Subject: subject, Predicate: predicate}
	rest = strings.TrimLeft(rest, " \t")
	switch {
	case strings.HasPrefix(rest, "<"):
		obj, tail, err := parseIRI(rest)
		if err != nil {
			return Record{}, fmt.Errorf("object: %w", err)
		}
		rec.Object = obj
		rest = tail
	case strings.HasPrefix(rest, `"`):
		lit, lang, tail, err := parseLiteral(rest)
		if err != nil {
			return Record{}, fmt.Errorf("object: %w", err)
		}
		rec.Object = lit
		rec.IsLiteral = true
		rec.Language = lang
		rest = tail
	default:
		return Record{}, fmt.Errorf("unexpected object token %q", rest)
	}

	rest = strings.TrimSpace(rest)
	if rest != "." {
		return Record{}, fmt.Errorf("missing terminating dot, got %q", rest)
	}
	return rec, nil
}

// parseIRI consumes a leading `<...>` token and returns its contents and
// the remaining input.
func parseIRI(s string) (string, string, error) {
	s = strings.TrimLeft(s, " \t")
	if !strings.HasPrefix(s, "<") {
		return "", "", fmt.Errorf("expected '<', got %q", s)
	}
	end := strings.IndexByte(s, '>')
	if end < 0 {
		return "", "", fmt.Errorf("unterminated IRI in %q", s)
	}
	return s[1:end], s[end+1:], nil
}

// parseLiteral consumes a leading quoted literal with optional @lang or
// ^^<datatype> suffix and returns the unescaped text, language tag, and
// remaining input.
func parseLiteral(s string) (text, lang, rest string, err error) {
	var sb strings.Builder
	i := 1 // skip opening quote
	for i < len(s) {
		c := s[i]
		if c == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			case '"':
				sb.WriteByte('"')
			case '\\':
				sb.WriteByte('\\')
			default:
				return "", "", "", fmt.Errorf("unknown escape \\%c", s[i+1])
			}
			i += 2
			continue
		}
		if c == '"' {
			break
		}
		sb.WriteByte(c)
		i++
	}
	if i >= len(s) {
		return "", "", "", fmt.Errorf("unterminated literal in %q", s)
	}
	rest = s[i+1:]

	if strings.HasPrefix(rest, "@") {
		end := strings.IndexAny(rest, " \t")
		if end < 0 {
			end = len(rest)
		}
		lang = rest[1:end]
		rest = rest[end:]
	} else if strings.HasPrefix(rest, "^^") {
		// datatype annotation; semlink round-trips plain and
		// language-tagged literals, the datatype IRI is dropped
		iriStart := strings.IndexByte(rest, '<')
		iriEnd := strings.IndexByte(rest, '>')
		if iriStart < 0 || iriEnd < iriStart {
			return "", "", "", fmt.Errorf("malformed datatype in %q", rest)
		}
		rest = rest[iriEnd+1:]
	}

	return sb.String(), lang, rest, nil
}

// formatObject renders a record's object term.
func formatObject(rec Record) string {
	if !rec.IsLiteral {
		return fmt.Sprintf("<%s>", rec.Object)
	}
	out := `"` + escapeLiteral(rec.Object) + `"`
	if rec.Language != "" {
		out += "@" + rec.Language
	}
	return out
}

// escapeLiteral escapes the characters the parser unescapes.
func escapeLiteral(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
