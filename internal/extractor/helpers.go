package extractor

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"lead-intake-agent/internal/lead"
	"lead-intake-agent/internal/session"
)

var (
	codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")
	emailRe     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// sanitizeJSONResponse removes markdown code fences and leading/trailing prose
// that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	if matches := codeFenceRe.FindStringSubmatch(text); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.Index(text, "{")
	if start == -1 {
		return text
	}
	end := strings.LastIndex(text, "}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}

// normalizeFragment turns decoded model output into a fragment that obeys the
// extraction rules no matter what the model produced.
func normalizeFragment(raw map[string]interface{}, utterance string) lead.Fragment {
	frag := lead.Fragment{}
	for _, f := range lead.Fields {
		if v, ok := stringValue(raw[string(f)]); ok {
			frag[f] = v
		}
	}

	if last, ok := frag[lead.FieldLastName]; ok {
		frag[lead.FieldLastName] = strings.Join(strings.Fields(last), " ")
	}
	if first, ok := frag[lead.FieldFirstName]; ok {
		if tokens := strings.Fields(first); len(tokens) > 1 {
			frag[lead.FieldFirstName] = tokens[0]
			frag[lead.FieldLastName] = mergeLastName(strings.Join(tokens[1:], " "), frag[lead.FieldLastName])
		}
	}

	if email, ok := frag[lead.FieldEmail]; ok {
		email = strings.Trim(email, "<>.,;:")
		if !emailRe.MatchString(email) || !strings.Contains(strings.ToLower(utterance), strings.ToLower(email)) {
			delete(frag, lead.FieldEmail)
		} else {
			frag[lead.FieldEmail] = email
		}
	}

	if phone, ok := frag[lead.FieldPhone]; ok {
		if countDigits(phone) < minPhoneDigits || countDigits(utterance) < minPhoneDigits {
			delete(frag, lead.FieldPhone)
		}
	}

	return frag
}

// mergeLastName puts the overflow of a multi-token firstName in front of
// last, unless last already starts with it.
func mergeLastName(overflow, last string) string {
	switch {
	case last == "":
		return overflow
	case last == overflow, strings.HasPrefix(last, overflow+" "):
		return last
	default:
		return overflow + " " + last
	}
}

// stringValue reports a present, non-placeholder value.
func stringValue(v interface{}) (string, bool) {
	var s string
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		s = val
	case float64:
		s = strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return "", false
	}

	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "null", "none", "n/a", "unknown":
		return "", false
	}
	return s, true
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

func cacheKey(utterance string) string {
	return strings.ToLower(strings.TrimSpace(utterance))
}

func copyFragment(frag lead.Fragment) lead.Fragment {
	out := make(lead.Fragment, len(frag))
	for k, v := range frag {
		out[k] = v
	}
	return out
}

func formatKnown(known map[lead.Field]string) string {
	var parts []string
	for _, f := range lead.Fields {
		if v, ok := known[f]; ok && v != "" {
			parts = append(parts, fmt.Sprintf("%s=%s", f, v))
		}
	}
	if len(parts) == 0 {
		return "nothing yet"
	}
	return strings.Join(parts, ", ")
}

func formatHistory(turns []session.Turn) string {
	if len(turns) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("Conversation so far:\n")
	for _, t := range turns {
		fmt.Fprintf(&sb, "%s: %s\n", t.Role, t.Content)
	}
	sb.WriteString("\n")
	return sb.String()
}
