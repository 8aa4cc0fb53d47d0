package normalize

import (
	"strconv"
	"strings"

	"github.com/campuslens/campuslens/internal/domain/model"
)

// listDelimiter separates elements of list-valued cells such as skills.
const listDelimiter = ","

// truthy and falsy hold the accepted boolean literal encodings,
// matched case-insensitively. Anything else is absent.
var (
	truthy = map[string]bool{"yes": true, "true": true, "1": true, "y": true}
	falsy  = map[string]bool{"no": true, "false": true, "0": true, "n": true}
)

// parseCategory trims a raw cell. Case is preserved: distinct-casing
// variants stay distinct categories.
func parseCategory(raw string) string {
	return strings.TrimSpace(raw)
}

// parseNumeric parses a raw cell into a bounded numeric Value.
// Non-parseable cells are absent; parseable values outside [lo, hi]
// are present but invalid.
func parseNumeric(raw string, lo, hi float64) model.Value {
	s := strings.TrimSpace(raw)
	if s == "" {
		return model.Value{}
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return model.Value{}
	}
	return model.Value{Num: n, Present: true, Valid: n >= lo && n <= hi}
}

// parseFlag parses a raw cell into a tri-state boolean.
func parseFlag(raw string) model.Flag {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case truthy[s]:
		return model.Flag{Bool: true, Present: true}
	case falsy[s]:
		return model.Flag{Bool: false, Present: true}
	default:
		return model.Flag{}
	}
}

// parseList splits a list-valued cell on the delimiter, trimming each
// element and dropping empties. Element case is preserved.
func parseList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, listDelimiter)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
