package survey

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// AnswerValue is one respondent answer: either a scalar (text, a numeric
// string) or an ordered sequence of selections. JSON/YAML payloads may carry
// it as a string, a number, a bool, or an array of those; everything is
// normalized to strings on decode.
type AnswerValue struct {
	scalar string
	items  []string
	isList bool
}

// StringAnswer wraps a scalar answer.
func StringAnswer(s string) AnswerValue { return AnswerValue{scalar: s} }

// ListAnswer wraps an ordered multi-selection answer.
func ListAnswer(items ...string) AnswerValue {
	return AnswerValue{items: append([]string(nil), items...), isList: true}
}

// IsList reports whether the answer was supplied as a sequence.
func (v AnswerValue) IsList() bool { return v.isList }

// IsEmpty reports whether nothing was answered.
func (v AnswerValue) IsEmpty() bool {
	if v.isList {
		return len(v.items) == 0
	}
	return strings.TrimSpace(v.scalar) == ""
}

// Scalar returns the answer as a single string. Sequences collapse to a
// comma-joined form so scalar consumers (presence checks, equality) stay total.
func (v AnswerValue) Scalar() string {
	if v.isList {
		return strings.Join(v.items, ", ")
	}
	return v.scalar
}

// Items returns the answer as elements. Scalars are split on commas and
// semicolons, matching how multi-select widgets serialize into one string.
func (v AnswerValue) Items() []string {
	if v.isList {
		return v.items
	}
	if strings.TrimSpace(v.scalar) == "" {
		return nil
	}
	parts := strings.FieldsFunc(v.scalar, func(r rune) bool { return r == ',' || r == ';' })
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Float parses the scalar form as a number.
func (v AnswerValue) Float() (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v.Scalar()), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func (v AnswerValue) MarshalJSON() ([]byte, error) {
	if v.isList {
		return json.Marshal(v.items)
	}
	return json.Marshal(v.scalar)
}

func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	av, err := coerceAnswer(raw)
	if err != nil {
		return err
	}
	*v = av
	return nil
}

func (v AnswerValue) MarshalYAML() (interface{}, error) {
	if v.isList {
		return v.items, nil
	}
	return v.scalar, nil
}

func (v *AnswerValue) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw interface{}
	if err := unmarshal(&raw); err != nil {
		return err
	}
	av, err := coerceAnswer(raw)
	if err != nil {
		return err
	}
	*v = av
	return nil
}

func coerceAnswer(raw interface{}) (AnswerValue, error) {
	switch t := raw.(type) {
	case nil:
		return AnswerValue{}, nil
	case string:
		return StringAnswer(t), nil
	case bool:
		return StringAnswer(strconv.FormatBool(t)), nil
	case float64:
		return StringAnswer(formatNumber(t)), nil
	case int:
		return StringAnswer(strconv.Itoa(t)), nil
	case []interface{}:
		items := make([]string, 0, len(t))
		for _, e := range t {
			switch s := e.(type) {
			case string:
				items = append(items, s)
			case float64:
				items = append(items, formatNumber(s))
			case int:
				items = append(items, strconv.Itoa(s))
			case bool:
				items = append(items, strconv.FormatBool(s))
			default:
				return AnswerValue{}, fmt.Errorf("answer element must be scalar, got %T", e)
			}
		}
		return ListAnswer(items...), nil
	default:
		return AnswerValue{}, fmt.Errorf("answer must be scalar or sequence, got %T", raw)
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// AnswerSet is a read-only snapshot of answers keyed by question id.
type AnswerSet map[string]AnswerValue

// Get looks up an answer; the zero AnswerValue stands in for "not answered".
func (s AnswerSet) Get(questionID string) (AnswerValue, bool) {
	v, ok := s[questionID]
	return v, ok
}
