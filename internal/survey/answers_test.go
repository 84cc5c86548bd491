package survey

import (
	"encoding/json"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestAnswerSetJSONDecoding(t *testing.T) {
	raw := `{"q1":"5","q2":10,"q3":["A","B"],"q4":true,"q5":4.5}`
	var set AnswerSet
	if err := json.Unmarshal([]byte(raw), &set); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got := set["q1"].Scalar(); got != "5" {
		t.Fatalf("q1 = %q", got)
	}
	if got := set["q2"].Scalar(); got != "10" {
		t.Fatalf("numeric answer = %q, want \"10\"", got)
	}
	if got := set["q3"].Items(); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Fatalf("q3 items = %v", got)
	}
	if !set["q3"].IsList() {
		t.Fatal("q3 should be a list answer")
	}
	if got := set["q4"].Scalar(); got != "true" {
		t.Fatalf("bool answer = %q", got)
	}
	if v, ok := set["q5"].Float(); !ok || v != 4.5 {
		t.Fatalf("q5 float = %v %v", v, ok)
	}
}

func TestAnswerSetYAMLDecoding(t *testing.T) {
	raw := "q1: \"5\"\nq2: 10\nq3:\n  - A\n  - B\n"
	var set AnswerSet
	if err := yaml.Unmarshal([]byte(raw), &set); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := set["q2"].Scalar(); got != "10" {
		t.Fatalf("q2 = %q", got)
	}
	if got := set["q3"].Items(); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Fatalf("q3 items = %v", got)
	}
}

func TestAnswerValueItemsSplitsDelimited(t *testing.T) {
	v := StringAnswer("Email, Phone; Chat ,")
	if got := v.Items(); !reflect.DeepEqual(got, []string{"Email", "Phone", "Chat"}) {
		t.Fatalf("items = %v", got)
	}
}

func TestAnswerValueEmpty(t *testing.T) {
	if !StringAnswer("   ").IsEmpty() {
		t.Fatal("whitespace-only scalar should be empty")
	}
	if !ListAnswer().IsEmpty() {
		t.Fatal("empty list should be empty")
	}
	if StringAnswer("x").IsEmpty() || ListAnswer("x").IsEmpty() {
		t.Fatal("answered values reported empty")
	}
}

func TestAnswerValueJSONRoundTrip(t *testing.T) {
	for _, v := range []AnswerValue{StringAnswer("hello"), ListAnswer("a", "b")} {
		data, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		var back AnswerValue
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if back.Scalar() != v.Scalar() || back.IsList() != v.IsList() {
			t.Fatalf("round trip mismatch: %v vs %v", back, v)
		}
	}
}
