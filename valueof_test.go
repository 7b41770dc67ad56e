package streamval

import "testing"

func TestOf_Scalars(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want []string
	}{
		{"nil", nil, []string{"Null()"}},
		{"bool", true, []string{"Bool(true)"}},
		{"int", 7, []string{"I64(7)"}},
		{"string", "hi", []string{`TextBegin(2)`, `TextFragmentComputed("hi")`, "TextEnd()"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newRecorder()
			if err := Emit(r, Of(tc.in)); err != nil {
				t.Fatalf("Emit: %v", err)
			}
			if !sameLog(r.log, tc.want) {
				t.Fatalf("got %v, want %v", r.log, tc.want)
			}
		})
	}
}

func TestOf_Slice(t *testing.T) {
	r := newRecorder()
	if err := Emit(r, Of([]int{1, 2})); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	want := []string{
		"SeqBegin(2)",
		"SeqValueBegin()", "I64(1)", "SeqValueEnd()",
		"SeqValueBegin()", "I64(2)", "SeqValueEnd()",
		"SeqEnd()",
	}
	if !sameLog(r.log, want) {
		t.Fatalf("got %v, want %v", r.log, want)
	}
}

func TestOf_MapKeysSorted(t *testing.T) {
	r := newRecorder()
	if err := Emit(r, Of(map[string]int{"b": 2, "a": 1})); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	want := []string{
		"SeqBegin(2)",
		"SeqValueBegin()",
		"SeqBegin(2)",
		"SeqValueBegin()", `TextBegin(1)`, `TextFragmentComputed("a")`, "TextEnd()", "SeqValueEnd()",
		"SeqValueBegin()", "I64(1)", "SeqValueEnd()",
		"SeqEnd()",
		"SeqValueEnd()",
		"SeqValueBegin()",
		"SeqBegin(2)",
		"SeqValueBegin()", `TextBegin(1)`, `TextFragmentComputed("b")`, "TextEnd()", "SeqValueEnd()",
		"SeqValueBegin()", "I64(2)", "SeqValueEnd()",
		"SeqEnd()",
		"SeqValueEnd()",
		"SeqEnd()",
	}
	if !sameLog(r.log, want) {
		t.Fatalf("got %v, want %v", r.log, want)
	}
}

// attachment mirrors the shape of a content-addressed blob reference:
// a small struct of scalar fields, the kind of fixture a binary-fragment
// Value implementation would wrap in practice.
type attachment struct {
	CID   string
	Bytes int64
}

func TestOf_Struct(t *testing.T) {
	r := newRecorder()
	a := attachment{CID: "sha256:ab", Bytes: 2}
	if err := Emit(r, Of(a)); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	want := []string{
		"SeqBegin(2)",
		"SeqValueBegin()",
		"SeqBegin(2)",
		"SeqValueBegin()", `TextBegin(3)`, `TextFragmentComputed("CID")`, "TextEnd()", "SeqValueEnd()",
		"SeqValueBegin()", `TextBegin(9)`, `TextFragmentComputed("sha256:ab")`, "TextEnd()", "SeqValueEnd()",
		"SeqEnd()",
		"SeqValueEnd()",
		"SeqValueBegin()",
		"SeqBegin(2)",
		"SeqValueBegin()", `TextBegin(5)`, `TextFragmentComputed("Bytes")`, "TextEnd()", "SeqValueEnd()",
		"SeqValueBegin()", "I64(2)", "SeqValueEnd()",
		"SeqEnd()",
		"SeqValueEnd()",
		"SeqEnd()",
	}
	if !sameLog(r.log, want) {
		t.Fatalf("got %v, want %v", r.log, want)
	}
}
