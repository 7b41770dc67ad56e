package streamval

import "fmt"

// recorder is a base-only Stream: it implements nothing but the ten
// required methods and records each call. Any extended method invoked
// against a recorder necessarily goes through Defaults' reduction, so
// recorder.log is exactly the base-model token sequence that reduction
// produces, the same sequence a hand-written base-only sink would see.
type recorder struct {
	Defaults
	log []string
}

func newRecorder() *recorder {
	r := &recorder{}
	r.Defaults = NewDefaults(r)
	return r
}

func (r *recorder) Null() error          { r.log = append(r.log, "Null()"); return nil }
func (r *recorder) Bool(v bool) error    { r.log = append(r.log, fmt.Sprintf("Bool(%v)", v)); return nil }
func (r *recorder) I64(v int64) error    { r.log = append(r.log, fmt.Sprintf("I64(%d)", v)); return nil }

func (r *recorder) TextBegin(n *int) error {
	r.log = append(r.log, fmt.Sprintf("TextBegin(%s)", optInt(n)))
	return nil
}

func (r *recorder) TextFragmentComputed(s string) error {
	r.log = append(r.log, fmt.Sprintf("TextFragmentComputed(%q)", s))
	return nil
}

func (r *recorder) TextEnd() error { r.log = append(r.log, "TextEnd()"); return nil }

func (r *recorder) SeqBegin(n *int) error {
	r.log = append(r.log, fmt.Sprintf("SeqBegin(%s)", optInt(n)))
	return nil
}

func (r *recorder) SeqValueBegin() error { r.log = append(r.log, "SeqValueBegin()"); return nil }
func (r *recorder) SeqValueEnd() error   { r.log = append(r.log, "SeqValueEnd()"); return nil }
func (r *recorder) SeqEnd() error        { r.log = append(r.log, "SeqEnd()"); return nil }

func optInt(n *int) string {
	if n == nil {
		return "?"
	}
	return fmt.Sprintf("%d", *n)
}

func sameLog(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
