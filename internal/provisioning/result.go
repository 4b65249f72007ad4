package provisioning

// Field is one key/value entry on the result record.
type Field struct {
	Key   string
	Value string
}

// Result is the structured record the action reports back to the operator:
// ordered key/value facts gathered along the way plus a distinguished
// failure signal with a human-readable cause.
type Result struct {
	failed bool
	msg    string
	fields []Field
}

// NewResult creates an empty result record.
func NewResult() *Result {
	return &Result{}
}

// Set attaches a key/value fact, replacing an earlier value for the same key.
func (r *Result) Set(key, value string) {
	for i := range r.fields {
		if r.fields[i].Key == key {
			r.fields[i].Value = value
			return
		}
	}
	r.fields = append(r.fields, Field{Key: key, Value: value})
}

// Fields returns the attached facts in insertion order.
func (r *Result) Fields() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}

// Fail marks the action as failed with a cause. The first cause wins; the
// pipeline aborts on the first failure so there is never a second.
func (r *Result) Fail(msg string) {
	if r.failed {
		return
	}
	r.failed = true
	r.msg = msg
}

// Failed reports whether the action failed.
func (r *Result) Failed() bool {
	return r.failed
}

// Message returns the failure cause, or "" when the action succeeded.
func (r *Result) Message() string {
	return r.msg
}
