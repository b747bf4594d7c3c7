package settings

import (
	"fmt"
	"strconv"
)

// Settings is the behaviour shared by every settings page model
type Settings interface {
	ID() string
	Title() string
	Fields() []*Field
	Field(name string) (*Field, bool)
	SetValue(name string, v int) (clamped bool, err error)
	Step(name string, delta int) error
	Summary() string
	Save() Record
}

// Summarizer derives the summary text from the current values
type Summarizer func(Values) string

// Form holds a set of bounded fields and a summary derived from them.
// Every mutation recomputes the summary before returning.
type Form struct {
	id        string
	title     string
	fields    []*Field
	byName    map[string]*Field
	summarize Summarizer
	summary   string

	// extra contributes additional record entries placed before the summary
	extra func() []Entry
}

// NewForm builds a form; field values outside their range are clamped
func NewForm(id, title string, summarize Summarizer, fields ...Field) *Form {
	f := &Form{
		id:        id,
		title:     title,
		byName:    make(map[string]*Field, len(fields)),
		summarize: summarize,
	}
	for i := range fields {
		field := fields[i]
		field.Set(field.Value)
		f.fields = append(f.fields, &field)
		f.byName[field.Name] = &field
	}
	f.RecomputeSummary()
	return f
}

// ID returns the form identifier
func (f *Form) ID() string { return f.id }

// Title returns the display title
func (f *Form) Title() string { return f.title }

// Fields returns the fields in display order
func (f *Form) Fields() []*Field { return f.fields }

// Field returns the named field
func (f *Form) Field(name string) (*Field, bool) {
	field, ok := f.byName[name]
	return field, ok
}

// Value returns the value of the named field, 0 when unknown
func (f *Form) Value(name string) int {
	if field, ok := f.byName[name]; ok {
		return field.Value
	}
	return 0
}

// Values returns a snapshot of all field values
func (f *Form) Values() Values {
	v := make(Values, len(f.fields))
	for _, field := range f.fields {
		v[field.Name] = field.Value
	}
	return v
}

// SetValue sets the named field, clamping to its range
func (f *Form) SetValue(name string, v int) (bool, error) {
	field, ok := f.byName[name]
	if !ok {
		return false, fmt.Errorf("%w: %q in %s", ErrUnknownField, name, f.id)
	}
	clamped := field.Set(v)
	f.RecomputeSummary()
	return clamped, nil
}

// Step moves the named field by delta, staying within range
func (f *Form) Step(name string, delta int) error {
	field, ok := f.byName[name]
	if !ok {
		return fmt.Errorf("%w: %q in %s", ErrUnknownField, name, f.id)
	}
	_, err := f.SetValue(name, field.Value+delta)
	return err
}

// RecomputeSummary re-derives the summary from current values
func (f *Form) RecomputeSummary() {
	if f.summarize == nil {
		f.summary = ""
		return
	}
	f.summary = f.summarize(f.Values())
}

// Summary returns the current derived summary
func (f *Form) Summary() string { return f.summary }

// Save returns the current values as a flat record
func (f *Form) Save() Record {
	rec := Record{Form: f.id}
	for _, field := range f.fields {
		rec.add(field.Name, strconv.Itoa(field.Value))
	}
	if f.extra != nil {
		rec.Entries = append(rec.Entries, f.extra()...)
	}
	rec.add("summary", f.summary)
	return rec
}
