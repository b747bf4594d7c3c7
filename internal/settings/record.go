package settings

// Entry is a single key/value pair of a saved record
type Entry struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Record is the flat representation of a form handed to whatever consumes
// saved settings. Entries keep field order.
type Record struct {
	Form    string  `json:"form" yaml:"form"`
	Entries []Entry `json:"entries" yaml:"entries"`
}

// Get returns the value stored under key
func (r Record) Get(key string) (string, bool) {
	for _, e := range r.Entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// Keys returns entry keys in order
func (r Record) Keys() []string {
	keys := make([]string, len(r.Entries))
	for i, e := range r.Entries {
		keys[i] = e.Key
	}
	return keys
}

// Map returns the entries as a map
func (r Record) Map() map[string]string {
	m := make(map[string]string, len(r.Entries))
	for _, e := range r.Entries {
		m[e.Key] = e.Value
	}
	return m
}

func (r *Record) add(key, value string) {
	r.Entries = append(r.Entries, Entry{Key: key, Value: value})
}
