package configstore

// Record is a flat, insertion-ordered key-value mapping. All values are
// strings; booleans are carried as the literal text "yes"/"no". Keeping
// insertion order makes Save(Load(path)) reproduce the file key-for-key.
type Record struct {
	keys   []string
	values map[string]string
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{values: make(map[string]string)}
}

// Get returns the value for key, or "" if absent.
func (r *Record) Get(key string) string {
	return r.values[key]
}

// Has reports whether key is present (even with a blank value).
func (r *Record) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Set stores value under key, appending the key to the order on first use.
func (r *Record) Set(key, value string) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Keys returns the keys in insertion order.
func (r *Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of keys.
func (r *Record) Len() int {
	return len(r.keys)
}
