package entities

// Resolution describes where a looked-up value came from.
type Resolution struct {
	Key   string
	Value string
	// Requested is the locale the caller asked for; Locale is the table that
	// supplied the value.
	Requested string
	Locale    string
	Kind      Kind
}

// FellBack reports whether the value came from a table other than the one
// requested.
func (r Resolution) FellBack() bool {
	return r.Locale != r.Requested
}

// Coverage compares a locale table against root.
type Coverage struct {
	Locale string
	// Total is the number of keys in root.
	Total int
	// Translated counts root keys the locale defines.
	Translated int
	// Missing lists root keys the locale lacks, sorted.
	Missing []string
	// Unknown lists keys the locale defines that root does not, sorted.
	Unknown []string
}

// Complete reports whether the locale defines every root key.
func (c Coverage) Complete() bool {
	return len(c.Missing) == 0
}

// Ratio is the translated share of root keys, in [0, 1].
func (c Coverage) Ratio() float64 {
	if c.Total == 0 {
		return 1
	}
	return float64(c.Translated) / float64(c.Total)
}
