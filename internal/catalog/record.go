package catalog

// FieldCount is the number of columns every row must have.
const FieldCount = 7

// Record is one row of a product export file. Field order matches the
// column order on disk and must round-trip identically.
type Record struct {
	Type              string
	Identification    string
	Field             string
	Locale            string
	Status            string
	DefaultContent    string
	TranslatedContent string
}

// NewRecord builds a Record from a CSV row. The row must have exactly
// FieldCount fields; the reader enforces this before calling.
func NewRecord(fields []string) Record {
	return Record{
		Type:              fields[0],
		Identification:    fields[1],
		Field:             fields[2],
		Locale:            fields[3],
		Status:            fields[4],
		DefaultContent:    fields[5],
		TranslatedContent: fields[6],
	}
}

// Fields returns the record as a CSV row in column order.
func (r Record) Fields() []string {
	return []string{
		r.Type,
		r.Identification,
		r.Field,
		r.Locale,
		r.Status,
		r.DefaultContent,
		r.TranslatedContent,
	}
}
