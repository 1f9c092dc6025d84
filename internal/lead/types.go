package lead

import "strings"

// Field names a Lead Record field. Values match the downstream JSON keys.
type Field string

const (
	FieldFirstName  Field = "firstName"
	FieldLastName   Field = "lastName"
	FieldEmail      Field = "email"
	FieldPhone      Field = "phone"
	FieldLeadSource Field = "leadSource"
)

// Fields is the closed schema in canonical order.
var Fields = []Field{FieldFirstName, FieldLastName, FieldEmail, FieldPhone, FieldLeadSource}

// Valid reports whether f belongs to the schema.
func (f Field) Valid() bool {
	for _, known := range Fields {
		if f == known {
			return true
		}
	}
	return false
}

// JoinFields renders fields as "a, b, c".
func JoinFields(fields []Field) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = string(f)
	}
	return strings.Join(parts, ", ")
}

// Fragment is a partial Lead Record produced by one extraction.
// A field is absent when its key is missing; empty values are treated as absent.
type Fragment map[Field]string

// Record is the JSON body sent to the downstream lead API.
type Record struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	LeadSource string `json:"leadSource"`
}

func recordFrom(values map[Field]string) Record {
	return Record{
		FirstName:  values[FieldFirstName],
		LastName:   values[FieldLastName],
		Email:      values[FieldEmail],
		Phone:      values[FieldPhone],
		LeadSource: values[FieldLeadSource],
	}
}

// Snapshot is a read-only copy of a collector's state.
type Snapshot struct {
	Values  map[Field]string
	Missing []Field
	Ready   bool
	LeadID  string
}
