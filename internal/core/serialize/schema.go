package serialize

import (
	"encoding/json"
	"fmt"
	"sync"

	"synthetic-data-generator/internal/core/types"

	"github.com/hamba/avro/v2"
)

const schemaNamespace = "syntheticdata"

type field struct {
	Name string `json:"name"`
	Type any    `json:"type"`
}

type record struct {
	Type   string  `json:"type"`
	Name   string  `json:"name"`
	Fields []field `json:"fields"`
}

type enum struct {
	Type    string   `json:"type"`
	Name    string   `json:"name"`
	Symbols []string `json:"symbols"`
}

type array struct {
	Type  string `json:"type"`
	Items any    `json:"items"`
}

// schemaBuilder emits a named type in full the first time it is used and by
// name afterwards, as Avro requires.
type schemaBuilder struct {
	defined map[string]bool
}

func (b *schemaBuilder) named(name string, build func() any) any {
	if b.defined[name] {
		return name
	}
	b.defined[name] = true
	return build()
}

func (b *schemaBuilder) enum(name string, symbols []string) any {
	return b.named(name, func() any {
		return enum{Type: "enum", Name: name, Symbols: symbols}
	})
}

func (b *schemaBuilder) phoneNumbers() any {
	return array{Type: "array", Items: b.named("PhoneNumber", func() any {
		return record{Type: "record", Name: "PhoneNumber", Fields: []field{
			{Name: "type", Type: "string"},
			{Name: "number", Type: "string"},
		}}
	})}
}

func (b *schemaBuilder) emergencyContacts() any {
	return array{Type: "array", Items: b.named("EmergencyContact", func() any {
		return record{Type: "record", Name: "EmergencyContact", Fields: []field{
			{Name: "contactName", Type: "string"},
			{Name: "relation", Type: b.enum("Relation", types.Relations)},
			{Name: "contactNumbers", Type: b.phoneNumbers()},
		}}
	})}
}

func (b *schemaBuilder) address() any {
	return b.named("Address", func() any {
		return record{Type: "record", Name: "Address", Fields: []field{
			{Name: "streetAddressNumber", Type: "string"},
			{Name: "streetName", Type: "string"},
			{Name: "city", Type: "string"},
			{Name: "state", Type: "string"},
			{Name: "zipCode", Type: "string"},
		}}
	})
}

func (b *schemaBuilder) bankDetails() any {
	return b.named("BankDetails", func() any {
		return record{Type: "record", Name: "BankDetails", Fields: []field{
			{Name: "sortCode", Type: "string"},
			{Name: "accountNumber", Type: "string"},
		}}
	})
}

func (b *schemaBuilder) managers() any {
	return array{Type: "array", Items: b.named("Manager", func() any {
		return record{Type: "record", Name: "Manager", Fields: []field{
			{Name: "uid", Type: "string"},
			{Name: "manager", Type: array{Type: "array", Items: "Manager"}},
			{Name: "managerType", Type: "string"},
		}}
	})}
}

func (b *schemaBuilder) workLocation() any {
	return b.named("WorkLocation", func() any {
		return record{Type: "record", Name: "WorkLocation", Fields: []field{
			{Name: "workLocationName", Type: b.enum("WorkLocationName", types.WorkLocationNames)},
			{Name: "address", Type: b.address()},
		}}
	})
}

func (b *schemaBuilder) entity(kind types.Kind) (map[string]any, error) {
	var fields []field
	switch kind {
	case types.KindEmployee:
		fields = []field{
			{Name: "uid", Type: "string"},
			{Name: "name", Type: "string"},
			{Name: "dateOfBirth", Type: "string"},
			{Name: "contactNumbers", Type: b.phoneNumbers()},
			{Name: "emergencyContacts", Type: b.emergencyContacts()},
			{Name: "address", Type: b.address()},
			{Name: "bankDetails", Type: b.bankDetails()},
			{Name: "taxCode", Type: "string"},
			{Name: "nationality", Type: b.enum("Nationality", types.Nationalities)},
			{Name: "manager", Type: b.managers()},
			{Name: "hireDate", Type: "string"},
			{Name: "grade", Type: b.enum("Grade", types.Grades)},
			{Name: "department", Type: b.enum("Department", types.Departments)},
			{Name: "salaryAmount", Type: "int"},
			{Name: "salaryBonus", Type: "int"},
			{Name: "workLocation", Type: b.workLocation()},
			{Name: "sex", Type: b.enum("Sex", types.Sexes)},
		}
	case types.KindTeacher:
		fields = []field{
			{Name: "uid", Type: "string"},
			{Name: "name", Type: "string"},
			{Name: "dateOfBirth", Type: "string"},
			{Name: "contactNumbers", Type: b.phoneNumbers()},
			{Name: "emergencyContacts", Type: b.emergencyContacts()},
			{Name: "address", Type: b.address()},
			{Name: "nationality", Type: b.enum("Nationality", types.Nationalities)},
			{Name: "subject", Type: b.enum("Subject", types.Subjects)},
			{Name: "department", Type: b.enum("Department", types.Departments)},
			{Name: "manager", Type: b.managers()},
			{Name: "hireDate", Type: "string"},
			{Name: "salaryAmount", Type: "int"},
			{Name: "salaryBonus", Type: "int"},
			{Name: "workLocation", Type: b.workLocation()},
			{Name: "sex", Type: b.enum("Sex", types.Sexes)},
		}
	default:
		return nil, fmt.Errorf("no schema for kind '%s'", kind)
	}

	name := "Employee"
	if kind == types.KindTeacher {
		name = "Teacher"
	}
	return map[string]any{
		"type":      "record",
		"name":      name,
		"namespace": schemaNamespace + "." + string(kind),
		"fields":    fields,
	}, nil
}

var (
	schemaCache   = map[types.Kind]avro.Schema{}
	schemaCacheMu sync.Mutex
)

// SchemaJSON renders the Avro schema describing entities of kind.
func SchemaJSON(kind types.Kind) (string, error) {
	b := &schemaBuilder{defined: map[string]bool{}}
	def, err := b.entity(kind)
	if err != nil {
		return "", err
	}
	data, err := json.Marshal(def)
	if err != nil {
		return "", fmt.Errorf("error encoding schema for kind '%s': %w", kind, err)
	}
	return string(data), nil
}

// Schema returns the parsed schema for kind, parsing it once per process.
func Schema(kind types.Kind) (avro.Schema, error) {
	schemaCacheMu.Lock()
	defer schemaCacheMu.Unlock()

	if schema, ok := schemaCache[kind]; ok {
		return schema, nil
	}

	def, err := SchemaJSON(kind)
	if err != nil {
		return nil, err
	}
	schema, err := avro.Parse(def)
	if err != nil {
		return nil, fmt.Errorf("error parsing schema for kind '%s': %w", kind, err)
	}
	schemaCache[kind] = schema
	return schema, nil
}
