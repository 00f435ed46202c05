// Package datagen turns a random source into personnel records.
package datagen

import (
	"fmt"
	"math"
	"strconv"

	"synthetic-data-generator/internal/core/fake"
	"synthetic-data-generator/internal/core/random"
	"synthetic-data-generator/internal/core/types"
)

// Generator builds one entity of a fixed kind per call. Field values are drawn
// from src in a fixed order, so the same source state yields the same entity.
type Generator interface {
	Kind() types.Kind
	Generate(src *random.Source) types.Entity
	// AnchorUID replaces the uid of the first root manager of the first record
	// in every file.
	AnchorUID() string
}

const (
	minManagerDepth   = 2
	managerDepthRange = 3

	minSalary        = 20_000
	salaryRange      = 100_000
	salaryBonusRange = 10_000

	maxExtraPhoneNumbers = 3
	phoneNumberDigits    = 10
	maxExtraContacts     = 4

	sortCodeDigits      = 6
	accountNumberDigits = 8

	employeeTaxCode = "11500L"
)

var generators = map[types.Kind]Generator{
	types.KindEmployee: NewEmployeeGenerator(fake.DefaultDates()),
	types.KindTeacher:  NewTeacherGenerator(fake.DefaultDates()),
}

func ForKind(kind types.Kind) (Generator, error) {
	gen, ok := generators[kind]
	if !ok {
		return nil, fmt.Errorf("no generator registered for kind '%s'", kind)
	}
	return gen, nil
}

// builder holds the per-entity state shared by the field helpers.
type builder struct {
	src    *random.Source
	values fake.ValueProvider
	dates  fake.Dates
}

func newBuilder(src *random.Source, dates fake.Dates) *builder {
	return &builder{src: src, values: fake.NewValueProvider(src), dates: dates}
}

func (b *builder) uid() string {
	return strconv.Itoa(b.src.IntN(math.MaxInt32))
}

func (b *builder) phoneNumbers() []types.PhoneNumber {
	numbers := make([]types.PhoneNumber, 1+b.src.IntN(maxExtraPhoneNumbers))
	numbers[0] = types.PhoneNumber{Type: types.PrimaryPhoneNumberType, Number: b.phoneNumber()}
	for i := 1; i < len(numbers); i++ {
		numbers[i] = types.PhoneNumber{
			Type:   random.Pick(b.src, types.PhoneNumberTypes),
			Number: b.phoneNumber(),
		}
	}
	return numbers
}

func (b *builder) phoneNumber() string {
	return "0" + fake.Digits(b.src, phoneNumberDigits)
}

func (b *builder) emergencyContacts() []types.EmergencyContact {
	contacts := make([]types.EmergencyContact, 1+b.src.IntN(maxExtraContacts))
	for i := range contacts {
		contacts[i] = types.EmergencyContact{
			ContactName:    b.values.FullName(),
			Relation:       random.Pick(b.src, types.Relations),
			ContactNumbers: b.phoneNumbers(),
		}
	}
	return contacts
}

func (b *builder) address() types.Address {
	addr := b.values.Address()
	return types.Address{
		StreetAddressNumber: addr.StreetAddressNumber,
		StreetName:          addr.StreetName,
		City:                addr.City,
		State:               addr.State,
		ZipCode:             addr.ZipCode,
	}
}

func (b *builder) bankDetails() types.BankDetails {
	return types.BankDetails{
		SortCode:      fake.Digits(b.src, sortCodeDigits),
		AccountNumber: fake.Digits(b.src, accountNumberDigits),
	}
}

// managers draws the forest depth and builds the three root trees. Leaves
// have a nil manager list.
func (b *builder) managers() []types.Manager {
	depth := minManagerDepth + b.src.IntN(managerDepthRange)
	return b.managerLevel(depth)
}

func (b *builder) managerLevel(depth int) []types.Manager {
	level := make([]types.Manager, len(types.ManagerTypes))
	for i, managerType := range types.ManagerTypes {
		node := types.Manager{Uid: b.uid(), ManagerType: managerType}
		if depth > 1 {
			node.Manager = b.managerLevel(depth - 1)
		}
		level[i] = node
	}
	return level
}

func (b *builder) workLocation() types.WorkLocation {
	return types.WorkLocation{
		Address:          b.address(),
		WorkLocationName: random.Pick(b.src, types.WorkLocationNames),
	}
}

func (b *builder) salary() (int32, int32) {
	amount := int32(minSalary + b.src.IntN(salaryRange))
	bonus := int32(b.src.IntN(salaryBonusRange))
	return amount, bonus
}
