// Package fake supplies the plausible looking values (names, addresses, dates)
// that fill generated records. Every value is derived from the caller's
// random source so output stays reproducible.
package fake

import (
	"fmt"
	"time"

	"synthetic-data-generator/internal/core/random"

	"github.com/jaswdr/faker/v2"
)

const DateLayout = "2006-01-02"

// ValueProvider produces free-text field values.
type ValueProvider interface {
	FullName() string
	Address() Address
}

type Address struct {
	StreetAddressNumber string
	StreetName          string
	City                string
	State               string
	ZipCode             string
}

type fakerProvider struct {
	faker faker.Faker
}

// NewValueProvider returns a faker backed provider that consumes src.
func NewValueProvider(src *random.Source) ValueProvider {
	return &fakerProvider{faker: faker.NewWithSeed(src)}
}

func (p *fakerProvider) FullName() string {
	person := p.faker.Person()
	return person.FirstName() + " " + person.LastName()
}

func (p *fakerProvider) Address() Address {
	addr := p.faker.Address()
	return Address{
		StreetAddressNumber: addr.BuildingNumber(),
		StreetName:          addr.StreetName(),
		City:                addr.City(),
		State:               addr.State(),
		ZipCode:             addr.PostCode(),
	}
}

// Dates draws calendar dates from fixed windows so no wall clock is consulted.
type Dates struct {
	EarliestBirth time.Time
	LatestBirth   time.Time
	// MinHireAge is the youngest age, in years, at which anyone is hired.
	MinHireAge int
	LatestHire time.Time
}

func DefaultDates() Dates {
	return Dates{
		EarliestBirth: time.Date(1950, time.January, 1, 0, 0, 0, 0, time.UTC),
		LatestBirth:   time.Date(2000, time.December, 31, 0, 0, 0, 0, time.UTC),
		MinHireAge:    18,
		LatestHire:    time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
}

func (d Dates) DateOfBirth(src *random.Source) string {
	return randomDay(src, d.EarliestBirth, d.LatestBirth).Format(DateLayout)
}

// HireDate returns a date on or after dob. A malformed dob is treated as the
// earliest birth date.
func (d Dates) HireDate(dob string, src *random.Source) string {
	born, err := time.Parse(DateLayout, dob)
	if err != nil {
		born = d.EarliestBirth
	}
	earliest := born.AddDate(d.MinHireAge, 0, 0)
	latest := d.LatestHire
	if latest.Before(earliest) {
		latest = earliest
	}
	return randomDay(src, earliest, latest).Format(DateLayout)
}

func randomDay(src *random.Source, from, to time.Time) time.Time {
	days := int(to.Sub(from).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return from.AddDate(0, 0, src.IntN(days+1))
}

// Digits formats a zero padded number drawn uniformly from [0, 10^n).
func Digits(src *random.Source, n int) string {
	bound := 1
	for i := 0; i < n; i++ {
		bound *= 10
	}
	return fmt.Sprintf("%0*d", n, src.IntN(bound))
}
