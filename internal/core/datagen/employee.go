package datagen

import (
	"synthetic-data-generator/internal/core/fake"
	"synthetic-data-generator/internal/core/random"
	"synthetic-data-generator/internal/core/types"
)

type EmployeeGenerator struct {
	dates fake.Dates
}

func NewEmployeeGenerator(dates fake.Dates) *EmployeeGenerator {
	return &EmployeeGenerator{dates: dates}
}

func (g *EmployeeGenerator) Kind() types.Kind {
	return types.KindEmployee
}

func (g *EmployeeGenerator) AnchorUID() string {
	return "Bob"
}

func (g *EmployeeGenerator) Generate(src *random.Source) types.Entity {
	b := newBuilder(src, g.dates)

	e := &types.Employee{}
	e.Uid = b.uid()
	e.Name = b.values.FullName()
	e.DateOfBirthValue = b.dates.DateOfBirth(src)
	e.ContactNumbers = b.phoneNumbers()
	e.EmergencyContacts = b.emergencyContacts()
	e.Address = b.address()
	e.BankDetails = b.bankDetails()
	e.TaxCode = employeeTaxCode
	e.Nationality = random.Pick(src, types.Nationalities)
	e.Manager = b.managers()
	e.HireDateValue = b.dates.HireDate(e.DateOfBirthValue, src)
	e.Grade = random.Pick(src, types.Grades)
	e.Department = random.Pick(src, types.Departments)
	e.SalaryAmount, e.SalaryBonus = b.salary()
	e.WorkLocation = b.workLocation()
	e.Sex = random.Pick(src, types.Sexes)
	return e
}
