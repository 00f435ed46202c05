package datagen

import (
	"synthetic-data-generator/internal/core/fake"
	"synthetic-data-generator/internal/core/random"
	"synthetic-data-generator/internal/core/types"
)

type TeacherGenerator struct {
	dates fake.Dates
}

func NewTeacherGenerator(dates fake.Dates) *TeacherGenerator {
	return &TeacherGenerator{dates: dates}
}

func (g *TeacherGenerator) Kind() types.Kind {
	return types.KindTeacher
}

func (g *TeacherGenerator) AnchorUID() string {
	return "Peter"
}

func (g *TeacherGenerator) Generate(src *random.Source) types.Entity {
	b := newBuilder(src, g.dates)

	t := &types.Teacher{}
	t.Uid = b.uid()
	t.Name = b.values.FullName()
	t.DateOfBirthValue = b.dates.DateOfBirth(src)
	t.ContactNumbers = b.phoneNumbers()
	t.EmergencyContacts = b.emergencyContacts()
	t.Address = b.address()
	t.Nationality = random.Pick(src, types.Nationalities)
	t.Subject = random.Pick(src, types.Subjects)
	t.Department = random.Pick(src, types.Departments)
	t.Manager = b.managers()
	t.HireDateValue = b.dates.HireDate(t.DateOfBirthValue, src)
	t.SalaryAmount, t.SalaryBonus = b.salary()
	t.WorkLocation = b.workLocation()
	t.Sex = random.Pick(src, types.Sexes)
	return t
}
