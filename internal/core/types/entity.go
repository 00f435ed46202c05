package types

import (
	"fmt"
	"strings"
)

type Kind string

const (
	KindEmployee Kind = "employee"
	KindTeacher  Kind = "teacher"
)

var Kinds = []Kind{KindEmployee, KindTeacher}

// ParseKind accepts the full kind name or its single letter code, ignoring case.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "employee", "e":
		return KindEmployee, nil
	case "teacher", "t":
		return KindTeacher, nil
	}
	return "", fmt.Errorf("invalid record kind '%s', must be one of employee (E) or teacher (T)", s)
}

// Letter is the code used in output file names.
func (k Kind) Letter() string {
	switch k {
	case KindEmployee:
		return "E"
	case KindTeacher:
		return "T"
	}
	return "?"
}

// Entity is a generated personnel record.
type Entity interface {
	Kind() Kind
	UID() string
	Managers() []Manager
	SetManagers([]Manager)
	DateOfBirth() string
	HireDate() string
}

type PhoneNumber struct {
	Type   string `json:"type" avro:"type"`
	Number string `json:"number" avro:"number"`
}

type EmergencyContact struct {
	ContactName    string        `json:"contactName" avro:"contactName"`
	Relation       string        `json:"relation" avro:"relation"`
	ContactNumbers []PhoneNumber `json:"contactNumbers" avro:"contactNumbers"`
}

type Address struct {
	StreetAddressNumber string `json:"streetAddressNumber" avro:"streetAddressNumber"`
	StreetName          string `json:"streetName" avro:"streetName"`
	City                string `json:"city" avro:"city"`
	State               string `json:"state" avro:"state"`
	ZipCode             string `json:"zipCode" avro:"zipCode"`
}

type BankDetails struct {
	SortCode      string `json:"sortCode" avro:"sortCode"`
	AccountNumber string `json:"accountNumber" avro:"accountNumber"`
}

type WorkLocation struct {
	WorkLocationName string  `json:"workLocationName" avro:"workLocationName"`
	Address          Address `json:"address" avro:"address"`
}

// Manager is a node in the reporting forest attached to every entity.
type Manager struct {
	Uid         string    `json:"uid" avro:"uid"`
	Manager     []Manager `json:"manager" avro:"manager"`
	ManagerType string    `json:"managerType" avro:"managerType"`
}

// Depth returns the number of levels in the tree rooted at m.
func (m Manager) Depth() int {
	depth := 0
	for _, child := range m.Manager {
		depth = max(depth, child.Depth())
	}
	return depth + 1
}

type Employee struct {
	Uid               string             `json:"uid" avro:"uid"`
	Name              string             `json:"name" avro:"name"`
	DateOfBirthValue  string             `json:"dateOfBirth" avro:"dateOfBirth"`
	ContactNumbers    []PhoneNumber      `json:"contactNumbers" avro:"contactNumbers"`
	EmergencyContacts []EmergencyContact `json:"emergencyContacts" avro:"emergencyContacts"`
	Address           Address            `json:"address" avro:"address"`
	BankDetails       BankDetails        `json:"bankDetails" avro:"bankDetails"`
	TaxCode           string             `json:"taxCode" avro:"taxCode"`
	Nationality       string             `json:"nationality" avro:"nationality"`
	Manager           []Manager          `json:"manager" avro:"manager"`
	HireDateValue     string             `json:"hireDate" avro:"hireDate"`
	Grade             string             `json:"grade" avro:"grade"`
	Department        string             `json:"department" avro:"department"`
	SalaryAmount      int32              `json:"salaryAmount" avro:"salaryAmount"`
	SalaryBonus       int32              `json:"salaryBonus" avro:"salaryBonus"`
	WorkLocation      WorkLocation       `json:"workLocation" avro:"workLocation"`
	Sex               string             `json:"sex" avro:"sex"`
}

func (e *Employee) Kind() Kind { return KindEmployee }
func (e *Employee) UID() string { return e.Uid }
func (e *Employee) Managers() []Manager { return e.Manager }
func (e *Employee) SetManagers(m []Manager) { e.Manager = m }
func (e *Employee) DateOfBirth() string { return e.DateOfBirthValue }
func (e *Employee) HireDate() string { return e.HireDateValue }

type Teacher struct {
	Uid               string             `json:"uid" avro:"uid"`
	Name              string             `json:"name" avro:"name"`
	DateOfBirthValue  string             `json:"dateOfBirth" avro:"dateOfBirth"`
	ContactNumbers    []PhoneNumber      `json:"contactNumbers" avro:"contactNumbers"`
	EmergencyContacts []EmergencyContact `json:"emergencyContacts" avro:"emergencyContacts"`
	Address           Address            `json:"address" avro:"address"`
	Nationality       string             `json:"nationality" avro:"nationality"`
	Subject           string             `json:"subject" avro:"subject"`
	Department        string             `json:"department" avro:"department"`
	Manager           []Manager          `json:"manager" avro:"manager"`
	HireDateValue     string             `json:"hireDate" avro:"hireDate"`
	SalaryAmount      int32              `json:"salaryAmount" avro:"salaryAmount"`
	SalaryBonus       int32              `json:"salaryBonus" avro:"salaryBonus"`
	WorkLocation      WorkLocation       `json:"workLocation" avro:"workLocation"`
	Sex               string             `json:"sex" avro:"sex"`
}

func (t *Teacher) Kind() Kind { return KindTeacher }
func (t *Teacher) UID() string { return t.Uid }
func (t *Teacher) Managers() []Manager { return t.Manager }
func (t *Teacher) SetManagers(m []Manager) { t.Manager = m }
func (t *Teacher) DateOfBirth() string { return t.DateOfBirthValue }
func (t *Teacher) HireDate() string { return t.HireDateValue }
