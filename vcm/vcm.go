// Package vcm manages the volunteer, caregiver and medical professional
// registries.
package vcm

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/pallium-care/console/validation"
)

type Role string

const (
	RoleVolunteer Role = "volunteer"
	RoleCaregiver Role = "caregiver"
	RoleMedical   Role = "medical"
)

var Roles = []Role{RoleVolunteer, RoleCaregiver, RoleMedical}

type Volunteer struct {
	Id           string `json:"id,omitempty" form:"id"`
	Name         string `json:"name" form:"name"`
	PhoneNumber  string `json:"phone_number" form:"phone_number"`
	Email        string `json:"email,omitempty" form:"email"`
	Address      string `json:"address,omitempty" form:"address"`
	Availability string `json:"availability,omitempty" form:"availability"`
	Skills       string `json:"skills,omitempty" form:"skills"`
	Notes        string `json:"notes,omitempty" form:"notes"`
}

type Caregiver struct {
	Id             string `json:"id,omitempty" form:"id"`
	Name           string `json:"name" form:"name"`
	PhoneNumber    string `json:"phone_number" form:"phone_number"`
	Email          string `json:"email,omitempty" form:"email"`
	Address        string `json:"address,omitempty" form:"address"`
	Availability   string `json:"availability,omitempty" form:"availability"`
	Experience     string `json:"experience,omitempty" form:"experience"`
	Certifications string `json:"certifications,omitempty" form:"certifications"`
}

type MedicalProfessional struct {
	Id             string `json:"id,omitempty" form:"id"`
	Name           string `json:"name" form:"name"`
	PhoneNumber    string `json:"phone_number" form:"phone_number"`
	Email          string `json:"email,omitempty" form:"email"`
	LicenseNumber  string `json:"license_number" form:"license_number"`
	Specialization string `json:"specialization,omitempty" form:"specialization"`
	Availability   string `json:"availability,omitempty" form:"availability"`
}

// Member is the common view of a registry entry used by pickers.
type Member struct {
	Id   string
	Name string
	Role Role
}

func (v Volunteer) Member() Member {
	return Member{Id: v.Id, Name: v.Name, Role: RoleVolunteer}
}

func (c Caregiver) Member() Member {
	return Member{Id: c.Id, Name: c.Name, Role: RoleCaregiver}
}

func (m MedicalProfessional) Member() Member {
	return Member{Id: m.Id, Name: m.Name, Role: RoleMedical}
}

func validateContact(errs validation.Errors, name, phone, email string) {
	errs.Required("name", name, "Name")
	errs.Phone("phone_number", phone)
	errs.OptionalEmail("email", email)
}

func ValidateVolunteer(v Volunteer) validation.Errors {
	errs := validation.Errors{}
	validateContact(errs, v.Name, v.PhoneNumber, v.Email)
	return errs
}

func ValidateCaregiver(c Caregiver) validation.Errors {
	errs := validation.Errors{}
	validateContact(errs, c.Name, c.PhoneNumber, c.Email)
	return errs
}

func ValidateMedicalProfessional(m MedicalProfessional) validation.Errors {
	errs := validation.Errors{}
	validateContact(errs, m.Name, m.PhoneNumber, m.Email)
	errs.License("license_number", m.LicenseNumber)
	return errs
}

// NormalizeList trims the items of a comma separated list and drops blanks and
// repeats, keeping the first spelling of each item.
func NormalizeList(value string) string {
	seen := mapset.NewThreadUnsafeSet[string]()
	items := make([]string, 0)
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item == "" || !seen.Add(strings.ToLower(item)) {
			continue
		}
		items = append(items, item)
	}
	return strings.Join(items, ", ")
}

func normalizeVolunteer(v Volunteer) Volunteer {
	v.Name = strings.TrimSpace(v.Name)
	v.PhoneNumber = validation.CleanPhone(v.PhoneNumber)
	v.Email = strings.TrimSpace(v.Email)
	v.Skills = NormalizeList(v.Skills)
	return v
}

func normalizeCaregiver(c Caregiver) Caregiver {
	c.Name = strings.TrimSpace(c.Name)
	c.PhoneNumber = validation.CleanPhone(c.PhoneNumber)
	c.Email = strings.TrimSpace(c.Email)
	c.Certifications = NormalizeList(c.Certifications)
	return c
}

func normalizeMedicalProfessional(m MedicalProfessional) MedicalProfessional {
	m.Name = strings.TrimSpace(m.Name)
	m.PhoneNumber = validation.CleanPhone(m.PhoneNumber)
	m.Email = strings.TrimSpace(m.Email)
	m.LicenseNumber = strings.TrimSpace(m.LicenseNumber)
	return m
}
