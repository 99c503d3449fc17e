package patients

import (
	"strings"

	"github.com/pallium-care/console/location"
	"github.com/pallium-care/console/validation"
)

type SupportType string

const (
	SupportMedical   SupportType = "medical"
	SupportCaregiver SupportType = "caregiver"
	SupportVolunteer SupportType = "volunteer"
	SupportOther     SupportType = "other"
)

var SupportTypes = []SupportType{SupportMedical, SupportCaregiver, SupportVolunteer, SupportOther}

// Form fields whose visibility depends on the support type.
const (
	FieldDisease         = "disease"
	FieldMedication      = "medication"
	FieldCareDetails     = "care_details"
	FieldProxyName       = "proxy_name"
	FieldProxyPhone      = "proxy_phone"
	FieldAdditionalNotes = "additional_notes"
)

var visibleFields = map[SupportType][]string{
	SupportMedical:   {FieldDisease, FieldMedication, FieldProxyName, FieldProxyPhone},
	SupportCaregiver: {FieldCareDetails, FieldProxyName, FieldProxyPhone},
	SupportVolunteer: {FieldAdditionalNotes},
	SupportOther:     {FieldAdditionalNotes},
}

type Patient struct {
	Id              string `json:"id,omitempty" form:"id"`
	FirstName       string `json:"first_name" form:"first_name"`
	LastName        string `json:"last_name" form:"last_name"`
	Age             int    `json:"age,omitempty" form:"age"`
	Gender          string `json:"gender,omitempty" form:"gender"`
	PhoneNumber     string `json:"phone_number" form:"phone_number"`
	Address         string `json:"address,omitempty" form:"address"`
	Place           string `json:"place,omitempty" form:"place"`
	SupportType     string `json:"support_type" form:"support_type"`
	HealthCondition string `json:"health_condition,omitempty" form:"health_condition"`
	Disease         string `json:"disease" form:"disease"`
	Medication      string `json:"medication" form:"medication"`
	CareDetails     string `json:"care_details" form:"care_details"`
	ProxyName       string `json:"proxy_name" form:"proxy_name"`
	ProxyPhone      string `json:"proxy_phone" form:"proxy_phone"`
	AdditionalNotes string `json:"additional_notes" form:"additional_notes"`
	RegisteredDate  string `json:"registered_date,omitempty" form:"registered_date"`
}

func (p Patient) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

func (p Patient) Location() location.Place {
	return location.ParsePlace(p.Place)
}

// VisibleFields returns the conditional fields shown for a support type.
func VisibleFields(supportType string) []string {
	return visibleFields[SupportType(supportType)]
}

func IsVisible(supportType, field string) bool {
	for _, f := range VisibleFields(supportType) {
		if f == field {
			return true
		}
	}
	return false
}

// ClearHidden empties the conditional fields that the support type hides.
func ClearHidden(p Patient) Patient {
	fields := map[string]*string{
		FieldDisease:         &p.Disease,
		FieldMedication:      &p.Medication,
		FieldCareDetails:     &p.CareDetails,
		FieldProxyName:       &p.ProxyName,
		FieldProxyPhone:      &p.ProxyPhone,
		FieldAdditionalNotes: &p.AdditionalNotes,
	}
	for name, value := range fields {
		if !IsVisible(p.SupportType, name) {
			*value = ""
		}
	}
	return p
}

// Normalize trims text fields, stores phone numbers as digits and clears
// hidden fields.
func Normalize(p Patient) Patient {
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.PhoneNumber = validation.CleanPhone(p.PhoneNumber)
	p.ProxyPhone = validation.CleanPhone(p.ProxyPhone)
	return ClearHidden(p)
}

func Validate(p Patient) validation.Errors {
	errs := validation.Errors{}
	errs.Required("first_name", p.FirstName, "First name")
	errs.Required("last_name", p.LastName, "Last name")
	errs.Phone("phone_number", p.PhoneNumber)
	errs.OneOf("support_type", p.SupportType, "medical", "caregiver", "volunteer", "other")
	if p.Age < 0 || p.Age > 130 {
		errs.Add("age", "Age must be between 0 and 130")
	}
	if IsVisible(p.SupportType, FieldProxyPhone) {
		errs.OptionalPhone(FieldProxyPhone, p.ProxyPhone)
	}
	return errs
}

// Search returns the patients whose name, phone or place contains query,
// ignoring case.
func Search(list []Patient, query string) []Patient {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return list
	}
	result := make([]Patient, 0)
	for _, p := range list {
		haystack := strings.ToLower(strings.Join([]string{p.FullName(), p.PhoneNumber, p.Location().Name}, " "))
		if strings.Contains(haystack, query) {
			result = append(result, p)
		}
	}
	return result
}
