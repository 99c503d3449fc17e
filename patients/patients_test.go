package patients_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pallium-care/console/patients"
	patientsTest "github.com/pallium-care/console/patients/test"
)

var _ = Describe("Support type fields", func() {
	DescribeTable("shows the fields of each support type",
		func(supportType string, fields []string) {
			Expect(patients.VisibleFields(supportType)).To(Equal(fields))
		},
		Entry("medical", "medical", []string{"disease", "medication", "proxy_name", "proxy_phone"}),
		Entry("caregiver", "caregiver", []string{"care_details", "proxy_name", "proxy_phone"}),
		Entry("volunteer", "volunteer", []string{"additional_notes"}),
		Entry("other", "other", []string{"additional_notes"}),
	)

	It("shows nothing for unknown types", func() {
		Expect(patients.VisibleFields("unknown")).To(BeEmpty())
	})

	It("clears the fields hidden for volunteers", func() {
		p := patients.Patient{
			SupportType:     "volunteer",
			Disease:         "COPD",
			Medication:      "Morphine",
			CareDetails:     "Bedridden",
			ProxyName:       "Ravi",
			ProxyPhone:      "9847012345",
			AdditionalNotes: "Needs a visit on Sundays",
		}
		cleared := patients.ClearHidden(p)
		Expect(cleared.Disease).To(BeEmpty())
		Expect(cleared.Medication).To(BeEmpty())
		Expect(cleared.CareDetails).To(BeEmpty())
		Expect(cleared.ProxyName).To(BeEmpty())
		Expect(cleared.ProxyPhone).To(BeEmpty())
		Expect(cleared.AdditionalNotes).To(Equal("Needs a visit on Sundays"))
	})

	It("keeps the medical fields for medical support", func() {
		p := patients.Patient{SupportType: "medical", Disease: "Cancer", Medication: "Morphine", CareDetails: "x", AdditionalNotes: "y", ProxyName: "Ravi"}
		cleared := patients.ClearHidden(p)
		Expect(cleared.Disease).To(Equal("Cancer"))
		Expect(cleared.Medication).To(Equal("Morphine"))
		Expect(cleared.ProxyName).To(Equal("Ravi"))
		Expect(cleared.CareDetails).To(BeEmpty())
		Expect(cleared.AdditionalNotes).To(BeEmpty())
	})
})

var _ = Describe("Validate", func() {
	It("accepts random patients", func() {
		p := patientsTest.RandomPatient()
		Expect(patients.Validate(p).HasErrors()).To(BeFalse())
	})

	It("requires names, a valid phone and a support type", func() {
		errs := patients.Validate(patients.Patient{PhoneNumber: "12345"})
		Expect(errs).To(HaveKey("first_name"))
		Expect(errs).To(HaveKey("last_name"))
		Expect(errs).To(HaveKey("phone_number"))
		Expect(errs).To(HaveKey("support_type"))
	})

	It("validates the proxy phone only when it is visible and filled in", func() {
		p := patientsTest.RandomPatient()
		p.SupportType = "caregiver"
		p.ProxyPhone = "123"
		Expect(patients.Validate(p)).To(HaveKey("proxy_phone"))

		p.ProxyPhone = ""
		Expect(patients.Validate(p)).ToNot(HaveKey("proxy_phone"))

		p.SupportType = "volunteer"
		p.ProxyPhone = "123"
		Expect(patients.Validate(p)).ToNot(HaveKey("proxy_phone"))
	})

	It("normalizes phone numbers", func() {
		p := patients.Normalize(patients.Patient{SupportType: "medical", PhoneNumber: "98470-12345", ProxyPhone: "(984) 701 2346"})
		Expect(p.PhoneNumber).To(Equal("9847012345"))
		Expect(p.ProxyPhone).To(Equal("9847012346"))
	})
})

var _ = Describe("Search", func() {
	list := []patients.Patient{
		{Id: "1", FirstName: "Lakshmi", LastName: "Nair", PhoneNumber: "9847012345", Place: "Kozhikode|https://maps.example.com/k"},
		{Id: "2", FirstName: "Joseph", LastName: "Mathew", PhoneNumber: "9447011111", Place: "Thrissur"},
	}

	DescribeTable("matches name, phone and place ignoring case",
		func(query string, ids []string) {
			found := []string{}
			for _, p := range patients.Search(list, query) {
				found = append(found, p.Id)
			}
			Expect(found).To(Equal(ids))
		},
		Entry("first name", "lakshmi", []string{"1"}),
		Entry("full name", "joseph math", []string{"2"}),
		Entry("phone", "94470", []string{"2"}),
		Entry("place", "KOZHI", []string{"1"}),
		Entry("no match", "maps.example", []string{}),
		Entry("empty", "  ", []string{"1", "2"}),
	)
})
