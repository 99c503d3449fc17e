package test

import (
	"github.com/pallium-care/console/test"
	"github.com/pallium-care/console/vcm"
)

func RandomVolunteer() vcm.Volunteer {
	return vcm.Volunteer{
		Name:         test.Faker.Person().Name(),
		PhoneNumber:  test.RandomPhone(),
		Email:        test.Faker.Internet().Email(),
		Address:      test.Faker.Address().StreetAddress(),
		Availability: test.Faker.RandomStringElement([]string{"weekdays", "weekends", "evenings"}),
		Skills:       "driving, first aid",
	}
}

func RandomCaregiver() vcm.Caregiver {
	return vcm.Caregiver{
		Name:           test.Faker.Person().Name(),
		PhoneNumber:    test.RandomPhone(),
		Email:          test.Faker.Internet().Email(),
		Availability:   "full time",
		Experience:     "3 years",
		Certifications: "GNM",
	}
}

func RandomMedicalProfessional() vcm.MedicalProfessional {
	return vcm.MedicalProfessional{
		Name:           "Dr. " + test.Faker.Person().Name(),
		PhoneNumber:    test.RandomPhone(),
		Email:          test.Faker.Internet().Email(),
		LicenseNumber:  test.RandomLicense(),
		Specialization: test.Faker.RandomStringElement([]string{"palliative medicine", "oncology", "nursing"}),
	}
}
