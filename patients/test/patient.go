package test

import (
	"github.com/pallium-care/console/patients"
	"github.com/pallium-care/console/test"
)

func RandomPatient() patients.Patient {
	patient := patients.Patient{
		FirstName:       test.Faker.Person().FirstName(),
		LastName:        test.Faker.Person().LastName(),
		Age:             test.Faker.IntBetween(18, 95),
		Gender:          test.Faker.RandomStringElement([]string{"male", "female", "other"}),
		PhoneNumber:     test.RandomPhone(),
		Address:         test.Faker.Address().StreetAddress(),
		Place:           test.Faker.Address().City() + "|https://maps.example.com/" + test.Faker.Lorem().Word(),
		SupportType:     test.Faker.RandomStringElement([]string{"medical", "caregiver", "volunteer", "other"}),
		HealthCondition: test.Faker.Lorem().Sentence(4),
		Disease:         test.Faker.Lorem().Word(),
		Medication:      test.Faker.Lorem().Word(),
		CareDetails:     test.Faker.Lorem().Sentence(6),
		ProxyName:       test.Faker.Person().Name(),
		ProxyPhone:      test.RandomPhone(),
		AdditionalNotes: test.Faker.Lorem().Sentence(5),
	}
	return patients.ClearHidden(patient)
}

func RandomInNeed() patients.InNeed {
	return patients.InNeed{
		PatientName:     test.Faker.Person().Name(),
		ContactName:     test.Faker.Person().Name(),
		ContactPhone:    test.RandomPhone(),
		Place:           test.Faker.Address().City(),
		HealthCondition: test.Faker.Lorem().Sentence(3),
		Notes:           "BP: 120/80\nPain: moderate",
	}
}
