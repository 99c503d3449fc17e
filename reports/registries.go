package reports

import (
	"github.com/pallium-care/console/donations"
	"github.com/pallium-care/console/equipment"
	"github.com/pallium-care/console/patients"
)

var Patients = Report[patients.Patient]{
	Sheet: "Patients",
	Columns: []Column[patients.Patient]{
		{"Name", func(p patients.Patient) interface{} { return p.FullName() }},
		{"Age", func(p patients.Patient) interface{} { return p.Age }},
		{"Gender", func(p patients.Patient) interface{} { return p.Gender }},
		{"Phone", func(p patients.Patient) interface{} { return p.PhoneNumber }},
		{"Address", func(p patients.Patient) interface{} { return p.Address }},
		{"Place", func(p patients.Patient) interface{} { return p.Location().Name }},
		{"Map link", func(p patients.Patient) interface{} { return p.Location().Link }},
		{"Support type", func(p patients.Patient) interface{} { return p.SupportType }},
		{"Health condition", func(p patients.Patient) interface{} { return p.HealthCondition }},
		{"Disease", func(p patients.Patient) interface{} { return p.Disease }},
		{"Medication", func(p patients.Patient) interface{} { return p.Medication }},
		{"Care details", func(p patients.Patient) interface{} { return p.CareDetails }},
		{"Proxy name", func(p patients.Patient) interface{} { return p.ProxyName }},
		{"Proxy phone", func(p patients.Patient) interface{} { return p.ProxyPhone }},
		{"Notes", func(p patients.Patient) interface{} { return p.AdditionalNotes }},
		{"Registered", func(p patients.Patient) interface{} { return p.RegisteredDate }},
	},
}

var Equipment = Report[equipment.Equipment]{
	Sheet: "Equipment",
	Columns: []Column[equipment.Equipment]{
		{"Name", func(e equipment.Equipment) interface{} { return e.Name }},
		{"Type", func(e equipment.Equipment) interface{} { return e.Type }},
		{"Quantity", func(e equipment.Equipment) interface{} { return e.Quantity }},
		{"Status", func(e equipment.Equipment) interface{} { return e.Status }},
		{"Place", func(e equipment.Equipment) interface{} { return e.Location().Name }},
		{"Donor", func(e equipment.Equipment) interface{} { return e.DonorName }},
		{"Donor phone", func(e equipment.Equipment) interface{} { return e.DonorPhone }},
	},
}

var EmergencyFund = Report[donations.Entry]{
	Sheet: "Emergency fund",
	Columns: []Column[donations.Entry]{
		{"Donor", func(e donations.Entry) interface{} { return e.DonorName }},
		{"Phone", func(e donations.Entry) interface{} { return e.DonorPhone }},
		{"Amount", func(e donations.Entry) interface{} { return e.Amount }},
		{"Purpose", func(e donations.Entry) interface{} { return e.Purpose }},
		{"UPI reference", func(e donations.Entry) interface{} { return e.UpiReference }},
		{"Date", func(e donations.Entry) interface{} { return e.CreatedAt }},
	},
}
