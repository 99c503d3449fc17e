package reports_test

import (
	"bytes"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/tealeg/xlsx/v3"

	"github.com/pallium-care/console/donations"
	"github.com/pallium-care/console/equipment"
	"github.com/pallium-care/console/patients"
	"github.com/pallium-care/console/reports"
)

var _ = Describe("Reports", func() {
	It("writes a header row and one row per patient", func() {
		file, err := reports.Patients.Generate([]patients.Patient{
			{FirstName: "Lakshmi", LastName: "Nair", Age: 72, PhoneNumber: "9847012345", Place: "Kozhikode|https://maps.example.com/k", SupportType: "medical"},
		})
		Expect(err).ToNot(HaveOccurred())

		rows, err := file.ToSlice()
		Expect(err).ToNot(HaveOccurred())
		Expect(rows).To(HaveLen(1))
		Expect(rows[0]).To(HaveLen(2))
		Expect(rows[0][0][0]).To(Equal("Name"))
		Expect(rows[0][1][0]).To(Equal("Lakshmi Nair"))
		Expect(rows[0][1][1]).To(Equal("72"))
		Expect(rows[0][1][5]).To(Equal("Kozhikode"))
		Expect(rows[0][1][6]).To(Equal("https://maps.example.com/k"))
	})

	It("round trips through the written workbook", func() {
		buf := &bytes.Buffer{}
		err := reports.Equipment.Write(buf, []equipment.Equipment{
			{Name: "Wheelchair", Type: "mobility", Quantity: 3, Status: "available"},
			{Name: "Air bed", Type: "bedding", Quantity: 1, Status: "in-use"},
		})
		Expect(err).ToNot(HaveOccurred())

		file, err := xlsx.OpenBinary(buf.Bytes())
		Expect(err).ToNot(HaveOccurred())
		rows, err := file.ToSlice()
		Expect(err).ToNot(HaveOccurred())
		Expect(rows[0]).To(HaveLen(3))
		Expect(rows[0][2][0]).To(Equal("Air bed"))
		Expect(rows[0][1][2]).To(Equal("3"))
	})

	It("writes only the header for empty lists", func() {
		file, err := reports.EmergencyFund.Generate([]donations.Entry{})
		Expect(err).ToNot(HaveOccurred())
		rows, err := file.ToSlice()
		Expect(err).ToNot(HaveOccurred())
		Expect(rows[0]).To(HaveLen(1))
		Expect(rows[0][0]).To(ContainElement("Amount"))
	})

	It("names downloads by date", func() {
		Expect(reports.Filename("patients", time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))).To(Equal("patients-2024-03-15.xlsx"))
	})
})
