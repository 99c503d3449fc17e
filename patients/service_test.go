package patients_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/pallium-care/console/backend"
	backendTest "github.com/pallium-care/console/backend/test"
	"github.com/pallium-care/console/errors"
	"github.com/pallium-care/console/patients"
	patientsTest "github.com/pallium-care/console/patients/test"
)

var _ = Describe("Service", func() {
	var stub *backendTest.Backend
	var service patients.Service
	var inNeed patients.InNeedService
	var ctx context.Context

	BeforeEach(func() {
		stub = backendTest.ServerStub()
		client, err := backend.NewClient(stub.URL)
		Expect(err).ToNot(HaveOccurred())
		service = patients.NewService(patients.NewRecords(client), zap.NewNop().Sugar())
		inNeed = patients.NewInNeedService(patients.NewInNeedRecords(client))
		ctx = backend.WithToken(context.Background(), stub.AdminToken)
	})

	AfterEach(func() {
		stub.Close()
	})

	It("clears hidden fields before they reach the backend", func() {
		p := patientsTest.RandomPatient()
		p.SupportType = "medical"
		p.Disease = "COPD"
		p.AdditionalNotes = "should be dropped"

		created, err := service.Create(ctx, p)
		Expect(err).ToNot(HaveOccurred())
		Expect(created.Disease).To(Equal("COPD"))
		Expect(created.AdditionalNotes).To(BeEmpty())

		stored := stub.Records(backend.Patients)[0]
		Expect(stored).To(HaveKeyWithValue("additional_notes", ""))
	})

	It("clears fields that became hidden on update", func() {
		p := patientsTest.RandomPatient()
		p.SupportType = "medical"
		p.Disease = "COPD"
		created, err := service.Create(ctx, p)
		Expect(err).ToNot(HaveOccurred())

		created.SupportType = "volunteer"
		created.AdditionalNotes = "Visits weekly"
		updated, err := service.Update(ctx, created.Id, *created)
		Expect(err).ToNot(HaveOccurred())
		Expect(updated.Disease).To(BeEmpty())
		Expect(stub.Records(backend.Patients)[0]).To(HaveKeyWithValue("disease", ""))
	})

	It("never submits invalid patients", func() {
		p := patientsTest.RandomPatient()
		p.PhoneNumber = "12"
		_, err := service.Create(ctx, p)
		Expect(err).To(MatchError(errors.BadRequest))
		Expect(stub.Requests()).To(BeEmpty())
	})

	It("reports duplicate phone numbers", func() {
		p := patientsTest.RandomPatient()
		_, err := service.Create(ctx, p)
		Expect(err).ToNot(HaveOccurred())

		_, err = service.Create(ctx, p)
		Expect(errors.FriendlyMessage(err)).To(Equal("A record with this phone number already exists."))
	})

	It("searches the listed patients", func() {
		p := patientsTest.RandomPatient()
		p.FirstName = "Zacharias"
		stub.Seed(backend.Patients, p, patientsTest.RandomPatient())

		found, err := service.Search(ctx, "zachar")
		Expect(err).ToNot(HaveOccurred())
		Expect(found).To(HaveLen(1))
		Expect(found[0].FirstName).To(Equal("Zacharias"))
	})

	Describe("Patients in need", func() {
		It("stores notes one label per line", func() {
			referral := patientsTest.RandomInNeed()
			referral.Notes = "\n BP : 120/80 \n\nPain: moderate\n"
			created, err := inNeed.Create(ctx, referral)
			Expect(err).ToNot(HaveOccurred())
			Expect(created.Notes).To(Equal("BP: 120/80\nPain: moderate"))
			Expect(created.NoteLines()).To(HaveLen(2))
		})

		It("requires a contact phone", func() {
			referral := patientsTest.RandomInNeed()
			referral.ContactPhone = ""
			_, err := inNeed.Create(ctx, referral)
			Expect(err).To(MatchError(errors.BadRequest))
		})
	})
})
