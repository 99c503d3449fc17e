package statistics_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pallium-care/console/backend"
	backendTest "github.com/pallium-care/console/backend/test"
	"github.com/pallium-care/console/errors"
	"github.com/pallium-care/console/statistics"
)

var _ = Describe("Decode", func() {
	It("accepts numbers encoded as strings", func() {
		stats, err := statistics.Decode(map[string]interface{}{
			"total_patients":       float64(12),
			"pending_tasks":        "4",
			"emergency_fund_total": "1520.50",
			"unexpected":           true,
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(stats.TotalPatients).To(Equal(12))
		Expect(stats.PendingTasks).To(Equal(4))
		Expect(stats.EmergencyFundTotal).To(Equal(1520.5))
	})

	It("fails on values that are not numbers", func() {
		_, err := statistics.Decode(map[string]interface{}{"total_patients": "many"})
		Expect(err).To(HaveOccurred())
	})

	It("sums the team", func() {
		Expect(statistics.Statistics{TotalVolunteers: 2, TotalCaregivers: 3, TotalMedicalProfessionals: 1}.TeamSize()).To(Equal(6))
	})
})

var _ = Describe("Service", func() {
	var stub *backendTest.Backend
	var service statistics.Service

	BeforeEach(func() {
		stub = backendTest.ServerStub()
		client, err := backend.NewClient(stub.URL)
		Expect(err).ToNot(HaveOccurred())
		service = statistics.NewService(client)
	})

	AfterEach(func() {
		stub.Close()
	})

	It("fetches the dashboard counts", func() {
		stub.Seed(backend.Patients, map[string]any{"first_name": "A"}, map[string]any{"first_name": "B"})
		stub.Seed(backend.PatientsInNeed, map[string]any{"patient_name": "C"})
		stub.Seed(backend.EmergencyFund, map[string]any{"amount": 250.25})

		stats, err := service.Get(backend.WithToken(context.Background(), stub.AdminToken))
		Expect(err).ToNot(HaveOccurred())
		Expect(stats.TotalPatients).To(Equal(2))
		Expect(stats.TotalPatientsInNeed).To(Equal(1))
		Expect(stats.EmergencyFundTotal).To(Equal(250.25))
	})

	It("requires a session", func() {
		_, err := service.Get(context.Background())
		Expect(err).To(MatchError(errors.Unauthorized))
	})
})
