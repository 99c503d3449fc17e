package donations_test

import (
	"context"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/pallium-care/console/backend"
	backendTest "github.com/pallium-care/console/backend/test"
	"github.com/pallium-care/console/config"
	"github.com/pallium-care/console/donations"
	"github.com/pallium-care/console/errors"
	"github.com/pallium-care/console/test"
)

var _ = Describe("Service", func() {
	var stub *backendTest.Backend
	var service donations.Service
	var ctx context.Context
	cfg := &config.Config{
		UpiHandle:         "fund@okbank",
		UpiPayeeName:      "Clinic Fund",
		DonationMaxAmount: 5000,
	}

	BeforeEach(func() {
		stub = backendTest.ServerStub()
		client, err := backend.NewClient(stub.URL)
		Expect(err).ToNot(HaveOccurred())
		service = donations.NewService(donations.NewRecords(client), cfg, zap.NewNop().Sugar())
		ctx = backend.WithToken(context.Background(), stub.AdminToken)
	})

	AfterEach(func() {
		stub.Close()
	})

	It("records a donation with its receipt", func() {
		entry := donations.Entry{
			DonorName:  test.Faker.Person().Name(),
			DonorPhone: "98470 12345",
			Amount:     1500,
			Purpose:    "Medicines",
		}
		created, err := service.CreateWithUpload(ctx, entry, &backend.Upload{Filename: "receipt.jpg", Content: strings.NewReader("jpg")})
		Expect(err).ToNot(HaveOccurred())
		Expect(created.Amount).To(Equal(1500.0))
		Expect(created.DonorPhone).To(Equal("9847012345"))
		Expect(created.ImageUrl).To(Equal("/uploads/receipt.jpg"))
	})

	It("rejects donations without an amount", func() {
		_, err := service.CreateWithUpload(ctx, donations.Entry{DonorName: "Anon"}, nil)
		Expect(err).To(MatchError(errors.BadRequest))
		Expect(stub.Records(backend.EmergencyFund)).To(BeEmpty())
	})

	It("normalizes donations recorded without a receipt", func() {
		created, err := service.Create(ctx, donations.Entry{DonorName: "  Asha  ", DonorPhone: "98470-12345", Amount: 750})
		Expect(err).ToNot(HaveOccurred())
		Expect(created.DonorName).To(Equal("Asha"))
		Expect(created.DonorPhone).To(Equal("9847012345"))

		records := stub.Records(backend.EmergencyFund)
		Expect(records).To(HaveLen(1))
		Expect(records[0]["donor_phone"]).To(Equal("9847012345"))
	})

	It("rejects invalid donations on every write path", func() {
		_, err := service.Create(ctx, donations.Entry{DonorName: "  Asha  ", DonorPhone: "98470-12345", Amount: 0})
		Expect(err).To(MatchError(errors.BadRequest))
		Expect(stub.Records(backend.EmergencyFund)).To(BeEmpty())

		ids := stub.Seed(backend.EmergencyFund, donations.Entry{DonorName: "Asha", Amount: 100})
		_, err = service.Update(ctx, ids[0], donations.Entry{DonorName: " ", Amount: 100})
		Expect(err).To(MatchError(errors.BadRequest))
		Expect(stub.Records(backend.EmergencyFund)[0]["donor_name"]).To(Equal("Asha"))
	})

	It("normalizes updates", func() {
		ids := stub.Seed(backend.EmergencyFund, donations.Entry{DonorName: "Asha", Amount: 100})
		updated, err := service.Update(ctx, ids[0], donations.Entry{DonorName: " Asha K ", DonorPhone: "(984) 701-2345", Amount: 120})
		Expect(err).ToNot(HaveOccurred())
		Expect(updated.DonorName).To(Equal("Asha K"))
		Expect(updated.DonorPhone).To(Equal("9847012345"))
		Expect(updated.Amount).To(Equal(120.0))
	})

	It("lists the newest donations first and totals them", func() {
		stub.Seed(backend.EmergencyFund,
			donations.Entry{DonorName: "A", Amount: 100, CreatedAt: "2024-01-01T10:00:00Z"},
			donations.Entry{DonorName: "B", Amount: 250.5, CreatedAt: "2024-02-01T10:00:00Z"},
		)
		list, err := service.Recent(ctx)
		Expect(err).ToNot(HaveOccurred())
		Expect(list[0].DonorName).To(Equal("B"))
		Expect(donations.Total(list)).To(Equal(350.5))
	})

	It("plans payments with the configured handle and maximum", func() {
		plan := service.Plan(android, 200, "Asha")
		Expect(plan.GenericURI).To(Equal("upi://pay?pa=fund%40okbank&pn=Clinic%20Fund&am=200.00&cu=INR&tn=Emergency%20fund%20donation%20from%20Asha"))

		_, err := service.ParseAmount("5000.01")
		Expect(err).To(MatchError(ContainSubstring("₹5000.00")))
		Expect(service.Handle()).To(Equal("fund@okbank"))
	})
})
