package equipment_test

import (
	"context"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/pallium-care/console/backend"
	backendTest "github.com/pallium-care/console/backend/test"
	"github.com/pallium-care/console/equipment"
	"github.com/pallium-care/console/errors"
	"github.com/pallium-care/console/test"
)

func randomEquipment() equipment.Equipment {
	return equipment.Equipment{
		Name:       test.Faker.RandomStringElement([]string{"Wheelchair", "Air bed", "Walker", "Oxygen concentrator"}),
		Type:       "mobility",
		Quantity:   test.Faker.IntBetween(1, 5),
		Status:     equipment.StatusAvailable,
		Place:      "Clinic store|https://maps.example.com/store",
		DonorName:  test.Faker.Person().Name(),
		DonorPhone: test.RandomPhone(),
	}
}

var _ = Describe("Validate", func() {
	It("accepts random equipment", func() {
		Expect(equipment.Validate(randomEquipment()).HasErrors()).To(BeFalse())
	})

	It("rejects negative quantities and unknown statuses", func() {
		e := randomEquipment()
		e.Quantity = -1
		e.Status = "lost"
		errs := equipment.Validate(e)
		Expect(errs).To(HaveKey("quantity"))
		Expect(errs).To(HaveKey("status"))
	})

	It("defaults the status to available", func() {
		Expect(equipment.Normalize(equipment.Equipment{}).Status).To(Equal(equipment.StatusAvailable))
	})

	It("counts available units", func() {
		list := []equipment.Equipment{
			{Quantity: 2, Status: equipment.StatusAvailable},
			{Quantity: 3, Status: equipment.StatusInUse},
			{Quantity: 1, Status: equipment.StatusAvailable},
		}
		Expect(equipment.Available(list)).To(Equal(3))
	})
})

var _ = Describe("Service", func() {
	var stub *backendTest.Backend
	var service equipment.Service
	var ctx context.Context

	BeforeEach(func() {
		stub = backendTest.ServerStub()
		client, err := backend.NewClient(stub.URL)
		Expect(err).ToNot(HaveOccurred())
		service = equipment.NewService(equipment.NewRecords(client), zap.NewNop().Sugar())
		ctx = backend.WithToken(context.Background(), stub.AdminToken)
	})

	AfterEach(func() {
		stub.Close()
	})

	It("uploads images with the record", func() {
		created, err := service.CreateWithUpload(ctx, randomEquipment(), &backend.Upload{
			Filename:    "chair.png",
			ContentType: "image/png",
			Content:     strings.NewReader("png"),
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(created.ImageUrl).To(Equal("/uploads/chair.png"))
		Expect(created.Location().Name).To(Equal("Clinic store"))
	})

	It("changes only the status", func() {
		e := randomEquipment()
		id := stub.Seed(backend.Equipment, e)[0]

		updated, err := service.SetStatus(ctx, id, equipment.StatusMaintenance)
		Expect(err).ToNot(HaveOccurred())
		Expect(updated.Status).To(Equal(equipment.StatusMaintenance))
		Expect(updated.Name).To(Equal(e.Name))
		Expect(updated.Quantity).To(Equal(e.Quantity))
	})

	It("rejects unknown statuses without calling the backend", func() {
		_, err := service.SetStatus(ctx, "id", "lost")
		Expect(err).To(MatchError(errors.BadRequest))
		Expect(stub.Requests()).To(BeEmpty())
	})
})

var _ = Describe("Service with mocked records", func() {
	It("does not upload invalid equipment", func() {
		ctrl := gomock.NewController(GinkgoT())
		records := backendTest.NewMockUploadRecords[equipment.Equipment](ctrl)
		service := equipment.NewService(records, zap.NewNop().Sugar())

		e := randomEquipment()
		e.Name = ""
		_, err := service.UpdateWithUpload(context.Background(), "id", e, nil)
		Expect(err).To(MatchError(errors.BadRequest))
	})

	It("creates json records when there is no image", func() {
		ctrl := gomock.NewController(GinkgoT())
		records := backendTest.NewMockUploadRecords[equipment.Equipment](ctrl)
		service := equipment.NewService(records, zap.NewNop().Sugar())

		e := randomEquipment()
		records.EXPECT().CreateWithUpload(gomock.Any(), gomock.Eq(e), gomock.Nil()).Return(&e, nil)
		_, err := service.Create(context.Background(), e)
		Expect(err).ToNot(HaveOccurred())
	})
})
