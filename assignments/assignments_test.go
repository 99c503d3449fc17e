package assignments_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/pallium-care/console/assignments"
	backendTest "github.com/pallium-care/console/backend/test"
	"github.com/pallium-care/console/errors"
	"github.com/pallium-care/console/test"
	"github.com/pallium-care/console/vcm"
)

var _ = Describe("Bulk", func() {
	It("creates one assignment per distinct member", func() {
		bulk := assignments.Bulk{
			PatientId:   "p1",
			PatientName: "Lakshmi Nair",
			Members: []vcm.Member{
				{Id: "v1", Name: "Vinod", Role: vcm.RoleVolunteer},
				{Id: "m1", Name: "Dr. Meera", Role: vcm.RoleMedical},
				{Id: "v1", Name: "Vinod", Role: vcm.RoleVolunteer},
				{Id: ""},
			},
			AssignedDate: "2024-03-15",
		}
		expanded := bulk.Expand()
		Expect(expanded).To(HaveLen(2))
		Expect(expanded[0].MemberId).To(Equal("v1"))
		Expect(expanded[0].MemberType).To(Equal("volunteer"))
		Expect(expanded[1].MemberId).To(Equal("m1"))
		Expect(expanded[1].Status).To(Equal(assignments.StatusActive))
	})
})

var _ = Describe("Service", func() {
	var ctrl *gomock.Controller
	var records *backendTest.MockRecords[assignments.Assignment]
	var service assignments.Service

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		records = backendTest.NewMockRecords[assignments.Assignment](ctrl)
		service = assignments.NewService(records, zap.NewNop().Sugar())
	})

	created := func(_ context.Context, a assignments.Assignment) (*assignments.Assignment, error) {
		a.Id = test.RandomId()
		return &a, nil
	}

	It("creates each deduplicated assignment once", func() {
		records.EXPECT().Create(gomock.Any(), test.Match(func(a assignments.Assignment) bool { return a.MemberId == "c1" })).DoAndReturn(created).Times(1)
		records.EXPECT().Create(gomock.Any(), test.Match(func(a assignments.Assignment) bool { return a.MemberId == "m1" })).DoAndReturn(created).Times(1)

		list, err := service.AssignAll(context.Background(), assignments.Bulk{
			PatientId: "p1",
			Members: []vcm.Member{
				{Id: "c1", Role: vcm.RoleCaregiver},
				{Id: "m1", Role: vcm.RoleMedical},
				{Id: "c1", Role: vcm.RoleCaregiver},
			},
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(list).To(HaveLen(2))
	})

	It("stops at the first failure", func() {
		records.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(created)
		records.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.Duplicate)

		list, err := service.AssignAll(context.Background(), assignments.Bulk{
			PatientId: "p1",
			Members: []vcm.Member{
				{Id: "c1", Role: vcm.RoleCaregiver},
				{Id: "c2", Role: vcm.RoleCaregiver},
				{Id: "c3", Role: vcm.RoleCaregiver},
			},
		})
		Expect(err).To(MatchError(errors.Duplicate))
		Expect(list).To(HaveLen(1))
	})

	It("requires at least one member", func() {
		_, err := service.AssignAll(context.Background(), assignments.Bulk{PatientId: "p1"})
		Expect(err).To(MatchError(errors.BadRequest))
	})

	It("filters assignments by patient", func() {
		records.EXPECT().List(gomock.Any()).Return([]assignments.Assignment{
			{Id: "1", PatientId: "p1"},
			{Id: "2", PatientId: "p2"},
			{Id: "3", PatientId: "p1"},
		}, nil)
		list, err := service.ForPatient(context.Background(), "p1")
		Expect(err).ToNot(HaveOccurred())
		Expect(list).To(HaveLen(2))
	})
})
