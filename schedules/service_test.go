package schedules_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	backendTest "github.com/pallium-care/console/backend/test"
	"github.com/pallium-care/console/errors"
	"github.com/pallium-care/console/schedules"
	"github.com/pallium-care/console/test"
)

var _ = Describe("Service", func() {
	var ctrl *gomock.Controller
	var records *backendTest.MockRecords[schedules.Schedule]
	var service schedules.Service
	now := time.Date(2024, time.March, 15, 8, 0, 0, 0, time.UTC)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		records = backendTest.NewMockRecords[schedules.Schedule](ctrl)
		service = schedules.NewService(records, zap.NewNop().Sugar())
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("filters listed schedules", func() {
		records.EXPECT().List(gomock.Any()).Return([]schedules.Schedule{
			visit("later", "2024-03-20", ""),
			visit("today", "2024-03-15", "11:00"),
		}, nil)

		list, err := service.Upcoming(context.Background(), schedules.Today, now)
		Expect(err).ToNot(HaveOccurred())
		Expect(ids(list)).To(Equal([]string{"today"}))
	})

	It("falls back to the unfiltered list on bad data", func() {
		list := []schedules.Schedule{visit("bad", "??", ""), visit("today", "2024-03-15", "")}
		records.EXPECT().List(gomock.Any()).Return(list, nil)

		result, err := service.Upcoming(context.Background(), schedules.Today, now)
		Expect(err).ToNot(HaveOccurred())
		Expect(result).To(Equal(list))
	})

	It("does not submit invalid schedules", func() {
		_, err := service.Create(context.Background(), schedules.Schedule{PatientId: test.RandomId()})
		Expect(err).To(MatchError(errors.BadRequest))
	})

	It("trims fields before creating", func() {
		schedule := schedules.Schedule{PatientId: test.RandomId(), MemberId: test.RandomId(), VisitDate: " 2024-03-16 ", VisitTime: " 10:00 "}
		records.EXPECT().
			Create(gomock.Any(), test.Match(func(s schedules.Schedule) bool {
				return s.VisitDate == "2024-03-16" && s.VisitTime == "10:00"
			})).
			DoAndReturn(func(_ context.Context, s schedules.Schedule) (*schedules.Schedule, error) {
				s.Id = test.RandomId()
				return &s, nil
			})

		created, err := service.Create(context.Background(), schedule)
		Expect(err).ToNot(HaveOccurred())
		Expect(created.Id).ToNot(BeEmpty())
	})
})
