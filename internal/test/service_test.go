package test

import (
	"context"
	"errors"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/DrGermanius/Receiptmart/internal"
	mock_internal "github.com/DrGermanius/Receiptmart/internal/mock"
	"github.com/DrGermanius/Receiptmart/internal/model"
)

var _ = Describe("Service", func() {
	var (
		srv  internal.IService
		rep  *mock_internal.MockIRepository
		ctrl *gomock.Controller
	)
	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())

		logger, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())

		rep = mock_internal.NewMockIRepository(ctrl)

		srv = internal.NewService(rep, internal.ValidationOpts{}, logger.Sugar())
	})
	AfterEach(func() {
		ctrl.Finish()
	})
	Context("Service tests", func() {
		It("ProcessReceipt without error", func() {
			ctx := context.Background()

			var saved model.Record
			rep.EXPECT().SaveRecord(ctx, gomock.Any()).DoAndReturn(
				func(_ context.Context, rec model.Record) error {
					saved = rec
					return nil
				})

			record, err := srv.ProcessReceipt(ctx, rawFixture())
			Expect(err).ShouldNot(HaveOccurred())
			Expect(record).Should(Equal(saved))
			Expect(record.Points).Should(Equal(internal.CalculatePoints(record.Receipt)))

			_, err = uuid.Parse(record.ID)
			Expect(err).ShouldNot(HaveOccurred())
		})
		It("ProcessReceipt generates a fresh id per call", func() {
			ctx := context.Background()

			rep.EXPECT().SaveRecord(ctx, gomock.Any()).Return(nil).Times(2)

			first, err := srv.ProcessReceipt(ctx, rawFixture())
			Expect(err).ShouldNot(HaveOccurred())
			second, err := srv.ProcessReceipt(ctx, rawFixture())
			Expect(err).ShouldNot(HaveOccurred())

			Expect(first.ID).ShouldNot(Equal(second.ID))
			Expect(first.Points).Should(Equal(second.Points))
		})
		It("ProcessReceipt with validation errors does not touch the store", func() {
			ctx := context.Background()
			raw := rawFixture()
			raw.Total = str("1.5")

			_, err := srv.ProcessReceipt(ctx, raw)
			Expect(err).Should(HaveOccurred())

			var verrs internal.ValidationErrors
			Expect(errors.As(err, &verrs)).Should(BeTrue())
			Expect(verrs).Should(HaveLen(1))
			Expect(verrs[0].Field).Should(Equal("total"))
		})
		It("ProcessReceipt with store error", func() {
			ctx := context.Background()
			e := errors.New("some error")

			rep.EXPECT().SaveRecord(ctx, gomock.Any()).Return(e)

			_, err := srv.ProcessReceipt(ctx, rawFixture())
			Expect(err).Should(HaveOccurred())
			Expect(err).Should(Equal(e))
		})
		It("GetReceipt without error", func() {
			ctx := context.Background()
			id := uuid.NewString()
			rec := model.Record{ID: id, Receipt: model.Receipt{Retailer: "Target"}, Points: 28}

			rep.EXPECT().GetRecord(ctx, id).Return(rec, nil)

			receipt, err := srv.GetReceipt(ctx, id)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(receipt).Should(Equal(rec.Receipt))
		})
		It("GetReceipt with unknown id", func() {
			ctx := context.Background()
			id := uuid.NewString()

			rep.EXPECT().GetRecord(ctx, id).Return(model.Record{}, internal.ErrNoRecords)

			_, err := srv.GetReceipt(ctx, id)
			Expect(err).Should(HaveOccurred())
			Expect(err).Should(Equal(internal.ErrNoRecords))
		})
		It("GetPoints without error", func() {
			ctx := context.Background()
			id := uuid.NewString()
			rec := model.Record{ID: id, Points: 109}

			rep.EXPECT().GetRecord(ctx, id).Return(rec, nil)

			points, err := srv.GetPoints(ctx, id)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(points).Should(Equal(int64(109)))
		})
		It("GetPoints with unknown id", func() {
			ctx := context.Background()
			id := uuid.NewString()

			rep.EXPECT().GetRecord(ctx, id).Return(model.Record{}, internal.ErrNoRecords)

			_, err := srv.GetPoints(ctx, id)
			Expect(err).Should(HaveOccurred())
			Expect(err).Should(Equal(internal.ErrNoRecords))
		})
	})
})
