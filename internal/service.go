package internal

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/DrGermanius/Receiptmart/internal/model"
)

type IService interface {
	ProcessReceipt(context.Context, model.RawReceipt) (model.Record, error)
	GetReceipt(context.Context, string) (model.Receipt, error)
	GetPoints(context.Context, string) (int64, error)
}

type Service struct {
	Repository IRepository
	opts       ValidationOpts
	logger     *zap.SugaredLogger
}

func NewService(repository IRepository, opts ValidationOpts, logger *zap.SugaredLogger) *Service {
	return &Service{Repository: repository, opts: opts, logger: logger}
}

// ProcessReceipt validates the raw receipt, scores it and stores the record
// under a fresh uuid. Invalid input comes back as ValidationErrors; the
// score is computed once here and never recomputed afterwards.
func (s Service) ProcessReceipt(ctx context.Context, raw model.RawReceipt) (model.Record, error) {
	receipt, verrs := ValidateReceipt(raw, s.opts)
	if verrs != nil {
		return model.Record{}, verrs
	}

	record := model.Record{
		ID:      uuid.NewString(),
		Receipt: receipt,
		Points:  CalculatePoints(receipt),
	}

	err := s.Repository.SaveRecord(ctx, record)
	if err != nil {
		return model.Record{}, err
	}
	return record, nil
}

func (s Service) GetReceipt(ctx context.Context, id string) (model.Receipt, error) {
	record, err := s.Repository.GetRecord(ctx, id)
	if err != nil {
		return model.Receipt{}, err
	}
	return record.Receipt, nil
}

func (s Service) GetPoints(ctx context.Context, id string) (int64, error) {
	record, err := s.Repository.GetRecord(ctx, id)
	if err != nil {
		return 0, err
	}
	return record.Points, nil
}
