package domain

import (
	"context"

	"github.com/bigex/backend/internal/entity"
	"github.com/bigex/backend/internal/model"
	"github.com/bigex/backend/internal/repository"
	"github.com/bigex/backend/pkg/errorx"
	"github.com/bigex/backend/pkg/xcontext"
	"github.com/google/uuid"
)

type PointsDomain interface {
	GetPoints(context.Context, *model.GetPointsRequest) (*model.GetPointsResponse, error)
	RedeemPoints(context.Context, *model.RedeemPointsRequest) (*model.RedeemPointsResponse, error)
}

type pointsDomain struct {
	pointsRepo repository.PointsRepository
}

func NewPointsDomain(pointsRepo repository.PointsRepository) *pointsDomain {
	return &pointsDomain{pointsRepo: pointsRepo}
}

func (d *pointsDomain) GetPoints(
	ctx context.Context, req *model.GetPointsRequest,
) (*model.GetPointsResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	balance, err := d.pointsRepo.Balance(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get balance: %v", err)
		return nil, errorx.Unknown
	}

	entries, err := d.pointsRepo.GetByUserID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get points entries: %v", err)
		return nil, errorx.Unknown
	}

	clientEntries := []model.PointsEntry{}
	for i := range entries {
		clientEntries = append(clientEntries, model.ConvertPointsEntry(&entries[i]))
	}

	return &model.GetPointsResponse{
		Balance: balance,
		Entries: clientEntries,
	}, nil
}

// RedeemPoints spends points on a voucher or a charity donation. The
// balance check and the ledger insert run in one transaction.
func (d *pointsDomain) RedeemPoints(
	ctx context.Context, req *model.RedeemPointsRequest,
) (*model.RedeemPointsResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if req.Type != entity.PointsEntryTypeVoucher && req.Type != entity.PointsEntryTypeCharity {
		return nil, errorx.New(errorx.BadRequest, "Invalid redemption type %s", req.Type)
	}

	if req.Amount <= 0 {
		return nil, errorx.New(errorx.BadRequest, "Amount must be positive")
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	balance, err := d.pointsRepo.Balance(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get balance: %v", err)
		return nil, errorx.Unknown
	}

	if balance < req.Amount {
		return nil, errorx.New(errorx.NotEnoughPoints, "Not enough points")
	}

	err = d.pointsRepo.Create(ctx, &entity.PointsEntry{
		Base:    entity.Base{ID: uuid.NewString()},
		UserID:  userID,
		Type:    req.Type,
		Amount:  -req.Amount,
		Details: req.Details,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create points entry: %v", err)
		return nil, errorx.Unknown
	}

	ctx = xcontext.WithCommitDBTransaction(ctx)

	return &model.RedeemPointsResponse{Balance: balance - req.Amount}, nil
}
