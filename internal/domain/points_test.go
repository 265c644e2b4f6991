package domain

import (
	"testing"

	"github.com/bigex/backend/internal/entity"
	"github.com/bigex/backend/internal/model"
	"github.com/bigex/backend/internal/repository"
	"github.com/bigex/backend/pkg/errorx"
	"github.com/bigex/backend/pkg/testutil"
	"github.com/bigex/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func Test_pointsDomain_RedeemPoints(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)

	treeDomain := NewTreeDomain(repository.NewTreeRepository(), repository.NewPointsRepository())
	domain := NewPointsDomain(repository.NewPointsRepository())
	ctxUser1 := xcontext.WithRequestUserID(ctx, "user1")

	// Earn 20 points by watering on two days.
	_, err := treeDomain.WaterTree(ctxUser1, &model.WaterTreeRequest{Date: "2026-08-01"})
	require.NoError(t, err)
	_, err = treeDomain.WaterTree(ctxUser1, &model.WaterTreeRequest{Date: "2026-08-02"})
	require.NoError(t, err)

	resp, err := domain.RedeemPoints(ctxUser1, &model.RedeemPointsRequest{
		Type:    entity.PointsEntryTypeVoucher,
		Amount:  15,
		Details: "coffee voucher",
	})
	require.NoError(t, err)
	require.EqualValues(t, 5, resp.Balance)

	// The redemption shows up as a negative ledger entry.
	points, err := domain.GetPoints(ctxUser1, &model.GetPointsRequest{})
	require.NoError(t, err)
	require.EqualValues(t, 5, points.Balance)
	require.Len(t, points.Entries, 3)

	var errx errorx.Error
	_, err = domain.RedeemPoints(ctxUser1, &model.RedeemPointsRequest{
		Type:   entity.PointsEntryTypeCharity,
		Amount: 100,
	})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotEnoughPoints, errx.Code)

	_, err = domain.RedeemPoints(ctxUser1, &model.RedeemPointsRequest{
		Type:   entity.PointsEntryTypeEarn,
		Amount: 1,
	})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
}
