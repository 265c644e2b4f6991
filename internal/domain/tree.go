package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bigex/backend/internal/entity"
	"github.com/bigex/backend/internal/model"
	"github.com/bigex/backend/internal/repository"
	"github.com/bigex/backend/pkg/dateutil"
	"github.com/bigex/backend/pkg/errorx"
	"github.com/bigex/backend/pkg/xcontext"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TreeDomain interface {
	WaterTree(context.Context, *model.WaterTreeRequest) (*model.WaterTreeResponse, error)
	SetReminder(context.Context, *model.SetReminderRequest) (*model.SetReminderResponse, error)
	GetTrees(context.Context, *model.GetTreesRequest) (*model.GetTreesResponse, error)
}

type treeDomain struct {
	treeRepo   repository.TreeRepository
	pointsRepo repository.PointsRepository
}

func NewTreeDomain(
	treeRepo repository.TreeRepository,
	pointsRepo repository.PointsRepository,
) *treeDomain {
	return &treeDomain{
		treeRepo:   treeRepo,
		pointsRepo: pointsRepo,
	}
}

// WaterTree advances the active tree by at most one stage per calendar
// day. The very first watering plants a seed without advancing it, and
// watering a full-grown tree retires that record untouched and plants a
// new seed whose history starts with the watering day.
func (d *treeDomain) WaterTree(
	ctx context.Context, req *model.WaterTreeRequest,
) (*model.WaterTreeResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	date := req.Date
	if date == "" {
		date = dateutil.Today()
	}

	requestDate, err := dateutil.Parse(date)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid date %s", date)
	}

	if requestDate.After(dateutil.ToDate(time.Now())) {
		return nil, errorx.New(errorx.BadRequest, "Not allow watering on a future date")
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	tree, err := d.treeRepo.GetActive(ctx, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get active tree: %v", err)
		return nil, errorx.Unknown
	}

	switch {
	case err != nil:
		// First watering ever plants the seed.
		tree = &entity.Tree{
			Base:         entity.Base{ID: uuid.NewString()},
			UserID:       userID,
			Stage:        entity.TreeStageSeed,
			WaterHistory: entity.Array[string]{date},
		}
		if err := d.treeRepo.Create(ctx, tree); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot create tree: %v", err)
			return nil, errorx.Unknown
		}

	default:
		if len(tree.WaterHistory) > 0 {
			lastDate, err := dateutil.Parse(tree.WaterHistory[len(tree.WaterHistory)-1])
			if err != nil {
				xcontext.Logger(ctx).Errorf("Cannot parse last watered date: %v", err)
				return nil, errorx.Unknown
			}

			// The tree grows only when the request date passed the last
			// watered day. Repeats and backdated requests change nothing.
			if !requestDate.After(lastDate) {
				ctx = xcontext.WithCommitDBTransaction(ctx)
				return &model.WaterTreeResponse{Tree: model.ConvertTree(tree)}, nil
			}
		}

		if nextStage, grows := tree.Stage.NextStage(); grows {
			tree.Stage = nextStage
			tree.WaterHistory = append(tree.WaterHistory, date)
			if err := d.treeRepo.Update(ctx, tree); err != nil {
				xcontext.Logger(ctx).Errorf("Cannot update tree: %v", err)
				return nil, errorx.Unknown
			}
		} else {
			// The full-grown record keeps its history as-is; the new day
			// belongs to the next tree.
			tree.Retired = true
			if err := d.treeRepo.Update(ctx, tree); err != nil {
				xcontext.Logger(ctx).Errorf("Cannot retire tree: %v", err)
				return nil, errorx.Unknown
			}

			tree = &entity.Tree{
				Base:         entity.Base{ID: uuid.NewString()},
				UserID:       userID,
				Stage:        entity.TreeStageSeed,
				WaterHistory: entity.Array[string]{date},
			}
			if err := d.treeRepo.Create(ctx, tree); err != nil {
				xcontext.Logger(ctx).Errorf("Cannot plant new tree: %v", err)
				return nil, errorx.Unknown
			}
		}
	}

	points := xcontext.Configs(ctx).Tree.PointsPerWatering
	err = d.pointsRepo.Create(ctx, &entity.PointsEntry{
		Base:    entity.Base{ID: uuid.NewString()},
		UserID:  userID,
		Type:    entity.PointsEntryTypeEarn,
		Amount:  points,
		Details: "Watered the tree",
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create points entry: %v", err)
		return nil, errorx.Unknown
	}

	ctx = xcontext.WithCommitDBTransaction(ctx)

	return &model.WaterTreeResponse{
		Tree:         model.ConvertTree(tree),
		PointsEarned: points,
	}, nil
}

func (d *treeDomain) SetReminder(
	ctx context.Context, req *model.SetReminderRequest,
) (*model.SetReminderResponse, error) {
	if req.Hour < 0 || req.Hour > 23 || req.Minute < 0 || req.Minute > 59 {
		return nil, errorx.New(errorx.BadRequest, "Invalid reminder time")
	}

	tree, err := d.treeRepo.GetActive(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found active tree")
		}

		xcontext.Logger(ctx).Errorf("Cannot get active tree: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.treeRepo.SetReminder(ctx, tree.ID, req.Hour, req.Minute); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot set reminder: %v", err)
		return nil, errorx.Unknown
	}

	return &model.SetReminderResponse{}, nil
}

func (d *treeDomain) GetTrees(
	ctx context.Context, req *model.GetTreesRequest,
) (*model.GetTreesResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	trees, err := d.treeRepo.GetByUserID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get trees: %v", err)
		return nil, errorx.Unknown
	}

	today := dateutil.Today()
	resp := &model.GetTreesResponse{Trees: []model.Tree{}}
	for i := range trees {
		clientTree := model.ConvertTree(&trees[i])
		resp.Trees = append(resp.Trees, clientTree)

		if !trees[i].Retired {
			resp.ActiveTree = &clientTree
			history := trees[i].WaterHistory
			if len(history) > 0 && history[len(history)-1] == today {
				resp.WateredToday = true
			}
		}
	}

	return resp, nil
}
