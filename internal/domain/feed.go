package domain

import (
	"context"
	"errors"

	"github.com/bigex/backend/internal/entity"
	"github.com/bigex/backend/internal/model"
	"github.com/bigex/backend/internal/repository"
	"github.com/bigex/backend/pkg/errorx"
	"github.com/bigex/backend/pkg/xcontext"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultPostLimit = 20
	maxPostLimit     = 50
)

type FeedDomain interface {
	CreatePost(context.Context, *model.CreatePostRequest) (*model.CreatePostResponse, error)
	UpdatePost(context.Context, *model.UpdatePostRequest) (*model.UpdatePostResponse, error)
	DeletePost(context.Context, *model.DeletePostRequest) (*model.DeletePostResponse, error)
	GetPosts(context.Context, *model.GetPostsRequest) (*model.GetPostsResponse, error)
	CreateComment(context.Context, *model.CreateCommentRequest) (*model.CreateCommentResponse, error)
	GetComments(context.Context, *model.GetCommentsRequest) (*model.GetCommentsResponse, error)
	AddReaction(context.Context, *model.AddPostReactionRequest) (*model.AddPostReactionResponse, error)
	RemoveReaction(context.Context, *model.RemovePostReactionRequest) (*model.RemovePostReactionResponse, error)
}

type feedDomain struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

func NewFeedDomain(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) *feedDomain {
	return &feedDomain{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

func (d *feedDomain) CreatePost(
	ctx context.Context, req *model.CreatePostRequest,
) (*model.CreatePostResponse, error) {
	if req.Caption == "" && req.ImageURL == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty post")
	}

	post := &entity.Post{
		Base:     entity.Base{ID: uuid.NewString()},
		AuthorID: xcontext.RequestUserID(ctx),
		Caption:  req.Caption,
		ImageURL: req.ImageURL,
	}

	if err := d.postRepo.Create(ctx, post); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create post: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreatePostResponse{ID: post.ID}, nil
}

func (d *feedDomain) UpdatePost(
	ctx context.Context, req *model.UpdatePostRequest,
) (*model.UpdatePostResponse, error) {
	if req.Caption == "" && req.ImageURL == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty post")
	}

	post, err := d.getPost(ctx, req.PostID)
	if err != nil {
		return nil, err
	}

	if post.AuthorID != xcontext.RequestUserID(ctx) {
		return nil, errorx.New(errorx.PermissionDenied, "Only the author can update the post")
	}

	if err := d.postRepo.Update(ctx, post.ID, req.Caption, req.ImageURL); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update post: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdatePostResponse{}, nil
}

func (d *feedDomain) DeletePost(
	ctx context.Context, req *model.DeletePostRequest,
) (*model.DeletePostResponse, error) {
	post, err := d.getPost(ctx, req.PostID)
	if err != nil {
		return nil, err
	}

	if post.AuthorID != xcontext.RequestUserID(ctx) {
		return nil, errorx.New(errorx.PermissionDenied, "Only the author can delete the post")
	}

	if err := d.postRepo.Delete(ctx, post.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete post: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeletePostResponse{}, nil
}

func (d *feedDomain) GetPosts(
	ctx context.Context, req *model.GetPostsRequest,
) (*model.GetPostsResponse, error) {
	if req.Limit == 0 {
		req.Limit = defaultPostLimit
	}

	if req.Limit < 0 {
		return nil, errorx.New(errorx.BadRequest, "Limit must be positive")
	}

	if req.Limit > maxPostLimit {
		return nil, errorx.New(errorx.BadRequest, "Exceed the maximum of limit (%d)", maxPostLimit)
	}

	posts, err := d.postRepo.GetList(ctx, req.Offset, req.Limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get posts: %v", err)
		return nil, errorx.Unknown
	}

	postIDs := []string{}
	authorIDs := []string{}
	for _, post := range posts {
		postIDs = append(postIDs, post.ID)
		authorIDs = append(authorIDs, post.AuthorID)
	}

	authors, err := d.userRepo.GetByIDs(ctx, authorIDs)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get authors: %v", err)
		return nil, errorx.Unknown
	}

	authorMap := map[string]*entity.User{}
	for i := range authors {
		authorMap[authors[i].ID] = &authors[i]
	}

	reactions, err := d.postRepo.GetReactions(ctx, postIDs)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get reactions: %v", err)
		return nil, errorx.Unknown
	}

	reactionMap := map[string]map[string]int{}
	for _, reaction := range reactions {
		if reactionMap[reaction.PostID] == nil {
			reactionMap[reaction.PostID] = map[string]int{}
		}

		reactionMap[reaction.PostID][reaction.Type]++
	}

	commentMap, err := d.postRepo.CountComments(ctx, postIDs)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count comments: %v", err)
		return nil, errorx.Unknown
	}

	clientPosts := []model.Post{}
	for i := range posts {
		clientPosts = append(clientPosts, model.ConvertPost(
			&posts[i],
			authorMap[posts[i].AuthorID],
			reactionMap[posts[i].ID],
			commentMap[posts[i].ID],
		))
	}

	return &model.GetPostsResponse{Posts: clientPosts}, nil
}

func (d *feedDomain) CreateComment(
	ctx context.Context, req *model.CreateCommentRequest,
) (*model.CreateCommentResponse, error) {
	if req.Content == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty content")
	}

	post, err := d.getPost(ctx, req.PostID)
	if err != nil {
		return nil, err
	}

	comment := &entity.PostComment{
		Base:     entity.Base{ID: uuid.NewString()},
		PostID:   post.ID,
		AuthorID: xcontext.RequestUserID(ctx),
		Content:  req.Content,
	}

	if err := d.postRepo.CreateComment(ctx, comment); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create comment: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateCommentResponse{ID: comment.ID}, nil
}

func (d *feedDomain) GetComments(
	ctx context.Context, req *model.GetCommentsRequest,
) (*model.GetCommentsResponse, error) {
	post, err := d.getPost(ctx, req.PostID)
	if err != nil {
		return nil, err
	}

	comments, err := d.postRepo.GetComments(ctx, post.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get comments: %v", err)
		return nil, errorx.Unknown
	}

	authorIDs := []string{}
	for _, comment := range comments {
		authorIDs = append(authorIDs, comment.AuthorID)
	}

	authors, err := d.userRepo.GetByIDs(ctx, authorIDs)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get authors: %v", err)
		return nil, errorx.Unknown
	}

	authorMap := map[string]*entity.User{}
	for i := range authors {
		authorMap[authors[i].ID] = &authors[i]
	}

	clientComments := []model.PostComment{}
	for i := range comments {
		clientComments = append(clientComments,
			model.ConvertPostComment(&comments[i], authorMap[comments[i].AuthorID]))
	}

	return &model.GetCommentsResponse{Comments: clientComments}, nil
}

func (d *feedDomain) AddReaction(
	ctx context.Context, req *model.AddPostReactionRequest,
) (*model.AddPostReactionResponse, error) {
	if req.Type == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty reaction type")
	}

	post, err := d.getPost(ctx, req.PostID)
	if err != nil {
		return nil, err
	}

	err = d.postRepo.UpsertReaction(ctx, &entity.PostReaction{
		PostID: post.ID,
		UserID: xcontext.RequestUserID(ctx),
		Type:   req.Type,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot upsert reaction: %v", err)
		return nil, errorx.Unknown
	}

	return &model.AddPostReactionResponse{}, nil
}

func (d *feedDomain) RemoveReaction(
	ctx context.Context, req *model.RemovePostReactionRequest,
) (*model.RemovePostReactionResponse, error) {
	post, err := d.getPost(ctx, req.PostID)
	if err != nil {
		return nil, err
	}

	err = d.postRepo.DeleteReaction(ctx, post.ID, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete reaction: %v", err)
		return nil, errorx.Unknown
	}

	return &model.RemovePostReactionResponse{}, nil
}

func (d *feedDomain) getPost(ctx context.Context, postID string) (*entity.Post, error) {
	if postID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty post id")
	}

	post, err := d.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found post")
		}

		xcontext.Logger(ctx).Errorf("Cannot get post: %v", err)
		return nil, errorx.Unknown
	}

	return post, nil
}
