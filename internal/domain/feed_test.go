package domain

import (
	"testing"

	"github.com/bigex/backend/internal/model"
	"github.com/bigex/backend/internal/repository"
	"github.com/bigex/backend/pkg/errorx"
	"github.com/bigex/backend/pkg/testutil"
	"github.com/bigex/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newFeedDomainForTest() *feedDomain {
	return NewFeedDomain(repository.NewPostRepository(), repository.NewUserRepository())
}

func Test_feedDomain_Posts(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)

	domain := newFeedDomainForTest()
	ctxUser1 := xcontext.WithRequestUserID(ctx, "user1")

	created, err := domain.CreatePost(ctxUser1, &model.CreatePostRequest{
		Caption:  "my tree is growing",
		ImageURL: "https://storage.example.com/tree.png",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	posts, err := domain.GetPosts(ctxUser1, &model.GetPostsRequest{})
	require.NoError(t, err)
	require.Len(t, posts.Posts, 1)
	require.Equal(t, "user1", posts.Posts[0].Author.ID)
	require.Equal(t, "my tree is growing", posts.Posts[0].Caption)
	require.Equal(t, "https://storage.example.com/tree.png", posts.Posts[0].ImageURL)

	// Only the author can update or delete.
	var errx errorx.Error
	ctxUser2 := xcontext.WithRequestUserID(ctx, "user2")
	_, err = domain.UpdatePost(ctxUser2, &model.UpdatePostRequest{PostID: created.ID, Caption: "edited"})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.PermissionDenied, errx.Code)

	_, err = domain.DeletePost(ctxUser2, &model.DeletePostRequest{PostID: created.ID})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.PermissionDenied, errx.Code)

	// Editing replaces the caption and the image together.
	_, err = domain.UpdatePost(ctxUser1, &model.UpdatePostRequest{
		PostID:   created.ID,
		Caption:  "edited",
		ImageURL: "https://storage.example.com/tree-v2.png",
	})
	require.NoError(t, err)

	posts, err = domain.GetPosts(ctxUser1, &model.GetPostsRequest{})
	require.NoError(t, err)
	require.Equal(t, "edited", posts.Posts[0].Caption)
	require.Equal(t, "https://storage.example.com/tree-v2.png", posts.Posts[0].ImageURL)

	_, err = domain.UpdatePost(ctxUser1, &model.UpdatePostRequest{PostID: created.ID})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)

	_, err = domain.DeletePost(ctxUser1, &model.DeletePostRequest{PostID: created.ID})
	require.NoError(t, err)

	posts, err = domain.GetPosts(ctxUser1, &model.GetPostsRequest{})
	require.NoError(t, err)
	require.Empty(t, posts.Posts)
}

func Test_feedDomain_CommentsAndReactions(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)

	domain := newFeedDomainForTest()
	ctxUser1 := xcontext.WithRequestUserID(ctx, "user1")
	ctxUser2 := xcontext.WithRequestUserID(ctx, "user2")

	created, err := domain.CreatePost(ctxUser1, &model.CreatePostRequest{Caption: "hello"})
	require.NoError(t, err)

	_, err = domain.CreateComment(ctxUser2, &model.CreateCommentRequest{
		PostID:  created.ID,
		Content: "nice",
	})
	require.NoError(t, err)

	comments, err := domain.GetComments(ctxUser1, &model.GetCommentsRequest{PostID: created.ID})
	require.NoError(t, err)
	require.Len(t, comments.Comments, 1)
	require.Equal(t, "user2", comments.Comments[0].Author.ID)

	_, err = domain.AddReaction(ctxUser1, &model.AddPostReactionRequest{PostID: created.ID, Type: "like"})
	require.NoError(t, err)
	_, err = domain.AddReaction(ctxUser2, &model.AddPostReactionRequest{PostID: created.ID, Type: "like"})
	require.NoError(t, err)

	// The last reaction of a user replaces the previous one.
	_, err = domain.AddReaction(ctxUser2, &model.AddPostReactionRequest{PostID: created.ID, Type: "love"})
	require.NoError(t, err)

	posts, err := domain.GetPosts(ctxUser1, &model.GetPostsRequest{})
	require.NoError(t, err)
	require.Equal(t, map[string]int{"like": 1, "love": 1}, posts.Posts[0].Reactions)
	require.EqualValues(t, 1, posts.Posts[0].TotalComments)

	_, err = domain.RemoveReaction(ctxUser2, &model.RemovePostReactionRequest{PostID: created.ID})
	require.NoError(t, err)

	posts, err = domain.GetPosts(ctxUser1, &model.GetPostsRequest{})
	require.NoError(t, err)
	require.Equal(t, map[string]int{"like": 1}, posts.Posts[0].Reactions)
}

func Test_feedDomain_GetPosts_Limit(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)

	domain := newFeedDomainForTest()
	ctxUser1 := xcontext.WithRequestUserID(ctx, "user1")

	var errx errorx.Error
	_, err := domain.GetPosts(ctxUser1, &model.GetPostsRequest{Limit: maxPostLimit + 1})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
}
