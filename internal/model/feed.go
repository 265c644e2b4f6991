package model

type Post struct {
	ID            string         `json:"id"`
	Author        User           `json:"author"`
	Caption       string         `json:"caption"`
	ImageURL      string         `json:"image_url,omitempty"`
	Reactions     map[string]int `json:"reactions,omitempty"`
	TotalComments int64          `json:"total_comments"`
	CreatedAt     string         `json:"created_at"`
}

type PostComment struct {
	ID        string `json:"id"`
	Author    User   `json:"author"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

type CreatePostRequest struct {
	Caption  string `json:"caption"`
	ImageURL string `json:"image_url"`
}

type CreatePostResponse struct {
	ID string `json:"id"`
}

type UpdatePostRequest struct {
	PostID   string `json:"post_id"`
	Caption  string `json:"caption"`
	ImageURL string `json:"image_url"`
}

type UpdatePostResponse struct{}

type DeletePostRequest struct {
	PostID string `json:"post_id"`
}

type DeletePostResponse struct{}

type GetPostsRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type GetPostsResponse struct {
	Posts []Post `json:"posts"`
}

type CreateCommentRequest struct {
	PostID  string `json:"post_id"`
	Content string `json:"content"`
}

type CreateCommentResponse struct {
	ID string `json:"id"`
}

type GetCommentsRequest struct {
	PostID string `json:"post_id"`
}

type GetCommentsResponse struct {
	Comments []PostComment `json:"comments"`
}

type AddPostReactionRequest struct {
	PostID string `json:"post_id"`
	Type   string `json:"type"`
}

type AddPostReactionResponse struct{}

type RemovePostReactionRequest struct {
	PostID string `json:"post_id"`
}

type RemovePostReactionResponse struct{}
