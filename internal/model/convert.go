package model

import (
	"time"

	"github.com/bigex/backend/internal/entity"
)

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(time.RFC3339)
}

func ConvertUser(user *entity.User, includePrivate bool) User {
	if user == nil {
		return User{}
	}

	resp := User{
		ID:             user.ID,
		Name:           user.Name,
		ProfilePicture: user.ProfilePicture,
		IsOnline:       user.IsOnline,
		LastOnline:     formatTime(user.LastOnline),
	}

	if includePrivate {
		resp.Email = user.Email
	}

	return resp
}

func ConvertMessage(message *entity.Message, reactions []entity.MessageReaction) Message {
	if message == nil {
		return Message{}
	}

	clientReactions := []MessageReaction{}
	for _, r := range reactions {
		clientReactions = append(clientReactions, MessageReaction{
			UserID: r.UserID,
			Emoji:  r.Emoji,
		})
	}

	return Message{
		ID:         message.ID,
		SenderID:   message.SenderID,
		ReceiverID: message.ReceiverID,
		Content:    message.Content,
		IsImage:    message.IsImage,
		IsRead:     message.IsRead,
		Reactions:  clientReactions,
		CreatedAt:  formatTime(message.CreatedAt),
	}
}

func ConvertFriendRequest(request *entity.FriendRequest, sender *entity.User) FriendRequest {
	if request == nil {
		return FriendRequest{}
	}

	return FriendRequest{
		Sender:    ConvertUser(sender, false),
		CreatedAt: formatTime(request.CreatedAt),
	}
}

func ConvertPost(post *entity.Post, author *entity.User, reactions map[string]int, totalComments int64) Post {
	if post == nil {
		return Post{}
	}

	return Post{
		ID:            post.ID,
		Author:        ConvertUser(author, false),
		Caption:       post.Caption,
		ImageURL:      post.ImageURL,
		Reactions:     reactions,
		TotalComments: totalComments,
		CreatedAt:     formatTime(post.CreatedAt),
	}
}

func ConvertPostComment(comment *entity.PostComment, author *entity.User) PostComment {
	if comment == nil {
		return PostComment{}
	}

	return PostComment{
		ID:        comment.ID,
		Author:    ConvertUser(author, false),
		Content:   comment.Content,
		CreatedAt: formatTime(comment.CreatedAt),
	}
}

func ConvertTree(tree *entity.Tree) Tree {
	if tree == nil {
		return Tree{}
	}

	return Tree{
		ID:             tree.ID,
		Stage:          string(tree.Stage),
		WaterHistory:   tree.WaterHistory,
		Retired:        tree.Retired,
		ReminderSet:    tree.ReminderSet,
		ReminderHour:   tree.ReminderHour,
		ReminderMinute: tree.ReminderMinute,
		CreatedAt:      formatTime(tree.CreatedAt),
	}
}

func ConvertPointsEntry(entry *entity.PointsEntry) PointsEntry {
	if entry == nil {
		return PointsEntry{}
	}

	return PointsEntry{
		ID:        entry.ID,
		Type:      entry.Type,
		Amount:    entry.Amount,
		Details:   entry.Details,
		CreatedAt: formatTime(entry.CreatedAt),
	}
}

func ConvertNotification(notification *entity.Notification) Notification {
	if notification == nil {
		return Notification{}
	}

	return Notification{
		ID:        notification.ID,
		Type:      notification.Type,
		Data:      notification.Data,
		IsRead:    notification.IsRead,
		CreatedAt: formatTime(notification.CreatedAt),
	}
}
