package main

import (
	"net/http"

	"github.com/bigex/backend/internal/middleware"
	"github.com/bigex/backend/pkg/router"
	"github.com/bigex/backend/pkg/xcontext"

	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(*cli.Context) error {
	s.loadConfig()
	s.ctx = xcontext.WithDB(s.ctx, s.newDatabase())
	s.migrateDB()
	s.loadRedisClient()
	s.loadPublisher()
	s.loadStorage()
	s.loadPusher()
	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	cfg := xcontext.Configs(s.ctx)
	xcontext.Logger(s.ctx).Infof("Server start in port: %s", cfg.ApiServer.Port)
	httpSrv := &http.Server{
		Addr:    cfg.ApiServer.Address(),
		Handler: s.router.Handler(),
	}
	if err := httpSrv.ListenAndServe(); err != nil {
		return err
	}

	xcontext.Logger(s.ctx).Infof("Server stop")
	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.ctx)
	s.router.AddCloser(middleware.Logger())

	// Auth API
	router.POST(s.router, "/register", s.authDomain.Register)
	router.POST(s.router, "/login", s.authDomain.Login)
	router.POST(s.router, "/refresh", s.authDomain.Refresh)

	// These following APIs need authentication.
	authRouter := s.router.Branch()
	authRouter.Before(middleware.NewAuthVerifier().Middleware())
	{
		// User API
		router.GET(authRouter, "/getMe", s.userDomain.GetMe)
		router.GET(authRouter, "/getUser", s.userDomain.GetUser)
		router.POST(authRouter, "/updateProfile", s.userDomain.UpdateProfile)
		router.POST(authRouter, "/updateFCMToken", s.userDomain.UpdateFCMToken)

		// Presence API
		router.POST(authRouter, "/online", s.presenceDomain.Online)
		router.POST(authRouter, "/offline", s.presenceDomain.Offline)
		router.POST(authRouter, "/heartbeat", s.presenceDomain.Heartbeat)

		// Friend API
		router.POST(authRouter, "/sendFriendRequest", s.friendDomain.SendRequest)
		router.POST(authRouter, "/acceptFriendRequest", s.friendDomain.AcceptRequest)
		router.POST(authRouter, "/rejectFriendRequest", s.friendDomain.RejectRequest)
		router.GET(authRouter, "/getPendingFriendRequests", s.friendDomain.GetPendingRequests)
		router.GET(authRouter, "/getFriends", s.friendDomain.GetFriends)

		// Chat API
		router.POST(authRouter, "/createMessage", s.chatDomain.CreateMessage)
		router.POST(authRouter, "/markRead", s.chatDomain.MarkRead)
		router.GET(authRouter, "/getConversation", s.chatDomain.GetConversation)
		router.GET(authRouter, "/getUnreadCount", s.chatDomain.GetUnreadCount)
		router.POST(authRouter, "/addReaction", s.chatDomain.AddReaction)
		router.POST(authRouter, "/removeReaction", s.chatDomain.RemoveReaction)

		// Feed API
		router.POST(authRouter, "/createPost", s.feedDomain.CreatePost)
		router.POST(authRouter, "/updatePost", s.feedDomain.UpdatePost)
		router.POST(authRouter, "/deletePost", s.feedDomain.DeletePost)
		router.GET(authRouter, "/getPosts", s.feedDomain.GetPosts)
		router.POST(authRouter, "/createComment", s.feedDomain.CreateComment)
		router.GET(authRouter, "/getComments", s.feedDomain.GetComments)
		router.POST(authRouter, "/addPostReaction", s.feedDomain.AddReaction)
		router.POST(authRouter, "/removePostReaction", s.feedDomain.RemoveReaction)

		// Tree API
		router.POST(authRouter, "/waterTree", s.treeDomain.WaterTree)
		router.POST(authRouter, "/setWateringReminder", s.treeDomain.SetReminder)
		router.GET(authRouter, "/getTrees", s.treeDomain.GetTrees)

		// Points API
		router.GET(authRouter, "/getPoints", s.pointsDomain.GetPoints)
		router.POST(authRouter, "/redeemPoints", s.pointsDomain.RedeemPoints)

		// Notification API
		router.GET(authRouter, "/getNotifications", s.notificationDomain.GetMyNotifications)
		router.POST(authRouter, "/markNotificationRead", s.notificationDomain.MarkNotificationRead)

		// Call API
		router.POST(authRouter, "/issueCallToken", s.callDomain.IssueCallToken)

		// Image API
		router.POST(authRouter, "/uploadImage", s.fileDomain.UploadImage)
	}
}
