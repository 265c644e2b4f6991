package main

import "github.com/urfave/cli/v2"

func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Action = cli.ShowAppHelp
	app.Name = "Bigex"
	app.Usage = ""
	app.Commands = []*cli.Command{
		{
			Action:      server.startApi,
			Name:        "api",
			Usage:       "Start the api service",
			Category:    "Api",
			Description: `The main service with all REST apis.`,
		},
		{
			Action:      server.startNotificationProxy,
			Name:        "proxy",
			Usage:       "Start the notification proxy",
			Category:    "Websocket",
			Description: `Holds the websocket connections of clients and streams realtime events to them.`,
		},
		{
			Action:      server.startCron,
			Name:        "cron",
			Usage:       "Start the cron jobs",
			Category:    "Worker",
			Description: `Runs the presence sweep and the watering reminders.`,
		},
	}

	s.app = app
}
