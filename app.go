package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/a-poor/chatbox/bubbles/chatlist"
	"github.com/a-poor/chatbox/bubbles/textbox"
	"github.com/a-poor/chatbox/chat"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

type config struct {
	welcome     string
	placeholder string
	smooth      bool
	tolerance   int
	logFile     string
	debug       bool
}

func configFromCommand(cmd *cli.Command) config {
	return config{
		welcome:     cmd.String("welcome"),
		placeholder: cmd.String("placeholder"),
		smooth:      cmd.Bool("smooth"),
		tolerance:   int(cmd.Int("tolerance")),
		logFile:     cmd.String("log-file"),
		debug:       cmd.Bool("debug"),
	}
}

func (c config) validate() error {
	if c.tolerance < 1 {
		return fmt.Errorf("tolerance must be at least 1 row, got %d", c.tolerance)
	}
	if c.debug && c.logFile == "" {
		return errors.New("--debug needs --log-file, the terminal is taken by the UI")
	}
	return nil
}

func makeApp() *cli.Command {
	return &cli.Command{
		Name:  "chatbox",
		Usage: "A small chat box for the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "welcome",
				Usage:   "first message shown in the chat",
				Value:   chat.DefaultWelcome,
				Sources: cli.EnvVars("CHATBOX_WELCOME"),
			},
			&cli.StringFlag{
				Name:    "placeholder",
				Usage:   "text shown in the empty input",
				Value:   textbox.DefaultPlaceholder,
				Sources: cli.EnvVars("CHATBOX_PLACEHOLDER"),
			},
			&cli.BoolFlag{
				Name:  "smooth",
				Usage: "animate scrolling to new messages",
				Value: true,
			},
			&cli.IntFlag{
				Name:  "tolerance",
				Usage: "rows from the bottom that still count as following the chat",
				Value: chatlist.DefaultRowTolerance,
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "write logs to this file",
				Sources: cli.EnvVars("CHATBOX_LOG_FILE"),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "log at debug level",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := configFromCommand(cmd)
			if err := cfg.validate(); err != nil {
				return err
			}

			log, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			log.Info("starting chat", zap.Bool("smooth", cfg.smooth))
			p := tea.NewProgram(newModel(cfg, log),
				tea.WithContext(ctx),
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("failed to run chat: %w", err)
			}
			log.Info("chat closed")
			return nil
		},
	}
}
