// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Loreline Contributors

package handlers

import (
	"github.com/loreline/loreline/internal/command"
)

// RegisterAll registers the built-in command set.
func RegisterAll(reg *command.Registry) error {
	entries := []command.Entry{
		{
			Name:    "look",
			Aliases: []string{"l"},
			Mode:    command.EligibilityAny,
			Handler: LookHandler,
			Help:    "Look at your surroundings",
			Usage:   "look",
		},
		{
			Name:     "go",
			Aliases:  []string{"move", "walk"},
			Mode:     command.EligibilityAny,
			Handler:  GoHandler,
			Help:     "Move through an exit",
			Usage:    "go <direction>",
			Examples: "  go north\n  go up",
		},
		{
			Name:    "say",
			Aliases: []string{"shout"},
			Mode:    command.EligibilityPlay,
			Handler: SayHandler,
			Help:    "Say something out loud",
			Usage:   "say <message>",
		},
		{
			Name:    "where",
			Mode:    command.EligibilityAny,
			Handler: WhereHandler,
			Help:    "Name your current location",
			Usage:   "where",
		},
		{
			Name:     "help",
			Aliases:  []string{"?", "h"},
			Mode:     command.EligibilityAny,
			Handler:  HelpHandler,
			Help:     "List commands or show help for one",
			Usage:    "help [command|pattern]",
			Examples: "  help go\n  help edit*",
		},
		{
			Name:    "history",
			Mode:    command.EligibilityAny,
			Handler: HistoryHandler,
			Help:    "Show your submitted commands",
			Usage:   "history",
		},
		{
			Name:    "mode",
			Mode:    command.EligibilityAny,
			Handler: ModeHandler,
			Help:    "Switch between play and build mode",
			Usage:   "mode <play|build>",
		},
		{
			Name:    "elevate",
			Mode:    command.EligibilityAny,
			Handler: ElevateHandler,
			Help:    "Authenticate as a builder",
			Usage:   "elevate <password>",
		},
		{
			Name:    "quit",
			Aliases: []string{"exit", "q"},
			Mode:    command.EligibilityAny,
			Handler: QuitHandler,
			Help:    "Leave the game",
			Usage:   "quit",
		},
		{
			Name:    "edit title",
			Mode:    command.EligibilityBuild,
			Handler: EditTitleHandler,
			Help:    "Set the current location's title",
			Usage:   "edit title <text>",
		},
		{
			Name:    "edit description",
			Aliases: []string{"edit desc"},
			Mode:    command.EligibilityBuild,
			Handler: EditDescriptionHandler,
			Help:    "Set the current location's description",
			Usage:   "edit description <text>",
		},
		{
			Name:    "edit location",
			Mode:    command.EligibilityBuild,
			Handler: EditLocationHandler,
			Help:    "Move the editing focus to another location",
			Usage:   "edit location <ref>",
		},
		{
			Name:    "teleport",
			Aliases: []string{"tp"},
			Mode:    command.EligibilityBuild,
			Handler: TeleportHandler,
			Help:    "Jump to any location by identifier",
			Usage:   "teleport <ref>",
		},
		{
			Name:     "dig",
			Mode:     command.EligibilityBuild,
			Handler:  DigHandler,
			Help:     "Create a linked location",
			Usage:    "dig <direction> <ref> [title]",
			Examples: "  dig north cellar 'The Old Cellar'",
		},
		{
			Name:    "link",
			Mode:    command.EligibilityBuild,
			Handler: LinkHandler,
			Help:    "Add an exit from the current location",
			Usage:   "link <direction> <ref>",
		},
		{
			Name:    "demolish",
			Mode:    command.EligibilityBuild,
			Handler: DemolishHandler,
			Help:    "Remove a location (requires confirm)",
			Usage:   "demolish <ref>",
		},
		{
			Name:    "confirm",
			Mode:    command.EligibilityBuild,
			Handler: ConfirmHandler,
			Help:    "Carry out the pending destructive action",
			Usage:   "confirm",
		},
	}

	for _, e := range entries {
		if err := reg.Register(e); err != nil {
			return err
		}
	}
	return nil
}
