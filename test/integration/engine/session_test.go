// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Loreline Contributors

//go:build integration

package engine_test

import (
	"context"
	"strings"

	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention

	"github.com/loreline/loreline/internal/auth"
	"github.com/loreline/loreline/internal/command"
	"github.com/loreline/loreline/internal/command/handlers"
	"github.com/loreline/loreline/internal/session"
	"github.com/loreline/loreline/internal/world"
)

const seedYAML = `
start: gatehouse
locations:
  - ref: gatehouse
    title: The Gatehouse
    description: A squat stone gatehouse.
    exits:
      north: courtyard
  - ref: courtyard
    title: The Courtyard
    description: Weeds push through the flagstones.
    exits:
      south: gatehouse
      east: keep
  - ref: keep
    title: The Keep
    exits:
      west: courtyard
`

var _ = Describe("Interactive Session", func() {
	var (
		ctx        context.Context
		store      *world.Store
		dispatcher *command.Dispatcher
		completer  *command.Completer
		history    *command.History
		sess       *session.Context
	)

	// dispatch runs one line the way the console does, recording it in
	// history first.
	dispatch := func(line string) command.Result {
		history.Append(line)
		return dispatcher.Dispatch(ctx, line, sess)
	}

	output := func(r command.Result) string {
		return strings.Join(r.Output, "\n")
	}

	BeforeEach(func() {
		ctx = context.Background()

		var start string
		var err error
		store, start, err = world.ParseSeed([]byte(seedYAML))
		Expect(err).NotTo(HaveOccurred())

		registry := command.NewRegistry()
		Expect(handlers.RegisterAll(registry)).To(Succeed())

		hash, err := auth.Hash("sesame")
		Expect(err).NotTo(HaveOccurred())

		history = command.NewHistory()
		services := &command.Services{
			World:       store,
			History:     history,
			Registry:    registry,
			BuilderHash: hash,
		}
		dispatcher, err = command.NewDispatcher(registry, services)
		Expect(err).NotTo(HaveOccurred())
		completer = command.NewCompleter(registry, store, nil)

		startLoc, err := store.Get(start)
		Expect(err).NotTo(HaveOccurred())
		sess = session.New("iris", startLoc)
	})

	Describe("playing", func() {
		It("describes the surroundings", func() {
			result := dispatch("look")
			Expect(result.Success).To(BeTrue())
			Expect(output(result)).To(ContainSubstring("The Gatehouse"))
			Expect(output(result)).To(ContainSubstring("Exits: north"))
		})

		It("moves through exits, including via alias", func() {
			result := dispatch("go north")
			Expect(result.Success).To(BeTrue())
			Expect(sess.Location.Ref).To(Equal("courtyard"))

			result = dispatch("move east")
			Expect(result.Success).To(BeTrue())
			Expect(sess.Location.Ref).To(Equal("keep"))
		})

		It("rejects unknown exits without moving", func() {
			result := dispatch("go down")
			Expect(result.Success).To(BeFalse())
			Expect(result.Err.Code).To(Equal(world.CodeUnknownExit))
			Expect(sess.Location.Ref).To(Equal("gatehouse"))
		})

		It("suggests close commands for typos", func() {
			result := dispatch("lok")
			Expect(result.Success).To(BeFalse())
			Expect(result.Err.Code).To(Equal(command.CodeUnknownCommand))
			Expect(result.Err.Suggestion).To(ContainSubstring("look"))
		})

		It("keeps quoted speech intact", func() {
			result := dispatch(`say "what a strange place"`)
			Expect(result.Success).To(BeTrue())
			Expect(output(result)).To(ContainSubstring(`"what a strange place"`))
		})
	})

	Describe("building", func() {
		elevate := func() {
			Expect(dispatch("elevate sesame").Success).To(BeTrue())
			Expect(dispatch("mode build").Success).To(BeTrue())
		}

		It("refuses build commands before elevation", func() {
			result := dispatch("dig north cellar")
			Expect(result.Success).To(BeFalse())
			Expect(result.Err.Code).To(Equal(command.CodeModeRestricted))

			result = dispatch("elevate wrong")
			Expect(result.Success).To(BeFalse())

			result = dispatch("mode build")
			Expect(result.Success).To(BeFalse())
		})

		It("digs, edits, and teleports once elevated", func() {
			elevate()

			Expect(dispatch("dig south cellar 'The Old Cellar'").Success).To(BeTrue())
			Expect(dispatch("teleport cellar").Success).To(BeTrue())
			Expect(sess.Location.Ref).To(Equal("cellar"))

			Expect(dispatch("edit title The Damp Cellar").Success).To(BeTrue())
			Expect(dispatch("edit description Mushrooms line the walls.").Success).To(BeTrue())

			loc, err := store.Get("cellar")
			Expect(err).NotTo(HaveOccurred())
			Expect(loc.Title).To(Equal("The Damp Cellar"))
			Expect(loc.Description).To(Equal("Mushrooms line the walls."))
		})

		It("demolishes only after confirmation", func() {
			elevate()

			result := dispatch("demolish keep")
			Expect(result.Success).To(BeTrue())
			Expect(store.Len()).To(Equal(3))

			result = dispatch("confirm")
			Expect(result.Success).To(BeTrue())
			Expect(store.Len()).To(Equal(2))

			courtyard, err := store.Get("courtyard")
			Expect(err).NotTo(HaveOccurred())
			Expect(courtyard.Exits).NotTo(HaveKey("east"))
		})
	})

	Describe("completion", func() {
		It("collapses a unique command prefix", func() {
			got := completer.Complete("loo", 3, sess)
			Expect(got.Completed).To(Equal("look"))
		})

		It("completes identifiers only for elevated builders", func() {
			got := completer.Complete("teleport ke", 11, sess)
			Expect(got.Suggestions).To(BeEmpty())

			Expect(dispatch("elevate sesame").Success).To(BeTrue())
			Expect(dispatch("mode build").Success).To(BeTrue())

			got = completer.Complete("teleport ke", 11, sess)
			Expect(got.Completed).To(Equal("keep"))
		})
	})

	Describe("history", func() {
		It("records lines and serves recall", func() {
			dispatch("look")
			dispatch("look")
			dispatch("go north")

			Expect(history.Entries()).To(Equal([]string{"look", "go north"}))

			line, ok := history.Recall(command.Backward)
			Expect(ok).To(BeTrue())
			Expect(line).To(Equal("go north"))

			line, ok = history.Recall(command.Backward)
			Expect(ok).To(BeTrue())
			Expect(line).To(Equal("look"))

			_, ok = history.Recall(command.Forward)
			Expect(ok).To(BeTrue())
			_, ok = history.Recall(command.Forward)
			Expect(ok).To(BeFalse())
		})

		It("lists itself through the history command", func() {
			dispatch("look")
			result := dispatch("history")
			Expect(result.Success).To(BeTrue())
			Expect(output(result)).To(ContainSubstring("look"))
		})
	})
})
