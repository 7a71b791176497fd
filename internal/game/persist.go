package game

import (
	"strings"

	"github.com/lgbarn/termchess/internal/engine"
	"github.com/lgbarn/termchess/internal/errors"
	"github.com/lgbarn/termchess/internal/storage"
)

const cancel = "cancel"

// save asks for a name and stores the current state under it.
func (g *Game) save() error {
	g.listSaves("Existing saves are listed below:")
	g.ui.Message("Name your save - 'cancel' to cancel")

	name, err := g.ui.Prompt(">> ")
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)

	saved := false
	if name != "" && name != cancel {
		err := g.store.Save(storage.Save{
			Name:     name,
			Colour:   g.colour,
			Moves:    g.Moves(),
			Position: engine.WritePosition(g.board),
		})
		if err != nil {
			g.logger.WithError(err).Error("save failed")
		} else {
			saved = true
		}
	}
	if saved {
		g.ui.Message("Save successful")
	} else {
		g.ui.Message("File not saved")
	}

	g.ui.Message("Press Enter to continue")
	_, err = g.ui.Prompt("")
	return err
}

// load asks for a save to restore. Anything that does not name a usable save
// starts a new game.
func (g *Game) load() error {
	g.ui.Message("Type the name of a save listed below to load it,\nor press Enter to start a new game:")
	g.listSaves("")

	name, err := g.ui.Prompt(">> ")
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" || name == cancel {
		return g.newGame()
	}

	save, err := g.store.Load(name)
	if err != nil {
		if !errors.Is(err, errors.ErrUnknownSave) {
			g.logger.WithError(err).Error("load failed")
		}
		return g.newGame()
	}
	if err := g.reset(save.Position, save.Colour, save.Moves); err != nil {
		g.logger.WithError(err).WithField("name", name).Error("saved position unreadable")
		return g.newGame()
	}
	return nil
}

func (g *Game) listSaves(heading string) {
	names, err := g.store.List()
	if err != nil {
		g.logger.WithError(err).Error("listing saves failed")
	}
	if heading != "" {
		g.ui.Message(heading)
	}
	if len(names) == 0 {
		g.ui.Message("-- no saves --")
		return
	}
	for _, name := range names {
		g.ui.Message("- " + name)
	}
}

// Resume restores a saved state without asking.
func (g *Game) Resume(save storage.Save) error {
	return g.reset(save.Position, save.Colour, append([]string(nil), save.Moves...))
}
