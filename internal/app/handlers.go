package app

import (
	"errors"

	"github.com/dshills/minivi/internal/engine/buffer"
	"github.com/dshills/minivi/internal/engine/cursor"
	"github.com/dshills/minivi/internal/input/key"
	"github.com/dshills/minivi/internal/input/mode"
)

// handleKey routes one key event through the current mode and applies
// the resulting action. Returns ErrQuit when the editor should exit.
func (app *Application) handleKey(ev key.Event) error {
	current := app.modes.Current()
	if current == nil {
		return nil
	}

	act := current.Handle(ev)

	var err error
	if act != nil {
		err = app.apply(act)
	}

	// The command prompt echoes the typed line after every keystroke.
	if app.modes.IsMode(mode.ModeCommand) {
		app.status.ShowPrompt(app.commandMode.Line())
	} else {
		app.status.HidePrompt()
	}

	return err
}

// apply executes one action against the buffer, cursor, and mode
// state. This is the single place where modes' requests turn into
// mutations, so cursor recovery stays consistent with every edit.
func (app *Application) apply(act *mode.Action) error {
	switch act.Kind {
	case mode.ActionMoveUp:
		app.cur.Move(cursor.Up, app.buf)
	case mode.ActionMoveDown:
		app.cur.Move(cursor.Down, app.buf)
	case mode.ActionMoveLeft:
		app.cur.Move(cursor.Left, app.buf)
	case mode.ActionMoveRight:
		app.cur.Move(cursor.Right, app.buf)
	case mode.ActionLineStart:
		app.cur.LineStart()
	case mode.ActionLineEnd:
		app.cur.LineEnd(app.buf)
	case mode.ActionWordForward:
		app.cur.WordForward(app.buf)
	case mode.ActionWordBackward:
		app.cur.WordBackward(app.buf)
	case mode.ActionPageDown:
		app.cur.PageMove(app.cfg.PageSize, app.buf)
	case mode.ActionPageUp:
		app.cur.PageMove(-app.cfg.PageSize, app.buf)
	case mode.ActionBufferStart:
		app.cur.JumpStart()
	case mode.ActionBufferEnd:
		app.cur.JumpEnd(app.buf)

	case mode.ActionDeleteForward:
		app.buf.DeleteCharAt(app.cur.Line, app.cur.Col)
		app.cur.Clamp(app.buf)
	case mode.ActionDeleteBackward:
		// X stays on the current row; it never joins lines.
		if app.cur.Col > 0 {
			app.buf.DeleteChar(app.cur.Line, app.cur.Col)
			app.cur.Col--
		}
	case mode.ActionDeleteRow:
		app.buf.DeleteRow(app.cur.Line)
		app.cur.Clamp(app.buf)
	case mode.ActionInsertRune:
		app.buf.InsertChar(app.cur.Line, app.cur.Col, act.Rune)
		app.cur.Col++
	case mode.ActionNewline:
		app.buf.InsertNewline(app.cur.Line, app.cur.Col)
		app.cur.Line++
		app.cur.Col = 0
		app.cur.Clamp(app.buf)
	case mode.ActionBackspace:
		app.backspace()

	case mode.ActionEnterView:
		return app.modes.Switch(mode.ModeView)
	case mode.ActionEnterInsert:
		return app.enterInsert(act.Open)
	case mode.ActionEnterCommand:
		return app.modes.Switch(mode.ModeCommand)

	case mode.ActionSave:
		app.save(act.Path)
		return app.modes.Switch(mode.ModeView)
	case mode.ActionQuit:
		if !act.Force && app.buf.IsModified() {
			app.status.SetMessage("unsaved changes (use :q! to discard)")
			app.log.Warnf("quit refused: %v", ErrUnsavedChanges)
			return app.modes.Switch(mode.ModeView)
		}
		app.log.Infof("quit (forced=%v)", act.Force)
		return ErrQuit
	case mode.ActionNotice:
		app.status.SetMessage("%s", act.Message)
		return app.modes.Switch(mode.ModeView)
	}
	return nil
}

// backspace deletes backward from the cursor, recovering the cursor
// position across a line join: the cursor lands where the previous
// row used to end.
func (app *Application) backspace() {
	switch {
	case app.cur.Col > 0:
		app.buf.DeleteChar(app.cur.Line, app.cur.Col)
		app.cur.Col--
	case app.cur.Line > 0:
		joinCol := app.buf.RowLen(app.cur.Line - 1)
		app.buf.DeleteChar(app.cur.Line, 0)
		app.cur.Line--
		app.cur.Col = joinCol
	}
}

// enterInsert switches to insert mode, opening a new row first for
// the o and O variants.
func (app *Application) enterInsert(open mode.OpenVariant) error {
	switch open {
	case mode.OpenBelow:
		at := app.cur.Line + 1
		if app.buf.NumRows() == 0 {
			at = 0
		}
		app.buf.InsertRow(at, "")
		app.cur.Line = at
		app.cur.Col = 0
	case mode.OpenAbove:
		app.buf.InsertRow(app.cur.Line, "")
		app.cur.Col = 0
	}
	app.cur.Clamp(app.buf)
	return app.modes.Switch(mode.ModeInsert)
}

// save writes the buffer, reporting the outcome on the message bar.
// Save failures leave the buffer and its dirty state untouched.
func (app *Application) save(path string) {
	err := app.buf.SaveFile(path)
	switch {
	case err == nil:
		app.status.SetMessage("%d bytes written to %s", len(app.buf.Serialize()), app.buf.Filename())
		app.log.Infof("saved %s", app.buf.Filename())
	case errors.Is(err, buffer.ErrNoFilename):
		app.status.SetMessage("no filename (use :w <path>)")
		app.log.Warnf("save failed: no filename")
	default:
		app.status.SetMessage("save failed: %v", err)
		app.log.Errorf("save failed: %v", err)
	}
}
