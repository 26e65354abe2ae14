package loop

import (
	"fmt"
	"time"

	"github.com/tomz197/invaders/internal/loop/config"
)

// drawUI draws the overlay for the current state on top of the playfield.
func (s *Session) drawUI() {
	termWidth := s.canvas.TerminalWidth()
	termHeight := s.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	if s.shuttingDown {
		s.drawShutdownScreen(centerX, centerY)
		return
	}
	if s.inactive {
		s.drawInactivityScreen(centerX, centerY)
		return
	}

	status := s.world.Status()
	switch status.State {
	case GameStateStart:
		s.drawStartScreen(centerX, centerY)
	case GameStatePlaying:
		s.drawPlayingHUD(termWidth, termHeight, status)
	case GameStateDead, GameStateOver:
		s.drawPlayingHUD(termWidth, termHeight, status)
		s.drawDeadScreen(centerX, centerY, status)
	}
}

// writeCentered writes each line centred on column centerX, starting at row.
func (s *Session) writeCentered(centerX, row int, lines ...string) {
	width := 0
	for _, line := range lines {
		width = max(width, len(line))
	}
	for i, line := range lines {
		s.chunkWriter.WriteAt(centerX-width/2, row+i, line)
	}
}

// blinkOn toggles a few times a second for flashing prompts.
func blinkOn() bool {
	return time.Now().UnixMilli()/600%2 == 0
}

// drawStartScreen draws the title screen.
func (s *Session) drawStartScreen(centerX, centerY int) {
	titleArt := []string{
		` ___ _  ___   ___   ___  ___ ___  ___ `,
		`|_ _| \| \ \ / /_\ |   \| __| _ \/ __|`,
		` | || .' |\ V / _ \| |) | _||   /\__ \`,
		`|___|_|\_| \_/_/ \_\___/|___|_|_\|___/`,
	}
	titleStartY := centerY - 8
	s.writeCentered(centerX, titleStartY, titleArt...)

	controlsY := titleStartY + len(titleArt) + 2
	s.writeCentered(centerX, controlsY, "Controls")
	controlLines := []string{
		"W A S D / Arrows . . Move",
		"SPACE . . . . . . . Shoot",
		"Q . . . . . . . . .  Quit",
	}
	s.writeCentered(centerX, controlsY+1, controlLines...)

	if blinkOn() {
		s.writeCentered(centerX, controlsY+len(controlLines)+2, ">>  Press SPACE to Start  <<")
	}
}

// drawPlayingHUD draws the in-game HUD.
// Text fields use fixed-width formatting so values line up frame to frame.
func (s *Session) drawPlayingHUD(termWidth, termHeight int, status Status) {
	cw := s.chunkWriter

	scoreText := fmt.Sprintf("Score: %-8d", status.Score)
	cw.WriteAt(2, 1, scoreText)

	livesText := fmt.Sprintf("Lives: %-3d", status.Lives)
	cw.WriteAt(termWidth-len(livesText)-1, 1, livesText)

	enemiesText := fmt.Sprintf("Enemies: %d/%d", status.Enemies, config.EnemyMax)
	cw.WriteAt(2, termHeight, enemiesText)

	squadText := fmt.Sprintf("Squad: %d/%d", status.Squad, config.FormationMembersMax)
	cw.WriteAt(termWidth-len(squadText)-1, termHeight, squadText)
}

// drawDeadScreen draws the death/game over overlay.
func (s *Session) drawDeadScreen(centerX, centerY int, status Status) {
	var titleArt []string
	if status.State == GameStateDead {
		titleArt = []string{
			` __   _____  _   _   ___ ___ ___ ___  `,
			` \ \ / / _ \| | | | |   \_ _| __|   \ `,
			`  \ V / (_) | |_| | | |) | || _|| |) |`,
			`   |_| \___/ \___/  |___/___|___|___/ `,
		}
	} else {
		titleArt = []string{
			`  ___   _   __  __ ___    _____   _____ ___ `,
			` / __| /_\ |  \/  | __|  / _ \ \ / / __| _ \`,
			`| (_ |/ _ \| |\/| | _|  | (_) \ V /| _||   /`,
			` \___/_/ \_\_|  |_|___|  \___/ \_/ |___|_|_\`,
		}
	}
	titleStartY := centerY - 5
	s.writeCentered(centerX, titleStartY, titleArt...)

	row := titleStartY + len(titleArt) + 1
	s.writeCentered(centerX, row, fmt.Sprintf("Score: %d", status.Score))

	if status.State == GameStateDead {
		s.writeCentered(centerX, row+2, fmt.Sprintf("Lives remaining: %d", status.Lives))
		s.writeCentered(centerX, row+4, fmt.Sprintf("Respawn in %.1f seconds...", status.RespawnIn.Seconds()))
		return
	}
	if blinkOn() {
		s.writeCentered(centerX, row+2, ">>  Press SPACE to Restart  <<")
	}
}

// drawInactivityScreen draws the inactivity warning screen.
func (s *Session) drawInactivityScreen(centerX, centerY int) {
	remaining := config.InactivityDisconnectUser - time.Since(s.lastInput)
	s.writeCentered(centerX, centerY-2, "INACTIVITY WARNING")
	s.writeCentered(centerX, centerY, fmt.Sprintf(
		"You have been inactive for too long. You will be disconnected in %d seconds.",
		int(max(remaining, 0).Seconds()),
	))
	s.writeCentered(centerX, centerY+2, "Press any key to continue")
}

// drawShutdownScreen draws the server shutdown notification screen.
func (s *Session) drawShutdownScreen(centerX, centerY int) {
	s.writeCentered(centerX, centerY-3, "SERVER SHUTTING DOWN")
	s.writeCentered(centerX, centerY-1, "The server is restarting for maintenance.")
	s.writeCentered(centerX, centerY, "Please reconnect in a moment.")

	remaining := int(max(s.shutdownIn, 0).Seconds()) + 1
	s.writeCentered(centerX, centerY+2, fmt.Sprintf("Disconnecting in %d seconds...", remaining))
	s.writeCentered(centerX, centerY+4, "Press Q to disconnect now")
}
