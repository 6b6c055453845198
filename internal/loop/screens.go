package loop

import (
	"fmt"
	"time"
)

// drawUI draws the text overlay for the current game state.
func (s *Session) drawUI(now time.Time) {
	cols, rows := s.canvas.Cols(), s.canvas.Rows()
	centerX := cols / 2
	centerY := rows / 2

	switch {
	case s.state.GameState == GameStateStart:
		s.drawStartScreen(centerX, centerY)
	case s.state.GameState == GameStatePlaying || s.state.Holding(now):
		s.drawPlayingHUD()
	default:
		s.drawGameOverScreen(centerX, centerY)
	}
}

// writeCentered writes text centred on column centerX.
func (s *Session) writeCentered(centerX, row int, text string) {
	s.writer.WriteAt(max(1, centerX-len(text)/2+1), row, text)
}

// drawStartScreen draws the title screen.
func (s *Session) drawStartScreen(centerX, centerY int) {
	s.writeCentered(centerX, centerY-3, "S K Y R A I D")
	s.writeCentered(centerX, centerY, "Press SPACE to start")
	s.writeCentered(centerX, centerY+2, "Move: arrows/WASD")
	s.writeCentered(centerX, centerY+3, "SPACE: missile")
	s.writeCentered(centerX, centerY+4, "Q: quit")
}

// drawPlayingHUD draws lives, health and score in the top-left corner.
func (s *Session) drawPlayingHUD() {
	w := s.state.World
	s.writer.WriteAt(2, 1, fmt.Sprintf("Lives: %d", w.Player.Lives))
	s.writer.WriteAt(2, 2, fmt.Sprintf("Health: %d", w.Player.Health))
	s.writer.WriteAt(2, 3, fmt.Sprintf("Score: %d", w.Score))
	if w.MissileReady() {
		s.writer.WriteAt(2, 4, "Missile ready")
	}
}

// drawGameOverScreen draws the final score and the restart prompt.
func (s *Session) drawGameOverScreen(centerX, centerY int) {
	s.writeCentered(centerX, centerY-2, "GAME OVER")
	s.writeCentered(centerX, centerY, fmt.Sprintf("Score: %d", s.state.World.Score))
	s.writeCentered(centerX, centerY+1, fmt.Sprintf("Best: %d", s.state.BestScore))
	s.writeCentered(centerX, centerY+3, "SPACE to play again")
	s.writeCentered(centerX, centerY+4, "Q to quit")
}
