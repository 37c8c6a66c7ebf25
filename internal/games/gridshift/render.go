package gridshift

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/gridshift/internal/core"
	"github.com/vovakirdan/gridshift/internal/entity"
	"github.com/vovakirdan/gridshift/internal/events"
	"github.com/vovakirdan/gridshift/internal/grid"
	"github.com/vovakirdan/gridshift/internal/run"
	"github.com/vovakirdan/gridshift/internal/session"
)

const (
	cellWidth  = 4 // tile is 3 wide plus a gap
	cellHeight = 2 // tile row plus a gap
	hudHeight  = 3

	minScreenW = 44
	minScreenH = 20
)

// Render draws the current screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		renderTooSmall(dst)
		return
	}

	switch g.screen {
	case ScreenTitle:
		g.renderTitle(dst)
	case ScreenMap:
		g.renderMap(dst)
	case ScreenPuzzle:
		g.renderPuzzle(dst)
		if g.paused {
			drawOverlay(dst, core.ColorYellow, "PAUSED", "Press P to resume")
		}
	case ScreenEvent:
		g.renderEvent(dst)
	case ScreenLevelComplete:
		g.renderLevelComplete(dst)
	case ScreenGameOver:
		g.renderGameOver(dst)
	}
}

func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorGray)
}

func (g *Game) renderTitle(dst *core.Screen) {
	y := dst.Height()/2 - 6

	dst.DrawTextCentered(y, "G R I D S H I F T", core.ColorBrightCyan)
	dst.DrawTextCentered(y+1, "Flip every tile. Don't get caught.", core.ColorGray)

	mode := "Roguelike run: climb the map and beat the boss"
	if g.mode == ModeCampaign {
		mode = fmt.Sprintf("Campaign: %d levels in order", len(g.env.Levels))
	}
	dst.DrawTextCentered(y+3, mode, core.ColorDefault)
	dst.DrawTextCentered(y+5, fmt.Sprintf("Best: %d", g.highScore), core.ColorYellow)

	if g.notice != "" {
		dst.DrawTextCentered(y+7, g.notice, core.ColorBrightRed)
	}

	legend := []struct {
		glyph rune
		color core.Color
		text  string
	}{
		{'@', core.ColorBrightWhite, "you"},
		{enemyGlyph(entity.Wanderer), enemyColor(entity.Wanderer), "wanderer"},
		{enemyGlyph(entity.Chaser), enemyColor(entity.Chaser), "chaser"},
		{enemyGlyph(entity.Pacer), enemyColor(entity.Pacer), "pacer"},
	}
	x := (dst.Width() - 44) / 2
	for _, l := range legend {
		dst.SetColored(x, y+9, l.glyph, l.color)
		dst.DrawTextColor(x+2, y+9, l.text, core.ColorGray)
		x += utf8.RuneCountInString(l.text) + 4
	}

	dst.DrawTextCentered(y+11, "Enter: start   Esc: menu   Q: quit", core.ColorDefault)
}

func (g *Game) renderPuzzle(dst *core.Screen) {
	s := g.sess
	if s == nil {
		return
	}
	bd := s.Grid()
	boardW := bd.Cols() * cellWidth
	boardX := (dst.Width() - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, s, boardX, boardW)

	frame := core.NewRect(boardX-2, boardY-1, boardW+3, bd.Rows()*cellHeight+1)
	dst.DrawBox(frame, core.ColorGray)

	for row, rows := 0, bd.Rows(); row < rows; row++ {
		for col, cols := 0, bd.Cols(); col < cols; col++ {
			c := grid.Coord{Col: col, Row: row}
			text, color := g.tile(bd.KindAt(c), c)
			dst.DrawTextColor(boardX+col*cellWidth, boardY+row*cellHeight, text, color)
		}
	}

	for i, e := range s.Enemies() {
		color := enemyColor(e.Kind)
		if g.fx.enemyLanding(i, g.tick) {
			color = core.ColorBrightRed
		}
		g.drawActor(dst, boardX, boardY, e.Pos, enemyGlyph(e.Kind), color)
	}

	playerColor := core.ColorBrightWhite
	if s.PlayerMoving() {
		playerColor = core.ColorYellow
	}
	g.drawActor(dst, boardX, boardY, s.Player(), '@', playerColor)

	below := frame.Bottom()
	if cue := g.fx.activeCue(g.tick); cue != "" {
		dst.DrawTextCentered(below, cue, core.ColorBrightMagenta)
	}
	dst.DrawTextCentered(dst.Height()-1, "Arrows: move  Space: flip  Esc: back to map  P: pause", core.ColorGray)
}

func (g *Game) renderHUD(dst *core.Screen, s *session.Session, boardX, boardW int) {
	dst.DrawTextCentered(0, "GRIDSHIFT", core.ColorBrightCyan)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.Score()))
	if d := g.fx.activeDelta(g.tick); d > 0 {
		dst.DrawTextColor(boardX+len(fmt.Sprintf("Score: %d", g.Score()))+1, 1, fmt.Sprintf("+%d", d), core.ColorGreen)
	}

	timeStr := "Time: --"
	timeColor := core.ColorDefault
	if s.TimeLimit() > 0 {
		timeStr = fmt.Sprintf("Time: %d", s.SecondsLeft())
		if g.fx.lowTime {
			timeColor = core.ColorBrightRed
		}
	}
	dst.DrawTextColor(boardX+boardW-len(timeStr), 1, timeStr, timeColor)

	bd := s.Grid()
	name := s.Level().Name
	if g.mode == ModeRun {
		name = fmt.Sprintf("%s · %s", titleCase(g.attempt.Kind.String()), name)
	} else {
		name = fmt.Sprintf("Level %d/%d · %s", g.attempt.LevelIndex+1, len(g.env.Levels), name)
	}
	dst.DrawText(boardX, 2, name)
	left := fmt.Sprintf("%d/%d", bd.TotalFlippable()-bd.Remaining(), bd.TotalFlippable())
	dst.DrawTextColor(boardX+boardW-len(left), 2, left, core.ColorCyan)
}

// tile returns the three-rune text and color of one board cell.
func (g *Game) tile(k grid.Kind, c grid.Coord) (string, core.Color) {
	switch k {
	case grid.Open:
		return "░░░", core.ColorGray
	case grid.Flipped:
		switch {
		case g.fx.hidden(c, g.tick):
			return "░░░", core.ColorGray
		case g.fx.flashing(c, g.tick):
			return "███", core.ColorBrightCyan
		}
		return "▓▓▓", core.ColorCyan
	case grid.Block:
		return "▒▒▒", core.ColorDim
	case grid.PushBlock:
		return "▒B▒", core.ColorOrange
	}
	return "   ", core.ColorDefault
}

func (g *Game) drawActor(dst *core.Screen, boardX, boardY int, pos grid.Coord, r rune, color core.Color) {
	dst.SetColored(boardX+pos.Col*cellWidth+1, boardY+pos.Row*cellHeight, r, color)
}

func enemyGlyph(k entity.Kind) rune {
	switch k {
	case entity.Chaser:
		return 'X'
	case entity.Pacer:
		return 'P'
	}
	return 'w'
}

func enemyColor(k entity.Kind) core.Color {
	switch k {
	case entity.Chaser:
		return core.ColorRed
	case entity.Pacer:
		return core.ColorOrange
	}
	return core.ColorMagenta
}

func (g *Game) renderEvent(dst *core.Screen) {
	if g.event == nil {
		return
	}
	reward := g.run.Reward(g.event.Kind)
	switch g.event.Kind {
	case run.Chest:
		drawOverlay(dst, core.ColorYellow,
			"CHEST",
			"You pry open a dusty chest.",
			fmt.Sprintf("+%d points", reward),
			"",
			"Enter: continue")
	case run.Campfire:
		drawOverlay(dst, core.ColorOrange,
			"CAMPFIRE",
			"You rest by the fire for a while.",
			fmt.Sprintf("+%d points", reward),
			"",
			"Enter: continue")
	}
}

func (g *Game) renderLevelComplete(dst *core.Screen) {
	r := g.result
	tiles := r.Score - r.ClearBonus - r.TimeBonus
	lines := []string{
		"LEVEL CLEAR!",
		r.LevelName,
		"",
		fmt.Sprintf("Tiles:       +%d", tiles),
		fmt.Sprintf("Clear bonus: +%d", r.ClearBonus),
	}
	if r.TimeBonus > 0 {
		lines = append(lines, fmt.Sprintf("Time bonus:  +%d", r.TimeBonus))
	}
	lines = append(lines, "", fmt.Sprintf("Total: %d", g.Score()), "")
	if g.over() {
		lines = append(lines, "Enter: finish")
	} else {
		lines = append(lines, "Enter: continue")
	}
	drawOverlay(dst, core.ColorGreen, lines...)
}

func (g *Game) renderGameOver(dst *core.Screen) {
	won := g.lastRun != nil && g.lastRun.Outcome == run.Won.String()

	title := "GAME OVER"
	color := core.ColorBrightRed
	if won {
		title = "VICTORY!"
		color = core.ColorBrightCyan
	}
	lines := []string{title}
	if !won {
		switch g.result.Reason {
		case events.ReasonCaught:
			lines = append(lines, "Caught by an enemy")
		case events.ReasonTimeUp:
			lines = append(lines, "Out of time")
		}
	}
	lines = append(lines, "", fmt.Sprintf("Final score: %d", g.Score()))
	if g.lastRun != nil {
		lines = append(lines, fmt.Sprintf("Depth: %d", g.lastRun.Depth))
	}
	if g.NewHighScore() {
		lines = append(lines, "NEW HIGH SCORE!")
	} else {
		lines = append(lines, fmt.Sprintf("Best: %d", g.high.GetHighScore()))
	}
	lines = append(lines, "", "Enter: title   R: restart")
	drawOverlay(dst, color, lines...)
}

// drawOverlay draws a centered box with one line of text per row.
func drawOverlay(dst *core.Screen, color core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}

	full := core.NewRect(0, 0, dst.Width(), dst.Height())
	box := full.Centered(maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, color)

	for i, line := range lines {
		c := core.ColorDefault
		if i == 0 {
			c = color
		}
		x := box.X + (box.W-utf8.RuneCountInString(line))/2
		dst.DrawTextColor(x, box.Y+1+i, line, c)
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	return string(r) + s[size:]
}
