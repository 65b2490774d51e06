package scene

import (
	"image/color"
	"strconv"

	"github.com/plus3/quadblox/ecs"
	"github.com/plus3/quadblox/quadblox"
)

// Screen layout in pixels.
const (
	ScreenWidth  = 500
	ScreenHeight = 550

	TileSize        = 18
	TileOutlineSize = 1
	BoardXOffset    = 10
	BoardYOffset    = 10

	FontSizeTitle = 40
	FontSizeGame  = 20
)

// panelX is the left edge of the score panel, three tiles right of the well.
const panelX = BoardXOffset + TileSize*(quadblox.BoardWidth+3)

// RenderSystem draws the title or board scene of the session.
type RenderSystem struct {
	Renderer Renderer
	Session  ecs.Singleton[quadblox.Session]
}

func (s *RenderSystem) Execute(frame *ecs.UpdateFrame) {
	session := s.Session.Get()
	if session == nil {
		return
	}

	s.Renderer.Clear(Blue)
	switch session.State {
	case quadblox.StatePlaying:
		s.drawBoard(session)
	default:
		s.drawTitle()
	}
}

func (s *RenderSystem) drawTitle() {
	s.Renderer.DrawText("Welcome to QuadBlox", 50, 200, FontSizeTitle, LightGray)
	s.Renderer.DrawText("Press[ENTER]", 100, 250, FontSizeTitle, LightGray)
}

func (s *RenderSystem) drawBoard(session *quadblox.Session) {
	s.Renderer.DrawText("Score", panelX, BoardYOffset, FontSizeGame, LightGray)
	s.Renderer.DrawText(strconv.Itoa(session.Score), panelX, BoardYOffset+TileSize*2, FontSizeGame, White)
	s.Renderer.DrawText("Lines", panelX, BoardYOffset+TileSize*5, FontSizeGame, LightGray)
	s.Renderer.DrawText(strconv.Itoa(session.Lines), panelX, BoardYOffset+TileSize*7, FontSizeGame, White)

	// well: both walls, then the floor including its corners
	for y := range quadblox.BoardHeight {
		s.drawTile(-1, y, LightGray)
		s.drawTile(quadblox.BoardWidth, y, LightGray)
	}
	for x := -1; x <= quadblox.BoardWidth; x++ {
		s.drawTile(x, quadblox.BoardHeight, LightGray)
	}

	for pt, c := range session.Board.Tiles() {
		s.drawTile(pt.X, pt.Y, ColorOf(c))
	}
	for pt, c := range session.Active.Tiles() {
		s.drawTile(pt.X, pt.Y, ColorOf(c))
	}
}

// TileRect returns the outer rectangle of the tile at board cell (x, y).
// Column -1 and row BoardHeight are the well.
func TileRect(x, y int) (px, py, size int) {
	return BoardXOffset + TileSize + x*TileSize, BoardYOffset + y*TileSize, TileSize
}

func (s *RenderSystem) drawTile(x, y int, c color.RGBA) {
	px, py, size := TileRect(x, y)
	s.Renderer.DrawRect(px, py, size, size, Black)
	s.Renderer.DrawRect(px+TileOutlineSize, py+TileOutlineSize, size-TileOutlineSize*2, size-TileOutlineSize*2, c)
}
