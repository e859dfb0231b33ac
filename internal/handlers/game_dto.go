package handlers

import (
	"github.com/google/uuid"
	"github.com/gorilla/schema"
	"github.com/vancomm/minesweeper-engine/internal/mines"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

type NewGameQueryDTO struct {
	Rows    int    `schema:"rows"`
	Columns int    `schema:"columns"`
	Mines   int    `schema:"mines"`
	Preset  string `schema:"preset"`
}

func ParseNewGameDTO(src map[string][]string) (NewGameQueryDTO, error) {
	var dto NewGameQueryDTO
	err := decoder.Decode(&dto, src)
	return dto, err
}

// Settings resolves the preset if one was given, the explicit dimensions
// otherwise.
func (dto NewGameQueryDTO) Settings() (mines.Settings, bool) {
	if dto.Preset != "" {
		return mines.Preset(dto.Preset)
	}
	return mines.Settings{Rows: dto.Rows, Columns: dto.Columns, Mines: dto.Mines}, true
}

type MoveDTO struct {
	Move   string `schema:"move,required"`
	Row    int    `schema:"row,required"`
	Column int    `schema:"column,required"`
}

func ParseMoveDTO(src map[string][]string) (MoveDTO, error) {
	var dto MoveDTO
	err := decoder.Decode(&dto, src)
	return dto, err
}

func (dto MoveDTO) Command() (Command, error) {
	move, err := ParseMove(dto.Move)
	if err != nil {
		return Command{}, err
	}
	return Command{Move: move, Row: dto.Row, Column: dto.Column}, nil
}

type GameDTO struct {
	ID          string     `json:"id"`
	Rows        int        `json:"rows"`
	Columns     int        `json:"columns"`
	Mines       int        `json:"mines"`
	Running     bool       `json:"running"`
	Finished    bool       `json:"finished"`
	Outcome     string     `json:"outcome"`
	FlagsSet    int        `json:"flags_set"`
	MinesLeft   int        `json:"mines_left"`
	CellsToOpen int        `json:"cells_to_open"`
	Seconds     int        `json:"seconds"`
	Version     uint64     `json:"version"`
	Grid        mines.Grid `json:"grid"`
}

// NewGameDTO snapshots g; call it while holding the session.
func NewGameDTO(id uuid.UUID, g *mines.Game) *GameDTO {
	rows, columns, count := g.Settings().Unpack()
	return &GameDTO{
		ID:          id.String(),
		Rows:        rows,
		Columns:     columns,
		Mines:       count,
		Running:     g.Running(),
		Finished:    g.Finished(),
		Outcome:     g.Outcome().String(),
		FlagsSet:    g.FlagsSet(),
		MinesLeft:   g.MinesLeft(),
		CellsToOpen: g.CellsToOpen(),
		Seconds:     g.Seconds(),
		Version:     g.Version(),
		Grid:        g.View(),
	}
}
