package engine

import "github.com/lixenwraith/neko-tower/tower"

// Target is a scene element that can be tinted as a whole
type Target int

const (
	TargetCharacter Target = iota
)

// PresentationPort receives effect requests from the game core. Calls are
// fire-and-forget and are made synchronously from the goroutine driving
// the RoundController
type PresentationPort interface {
	RevealPlayField()
	HidePlayField()
	FlipCharacter(side tower.Side)
	FlipPiece(p tower.Piece, side tower.Side)
	PlacePiece(p tower.Piece)
	ColorizePiece(p tower.Piece, c tower.Color)
	DropTower()
	ShakeAll()
	ColorizeFailure(target Target)
	ShowTitleLabel()
	HideTitleLabel()
}

// NopPresenter ignores every effect. Embed it to implement a subset of PresentationPort
type NopPresenter struct{}

func (NopPresenter) RevealPlayField() {}
func (NopPresenter) HidePlayField() {}
func (NopPresenter) FlipCharacter(tower.Side) {}
func (NopPresenter) FlipPiece(tower.Piece, tower.Side) {}
func (NopPresenter) PlacePiece(tower.Piece) {}
func (NopPresenter) ColorizePiece(tower.Piece, tower.Color) {}
func (NopPresenter) DropTower() {}
func (NopPresenter) ShakeAll() {}
func (NopPresenter) ColorizeFailure(Target) {}
func (NopPresenter) ShowTitleLabel() {}
func (NopPresenter) HideTitleLabel() {}

// Presenters fans every effect out to each port in order
type Presenters []PresentationPort

func (ps Presenters) RevealPlayField() {
	for _, p := range ps {
		p.RevealPlayField()
	}
}

func (ps Presenters) HidePlayField() {
	for _, p := range ps {
		p.HidePlayField()
	}
}

func (ps Presenters) FlipCharacter(side tower.Side) {
	for _, p := range ps {
		p.FlipCharacter(side)
	}
}

func (ps Presenters) FlipPiece(piece tower.Piece, side tower.Side) {
	for _, p := range ps {
		p.FlipPiece(piece, side)
	}
}

func (ps Presenters) PlacePiece(piece tower.Piece) {
	for _, p := range ps {
		p.PlacePiece(piece)
	}
}

func (ps Presenters) ColorizePiece(piece tower.Piece, c tower.Color) {
	for _, p := range ps {
		p.ColorizePiece(piece, c)
	}
}

func (ps Presenters) DropTower() {
	for _, p := range ps {
		p.DropTower()
	}
}

func (ps Presenters) ShakeAll() {
	for _, p := range ps {
		p.ShakeAll()
	}
}

func (ps Presenters) ColorizeFailure(target Target) {
	for _, p := range ps {
		p.ColorizeFailure(target)
	}
}

func (ps Presenters) ShowTitleLabel() {
	for _, p := range ps {
		p.ShowTitleLabel()
	}
}

func (ps Presenters) HideTitleLabel() {
	for _, p := range ps {
		p.HideTitleLabel()
	}
}
