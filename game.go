package chesscore

// Result is the outcome of a finished Game.
type Result int

const (
	ResultUnknown Result = iota
	ResultWhiteWins
	ResultBlackWins
	ResultDraw
)

// Termination names why a Game ended.
type Termination int

const (
	TerminationUnterminated Termination = iota
	TerminationCheckmate
	TerminationStalemate
	TerminationResignation
	TerminationDrawAgreement
	TerminationFiftyMoveRule
	TerminationThreefoldRepetition
	TerminationInsufficientMaterial
)

type gameEntry struct {
	hash          uint64
	halfmoveClock int
	move          Move
}

// Game wraps a Board with an append-only move history and the bookkeeping
// needed to answer draw-claim and game-over queries. MoveGen never looks at
// a Game; it is built entirely on top of Board's public surface.
//
// Grounded on the teacher's Game/NewGame/PushMove, generalized from a
// single repetitions map plus zobristKey() method (which folded in
// side-to-move and castle/ep state by hand) to rely on Board.Hash, which
// already folds in everything a repetition claim must distinguish.
type Game struct {
	position    Board
	history     []gameEntry
	repetitions map[uint64]int

	result      Result
	termination Termination

	drawOffered   bool
	drawOfferedBy Color
}

// New starts a Game from the standard starting position.
func New() *Game { return NewFromBoard(Default()) }

// NewFromBoard starts a Game from an arbitrary starting position.
func NewFromBoard(b Board) *Game {
	g := &Game{
		position:    b,
		repetitions: make(map[uint64]int, 1),
	}
	g.repetitions[b.Hash()] = 1
	return g
}

// CurrentPosition returns the game's current Board.
func (g *Game) CurrentPosition() Board { return g.position }

// Result returns the game's result, ResultUnknown if still in progress.
func (g *Game) Result() Result { return g.result }

// Termination reports why the game ended, TerminationUnterminated if it
// has not.
func (g *Game) Termination() Termination { return g.termination }

// MakeMove applies m to the current position if the game is still in
// progress and m is legal there, updating history, repetition counts, and
// game-over status. Returns an error and leaves the game unchanged
// otherwise.
func (g *Game) MakeMove(m Move) error {
	if g.termination != TerminationUnterminated {
		return &Error{Kind: ErrIllegalMove, Message: "game has already ended"}
	}
	if !g.position.Legal(m) {
		return &Error{Kind: ErrIllegalMove, Message: "move " + m.String() + " is not legal in this position"}
	}

	moved := g.position.PieceOn(m.From())
	isCapture := g.position.PieceOn(m.To()) != NoPiece || m.IsEnPassant()
	next := g.position.MakeMove(m)

	// An irreversible move (pawn move, capture, castle, promotion) means no
	// earlier position can ever recur, so its repetition count can never
	// contribute to a future threefold claim.
	if isCapture || m.IsCastle() || m.IsPromotion() || moved == Pawn {
		clear(g.repetitions)
	}

	g.history = append(g.history, gameEntry{hash: next.Hash(), halfmoveClock: next.HalfmoveClock(), move: m})
	g.position = next
	g.repetitions[next.Hash()]++
	g.drawOffered = false

	switch {
	case next.IsCheckmate():
		g.termination = TerminationCheckmate
		if next.SideToMove() == White {
			g.result = ResultBlackWins
		} else {
			g.result = ResultWhiteWins
		}
	case next.IsStalemate():
		g.termination = TerminationStalemate
		g.result = ResultDraw
	case next.InsufficientMaterial():
		g.termination = TerminationInsufficientMaterial
		g.result = ResultDraw
	}
	return nil
}

// CanDeclareDrawFifty reports whether the fifty-move rule draw claim is
// currently available (100 halfmoves, i.e. 50 full moves, since the last
// capture or pawn move).
func (g *Game) CanDeclareDrawFifty() bool { return g.position.HalfmoveClock() >= 100 }

// CanDeclareDraw reports whether either draw claim (repetition or
// fifty-move) is currently available, i.e. whether DeclareDraw would succeed.
func (g *Game) CanDeclareDraw() bool {
	return g.CanDeclareDrawRepetition() || g.CanDeclareDrawFifty()
}

// CanDeclareDrawRepetition reports whether some position, including the
// current one, has now occurred three times with equal hash (and therefore
// equal side to move, piece placement, castle rights, and en-passant
// availability).
func (g *Game) CanDeclareDrawRepetition() bool {
	for _, n := range g.repetitions {
		if n >= 3 {
			return true
		}
	}
	return false
}

// DeclareDraw ends the game as a draw via whichever claim (fifty-move or
// repetition) is currently available, preferring repetition. Returns an
// error if neither claim is available.
func (g *Game) DeclareDraw() error {
	switch {
	case g.CanDeclareDrawRepetition():
		g.termination = TerminationThreefoldRepetition
	case g.CanDeclareDrawFifty():
		g.termination = TerminationFiftyMoveRule
	default:
		return &Error{Kind: ErrIllegalMove, Message: "no draw claim is currently available"}
	}
	g.result = ResultDraw
	return nil
}

// OfferDraw records that by has offered a draw; it takes effect only once
// the opponent calls AcceptDraw.
func (g *Game) OfferDraw(by Color) {
	g.drawOffered = true
	g.drawOfferedBy = by
}

// AcceptDraw ends the game as a draw by agreement. Returns an error if no
// draw is currently on offer.
func (g *Game) AcceptDraw() error {
	if !g.drawOffered {
		return &Error{Kind: ErrIllegalMove, Message: "no draw has been offered"}
	}
	g.termination = TerminationDrawAgreement
	g.result = ResultDraw
	return nil
}

// Resign ends the game with by resigning, the opponent winning.
func (g *Game) Resign(by Color) {
	g.termination = TerminationResignation
	if by == White {
		g.result = ResultBlackWins
	} else {
		g.result = ResultWhiteWins
	}
}
