package game

import "github.com/rocketscienceinc/inarow/internal/entity"

type direction struct {
	dx, dy int
}

var (
	horizontal   = direction{dx: 1, dy: 0}
	vertical     = direction{dx: 0, dy: 1}
	diagonal     = direction{dx: 1, dy: 1}
	antiDiagonal = direction{dx: -1, dy: 1}

	directions = []direction{horizontal, vertical, diagonal, antiDiagonal}
)

// hasStrike scans the whole board for length or more consecutive cells of owner
// along any direction.
func hasStrike(board *entity.Board, owner entity.Cell, length int) bool {
	for _, dir := range directions {
		if hasStrikeAlong(board, owner, length, dir) {
			return true
		}
	}

	return false
}

func hasStrikeAlong(board *entity.Board, owner entity.Cell, length int, dir direction) bool {
	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			if board.At(x, y) != owner {
				continue
			}

			if runReaches(board, owner, length, x, y, dir) {
				return true
			}
		}
	}

	return false
}

// runReaches walks from (x, y) and stops at the first foreign cell or the board edge.
func runReaches(board *entity.Board, owner entity.Cell, length, x, y int, dir direction) bool {
	strike := 0
	for board.InBounds(x, y) && board.At(x, y) == owner {
		strike++
		if strike == length {
			return true
		}

		x += dir.dx
		y += dir.dy
	}

	return false
}
