package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCellCapture(t *testing.T) {
	t.Run("capturing an empty cell", func(t *testing.T) {
		cell := Empty
		got, err := cell.Capture(Player)

		require.NoError(t, err)
		require.Equal(t, Player, got, "Cell should belong to the capturing owner")
		require.True(t, got.Occupied())
		require.Equal(t, Empty, cell, "Original cell should stay empty")
	})

	t.Run("capturing an occupied cell", func(t *testing.T) {
		_, err := Computer.Capture(Player)

		require.ErrorIs(t, err, ErrIllegalMove, "Occupied cells cannot be captured")
	})

	t.Run("capturing for no one", func(t *testing.T) {
		_, err := Empty.Capture(Empty)

		require.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("opponents", func(t *testing.T) {
		require.Equal(t, Computer, Player.Opponent())
		require.Equal(t, Player, Computer.Opponent())
		require.Equal(t, Empty, Empty.Opponent())
	})
}

func TestColumn(t *testing.T) {
	t.Run("filling an empty column", func(t *testing.T) {
		col, err := NewColumn(6)
		require.NoError(t, err)
		require.False(t, col.Full(), "Empty column should not be full")

		for i := 0; i < 6; i++ {
			require.False(t, col.Full())
			col, err = col.Drop(Player)
			require.NoError(t, err, "Drop %d should succeed", i+1)
		}
		require.True(t, col.Full(), "Column should be full after height drops")

		_, err = col.Drop(Computer)
		require.ErrorIs(t, err, ErrIllegalMove, "Dropping into a full column should fail")
	})

	t.Run("dropping lands on the lowest empty cell", func(t *testing.T) {
		col, err := NewColumn(6, Player, Computer)
		require.NoError(t, err)

		got, err := col.Drop(Player)

		require.NoError(t, err)
		require.Equal(t, []Cell{Player, Computer, Player, Empty, Empty, Empty}, got.Cells())
		require.Equal(t, 3, got.Count())
		require.Equal(t, 2, col.Count(), "Original column should be untouched")
	})

	t.Run("too many initial cells", func(t *testing.T) {
		_, err := NewColumn(6, Player, Player, Player, Computer, Computer, Computer, Player)

		require.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("floating initial cell", func(t *testing.T) {
		_, err := NewColumn(6, Player, Empty, Computer)

		require.ErrorIs(t, err, ErrInvalidArgument, "Tokens cannot float above a gap")
	})

	t.Run("unknown initial cell", func(t *testing.T) {
		_, err := NewColumn(6, Cell(7))

		require.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("structural equality", func(t *testing.T) {
		a, _ := NewColumn(6, Player)
		b, _ := NewColumn(6)
		b, _ = b.Drop(Player)
		c, _ := NewColumn(6, Computer)

		require.True(t, a.Equal(b))
		require.False(t, a.Equal(c))
	})
}

func TestNewBoard(t *testing.T) {
	rules := StandardRules()

	t.Run("too many columns", func(t *testing.T) {
		prefixes := make([][]Cell, 8)

		_, err := NewBoard(rules, prefixes...)

		require.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("column longer than the board", func(t *testing.T) {
		_, err := NewBoard(rules, nil, []Cell{Player, Player, Player, Computer, Computer, Computer, Player})

		require.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("missing columns default to empty", func(t *testing.T) {
		b, err := NewBoard(rules, []Cell{Player})

		require.NoError(t, err)
		require.Equal(t, 1, b.Count())
		for x := 1; x < rules.Width; x++ {
			require.Equal(t, 0, b.Column(x).Count())
		}
	})

	t.Run("invalid rules", func(t *testing.T) {
		_, err := NewBoard(Rules{Width: 3, Height: 6, RunLength: 4})

		require.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestBoardDrop(t *testing.T) {
	t.Run("column out of range", func(t *testing.T) {
		b := EmptyBoard(StandardRules())

		_, err := b.Drop(-1, Player)
		require.ErrorIs(t, err, ErrIndexOutOfRange)

		_, err = b.Drop(7, Player)
		require.ErrorIs(t, err, ErrIndexOutOfRange)
	})

	t.Run("full column", func(t *testing.T) {
		b, err := NewBoard(StandardRules(), []Cell{Player, Computer, Player, Computer, Player, Computer})
		require.NoError(t, err)

		_, err = b.Drop(0, Player)

		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("dropping leaves the original board untouched", func(t *testing.T) {
		b := EmptyBoard(StandardRules())

		next, err := b.Drop(3, Computer)

		require.NoError(t, err)
		require.Equal(t, Computer, next.Cell(3, 0))
		require.Equal(t, Empty, b.Cell(3, 0), "Original board should be untouched")
		require.False(t, b.Equal(next))
	})

	t.Run("sibling drops are independent", func(t *testing.T) {
		parent, err := NewBoard(StandardRules(), []Cell{Player}, []Cell{Computer})
		require.NoError(t, err)

		left, err := parent.Drop(0, Computer)
		require.NoError(t, err)
		right, err := parent.Drop(1, Computer)
		require.NoError(t, err)

		require.Equal(t, Empty, left.Cell(1, 1), "Dropping into column 1 should not reach the column 0 sibling")
		require.Equal(t, Empty, right.Cell(0, 1), "Dropping into column 0 should not reach the column 1 sibling")
		require.Equal(t, 2, parent.Count(), "Parent board should be untouched")
	})

	t.Run("full board", func(t *testing.T) {
		b := drawBoard(t)

		require.True(t, b.Full())
		require.Equal(t, 42, b.Count())
	})
}

func TestBoardRender(t *testing.T) {
	t.Run("rendering a small board", func(t *testing.T) {
		rules, err := NewRules(2, 2, 2)
		require.NoError(t, err)
		b, err := NewBoard(rules, []Cell{Player}, []Cell{Computer, Player})
		require.NoError(t, err)

		require.Equal(t, " |@\n@|%\n", b.String())
	})

	t.Run("rendering with other symbols", func(t *testing.T) {
		b, err := NewBoard(StandardRules(), []Cell{Player}, []Cell{Computer})
		require.NoError(t, err)

		got := b.Render(Symbols{Player: 'X', Empty: '.', Computer: 'O'})

		lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
		require.Len(t, lines, 6, "One line per row")
		require.Equal(t, ".|.|.|.|.|.|.", lines[0], "Top row first")
		require.Equal(t, "X|O|.|.|.|.|.", lines[5], "Bottom row last")
	})
}

func TestBoardKey(t *testing.T) {
	a, _ := NewBoard(StandardRules(), []Cell{Player}, []Cell{Computer})
	b := EmptyBoard(StandardRules())
	b, _ = b.Drop(1, Computer)
	b, _ = b.Drop(0, Player)

	require.Equal(t, a.Key(), b.Key(), "Equal boards should share a key")
	require.Equal(t, "p...../c...../....../....../....../....../......", a.Key())
}

// drawBoard fills a standard board with no run of four for either side.
func drawBoard(t *testing.T) Board {
	t.Helper()
	x := []Cell{Player, Computer, Player, Computer, Player, Computer}
	y := []Cell{Computer, Player, Computer, Player, Computer, Player}
	b, err := NewBoard(StandardRules(), x, x, y, y, x, x, y)
	require.NoError(t, err)
	return b
}
