// meta/meta.go
package meta

// WIDTH defines the number of columns on a standard board.
const WIDTH = 7

// HEIGHT defines the number of cells in a standard column.
const HEIGHT = 6

// RUN_LENGTH defines how many aligned tokens win the game.
const RUN_LENGTH = 4

// PLAYER_SYMBOL, EMPTY_SYMBOL and COMPUTER_SYMBOL are the default display symbols.
const PLAYER_SYMBOL = '@'
const EMPTY_SYMBOL = ' '
const COMPUTER_SYMBOL = '%'

// DELIMITER separates columns in the rendered board.
const DELIMITER = "|"

// CENSUS_DIR is where census results are written by default.
const CENSUS_DIR = "census"
