package domain

const (
	CollectionPuzzleGridGuesses = "puzzle_grid_guesses"
)
const (
	CollectionPuzzleGridResults = "puzzle_grid_results"
)
