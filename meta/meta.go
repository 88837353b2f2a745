// meta/meta.go
package meta

// MaxMoves caps the length of a refereed game, counting both sides' moves.
const MaxMoves = 300

// NumGames is the default number of games per experiment matchup.
const NumGames = 10

// OutputDir is the default directory experiment records are written to.
const OutputDir = "experiments"
