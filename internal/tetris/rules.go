package tetris

// ScoreTable holds the points awarded per simultaneous line clear and the
// per-row drop bonuses. Clear values are multiplied by (level + 1).
// Defaults follow the classic BPS table, which keeps a tetris worth more
// than two separate doubles.
type ScoreTable struct {
	Single         int
	Double         int
	Triple         int
	Tetris         int
	SoftDropPerRow int
	HardDropPerRow int
}

// DefaultScoreTable returns the standard scoring values.
func DefaultScoreTable() ScoreTable {
	return ScoreTable{
		Single:         40,
		Double:         100,
		Triple:         300,
		Tetris:         1200,
		SoftDropPerRow: 1,
		HardDropPerRow: 2,
	}
}

// ClearPoints returns the score delta for clearing rows simultaneously at
// the given level. Zero rows score zero.
func (t ScoreTable) ClearPoints(rows, level int) int {
	var base int
	switch rows {
	case 1:
		base = t.Single
	case 2:
		base = t.Double
	case 3:
		base = t.Triple
	case 4:
		base = t.Tetris
	default:
		return 0
	}
	return base * (level + 1)
}

// DefaultLinesPerLevel is the number of cleared lines per level step.
const DefaultLinesPerLevel = 10

// LevelFor derives the level from the total lines cleared. The result
// only ever grows with lines, so the session level is monotonic.
func LevelFor(startLevel, lines, linesPerLevel int) int {
	if linesPerLevel <= 0 {
		linesPerLevel = DefaultLinesPerLevel
	}
	return startLevel + lines/linesPerLevel
}

// gravityFrames is the NES gravity curve: simulation ticks (at the 60 Hz
// base rate) between automatic downward steps, indexed by level.
// Levels 19-28 take 2 ticks, 29 and above hit the "kill screen" rate of 1.
var gravityFrames = [...]int{
	48, 43, 38, 33, 28, 23, 18, 13, 8, 6, // 0-9
	5, 5, 5, // 10-12
	4, 4, 4, // 13-15
	3, 3, 3, // 16-18
}

// GravityTicks returns how many base-rate ticks elapse between gravity
// steps at the given level. The core never schedules itself; the platform
// owns the timer and asks for the current rate.
func GravityTicks(level int) int {
	switch {
	case level < 0:
		return gravityFrames[0]
	case level < len(gravityFrames):
		return gravityFrames[level]
	case level < 29:
		return 2
	default:
		return 1
	}
}
