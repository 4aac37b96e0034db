package canvas

// Color tags a cell with the role of what was drawn there. The renderer
// decides how each role looks on the terminal.
type Color uint8

const (
	ColorDefault Color = iota
	ColorPlanet
	ColorOrbit
	ColorTarget     // win segment while the spacecraft is too slow
	ColorTargetOpen // win segment once the spacecraft is fast enough
	ColorCraft
	ColorThrust
	ColorStranded // spacecraft with an empty tank
	ColorGood
	ColorBad
)
