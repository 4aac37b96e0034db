package game

import (
	"fmt"
	"strconv"
	"strings"
)

var commandNames = map[string]Command{
	"none":  CommandNone,
	"up":    CommandUp,
	"left":  CommandLeft,
	"down":  CommandDown,
	"right": CommandRight,
}

// ParseCommands reads a comma-separated command script. Each entry is
// either a command number (0-4) or its name, e.g. "0,up,up,4".
func ParseCommands(script string) ([]Command, error) {
	script = strings.TrimSpace(script)
	if script == "" {
		return nil, nil
	}

	parts := strings.Split(script, ",")
	cmds := make([]Command, 0, len(parts))
	for i, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if c, ok := commandNames[p]; ok {
			cmds = append(cmds, c)
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil || !Command(n).Valid() {
			return nil, fmt.Errorf("game: command %d: unknown command %q", i+1, p)
		}
		cmds = append(cmds, Command(n))
	}
	return cmds, nil
}

// Replay steps g once per tick for up to ticks ticks, cycling through cmds
// (an empty script coasts). It stops early once the game is done. onStep,
// if non-nil, sees every step that produced a message.
func Replay(g *Game, cmds []Command, ticks int, onStep func(tick uint64, level int, res StepResult)) {
	for i := 0; i < ticks && !g.Done(); i++ {
		cmd := CommandNone
		if len(cmds) > 0 {
			cmd = cmds[i%len(cmds)]
		}
		level := g.Index()
		res := g.Step(cmd)
		if res.Message != "" && onStep != nil {
			onStep(g.Tick(), level, res)
		}
	}
}
