package style

import (
	"strconv"

	"github.com/fatih/color"
)

var (
	GreenColor = color.New(color.FgGreen)
	RedColor   = color.New(color.FgRed)
)

// ColorEnabled turns the terminal colors on and off, it follows the color.NoColor detection by default
var ColorEnabled = !color.NoColor

func colorize(c *color.Color, s string) string {
	if !ColorEnabled {
		return s
	}

	c.EnableColor()
	return c.Sprint(s)
}

// Change returns the relative change from open to close, nil when it can not be computed
func Change(open, close *float64) *float64 {
	if open == nil || close == nil || *open == 0 {
		return nil
	}

	change := (*close - *open) / *open
	return &change
}

// ChangeString formats the relative change as a signed percentage, colored by its sign
func ChangeString(change *float64) string {
	if change == nil {
		return "-"
	}

	pct := *change * 100
	s := strconv.FormatFloat(pct, 'f', 2, 64) + "%"
	switch {
	case pct > 0:
		return colorize(GreenColor, "+"+s)
	case pct < 0:
		return colorize(RedColor, s)
	}

	return s
}

// SideString colors the buy side green and the sell side red
func SideString(side string) string {
	switch side {
	case "buy":
		return colorize(GreenColor, side)
	case "sell":
		return colorize(RedColor, side)
	}

	return side
}
