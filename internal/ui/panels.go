package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/planettime/internal/astro"
	"github.com/litescript/planettime/internal/planettime"
	"github.com/litescript/planettime/internal/state"
)

// Panel colors
const (
	colorTitle  = "#FFD700" // gold
	colorLabel  = "#87CEEB" // sky blue
	colorDim    = "#666666"
	colorDaylit = "#7CFC00" // lawn green - upcoming crossing
	colorTwilit = "#FF8C00" // dark orange - crossing already passed
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(colorTitle)).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(colorLabel))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(colorDim))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorDim))
)

func renderHeader(snap state.Snapshot, now time.Time) string {
	title := titleStyle.Render("PLANET TIME")
	loc := dimStyle.Render(fmt.Sprintf("  lat %.2f  lon %.2f  %s",
		snap.Config.LatitudeDeg, snap.Config.LongitudeDeg, now.Format("2006-01-02 15:04:05")))
	return title + loc
}

// renderSunPanel shows the live apparent altitude and the day's sun times.
func renderSunPanel(snap state.Snapshot, now time.Time) string {
	alt := astro.ApparentAltitude(now, snap.Config.LatitudeDeg, snap.Config.LongitudeDeg)

	var b strings.Builder
	b.WriteString(labelStyle.Render("Sun  "))
	b.WriteString(fmt.Sprintf("alt %+6.2f°  %s", alt, renderAltitudeBar(alt, 24)))
	b.WriteString("\n     ")

	if !snap.HasReport {
		b.WriteString(dimStyle.Render("computing..."))
		return b.String()
	}

	sun := snap.Report.Sun
	switch {
	case sun.AlwaysUp:
		b.WriteString(dimStyle.Render("Polar day: sun never sets"))
	case sun.AlwaysDown:
		b.WriteString(dimStyle.Render("Polar night: sun never rises"))
	default:
		b.WriteString(fmt.Sprintf("Rise %s   Noon %s   Set %s   Daylight %.1fh",
			planettime.FormatTime(*sun.Sunrise),
			planettime.FormatTime(*sun.SolarNoon),
			planettime.FormatTime(*sun.Sunset),
			sun.DaylightHours))
	}

	return b.String()
}

// renderAltitudeBar renders a bracketed bar mapping -18°..+90° altitude onto
// width cells.
func renderAltitudeBar(altDeg float64, width int) string {
	frac := (altDeg + 18) / 108
	if frac < 0 {
		frac = 0
	} else if frac > 1 {
		frac = 1
	}

	filled := int(frac * float64(width))
	if filled > width {
		filled = width
	}

	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

// renderPlanetTable lists each planet's target altitude and crossing times.
func renderPlanetTable(snap state.Snapshot, now time.Time) string {
	if !snap.HasReport {
		return dimStyle.Render("  waiting for first computation")
	}

	daylitStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorDaylit))
	twilitStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorTwilit))

	var lines []string
	lines = append(lines, dimStyle.Render(fmt.Sprintf("  %-8s %9s %8s  %s",
		"PLANET", "DIST AU", "ALT°", "CROSSINGS")))

	for _, pt := range snap.Report.Planets {
		name := labelStyle.Render(fmt.Sprintf("  %-8s", pt.Planet.Name))
		row := name + fmt.Sprintf(" %9.2f %+8.2f  ", pt.DistanceAU, pt.TargetAltitudeDeg)
		row += renderCrossings(pt, now, daylitStyle, twilitStyle)
		lines = append(lines, row)
	}

	return strings.Join(lines, "\n")
}

// renderCrossings formats a planet's crossing instants, marking the next
// upcoming one.
func renderCrossings(pt planettime.PlanetTimes, now time.Time, daylit, twilit lipgloss.Style) string {
	if len(pt.Crossings) == 0 {
		return dimStyle.Render("not reached today")
	}

	var parts []string
	for _, c := range pt.Crossings {
		s := planettime.FormatTime(c)
		if c.After(now) {
			parts = append(parts, daylit.Render(s))
		} else {
			parts = append(parts, twilit.Render(s))
		}
	}

	return strings.Join(parts, "  ")
}
