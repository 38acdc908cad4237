// Command planettime reports when sunlight at a location is as dim as noon
// on another planet, along with the day's sunrise, solar noon and sunset.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/litescript/planettime/internal/logging"
	"github.com/litescript/planettime/internal/planettime"
	"github.com/litescript/planettime/internal/state"
	"github.com/litescript/planettime/internal/ui"
	"github.com/litescript/planettime/internal/version"
)

var (
	latDeg     float64
	lonDeg     float64
	dateStr    string
	planetKey  string
	jsonOutput bool
	watchMode  bool
	logLevel   string
	showVer    bool
)

func main() {
	flag.Float64Var(&latDeg, "lat", 51.4769, "Observer latitude in degrees, north positive")
	flag.Float64Var(&lonDeg, "lon", 0.0, "Observer longitude in degrees, east positive")
	flag.StringVar(&dateStr, "date", "", "Calendar date YYYY-MM-DD (default: today)")
	flag.StringVar(&planetKey, "planet", "", "Limit output to one planet (e.g. pluto)")
	flag.BoolVar(&jsonOutput, "json", false, "Print the day report as JSON")
	flag.BoolVar(&watchMode, "watch", false, "Live TUI with a ticking altitude readout")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVer, "version", false, "Print version and exit")
	flag.Parse()

	if showVer {
		fmt.Println("planettime " + version.Version)
		return
	}

	logger := logging.New(logging.ParseLevel(logLevel))

	if latDeg < -90 || latDeg > 90 || lonDeg < -180 || lonDeg > 180 {
		logger.Error("coordinates out of range: lat %.4f lon %.4f", latDeg, lonDeg)
		os.Exit(1)
	}

	date := time.Now()
	if dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			logger.Error("invalid -date %q: %v", dateStr, err)
			os.Exit(1)
		}
		date = parsed
	}

	if planetKey != "" {
		if _, err := planettime.TargetAltitudeForPlanetKey(planetKey, date); err != nil {
			logger.Error("unknown planet %q", planetKey)
			os.Exit(1)
		}
	}

	if watchMode {
		runWatch(logger, latDeg, lonDeg)
		return
	}

	logger.Debug("computing day report for %.4f,%.4f on %s", latDeg, lonDeg, date.Format("2006-01-02"))
	report := planettime.ComputeDayReport(date, latDeg, lonDeg)

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			logger.Error("encoding report: %v", err)
			os.Exit(1)
		}
		return
	}

	printSummary(report)
}

func runWatch(logger *logging.Logger, lat, lon float64) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		logger.Error("-watch requires a terminal")
		os.Exit(1)
	}

	mgr := state.New(state.Config{LatitudeDeg: lat, LongitudeDeg: lon})
	mgr.Recompute(time.Now())

	p := tea.NewProgram(ui.New(mgr), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("watch mode: %v", err)
		os.Exit(1)
	}
}

// printSummary writes the plain-text day report. Styling is dropped when
// stdout is not a terminal.
func printSummary(report planettime.DayReport) {
	styled := term.IsTerminal(int(os.Stdout.Fd()))

	bold := func(s string) string { return s }
	dim := func(s string) string { return s }
	if styled {
		boldStyle := lipgloss.NewStyle().Bold(true)
		dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
		bold = func(s string) string { return boldStyle.Render(s) }
		dim = func(s string) string { return dimStyle.Render(s) }
	}

	fmt.Printf("%s  %s  lat %.2f lon %.2f\n\n",
		bold("Planet time"), report.Date.Format("2006-01-02"),
		report.LatitudeDeg, report.LongitudeDeg)

	sun := report.Sun
	switch {
	case sun.AlwaysUp:
		fmt.Println("Sun: polar day (never sets)")
	case sun.AlwaysDown:
		fmt.Println("Sun: polar night (never rises)")
	default:
		fmt.Printf("Sun: rise %s  noon %s  set %s  (%.1fh daylight)\n",
			planettime.FormatTime(*sun.Sunrise),
			planettime.FormatTime(*sun.SolarNoon),
			planettime.FormatTime(*sun.Sunset),
			sun.DaylightHours)
	}

	fmt.Printf("\n%-8s  %9s  %7s  %s\n", "PLANET", "DIST(AU)", "ALT", "TIMES")
	for _, pt := range report.Planets {
		if planetKey != "" && pt.Planet.Key != planetKey {
			continue
		}

		times := dim("not reached today")
		if len(pt.Crossings) > 0 {
			times = ""
			for i, c := range pt.Crossings {
				if i > 0 {
					times += "  "
				}
				times += planettime.FormatTime(c)
			}
		}

		fmt.Printf("%-8s  %9.2f  %+6.2f°  %s\n",
			pt.Planet.Name, pt.DistanceAU, pt.TargetAltitudeDeg, times)
	}
}
