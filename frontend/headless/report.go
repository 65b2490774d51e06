package headless

import (
	"fmt"
	"io"
	"text/template"
	"time"

	"github.com/plus3/quadblox/ecs"
	"github.com/plus3/quadblox/scene"
)

type Report struct {
	// Configuration
	Seed        uint64
	Interval    time.Duration
	FrameDelta  float64
	PressChance float64

	// Results
	Frames        int
	SimulatedTime float64
	WallTime      time.Duration
	SessionID     string
	State         string
	Score         int
	Lines         int
	Games         int
	Locks         int
	BestScore     int
	Clears        [5]int

	Draw    DrawCounts
	Systems []ecs.SystemStats
}

type DrawCounts struct {
	Clears int
	Rects  int
	Texts  int
}

func newReport(opts Options, world *scene.World, frames int, simulated float64, wall time.Duration, r *countingRenderer) *Report {
	session := world.Session()
	tally := world.Tally()

	report := &Report{
		Seed:          opts.Seed,
		Interval:      opts.Interval,
		FrameDelta:    opts.FrameDelta,
		PressChance:   opts.PressChance,
		Frames:        frames,
		SimulatedTime: simulated,
		WallTime:      wall,
		SessionID:     session.ID.String(),
		State:         session.State.String(),
		Score:         session.Score,
		Lines:         session.Lines,
		Games:         tally.Games,
		Locks:         tally.Locks,
		BestScore:     tally.BestScore,
		Clears:        tally.Clears,
		Draw: DrawCounts{
			Clears: r.clears,
			Rects:  r.rects,
			Texts:  r.texts,
		},
	}
	report.Systems = append(report.Systems, world.Update.GetStats().Systems...)
	report.Systems = append(report.Systems, world.Draw.GetStats().Systems...)
	return report
}

const reportTemplate = `
# QuadBlox Headless Report

## Configuration
- **Seed:** {{.Seed}}
- **Frame Interval:** {{.Interval}}
- **Frame Delta:** {{seconds .FrameDelta}}
- **Press Chance:** {{.PressChance}}

## Session
- **ID:** {{.SessionID}}
- **State:** {{.State}}
- **Score:** {{.Score}}
- **Lines:** {{.Lines}}
- **Locks:** {{.Locks}}
- **Clears:**{{range $rows, $n := .Clears}}{{if $rows}} {{$rows}}x{{$n}}{{end}}{{end}}

## Run
- **Frames:** {{.Frames}}
- **Simulated Time:** {{seconds .SimulatedTime}}
- **Wall Time:** {{.WallTime}}
- **Draw Calls:** {{.Draw.Clears}} clears, {{.Draw.Rects}} rects, {{.Draw.Texts}} texts

## Systems
{{range .Systems}}- **{{.Name}}:** {{.ExecutionCount}} runs, avg {{.AvgDuration}}, max {{.MaxDuration}}
{{end}}`

func (r *Report) Generate(w io.Writer) error {
	fm := template.FuncMap{
		"seconds": func(s float64) string {
			return fmt.Sprintf("%.3fs", s)
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
