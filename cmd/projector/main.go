package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"roi_projector/pkg/core/config"
	"roi_projector/pkg/core/report"
	"roi_projector/pkg/core/roi"
	"roi_projector/pkg/core/scenario"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	godotenv.Load()

	configPath := flag.String("config", os.Getenv("ROI_CONFIG"), "Path to projector.yaml")
	scenarioPath := flag.String("scenario", "", "Scenario file (.json or .hjson)")
	data := flag.String("data", "", "Inline scenario payload (JSON, repaired if malformed)")
	mode := flag.String("mode", "", "Location mode: postal, zip or region")
	area := flag.String("area", "", "Area type: rural, urban or city")
	invited := flag.Int("invited", 0, "1st hand invited members (1-1000)")
	multiplier := flag.Int("multiplier", 0, "2nd hand invite rate in percent (10-200)")
	spend := flag.Float64("spend", 0, "Monthly business spend per member (1-1000)")
	landBase := flag.Int("land-base", -1, "Fixed base land sample instead of a random draw")
	recalc := flag.Bool("recalc", false, "Sample a land value before projecting")
	seed := flag.Uint64("seed", 0, "Seed for the land value sampler (0 = config/clock)")
	format := flag.String("format", "", "Output format: text, markdown, html or json")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatalf("%v", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		fatalf("%v", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *format != "" {
		cfg.Format = *format
	}

	base, err := cfg.Inputs()
	if err != nil {
		fatalf("Invalid config defaults: %v", err)
	}

	// Layering: config defaults < scenario file < -data payload < flags
	var layers []*scenario.Scenario
	if *scenarioPath != "" {
		s, err := scenario.LoadFile(*scenarioPath)
		if err != nil {
			fatalf("%v", err)
		}
		layers = append(layers, s)
	}
	if *data != "" {
		s, err := scenario.Parse([]byte(*data))
		if err != nil {
			fatalf("%v", err)
		}
		layers = append(layers, s)
	}
	flagLayer := &scenario.Scenario{
		Mode:             *mode,
		AreaType:         *area,
		InvitedMembers:   *invited,
		InviteMultiplier: *multiplier,
		MonthlySpend:     *spend,
	}
	if *landBase >= 0 {
		flagLayer.LandBase = landBase
	}
	layers = append(layers, flagLayer)

	base, err = resolveInputs(base, layers, *recalc)
	if err != nil {
		fatalf("%v", err)
	}

	session := roi.NewSession(base, cfg.Sampler())
	if *recalc {
		v := session.RecalculateLandValue()
		fmt.Fprintf(os.Stderr, "[PROJECTOR] Session %s: sampled land value %s (%s/%s)\n",
			session.ID, report.FormatCurrency(v), base.Mode, base.AreaType)
	}

	p := session.Projection()
	if err := write(os.Stdout, cfg.Format, session.ID, p); err != nil {
		fatalf("%v", err)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "[FATAL] "+format+"\n", args...)
	os.Exit(1)
}

// resolveInputs applies the layers in order. A fixed land base and a
// random resample cannot both be requested.
func resolveInputs(base roi.Inputs, layers []*scenario.Scenario, recalc bool) (roi.Inputs, error) {
	var err error
	for _, s := range layers {
		if recalc && s.LandBase != nil {
			return base, fmt.Errorf("land_base %d and -recalc are mutually exclusive", *s.LandBase)
		}
		if base, err = s.Apply(base); err != nil {
			return base, err
		}
	}
	return base, nil
}

func write(out io.Writer, format, sessionID string, p roi.Projection) error {
	r := report.Build(p)
	switch format {
	case "", "text":
		fmt.Fprint(out, report.Text(r))
	case "markdown", "md":
		fmt.Fprint(out, report.Markdown(r))
	case "html":
		html, err := report.HTML(r)
		if err != nil {
			return err
		}
		fmt.Fprint(out, html)
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			SessionID  string         `json:"session_id"`
			Projection roi.Projection `json:"projection"`
			Report     report.Report  `json:"report"`
		}{sessionID, p, r})
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	return nil
}
