package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	formcompare "github.com/goliatone/go-formcompare"
	"github.com/goliatone/go-formcompare/pkg/comparison"
	"github.com/goliatone/go-formcompare/pkg/copyop"
	"github.com/goliatone/go-formcompare/pkg/formdata"
	"github.com/goliatone/go-formcompare/pkg/overlay"
)

func main() {
	path := flag.String("path", "", "field path to classify")
	copyTrigger := flag.String("copy", "", "trigger path to plan a copy for")
	target := flag.String("target", "right", "copy destination pane: left or right")
	targetIndex := flag.String("target-index", "", "index or placeholder id the target pane assigned to an added item")
	controls := flag.String("controls", "", "JSON file listing the source pane's control paths")
	data := flag.String("data", "", "JSON snapshot of the source pane")
	into := flag.String("into", "", "JSON snapshot of the target pane receiving the patch")
	apply := flag.Bool("apply", false, "apply the planned patch to the -into document and emit the result")
	left := flag.String("left", "", "JSON snapshot of the left pane (report mode)")
	right := flag.String("right", "", "JSON snapshot of the right pane (report mode)")
	name := flag.String("name", "default", "comparison name, doubles as the overlay profile key")
	overlayDir := flag.String("overlay", "", "directory of overlay profiles (JSON/YAML); embedded defaults if empty")
	format := flag.String("format", "text", "report renderer: text, html or json")
	output := flag.String("output", "", "output file (stdout if empty)")
	interactive := flag.Bool("interactive", false, "pick the copy trigger from the control list")
	flag.Parse()

	ctx := context.Background()

	switch {
	case *path != "":
		classify(*path)
	case *copyTrigger != "" || *interactive:
		cfg := copyConfig{
			trigger:      *copyTrigger,
			target:       *target,
			targetIndex:  *targetIndex,
			controlsPath: *controls,
			dataPath:     *data,
			intoPath:     *into,
			apply:        *apply,
			name:         *name,
			overlayDir:   *overlayDir,
			output:       *output,
			interactive:  *interactive,
		}
		if err := runCopy(ctx, cfg, newSurveyDriver()); err != nil {
			log.Fatalf("Failed to plan copy: %v", err)
		}
	default:
		cfg := reportConfig{
			leftPath:     *left,
			rightPath:    *right,
			controlsPath: *controls,
			name:         *name,
			overlayDir:   *overlayDir,
			format:       *format,
			output:       *output,
		}
		if err := runReport(ctx, cfg); err != nil {
			log.Fatalf("Failed to render report: %v", err)
		}
	}
}

func classify(path string) {
	decision := formcompare.Decide(path)
	fmt.Printf("path:      %s\n", decision.Path)
	fmt.Printf("kind:      %s\n", decision.Parsed.Kind)
	fmt.Printf("behavior:  %s\n", decision.Behavior)
	if decision.Parsed.HasIndex {
		fmt.Printf("base:      %s\n", decision.Parsed.Base)
		fmt.Printf("index:     %s\n", decision.Parsed.Index.Token())
		if decision.Parsed.Remainder != "" {
			fmt.Printf("remainder: %s\n", strings.TrimPrefix(decision.Parsed.Remainder, "."))
		}
	}
}

type copyConfig struct {
	trigger      string
	target       string
	targetIndex  string
	controlsPath string
	dataPath     string
	intoPath     string
	apply        bool
	name         string
	overlayDir   string
	output       string
	interactive  bool
}

func runCopy(ctx context.Context, cfg copyConfig, driver PromptDriver) error {
	controls, err := readControls(cfg.controlsPath)
	if err != nil {
		return err
	}

	trigger := cfg.trigger
	if cfg.interactive {
		trigger, err = pickTrigger(ctx, driver, controls)
		if err != nil {
			return err
		}
	}
	if trigger == "" {
		return errors.New("a copy trigger is required; pass -copy or -interactive")
	}

	c, err := buildComparison(cfg.name, cfg.overlayDir)
	if err != nil {
		return err
	}

	var opts []copyop.PlanOption
	if cfg.targetIndex != "" {
		opts = append(opts, copyop.WithTargetIndex(cfg.targetIndex))
	}
	plan, err := c.PlanCopy(trigger, comparison.Side(cfg.target), controls, opts...)
	if err != nil {
		return err
	}

	if cfg.dataPath == "" {
		return emit(cfg.output, formatPlan(plan))
	}

	if cfg.intoPath == "" {
		return errors.New("planning a patch needs both -data and -into")
	}
	source, _, err := readSnapshot(cfg.dataPath)
	if err != nil {
		return err
	}
	targetDoc, targetRaw, err := readSnapshot(cfg.intoPath)
	if err != nil {
		return err
	}

	patch, err := formdata.PlanPatch(plan, source, targetDoc)
	if err != nil {
		return err
	}
	if cfg.apply {
		patched, err := formdata.ApplyPatch(targetRaw, patch)
		if err != nil {
			return err
		}
		return emit(cfg.output, patched)
	}
	return emit(cfg.output, patch)
}

func pickTrigger(ctx context.Context, driver PromptDriver, controls []string) (string, error) {
	if len(controls) == 0 {
		return "", errors.New("control list is empty")
	}

	idx, err := driver.Select(ctx, "Copy which control?", controls)
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(controls) {
		return "", ErrAborted
	}
	trigger := controls[idx]

	decision := copyop.Decide(trigger)
	ok, err := driver.Confirm(ctx, fmt.Sprintf("Plan a %s copy for %s?", decision.Behavior, trigger), true)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrAborted
	}
	return trigger, nil
}

type reportConfig struct {
	leftPath     string
	rightPath    string
	controlsPath string
	name         string
	overlayDir   string
	format       string
	output       string
}

func runReport(ctx context.Context, cfg reportConfig) error {
	if cfg.leftPath == "" || cfg.rightPath == "" {
		return errors.New("report mode needs -left and -right snapshots")
	}

	controls, err := readControls(cfg.controlsPath)
	if err != nil {
		return err
	}
	left, _, err := readSnapshot(cfg.leftPath)
	if err != nil {
		return err
	}
	right, _, err := readSnapshot(cfg.rightPath)
	if err != nil {
		return err
	}

	c, err := buildComparison(cfg.name, cfg.overlayDir)
	if err != nil {
		return err
	}

	out, err := formcompare.RenderReport(ctx, c, left, right, controls, cfg.format)
	if err != nil {
		return err
	}
	return emit(cfg.output, out)
}

// buildComparison wires the overlay store and enables copying both ways; the
// operator asked for the copy explicitly, so only overlay rules gate it.
func buildComparison(name, overlayDir string) (*comparison.Comparison, error) {
	store := overlay.DefaultStore()
	if overlayDir != "" {
		loaded, err := overlay.LoadFS(os.DirFS(overlayDir))
		if err != nil {
			return nil, err
		}
		store = loaded
	}

	return comparison.New(name,
		comparison.Pane{Schema: "snapshot"},
		comparison.Pane{Schema: "snapshot"},
		comparison.WithOverlay(store),
		comparison.WithCopyToLeft(),
		comparison.WithCopyToRight(),
	)
}

func formatPlan(plan copyop.Plan) []byte {
	var out strings.Builder
	fmt.Fprintf(&out, "trigger: %s (%s)\n", plan.Trigger.Path, plan.Trigger.Behavior)
	for _, op := range plan.Ops {
		fmt.Fprintf(&out, "%-24s %s -> %s\n", op.Behavior, op.Source, op.Target)
	}
	return []byte(out.String())
}

func readControls(path string) ([]string, error) {
	if path == "" {
		return nil, errors.New("a -controls file is required")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read controls: %w", err)
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("parse controls %s: %w", path, err)
	}
	return out, nil
}

func readSnapshot(path string) (map[string]any, []byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read snapshot: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, nil, fmt.Errorf("parse snapshot %s: %w", path, err)
	}
	return out, raw, nil
}

func emit(output string, payload []byte) error {
	if output == "" {
		fmt.Println(strings.TrimRight(string(payload), "\n"))
		return nil
	}
	if err := os.WriteFile(output, payload, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Printf("Output written to %s\n", output)
	return nil
}
