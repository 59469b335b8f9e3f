// SPDX-License-Identifier: MIT
//
// File: fragment.go
// Role: the fragment subcommand: read SMILES, fragment in parallel, render.

package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/molfrag/config"
	"github.com/katalvlaran/molfrag/fragment"
	"github.com/katalvlaran/molfrag/logging"
	"github.com/katalvlaran/molfrag/metrics"
	"github.com/katalvlaran/molfrag/molecule"
	"github.com/katalvlaran/molfrag/settings"
	"github.com/katalvlaran/molfrag/smiles"
)

var errBadSet = errors.New("--set expects name=value")

type fragmentOptions struct {
	input  string
	output string
	sets   []string
}

// record is one input line.
type record struct {
	Line   int    `json:"line"`
	Title  string `json:"title,omitempty"`
	SMILES string `json:"smiles"`
}

type fragmentView struct {
	SMILES       string                `json:"smiles"`
	Kind         fragment.Kind         `json:"kind"`
	SourceAtoms  []int                 `json:"sourceAtoms"`
	Placeholders []int                 `json:"placeholders"`
	Attachments  []fragment.Attachment `json:"attachments"`
}

type resultView struct {
	record
	Fragments []fragmentView `json:"fragments"`
}

func newFragmentCommand(a *app) *cobra.Command {
	opts := &fragmentOptions{}
	cmd := &cobra.Command{
		Use:   "fragment [SMILES...]",
		Short: "Fragment molecules given as arguments, in --input or on stdin",
		Long: "Each input line holds a SMILES string optionally followed by whitespace and a title.\n" +
			"Empty lines and lines starting with # are skipped.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFragment(cmd, opts, args)
		},
	}

	d := settings.Default()
	f := cmd.Flags()
	f.Bool("side-chains", d.FragmentSideChains, "fragment acyclic parts into chains")
	f.Int("max-chain-length", d.MaxChainLength, "largest chain fragment")
	f.Bool("isolate", d.IsolateQuaternaryCarbons, "isolate tertiary and quaternary carbons")
	f.Bool("separate", d.SeparateBranchPointFromRing, "separate branch points from rings")
	f.Bool("keep", d.KeepNonFragmentableMolecules, "pass non-fragmentable molecules through")
	f.String("saturation", d.Saturation.String(), "cut handling (none, hydrogen)")
	f.Int("max-rings", d.MaxRingsPerSystem, "dissect ring systems with more rings (0 = never)")
	f.String("ring-finder", "bridges", "ring perception (bridges, cycles, annotated)")
	f.Int("workers", 0, "parallel workers (0 = GOMAXPROCS)")
	f.String("metrics-textfile", "", "write Prometheus metrics to this file after the run")
	f.StringArrayVar(&opts.sets, "set", nil, "set a named setting, e.g. --set maxChainLength=4 (repeatable)")
	f.StringVarP(&opts.input, "input", "i", "", "read SMILES lines from this file ('-' for stdin)")
	f.StringVarP(&opts.output, "output", "o", "text", "output format (text, json)")

	for key, flag := range map[string]string{
		config.KeySideChains:      "side-chains",
		config.KeyMaxChainLength:  "max-chain-length",
		config.KeyIsolate:         "isolate",
		config.KeySeparate:        "separate",
		config.KeyKeep:            "keep",
		config.KeySaturation:      "saturation",
		config.KeyMaxRings:        "max-rings",
		config.KeyRingFinder:      "ring-finder",
		config.KeyWorkers:         "workers",
		config.KeyMetricsTextfile: "metrics-textfile",
	} {
		bind(a.v, cmd, key, flag)
	}

	return cmd
}

func (a *app) runFragment(cmd *cobra.Command, opts *fragmentOptions, args []string) error {
	if opts.output != "text" && opts.output != "json" {
		return fmt.Errorf("unknown output format %q", opts.output)
	}

	s, err := a.cfg.Settings()
	if err != nil {
		return err
	}
	store, err := settings.NewStore(s)
	if err != nil {
		return err
	}
	store.OnChange(func(old, updated settings.Settings) {
		a.log.Debug("setting changed", logging.String("from", old.String()), logging.String("to", updated.String()))
	})
	for _, kv := range opts.sets {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("%q: %w", kv, errBadSet)
		}
		if err = store.Set(strings.TrimSpace(name), value); err != nil {
			return err
		}
	}

	finder, err := a.cfg.Finder()
	if err != nil {
		return err
	}
	reg := prometheus.NewRegistry()
	fr, err := fragment.New(
		fragment.WithSettings(store.Snapshot()),
		fragment.WithRingFinder(finder),
		fragment.WithLogger(a.log.Named("fragment")),
		fragment.WithRecorder(metrics.NewPrometheus(reg)),
	)
	if err != nil {
		return err
	}

	records, err := readRecords(cmd, opts.input, args)
	if err != nil {
		return err
	}
	mols := make([]*molecule.Molecule, len(records))
	for i, r := range records {
		m, err := smiles.Parse(r.SMILES)
		if err != nil {
			return fmt.Errorf("line %d: %w", r.Line, err)
		}
		if r.Title != "" {
			m.SetTitle(r.Title)
		}
		mols[i] = m
	}

	a.log.Info("fragmenting",
		logging.Int("molecules", len(mols)),
		logging.Int("workers", a.cfg.Workers),
		logging.String("policy", store.Snapshot().String()),
		logging.String("ringFinder", finder.Name()))
	out, err := fragment.FragmentAll(cmd.Context(), fr, mols, a.cfg.Workers)
	if err != nil {
		return err
	}

	results := make([]resultView, len(records))
	for i, r := range records {
		results[i] = resultView{record: r, Fragments: views(out[i])}
	}
	if err = render(cmd.OutOrStdout(), opts.output, results); err != nil {
		return err
	}

	if a.cfg.MetricsTextfile != "" {
		if err = prometheus.WriteToTextfile(a.cfg.MetricsTextfile, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}

// readRecords collects inputs from args, or from path, or from stdin when
// neither is given.
func readRecords(cmd *cobra.Command, path string, args []string) ([]record, error) {
	if len(args) > 0 {
		out := make([]record, len(args))
		for i, s := range args {
			out[i] = record{Line: i + 1, SMILES: s}
		}
		return out, nil
	}

	var r io.Reader = cmd.InOrStdin()
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	return scanRecords(r)
}

func scanRecords(r io.Reader) ([]record, error) {
	var out []record
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		rec := record{Line: line, SMILES: fields[0]}
		if len(fields) > 1 {
			rec.Title = strings.Join(fields[1:], " ")
		}
		out = append(out, rec)
	}

	return out, sc.Err()
}

func views(frags []*fragment.Fragment) []fragmentView {
	out := make([]fragmentView, len(frags))
	for i, f := range frags {
		out[i] = fragmentView{
			SMILES:       smiles.Write(f.Molecule),
			Kind:         f.Kind,
			SourceAtoms:  f.SourceAtoms,
			Placeholders: f.Placeholders,
			Attachments:  f.Attachments,
		}
	}

	return out
}

func render(w io.Writer, format string, results []resultView) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	bw := bufio.NewWriter(w)
	for _, r := range results {
		name := r.SMILES
		if r.Title != "" {
			name = r.Title
		}
		if len(r.Fragments) == 0 {
			fmt.Fprintf(bw, "%s\t-\tdropped\n", name)
			continue
		}
		for _, f := range r.Fragments {
			fmt.Fprintf(bw, "%s\t%s\t%s\n", name, f.SMILES, f.Kind)
		}
	}

	return bw.Flush()
}
