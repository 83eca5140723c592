// Command poromodel sets up a demonstration compositional model on a
// fractured two-dimensional domain, resolves its composition, writes a
// heterogeneous initial state, and snapshots the definition to SQLite.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/okstad/poromodel/internal/composite"
	"github.com/okstad/poromodel/internal/domain"
	"github.com/okstad/poromodel/internal/grid"
	"github.com/okstad/poromodel/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	dbPath := "data/model.db"

	// ── Geometry ──────────────────────────────────────────────────────
	cfg := grid.DefaultBuildConfig()
	g, err := grid.Build(cfg)
	if err != nil {
		slog.Error("failed to build domain graph", "error", err)
		os.Exit(1)
	}
	slog.Info("domain graph built",
		"subregions", g.NumSubregions(),
		"interfaces", len(g.Interfaces()),
		"cells", g.NumCells(),
	)

	// ── Computational domain ──────────────────────────────────────────
	d, err := domain.New(g)
	if err != nil {
		slog.Error("failed to construct domain", "error", err)
		os.Exit(1)
	}

	// ── Materials ─────────────────────────────────────────────────────
	sand, err := composite.NewQuartzSand(d)
	if err != nil {
		slog.Error("failed to construct material", "error", err)
		os.Exit(1)
	}
	for _, n := range g.Nodes() {
		if err := d.AssignMaterial(n.Sub, sand); err != nil {
			slog.Error("failed to assign material", "subregion", n.Sub.Name, "error", err)
			os.Exit(1)
		}
	}
	slog.Info("materials assigned", "material", sand.Name())

	// ── Substances and phases ─────────────────────────────────────────
	water, err := composite.NewWater(d)
	if err != nil {
		slog.Error("substance setup failed", "error", err)
		os.Exit(1)
	}
	salt, err := composite.NewSalt(d)
	if err != nil {
		slog.Error("substance setup failed", "error", err)
		os.Exit(1)
	}
	methane, err := composite.NewMethane(d)
	if err != nil {
		slog.Error("substance setup failed", "error", err)
		os.Exit(1)
	}

	liquid, err := composite.NewPhase(d, "Liquid", water, salt)
	if err != nil {
		slog.Error("phase setup failed", "error", err)
		os.Exit(1)
	}
	gas, err := composite.NewPhase(d, "Gas", water, methane)
	if err != nil {
		slog.Error("phase setup failed", "error", err)
		os.Exit(1)
	}

	if err := d.AddPhase(liquid, gas); err != nil {
		slog.Error("failed to add phases", "error", err)
		os.Exit(1)
	}

	comp := d.Composition()
	for _, ph := range d.Phases() {
		slog.Info("phase resolved", "phase", ph.Name(), "substances", comp.InPhase[ph.Name()])
	}
	slog.Info("composition resolved",
		"phases", d.NumPhases(),
		"distinct_substances", d.NumSubstances(),
	)

	// ── Initial state (heterogeneous pressure via noise field) ────────
	sampler := grid.NewFieldSampler(cfg.Seed)
	nodes := g.Nodes()
	st := domain.InitialState{
		Pressure:    make([]domain.Field, len(nodes)),
		Temperature: make([]domain.Field, len(nodes)),
		Saturations: make([][]domain.Field, len(nodes)),
	}
	for i, n := range nodes {
		st.Pressure[i] = domain.PerCell(sampler.Sample(n.Sub, 1.0e7, 5.0e5, 4.0))
		st.Temperature[i] = domain.Uniform(353.0)
		st.Saturations[i] = []domain.Field{
			domain.Uniform(0.8), // Liquid
			domain.Uniform(0.2), // Gas
		}
	}
	if err := d.SetInitialValues(st, domain.SaturationFlash{}, true); err != nil {
		slog.Error("failed to set initial values", "error", err)
		os.Exit(1)
	}
	slog.Info("initial state written",
		"pressure_var", "p",
		"temperature_var", "T",
	)

	// ── Snapshot ──────────────────────────────────────────────────────
	os.MkdirAll("data", 0755)
	db, err := store.Open(dbPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.SaveModel(d); err != nil {
		slog.Error("failed to save model definition", "error", err)
		os.Exit(1)
	}
	slog.Info("model snapshot written", "path", dbPath)

	fmt.Println()
	fmt.Print(d.String())
}
