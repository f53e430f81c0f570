/*
Package main
File: handlers.go
Description: HTTP Handlers for the combat API. Accepts mission resolution
requests, runs the simulator with a per-request seeded random source,
archives the report and serves it back raw or filtered through the
fog-of-war rules for a specific viewer.
*/

package main

import (
	"encoding/json"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/everforgeworks/galaxies-warfront/internal/game"
)

var validate = validator.New()

// resolveLimiter throttles battle resolution; simulation is cheap but a
// flood of huge fleets is not.
var resolveLimiter = rate.NewLimiter(rate.Limit(10), 20)

// PlanetRequest mirrors game.PlanetState with string-keyed armies.
type PlanetRequest struct {
	Key           string         `json:"key"`
	Owner         string         `json:"owner"`
	Controller    string         `json:"controller"`
	Forces        map[string]int `json:"forces"`
	DestroyChance float64        `json:"destroy_chance" validate:"min=0,max=1"`
}

// ResolveRequest is the payload for POST /api/battles/resolve.
type ResolveRequest struct {
	Turn         int            `json:"turn" validate:"min=0"`
	Seed         *int64         `json:"seed"` // Optional: reproducible resolution
	Owner        string         `json:"owner" validate:"required"`
	Objective    string         `json:"objective" validate:"required,oneof=attack deploy colonize spy destroy missile_strike"`
	Fleet        map[string]int `json:"fleet" validate:"required"`
	Raid         string         `json:"raid" validate:"omitempty,oneof=none economic industrial"`
	CombatProbes bool           `json:"combat_probes"`
	OriginHeld   bool           `json:"origin_held"`
	Planet       PlanetRequest  `json:"planet" validate:"required"`
}

// ResolveResponse wraps the archived report with the derived winner so
// simple clients need no report-model logic of their own.
type ResolveResponse struct {
	Report game.MissionReport `json:"report"`
	Winner string             `json:"winner"`
	Seed   int64              `json:"seed"`
}

// handleResolve runs one battle and archives the result.
func handleResolve(w http.ResponseWriter, r *http.Request) {
	if !resolveLimiter.Allow() {
		http.Error(w, "Too many battles", http.StatusTooManyRequests)
		return
	}

	var req ResolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	mission, planet, err := buildInputs(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// 1. Seed the random source. Callers replaying a battle pass the
	// seed back; fresh battles get a wall-clock seed.
	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}

	// 2. Resolve under a read lock: the simulator is pure, we only
	// need a consistent view of the balance values.
	dataLock.RLock()
	cfg := balance
	dataLock.RUnlock()

	sim := game.NewSimulator(cfg, rand.New(rand.NewSource(seed)))
	rep := sim.Resolve(req.Turn, mission, planet)
	rep.ID = uuid.NewString()

	// 3. Post-resolution ownership is the caller's job in the full
	// turn engine; this host fills the obvious cases for display.
	switch {
	case rep.Destroyed:
		rep.NewController = ""
	case rep.Colonized:
		rep.NewController = mission.Owner
	default:
		rep.NewController = planet.Controller
	}

	archiveReport(rep)
	log.Printf("BATTLE: %s resolved %s vs %s at %s (winner=%q)",
		rep.ID, mission.Owner, planet.Controller, planet.Key, rep.Winner())

	// 4. Push the event to spectators
	if msg, err := json.Marshal(Message{
		Type:    "battle_resolved",
		Payload: map[string]interface{}{"id": rep.ID, "planet": planet.Key, "winner": rep.Winner()},
		Sender:  "system",
	}); err == nil {
		gameHub.broadcast <- msg
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ResolveResponse{Report: rep, Winner: rep.Winner(), Seed: seed})
}

// buildInputs converts the wire DTO into simulator inputs.
func buildInputs(req ResolveRequest) (game.Mission, game.PlanetState, error) {
	objective, err := game.ParseObjective(req.Objective)
	if err != nil {
		return game.Mission{}, game.PlanetState{}, err
	}
	raid, err := game.ParseRaidTarget(req.Raid)
	if err != nil {
		return game.Mission{}, game.PlanetState{}, err
	}
	fleet, err := game.ArmyFromCounts(req.Fleet)
	if err != nil {
		return game.Mission{}, game.PlanetState{}, err
	}
	forces, err := game.ArmyFromCounts(req.Planet.Forces)
	if err != nil {
		return game.Mission{}, game.PlanetState{}, err
	}

	mission := game.Mission{
		Owner:        req.Owner,
		Objective:    objective,
		Fleet:        fleet,
		Raid:         raid,
		CombatProbes: req.CombatProbes,
		OriginHeld:   req.OriginHeld,
	}
	planet := game.PlanetState{
		Key:           req.Planet.Key,
		Owner:         req.Planet.Owner,
		Controller:    req.Planet.Controller,
		Forces:        forces,
		DestroyChance: req.Planet.DestroyChance,
	}
	return mission, planet, nil
}

// ReportSummary is the list-view projection of an archived report.
type ReportSummary struct {
	ID        string `json:"id"`
	Turn      int    `json:"turn"`
	Attacker  string `json:"attacker"`
	Defender  string `json:"defender"`
	Planet    string `json:"planet"`
	Winner    string `json:"winner"`
	Rounds    int    `json:"rounds"`
	Destroyed bool   `json:"destroyed"`
	Colonized bool   `json:"colonized"`
	Hidden    bool   `json:"hidden"`
}

func handleListReports(w http.ResponseWriter, r *http.Request) {
	dataLock.RLock()
	defer dataLock.RUnlock()

	summaries := make([]ReportSummary, 0, len(reportArchive))
	for i := range reportArchive {
		rep := &reportArchive[i]
		rounds := 0
		if rep.Combat != nil {
			rounds = len(rep.Combat.Rounds)
		}
		summaries = append(summaries, ReportSummary{
			ID:        rep.ID,
			Turn:      rep.Turn,
			Attacker:  rep.Mission.Owner,
			Defender:  rep.Planet.Controller,
			Planet:    rep.Planet.Key,
			Winner:    rep.Winner(),
			Rounds:    rounds,
			Destroyed: rep.Destroyed,
			Colonized: rep.Colonized,
			Hidden:    rep.Hidden,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summaries)
}

func handleGetReport(w http.ResponseWriter, r *http.Request) {
	rep, ok := findReport(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "Report not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rep)
}

// handleReportView serves a report through the fog-of-war filter: round
// snapshots and survivor armies of a side the viewer may not see are
// stripped before serialization.
func handleReportView(w http.ResponseWriter, r *http.Request) {
	rep, ok := findReport(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "Report not found", http.StatusNotFound)
		return
	}
	viewer := r.URL.Query().Get("viewer")
	if viewer == "" {
		http.Error(w, "Missing viewer parameter", http.StatusBadRequest)
		return
	}

	seeAttacker := rep.CanSee(game.SideAttacker, viewer)
	seeDefender := rep.CanSee(game.SideDefender, viewer)

	filtered := rep // value copy; nested slices replaced below, never mutated
	if !seeAttacker {
		filtered.Mission.Fleet = nil
		filtered.SurvivingAttacker = nil
	}
	if !seeDefender {
		filtered.Planet.Forces = nil
		filtered.SurvivingDefender = nil
	}
	if rep.Combat != nil {
		combat := game.CombatReport{Rounds: make([]game.RoundReport, len(rep.Combat.Rounds))}
		copy(combat.Rounds, rep.Combat.Rounds)
		for i := range combat.Rounds {
			if !seeAttacker {
				combat.Rounds[i].Attacker = nil
			}
			if !seeDefender {
				combat.Rounds[i].Defender = nil
				combat.Rounds[i].Buildings = nil
			}
		}
		filtered.Combat = &combat
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(filtered)
}

// CatalogEntry pairs a unit key with its capability sheet.
type CatalogEntry struct {
	Kind  string         `json:"kind"`
	Stats game.UnitStats `json:"stats"`
}

func handleGetCatalog(w http.ResponseWriter, r *http.Request) {
	entries := make([]CatalogEntry, 0, len(game.AllKinds))
	for _, k := range game.AllKinds {
		entries = append(entries, CatalogEntry{Kind: k.String(), Stats: game.Stats(k)})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}
