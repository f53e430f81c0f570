/*
Package main
File: state.go
Description:
    Manages the runtime state of the combat server: the loaded Balance
    configuration and the in-memory archive of resolved mission reports.
    Persistence belongs to the surrounding turn-resolution system; this
    host keeps reports only for replay and spectating.

    It also handles the initialization (loadConfig) logic.
*/

package main

import (
	"log"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/everforgeworks/galaxies-warfront/internal/game"
)

var (
	// dataLock protects all global variables below from concurrent
	// read/write issues. Any handler reading or writing these MUST
	// hold this lock.
	dataLock sync.RWMutex

	// balance holds the combat tuning values loaded from YAML.
	balance = game.DefaultBalance()

	// reportArchive holds every report resolved by this process,
	// newest last.
	reportArchive []game.MissionReport

	// reportIndex maps report ID -> position in reportArchive.
	reportIndex = make(map[string]int)
)

// loadConfig reads 'combat.yaml' and initializes the Balance values.
// A missing file is not fatal: the shipped defaults apply.
func loadConfig() error {
	dataLock.Lock()
	defer dataLock.Unlock()

	// 1. Read the YAML file
	f, err := os.ReadFile("combat.yaml")
	if err != nil {
		if os.IsNotExist(err) {
			log.Println("CONFIG: combat.yaml not found, using defaults")
			balance = game.DefaultBalance()
			return nil
		}
		return err
	}

	// 2. Unmarshal over the defaults so omitted keys keep their values
	next := game.DefaultBalance()
	if err := yaml.Unmarshal(f, &next); err != nil {
		return err
	}
	balance = next

	log.Printf("CONFIG: balance loaded (max %d rounds, shield %d/level)",
		balance.MaxRounds, balance.ShieldPointsPerLevel)
	return nil
}

// archiveReport stores a resolved report for later retrieval.
func archiveReport(rep game.MissionReport) {
	dataLock.Lock()
	defer dataLock.Unlock()
	reportIndex[rep.ID] = len(reportArchive)
	reportArchive = append(reportArchive, rep)
}

// findReport looks up an archived report by ID.
func findReport(id string) (game.MissionReport, bool) {
	dataLock.RLock()
	defer dataLock.RUnlock()
	i, ok := reportIndex[id]
	if !ok {
		return game.MissionReport{}, false
	}
	return reportArchive[i], true
}
