// Package report defines the JSON documents produced for each feature level
// and writes them out.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mmynk/rentsplit/internal/models"
)

// Level selects which report is produced.
type Level string

const (
	LevelPrice         Level = "price"
	LevelFees          Level = "fees"
	LevelActions       Level = "actions"
	LevelModifications Level = "modifications"
)

// Levels lists every level in increasing order of detail.
var Levels = []Level{LevelPrice, LevelFees, LevelActions, LevelModifications}

// Report is any of the level documents below.
type Report interface {
	// Len is the number of entries in the report.
	Len() int
}

// PriceReport: {"rentals": [{"id", "price"}]}
type PriceReport struct {
	Rentals []RentalPrice `json:"rentals"`
}

type RentalPrice struct {
	ID    int64 `json:"id"`
	Price int64 `json:"price"`
}

func (r PriceReport) Len() int { return len(r.Rentals) }

// FeeReport: {"rentals": [{"id", "price", "commission": {...}}]}
type FeeReport struct {
	Rentals []RentalFees `json:"rentals"`
}

type RentalFees struct {
	ID         int64      `json:"id"`
	Price      int64      `json:"price"`
	Commission Commission `json:"commission"`
}

// Commission is the split of the commission. The platform share is keyed
// after the platform actor name.
type Commission struct {
	InsuranceFee  int64 `json:"insurance_fee"`
	AssistanceFee int64 `json:"assistance_fee"`
	PlatformFee   int64 `json:"drivy_fee"`
}

func (r FeeReport) Len() int { return len(r.Rentals) }

// ActionReport: {"rentals": [{"id", "actions": [...]}]}
type ActionReport struct {
	Rentals []RentalActions `json:"rentals"`
}

type RentalActions struct {
	ID      int64    `json:"id"`
	Actions []Action `json:"actions"`
}

func (r ActionReport) Len() int { return len(r.Rentals) }

// ModificationReport: {"rental_modifications": [{"id", "rental_id", "actions": [...]}]}
type ModificationReport struct {
	Modifications []ModificationActions `json:"rental_modifications"`
}

type ModificationActions struct {
	ID       int64    `json:"id"`
	RentalID int64    `json:"rental_id"`
	Actions  []Action `json:"actions"`
}

func (r ModificationReport) Len() int { return len(r.Modifications) }

// Action is the wire form of models.Action.
type Action struct {
	Who    string `json:"who"`
	Type   string `json:"type"`
	Amount int64  `json:"amount"`
}

// FromActions converts ledger actions to their wire form.
func FromActions(actions []models.Action) []Action {
	out := make([]Action, len(actions))
	for i, a := range actions {
		out[i] = Action{Who: string(a.Who), Type: string(a.Type), Amount: a.Amount}
	}
	return out
}

// Write encodes rep as indented JSON followed by a newline.
func Write(w io.Writer, rep Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// WriteFile writes rep to path, creating parent directories as needed.
func WriteFile(path string, rep Report) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	if err := Write(f, rep); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
