package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	exchangetypes "github.com/nikswap/nikswap/x/exchange/types"
	tokentypes "github.com/nikswap/nikswap/x/token/types"
)

// GenesisState represents the genesis state of every module
type GenesisState struct {
	Token    tokentypes.GenesisState    `json:"token"`
	Exchange exchangetypes.GenesisState `json:"exchange"`
}

// GenesisDoc is the contents of genesis.json.
type GenesisDoc struct {
	ChainID     string       `json:"chain_id"`
	GenesisTime time.Time    `json:"genesis_time"`
	AppState    GenesisState `json:"app_state"`
}

// NewDefaultGenesisState generates the default state for the application.
func NewDefaultGenesisState() GenesisState {
	return GenesisState{
		Token:    *tokentypes.DefaultGenesis(),
		Exchange: *exchangetypes.DefaultGenesis(),
	}
}

// Validate runs every module's genesis validation.
func (gs GenesisState) Validate() error {
	if err := gs.Token.Validate(); err != nil {
		return fmt.Errorf("token genesis: %w", err)
	}
	if err := gs.Exchange.Validate(); err != nil {
		return fmt.Errorf("exchange genesis: %w", err)
	}
	return nil
}

// NewGenesisDoc returns a genesis document with default module state.
func NewGenesisDoc(chainID string, genesisTime time.Time) *GenesisDoc {
	return &GenesisDoc{
		ChainID:     chainID,
		GenesisTime: genesisTime.UTC(),
		AppState:    NewDefaultGenesisState(),
	}
}

// LoadGenesisDoc reads and validates a genesis file.
func LoadGenesisDoc(path string) (*GenesisDoc, error) {
	bz, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read genesis: %w", err)
	}
	var doc GenesisDoc
	if err := json.Unmarshal(bz, &doc); err != nil {
		return nil, fmt.Errorf("parse genesis %s: %w", path, err)
	}
	if err := doc.AppState.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Save writes the genesis document as indented JSON.
func (doc *GenesisDoc) Save(path string) error {
	bz, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, bz, 0o644)
}
