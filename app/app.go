package app

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"

	exchangekeeper "github.com/nikswap/nikswap/x/exchange/keeper"
	exchangetypes "github.com/nikswap/nikswap/x/exchange/types"
	tokenkeeper "github.com/nikswap/nikswap/x/token/keeper"
	tokentypes "github.com/nikswap/nikswap/x/token/types"
)

// ErrAlreadyInitialized is returned by InitChain on a store that has committed state.
var ErrAlreadyInitialized = errors.New("chain already initialized")

var _ sdk.InvariantRegistry = (*App)(nil)

type invariantRoute struct {
	route     string
	invariant sdk.Invariant
}

// App wires the token and exchange keepers onto one commit multistore. Every
// state transition runs in its own cached branch and is committed as a block.
type App struct {
	mu sync.Mutex

	logger  log.Logger
	db      dbm.DB
	cms     storetypes.CommitMultiStore
	chainID string

	// keys to access the substores
	keys map[string]*storetypes.KVStoreKey

	// keepers
	TokenKeeper    *tokenkeeper.Keeper
	ExchangeKeeper exchangekeeper.Keeper

	invariants []invariantRoute
}

// New returns an App backed by db, loading the latest committed version.
func New(logger log.Logger, db dbm.DB, chainID string) (*App, error) {
	keys := map[string]*storetypes.KVStoreKey{
		tokentypes.StoreKey:    storetypes.NewKVStoreKey(tokentypes.StoreKey),
		exchangetypes.StoreKey: storetypes.NewKVStoreKey(exchangetypes.StoreKey),
	}

	cms := store.NewCommitMultiStore(db, logger, metrics.NewNoOpMetrics())
	for _, key := range keys {
		cms.MountStoreWithDB(key, storetypes.StoreTypeIAVL, nil)
	}
	if err := cms.LoadLatestVersion(); err != nil {
		return nil, fmt.Errorf("load latest version: %w", err)
	}

	app := &App{
		logger:  logger.With("module", "app"),
		db:      db,
		cms:     cms,
		chainID: chainID,
		keys:    keys,
	}

	// The token ledger holds the native asset as well, so it serves as the
	// exchange's bank keeper.
	app.TokenKeeper = tokenkeeper.NewKeeper(keys[tokentypes.StoreKey])
	app.ExchangeKeeper = exchangekeeper.NewKeeper(keys[exchangetypes.StoreKey], app.TokenKeeper, app.TokenKeeper)

	exchangekeeper.RegisterInvariants(app, app.ExchangeKeeper)
	return app, nil
}

// RegisterRoute implements sdk.InvariantRegistry.
func (app *App) RegisterRoute(moduleName, route string, invar sdk.Invariant) {
	app.invariants = append(app.invariants, invariantRoute{route: moduleName + "/" + route, invariant: invar})
}

// Logger returns the application logger.
func (app *App) Logger() log.Logger { return app.logger }

// ChainID returns the chain id block headers are stamped with.
func (app *App) ChainID() string { return app.chainID }

// LastBlockHeight returns the height of the last committed block.
func (app *App) LastBlockHeight() int64 {
	return app.cms.LastCommitID().Version
}

// GetKey returns the KVStoreKey for the provided store key.
func (app *App) GetKey(storeKey string) *storetypes.KVStoreKey {
	return app.keys[storeKey]
}

// InitChain loads genesis into a fresh store and commits it as block 1.
func (app *App) InitChain(doc *GenesisDoc) error {
	if app.LastBlockHeight() != 0 {
		return ErrAlreadyInitialized
	}
	if err := doc.AppState.Validate(); err != nil {
		return err
	}
	app.chainID = doc.ChainID

	_, err := app.Deliver(doc.GenesisTime, func(ctx sdk.Context) error {
		if err := app.TokenKeeper.InitGenesis(ctx, doc.AppState.Token); err != nil {
			return err
		}
		return app.ExchangeKeeper.InitGenesis(ctx, doc.AppState.Exchange)
	})
	if err != nil {
		return fmt.Errorf("init chain: %w", err)
	}
	app.logger.Info("chain initialized", "chain_id", doc.ChainID, "height", app.LastBlockHeight())
	return nil
}

// Deliver runs fn as one block at blockTime. fn sees a branch of the latest
// state; the branch is written and committed only when fn succeeds, and the
// events it emitted are returned.
func (app *App) Deliver(blockTime time.Time, fn func(ctx sdk.Context) error) (sdk.Events, error) {
	app.mu.Lock()
	defer app.mu.Unlock()

	height := app.cms.LastCommitID().Version + 1
	cache := app.cms.CacheMultiStore()
	ctx := app.newContext(cache, height, blockTime)

	if err := fn(ctx); err != nil {
		return nil, err
	}
	cache.Write()
	commitID := app.cms.Commit()

	app.logger.Debug("committed block", "height", commitID.Version, "hash", fmt.Sprintf("%X", commitID.Hash))
	return ctx.EventManager().Events(), nil
}

// Query runs fn against a read-only branch of the latest committed state.
func (app *App) Query(fn func(ctx sdk.Context) error) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	height := app.cms.LastCommitID().Version
	return fn(app.newContext(app.cms.CacheMultiStore(), height, time.Now()))
}

func (app *App) newContext(ms storetypes.MultiStore, height int64, blockTime time.Time) sdk.Context {
	header := cmtproto.Header{
		ChainID: app.chainID,
		Height:  height,
		Time:    blockTime.UTC(),
	}
	return sdk.NewContext(ms, header, false, app.logger).WithEventManager(sdk.NewEventManager())
}

// AssertInvariants runs every registered invariant and reports the broken ones.
func (app *App) AssertInvariants() error {
	return app.Query(func(ctx sdk.Context) error {
		var broken []string
		for _, inv := range app.invariants {
			if msg, stop := inv.invariant(ctx); stop {
				broken = append(broken, msg)
			}
		}
		if len(broken) > 0 {
			return fmt.Errorf("broken invariants:\n%s", strings.Join(broken, "\n"))
		}
		return nil
	})
}

// ExportGenesis returns the current state as a genesis document.
func (app *App) ExportGenesis() (*GenesisDoc, error) {
	doc := &GenesisDoc{ChainID: app.chainID, GenesisTime: time.Now().UTC()}
	err := app.Query(func(ctx sdk.Context) error {
		doc.AppState.Token = *app.TokenKeeper.ExportGenesis(ctx)
		exchange, err := app.ExchangeKeeper.ExportGenesis(ctx)
		if err != nil {
			return err
		}
		doc.AppState.Exchange = *exchange
		return nil
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Close releases the underlying database.
func (app *App) Close() error {
	return app.db.Close()
}
