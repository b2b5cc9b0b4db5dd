package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"cosmossdk.io/math"
	"github.com/cometbft/cometbft/crypto"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/nikswap/nikswap/app"
	"github.com/nikswap/nikswap/pkg/units"
	exchangetypes "github.com/nikswap/nikswap/x/exchange/types"
)

// poolAlias names the exchange's own account wherever an address is expected.
const poolAlias = "pool"

// openApp opens the node database and commits genesis on first use.
func openApp(nc *nodeContext) (*app.App, error) {
	doc, err := app.LoadGenesisDoc(genesisFile(nc.Home))
	if err != nil {
		return nil, fmt.Errorf("%w (run `nikswapd init` first)", err)
	}

	db, err := dbm.NewDB("application", dbm.BackendType(nc.Config.DBBackend), dataDir(nc.Home))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	a, err := app.New(nc.Logger, db, doc.ChainID)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if a.LastBlockHeight() == 0 {
		if err := a.InitChain(doc); err != nil {
			_ = a.Close()
			return nil, err
		}
	}
	return a, nil
}

// resolveAddress accepts a bech32 address, the pool alias, or a key name. Key
// names map to a deterministic development address.
func resolveAddress(s string) (sdk.AccAddress, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty address")
	}
	if s == poolAlias {
		return poolAddress(), nil
	}

	prefix := sdk.GetConfig().GetBech32AccountAddrPrefix() + "1"
	if strings.HasPrefix(s, prefix) {
		addr, err := sdk.AccAddressFromBech32(s)
		if err != nil {
			return nil, fmt.Errorf("invalid address %q: %w", s, err)
		}
		return addr, nil
	}
	return keyAddress(s), nil
}

func poolAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(exchangetypes.ModuleName)
}

func keyAddress(name string) sdk.AccAddress {
	return sdk.AccAddress(crypto.AddressHash([]byte(name)))
}

func parseAmountArg(name, s string) (math.Int, error) {
	amt, err := units.ParseAmount(s)
	if err != nil {
		return math.Int{}, fmt.Errorf("%s: %w", name, err)
	}
	return amt, nil
}

// parseDeadline accepts unix seconds or "+<duration>" relative to now.
func parseDeadline(s string, now time.Time) (uint64, error) {
	s = strings.TrimSpace(s)
	if rel, ok := strings.CutPrefix(s, "+"); ok {
		d, err := time.ParseDuration(rel)
		if err != nil {
			return 0, fmt.Errorf("deadline %q: %w", s, err)
		}
		unix := now.Add(d).Unix()
		if unix < 0 {
			return 0, fmt.Errorf("deadline %q is before the epoch", s)
		}
		return uint64(unix), nil
	}
	deadline, err := cast.ToUint64E(s)
	if err != nil {
		return 0, fmt.Errorf("deadline %q: %w", s, err)
	}
	return deadline, nil
}

type eventOutput struct {
	Type       string            `json:"type"`
	Attributes map[string]string `json:"attributes"`
}

func formatEvents(events sdk.Events) []eventOutput {
	out := make([]eventOutput, 0, len(events))
	for _, ev := range events {
		attrs := make(map[string]string, len(ev.Attributes))
		for _, attr := range ev.Attributes {
			attrs[attr.Key] = attr.Value
		}
		out = append(out, eventOutput{Type: ev.Type, Attributes: attrs})
	}
	return out
}

func printJSON(cmd *cobra.Command, v any) error {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
	return err
}
