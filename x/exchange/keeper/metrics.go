package keeper

import (
	"math/big"
	"strconv"
	"sync"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/nikswap/nikswap/x/exchange/types"
)

// ExchangeMetrics holds all Prometheus metrics for the exchange module
type ExchangeMetrics struct {
	// Swap metrics
	SwapsTotal *prometheus.CounterVec
	SwapVolume *prometheus.CounterVec

	// Liquidity metrics
	LiquidityAdded   *prometheus.CounterVec
	LiquidityRemoved *prometheus.CounterVec
	PoolReserves     *prometheus.GaugeVec
	ShareSupply      *prometheus.GaugeVec

	// Rejected operations by error code
	Rejections *prometheus.CounterVec
}

var (
	exchangeMetricsOnce sync.Once
	exchangeMetrics     *ExchangeMetrics
)

// NewExchangeMetrics creates and registers exchange metrics (singleton pattern)
func NewExchangeMetrics() *ExchangeMetrics {
	exchangeMetricsOnce.Do(func() {
		exchangeMetrics = &ExchangeMetrics{
			SwapsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "nikswap",
					Subsystem: "exchange",
					Name:      "swaps_total",
					Help:      "Total number of swaps executed",
				},
				[]string{"token", "direction"},
			),
			SwapVolume: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "nikswap",
					Subsystem: "exchange",
					Name:      "swap_volume_total",
					Help:      "Total swap volume in base units",
				},
				[]string{"token", "denom", "side"},
			),
			LiquidityAdded: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "nikswap",
					Subsystem: "exchange",
					Name:      "liquidity_added_total",
					Help:      "Total liquidity deposited in base units",
				},
				[]string{"token", "denom"},
			),
			LiquidityRemoved: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "nikswap",
					Subsystem: "exchange",
					Name:      "liquidity_removed_total",
					Help:      "Total liquidity withdrawn in base units",
				},
				[]string{"token", "denom"},
			),
			PoolReserves: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "nikswap",
					Subsystem: "exchange",
					Name:      "pool_reserves",
					Help:      "Current pool reserves in base units",
				},
				[]string{"token", "denom"},
			),
			ShareSupply: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "nikswap",
					Subsystem: "exchange",
					Name:      "share_supply",
					Help:      "Outstanding liquidity shares",
				},
				[]string{"token"},
			),
			Rejections: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "nikswap",
					Subsystem: "exchange",
					Name:      "rejections_total",
					Help:      "Pool operations rejected, by operation and error",
				},
				[]string{"operation", "reason"},
			),
		}
	})
	return exchangeMetrics
}

func (m *ExchangeMetrics) recordPool(params types.Params, pool types.Pool) {
	if m == nil {
		return
	}
	m.PoolReserves.WithLabelValues(params.TokenDenom, params.NativeDenom).Set(toFloat(pool.EthReserve))
	m.PoolReserves.WithLabelValues(params.TokenDenom, params.TokenDenom).Set(toFloat(pool.TokenReserve))
	m.ShareSupply.WithLabelValues(params.TokenDenom).Set(toFloat(pool.TotalShares))
}

func (m *ExchangeMetrics) recordLiquidity(params types.Params, added bool, eth, tokens math.Int) {
	if m == nil {
		return
	}
	vec := m.LiquidityRemoved
	if added {
		vec = m.LiquidityAdded
	}
	vec.WithLabelValues(params.TokenDenom, params.NativeDenom).Add(toFloat(eth))
	vec.WithLabelValues(params.TokenDenom, params.TokenDenom).Add(toFloat(tokens))
}

func (m *ExchangeMetrics) recordSwap(params types.Params, dir swapDirection, amountIn, amountOut math.Int) {
	if m == nil {
		return
	}
	inDenom, outDenom := params.NativeDenom, params.TokenDenom
	if dir == tokenToEth {
		inDenom, outDenom = outDenom, inDenom
	}
	m.SwapsTotal.WithLabelValues(params.TokenDenom, string(dir)).Inc()
	m.SwapVolume.WithLabelValues(params.TokenDenom, inDenom, "in").Add(toFloat(amountIn))
	m.SwapVolume.WithLabelValues(params.TokenDenom, outDenom, "out").Add(toFloat(amountOut))
}

func (m *ExchangeMetrics) recordRejection(operation string, err error) {
	if m == nil {
		return
	}
	reason := "unknown"
	if codespace, code, _ := errorsmod.ABCIInfo(err, false); codespace != "" {
		reason = codespace + ":" + strconv.FormatUint(uint64(code), 10)
	}
	m.Rejections.WithLabelValues(operation, reason).Inc()
}

func toFloat(v math.Int) float64 {
	if v.IsNil() {
		return 0
	}
	f, _ := new(big.Float).SetInt(v.BigInt()).Float64()
	return f
}
