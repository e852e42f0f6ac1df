package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elys-network/aprcell/internal/display"
	"github.com/elys-network/aprcell/internal/state"
	"github.com/elys-network/aprcell/internal/types"
)

// fakeSource serves a fixed snapshot.
type fakeSource struct {
	pools        []types.Pool
	vaultUsers   map[string]*types.VaultUserData
	currentBlock *uint64
	vaultErr     error
	listErr      error
	pingErr      error
}

func (f *fakeSource) GetPool(_ context.Context, id types.PoolID, _ string) (types.Pool, error) {
	for _, p := range f.pools {
		if p.ID == id {
			return p, nil
		}
	}
	return types.Pool{}, fmt.Errorf("%w: %d", state.ErrPoolNotFound, id)
}

func (f *fakeSource) ListPools(context.Context, string) ([]types.Pool, error) {
	return f.pools, f.listErr
}

func (f *fakeSource) GetVaultUserData(_ context.Context, _ types.VaultKey, account string) (*types.VaultUserData, error) {
	if f.vaultErr != nil {
		return nil, f.vaultErr
	}
	return f.vaultUsers[account], nil
}

func (f *fakeSource) GetCurrentBlock(context.Context) (*uint64, error) {
	return f.currentBlock, nil
}

func (f *fakeSource) Ping(context.Context) error {
	return f.pingErr
}

type fakeTables struct {
	table display.ApyTable
	err   error
}

func (f fakeTables) Table(context.Context, types.VaultKey) (display.ApyTable, error) {
	return f.table, f.err
}

func rate(v float64) *float64 { return &v }

func newTestServer(src *fakeSource, tables ApyTables) *WebServer {
	return NewWebServer("0", Dependencies{
		Source:     src,
		ApyTables:  tables,
		Resolver:   display.NewResolver(0),
		Translator: NewCatalog(nil),
		VaultSettings: func(types.VaultKey) types.VaultSettings {
			return types.VaultSettings{AutoCompoundFrequency: 5000, PerformanceFee: 2}
		},
	})
}

func testSnapshot() *fakeSource {
	block := uint64(500)
	return &fakeSource{
		pools: []types.Pool{
			{ID: 1, Apr: rate(12.34), StartBlock: 100, EndBlock: 1000, StakingToken: types.Token{Symbol: "CAKE", Address: "0xcake"}},
			{ID: 2, Apr: rate(9), StartBlock: 800, EndBlock: 1000},
			{ID: 3, VaultKey: "cakeVault", RawApr: rate(30), StakingToken: types.Token{Symbol: "CAKE"}},
		},
		vaultUsers: map[string]*types.VaultUserData{
			"0xlocked": {UserShares: "10", Locked: true, LockStartTime: "0", LockEndTime: "604800"},
		},
		currentBlock: &block,
	}
}

var testTables = fakeTables{table: display.NewApyTable("cakeVault", []types.ApyQuote{
	{DurationSeconds: 604800, FlexibleApy: "2.5", LockedApy: "6"},
	{DurationSeconds: display.DefaultMaxLockDuration, FlexibleApy: "2.5", LockedApy: "48.75"},
})}

func doGet(t *testing.T, ws *WebServer, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	ws.Handler().ServeHTTP(rec, req)
	return rec
}

func TestGetPoolApr_PlainPool(t *testing.T) {
	ws := newTestServer(testSnapshot(), testTables)

	rec := doGet(t, ws, "/api/pools/1/apr")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	var cell types.Cell
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cell))
	assert.Equal(t, types.DisplaySingleRate, cell.State.Kind)
	require.Len(t, cell.Entries, 1)
	assert.Equal(t, "12.34%", cell.Entries[0].Text)
	assert.Equal(t, types.CalculatorPool, cell.Entries[0].Calculator)
}

func TestGetPoolApr_HideIcon(t *testing.T) {
	ws := newTestServer(testSnapshot(), testTables)

	rec := doGet(t, ws, "/api/pools/1/apr?showIcon=false")
	var cell types.Cell
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cell))
	assert.Equal(t, types.CalculatorNone, cell.Entries[0].Calculator)
}

func TestGetPoolApr_NotStarted(t *testing.T) {
	ws := newTestServer(testSnapshot(), testTables)

	rec := doGet(t, ws, "/api/pools/2/apr")
	var cell types.Cell
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cell))
	assert.Equal(t, types.DisplayNotStarted, cell.State.Kind)
	assert.Equal(t, "-", cell.Entries[0].Text)
}

func TestGetPoolApr_VaultDualAndLocked(t *testing.T) {
	ws := newTestServer(testSnapshot(), testTables)

	var cell types.Cell
	rec := doGet(t, ws, "/api/pools/3/apr")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cell))
	assert.Equal(t, types.DualRate(2.5, 48.75), cell.State)
	require.Len(t, cell.Entries, 2)
	assert.Equal(t, "48.75%", cell.Entries[1].Text)

	rec = doGet(t, ws, "/api/pools/3/apr?account=0xlocked")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cell))
	assert.Equal(t, types.DisplaySingleRate, cell.State.Kind)
	assert.Equal(t, 6.0, cell.State.Value)
	assert.Equal(t, types.VaultPositionLocked, cell.State.Position)
	assert.Equal(t, types.CalculatorLocked, cell.Entries[0].Calculator)
}

func TestGetPoolApr_StoreErrorsDegradeToPending(t *testing.T) {
	src := testSnapshot()
	src.vaultErr = errors.New("db down")
	ws := newTestServer(src, testTables)

	var cell types.Cell
	rec := doGet(t, ws, "/api/pools/3/apr?account=0xlocked")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cell))
	assert.Equal(t, types.DisplayPending, cell.State.Kind)
	assert.Equal(t, types.VaultPositionNone, cell.State.Position)
	require.Len(t, cell.Entries, 2)
	assert.Equal(t, "Flexible APY", cell.Entries[0].Label)
	assert.Equal(t, "Locked APY", cell.Entries[1].Label)
	assert.True(t, cell.Entries[0].Skeleton)
	assert.True(t, cell.Entries[1].Skeleton)

	ws = newTestServer(testSnapshot(), fakeTables{err: errors.New("redis and db down")})
	rec = doGet(t, ws, "/api/pools/3/apr")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cell))
	assert.Equal(t, types.DisplayPending, cell.State.Kind)
	for _, e := range cell.Entries {
		assert.True(t, e.Skeleton)
	}
}

func TestGetPoolApr_NotFound(t *testing.T) {
	ws := newTestServer(testSnapshot(), testTables)

	assert.Equal(t, http.StatusNotFound, doGet(t, ws, "/api/pools/99/apr").Code)
	assert.Equal(t, http.StatusNotFound, doGet(t, ws, "/api/pools/abc/apr").Code)
}

func TestListPools(t *testing.T) {
	ws := newTestServer(testSnapshot(), testTables)

	rec := doGet(t, ws, "/api/pools?compact=true")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Pools        []types.Cell `json:"pools"`
		Count        int          `json:"count"`
		CurrentBlock *uint64      `json:"current_block"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Count)
	require.NotNil(t, body.CurrentBlock)
	assert.Equal(t, uint64(500), *body.CurrentBlock)
	assert.Equal(t, types.CalculatorNone, body.Pools[2].Entries[0].Calculator)

	src := testSnapshot()
	src.listErr = errors.New("db down")
	ws = newTestServer(src, testTables)
	assert.Equal(t, http.StatusInternalServerError, doGet(t, ws, "/api/pools").Code)
}

func TestGetCalculator(t *testing.T) {
	ws := newTestServer(testSnapshot(), testTables)

	var params types.CalculatorParams
	rec := doGet(t, ws, "/api/pools/3/calculator?view=locked")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &params))
	assert.Equal(t, 30.0, *params.Apr)
	assert.Equal(t, 1, params.InitialView)
	assert.Equal(t, 5000, params.AutoCompoundFrequency)
	assert.Equal(t, "Get CAKE", params.LinkLabel)

	rec = doGet(t, ws, "/api/pools/1/calculator")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &params))
	assert.Equal(t, 12.34, *params.Apr)
	assert.Equal(t, "/swap?outputCurrency=0xcake", params.LinkHref)
	assert.Equal(t, 0, params.InitialView)
}

func TestHealth(t *testing.T) {
	ws := newTestServer(testSnapshot(), testTables)
	assert.Equal(t, http.StatusOK, doGet(t, ws, "/health").Code)

	src := testSnapshot()
	src.pingErr = errors.New("db down")
	ws = newTestServer(src, testTables)
	rec := doGet(t, ws, "/api/health")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "DEGRADED")
}

func TestMetricsCountResolvedStates(t *testing.T) {
	ws := newTestServer(testSnapshot(), testTables)
	doGet(t, ws, "/api/pools")

	rec := doGet(t, ws, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `aprcell_display_states_total{kind="SINGLE_RATE"} 1`))
	assert.True(t, strings.Contains(body, `aprcell_display_states_total{kind="NOT_STARTED"} 1`))
	assert.True(t, strings.Contains(body, `aprcell_display_states_total{kind="DUAL_RATE"} 1`))
}

func TestCatalog(t *testing.T) {
	c := NewCatalog(map[string]string{"Up to": "Hasta"})
	assert.Equal(t, "Hasta", c.T("Up to", nil))
	assert.Equal(t, "Get CAKE", c.T("Get %symbol%", map[string]string{"symbol": "CAKE"}))
	assert.Equal(t, "Unknown key", c.T("Unknown key", nil))
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "es.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Locked APY": "APY bloqueado"}`), 0o600))

	c, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, "APY bloqueado", c.T("Locked APY", nil))
	assert.Equal(t, "APR", c.T("APR", nil))

	_, err = LoadCatalog(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
