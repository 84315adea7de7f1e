package keeper_test

import (
	"context"
	"testing"
	"time"

	"cosmossdk.io/core/address"
	storetypes "cosmossdk.io/store/types"
	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	moduletestutil "github.com/cosmos/cosmos-sdk/types/module/testutil"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	"github.com/Aronyu127/BonkArena/x/arena/keeper"
	module "github.com/Aronyu127/BonkArena/x/arena/module"
	"github.com/Aronyu127/BonkArena/x/arena/types"
)

// MockBankKeeper is a mock implementation of the BankKeeper interface.
// Module balances are tracked under the module account address so that
// custody reads through SpendableCoins see them.
type MockBankKeeper struct {
	Balances map[string]sdk.Coins
}

func NewMockBankKeeper() *MockBankKeeper {
	return &MockBankKeeper{
		Balances: make(map[string]sdk.Coins),
	}
}

func (m *MockBankKeeper) SpendableCoins(_ context.Context, addr sdk.AccAddress) sdk.Coins {
	return m.Balances[addr.String()]
}

func (m *MockBankKeeper) SendCoinsFromAccountToModule(_ context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	balance := m.Balances[senderAddr.String()]
	if !balance.IsAllGTE(amt) {
		return types.ErrInsufficientFunds
	}
	m.Balances[senderAddr.String()] = balance.Sub(amt...)
	moduleAddr := authtypes.NewModuleAddress(recipientModule).String()
	m.Balances[moduleAddr] = m.Balances[moduleAddr].Add(amt...)
	return nil
}

func (m *MockBankKeeper) SendCoinsFromModuleToAccount(_ context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	moduleAddr := authtypes.NewModuleAddress(senderModule).String()
	balance := m.Balances[moduleAddr]
	if !balance.IsAllGTE(amt) {
		return types.ErrInsufficientFunds
	}
	m.Balances[moduleAddr] = balance.Sub(amt...)
	m.Balances[recipientAddr.String()] = m.Balances[recipientAddr.String()].Add(amt...)
	return nil
}

type fixture struct {
	ctx          sdk.Context
	keeper       keeper.Keeper
	addressCodec address.Codec
	bankKeeper   *MockBankKeeper
}

func initFixture(t *testing.T) *fixture {
	t.Helper()

	encCfg := moduletestutil.MakeTestEncodingConfig(module.AppModule{})
	addressCodec := addresscodec.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix())
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	storeService := runtime.NewKVStoreService(storeKey)
	ctx := testutil.DefaultContextWithDB(t, storeKey, storetypes.NewTransientStoreKey("transient_test")).Ctx
	ctx = ctx.WithBlockTime(time.Unix(1_700_000_000, 0))

	authority := authtypes.NewModuleAddress(types.GovModuleName)
	bankKeeper := NewMockBankKeeper()

	k := keeper.NewKeeper(
		storeService,
		encCfg.Codec,
		addressCodec,
		authority,
		bankKeeper,
		nil,
	)

	// Initialize params
	if err := k.Params.Set(ctx, types.DefaultParams()); err != nil {
		t.Fatalf("failed to set params: %v", err)
	}

	return &fixture{
		ctx:          ctx,
		keeper:       k,
		addressCodec: addressCodec,
		bankKeeper:   bankKeeper,
	}
}

// addr returns a deterministic test account and its bech32 form.
func (f *fixture) addr(t *testing.T, seed string) (sdk.AccAddress, string) {
	t.Helper()
	acc := sdk.AccAddress([]byte(seed))
	str, err := f.addressCodec.BytesToString(acc)
	require.NoError(t, err)
	return acc, str
}

func (f *fixture) fund(addr sdk.AccAddress, denom string, amount int64) {
	f.bankKeeper.Balances[addr.String()] = f.bankKeeper.Balances[addr.String()].
		Add(sdk.NewInt64Coin(denom, amount))
}

func (f *fixture) balanceOf(addr sdk.AccAddress, denom string) int64 {
	return f.bankKeeper.Balances[addr.String()].AmountOf(denom).Int64()
}

const testDenom = "ubonk"

// initArena creates the leaderboard with the standard test configuration and
// returns the owner account.
func initArena(t *testing.T, f *fixture, ms types.MsgServer) (sdk.AccAddress, string) {
	t.Helper()
	owner, ownerStr := f.addr(t, "arena_owner_000001")
	_, err := ms.Initialize(f.ctx, &types.MsgInitialize{
		Creator:           ownerStr,
		EntryFee:          1_000_000_000,
		PrizeRatio:        70,
		CommissionRatio:   30,
		PrizeDistribution: []uint32{50, 30, 20},
		TokenDenom:        testDenom,
	})
	require.NoError(t, err)
	return owner, ownerStr
}

// playGame funds the player, starts a session and logs a verified score.
func playGame(t *testing.T, f *fixture, ms types.MsgServer, seed, name string, score uint64) (sdk.AccAddress, string) {
	t.Helper()
	player, playerStr := f.addr(t, seed)
	f.fund(player, testDenom, 1_000_000_000)

	_, err := ms.StartGame(f.ctx, &types.MsgStartGame{Creator: playerStr, Name: name})
	require.NoError(t, err)

	session, found, err := f.keeper.GetSession(f.ctx, playerStr)
	require.NoError(t, err)
	require.True(t, found)

	secret, err := f.keeper.GetSecretKey(f.ctx)
	require.NoError(t, err)
	key := keeper.DeriveGameKey(player, session.StartTime, secret)

	_, err = ms.LogScore(f.ctx, &types.MsgLogScore{
		Creator: playerStr,
		Score:   score,
		GameKey: key[:],
	})
	require.NoError(t, err)
	return player, playerStr
}
