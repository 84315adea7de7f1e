package keeper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	collcodec "cosmossdk.io/collections/codec"
	"cosmossdk.io/core/address"
	corestore "cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/Aronyu127/BonkArena/x/arena/types"
)

// Keeper defines the arena module keeper.
type Keeper struct {
	storeService corestore.KVStoreService
	cdc          codec.Codec
	addressCodec address.Codec
	// Address capable of executing a MsgUpdateParams message.
	// Typically, this should be the x/gov module account.
	authority []byte

	// Bank keeper is the fund ledger custodying entry fees and prizes.
	bankKeeper types.BankKeeper
	// Auth keeper for module account resolution.
	authKeeper types.AuthKeeper

	Schema collections.Schema
	Params collections.Item[types.Params]
	// Leaderboard holds the singleton arena record. Stored as JSON because the
	// record is a hand-written struct, not a protobuf message; same encoding
	// the store uses for sessions.
	Leaderboard collections.Item[types.Leaderboard]
	// SecretKey is kept out of the Leaderboard record so that no read path
	// ever serializes it.
	SecretKey collections.Item[[]byte]
	// Sessions maps a player's address to their current game session.
	Sessions collections.Map[string, types.GameSession]
}

// jsonValue is a collections value codec for hand-written state structs,
// mirroring the JSON storage encoding used for module params.
type jsonValue[T any] struct {
	name string
}

var (
	_ collcodec.ValueCodec[types.Leaderboard] = jsonValue[types.Leaderboard]{}
	_ collcodec.ValueCodec[types.GameSession] = jsonValue[types.GameSession]{}
)

func (jsonValue[T]) Encode(value T) ([]byte, error) { return json.Marshal(value) }
func (jsonValue[T]) Decode(bz []byte) (T, error) {
	var v T
	return v, json.Unmarshal(bz, &v)
}
func (c jsonValue[T]) EncodeJSON(value T) ([]byte, error) { return c.Encode(value) }
func (c jsonValue[T]) DecodeJSON(bz []byte) (T, error)    { return c.Decode(bz) }
func (jsonValue[T]) Stringify(value T) string             { return fmt.Sprintf("%+v", value) }
func (c jsonValue[T]) ValueType() string                  { return c.name }

// NewKeeper creates a new arena module Keeper instance
func NewKeeper(
	storeService corestore.KVStoreService,
	cdc codec.Codec,
	addressCodec address.Codec,
	authority []byte,
	bankKeeper types.BankKeeper,
	authKeeper types.AuthKeeper,
) Keeper {
	if _, err := addressCodec.BytesToString(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address %x: %s", authority, err))
	}

	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		storeService: storeService,
		cdc:          cdc,
		addressCodec: addressCodec,
		authority:    authority,
		bankKeeper:   bankKeeper,
		authKeeper:   authKeeper,

		Params:      collections.NewItem(sb, types.ParamsKey, "params", jsonValue[types.Params]{name: "arena/Params"}),
		Leaderboard: collections.NewItem(sb, types.LeaderboardKey, "leaderboard", jsonValue[types.Leaderboard]{name: "arena/Leaderboard"}),
		SecretKey:   collections.NewItem(sb, types.SecretKeyKey, "secret_key", collections.BytesValue),
		Sessions:    collections.NewMap(sb, types.SessionsKeyPrefix, "sessions", collections.StringKey, jsonValue[types.GameSession]{name: "arena/GameSession"}),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() []byte {
	return k.authority
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

// GetLeaderboard returns the singleton leaderboard record.
func (k Keeper) GetLeaderboard(ctx context.Context) (types.Leaderboard, error) {
	lb, err := k.Leaderboard.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.Leaderboard{}, types.ErrNotInitialized
		}
		return types.Leaderboard{}, err
	}
	return lb, nil
}

// SetLeaderboard stores the leaderboard record.
func (k Keeper) SetLeaderboard(ctx context.Context, lb types.Leaderboard) error {
	return k.Leaderboard.Set(ctx, lb)
}

// GetSecretKey returns the current derivation secret. An unset secret reads
// as all zeroes, matching a freshly allocated record.
func (k Keeper) GetSecretKey(ctx context.Context) ([types.SecretKeySize]byte, error) {
	var secret [types.SecretKeySize]byte
	bz, err := k.SecretKey.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return secret, nil
		}
		return secret, err
	}
	copy(secret[:], bz)
	return secret, nil
}

// GetSession returns the game session for a player.
func (k Keeper) GetSession(ctx context.Context, player string) (types.GameSession, bool, error) {
	session, err := k.Sessions.Get(ctx, player)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.GameSession{}, false, nil
		}
		return types.GameSession{}, false, err
	}
	return session, true, nil
}

// SetSession stores a game session keyed by its player.
func (k Keeper) SetSession(ctx context.Context, session types.GameSession) error {
	return k.Sessions.Set(ctx, session.Player, session)
}

// ModuleAddress returns the custody pool address, via the auth keeper when
// wired, deterministically otherwise.
func (k Keeper) ModuleAddress() sdk.AccAddress {
	if k.authKeeper != nil {
		if addr := k.authKeeper.GetModuleAddress(types.ModuleName); addr != nil {
			return addr
		}
	}
	return authtypes.NewModuleAddress(types.ModuleName)
}

// getParams returns current params or defaults when unset.
func (k Keeper) getParams(ctx context.Context) (types.Params, error) {
	params, err := k.Params.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.DefaultParams(), nil
		}
		return types.Params{}, err
	}
	return params, nil
}
