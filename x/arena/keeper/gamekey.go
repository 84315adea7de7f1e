package keeper

import (
	"bytes"
	"context"
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/Aronyu127/BonkArena/x/arena/types"
)

// DeriveGameKey computes the session proof key:
//
//	keccak256(player_address_bytes || start_time_le8 || secret)
//
// The key is never stored; verification re-derives it from persisted state.
func DeriveGameKey(player []byte, startTime int64, secret [types.SecretKeySize]byte) [types.GameKeySize]byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(player)

	var ts [8]byte
	binary.LittleEndian.PutUint64(ts[:], uint64(startTime))
	h.Write(ts[:])

	h.Write(secret[:])

	var key [types.GameKeySize]byte
	copy(key[:], h.Sum(nil))
	return key
}

// verifyGameKey re-derives the expected key for a session and compares it
// against the submitted candidate.
func (k Keeper) verifyGameKey(ctx context.Context, player []byte, startTime int64, candidate []byte) (bool, error) {
	secret, err := k.GetSecretKey(ctx)
	if err != nil {
		return false, err
	}
	expected := DeriveGameKey(player, startTime, secret)
	return bytes.Equal(expected[:], candidate), nil
}
