package keeper

import "github.com/Aronyu127/BonkArena/x/arena/types"

// insertRanked places entry into the descending-sorted table and returns the
// updated table with the entry's 0-based rank, or -1 when the entry did not
// qualify. Placement is after every entry with an equal or higher score, so
// earlier submissions keep the better rank on ties. When the table is full the
// lowest entry is evicted only if the new score strictly beats it.
func insertRanked(players []types.PlayerEntry, entry types.PlayerEntry) ([]types.PlayerEntry, int) {
	if len(players) >= types.LeaderboardCapacity {
		lowest := players[len(players)-1]
		if entry.Score <= lowest.Score {
			return players, -1
		}
		players = players[:len(players)-1]
	}

	pos := len(players)
	for i, p := range players {
		if p.Score < entry.Score {
			pos = i
			break
		}
	}

	players = append(players, types.PlayerEntry{})
	copy(players[pos+1:], players[pos:])
	players[pos] = entry
	return players, pos
}
