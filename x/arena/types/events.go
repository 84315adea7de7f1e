package types

const (
	EventInitialized     = "arena.initialized"
	EventSecretRotated   = "arena.secret_rotated"
	EventTokenPoolSet    = "arena.token_pool_set"
	EventGameStarted     = "arena.game_started"
	EventScoreLogged     = "arena.score_logged"
	EventSessionClosed   = "arena.session_closed"
	EventRoundClosed     = "arena.round_closed"
	EventPrizeClaimed    = "arena.prize_claimed"
	EventPrizePoolFunded = "arena.prize_pool_funded"
)

const (
	AttrOwner          = "owner"
	AttrPlayer         = "player"
	AttrName           = "name"
	AttrScore          = "score"
	AttrRank           = "rank"
	AttrEntered        = "entered"
	AttrAmount         = "amount"
	AttrEntryFee       = "entry_fee"
	AttrDenom          = "denom"
	AttrPrizePool      = "prize_pool"
	AttrCommissionPool = "commission_pool"
	AttrStartTime      = "start_time"
)
