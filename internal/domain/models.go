package domain

import "time"

type User struct {
	ID             int        `db:"id"`
	Login          string     `db:"login"`
	PasswordHash   string     `db:"password_hash"`
	Balance        int64      `db:"balance"`
	Wins           int        `db:"wins"`
	ClashesTotal   int        `db:"clashes_total"`
	RaidsAttempted int        `db:"raids_attempted"`
	RaidsDefended  int        `db:"raids_defended"`
	RaidsSuffered  int        `db:"raids_suffered"`
	LastSeenAt     *time.Time `db:"last_seen_at"`
	CreatedAt      time.Time  `db:"created_at"`
}

// Friendship is one directed row of a logical friendship; the reverse row must
// carry identical heat fields.
type Friendship struct {
	ID            int        `db:"id"`
	UserID        int        `db:"user_id"`
	FriendID      int        `db:"friend_id"`
	Status        string     `db:"status"`
	HeatLevel     int        `db:"heat_level"`
	HeatConfirmed bool       `db:"heat_confirmed"`
	HeatChangedAt time.Time  `db:"heat_changed_at"`
	ProposedLevel *int       `db:"proposed_level"`
	ProposedBy    *int       `db:"proposed_by"`
	ProposedAt    *time.Time `db:"proposed_at"`
}

const (
	FriendshipPending  = "pending"
	FriendshipAccepted = "accepted"
	FriendshipBlocked  = "blocked"
)

type Wager struct {
	ID              int       `db:"id"`
	Text            string    `db:"text"`
	BaseStake       int64     `db:"base_stake"`
	HeatRequirement int       `db:"heat_requirement"`
	TargetAll       bool      `db:"target_all"`
	Status          string    `db:"status"`
	ExpiresAt       time.Time `db:"expires_at"`
	CreatedAt       time.Time `db:"created_at"`
}

const (
	WagerOpen    = "open"
	WagerMatched = "matched"
	WagerExpired = "expired"
)

const (
	VoteYes = "yes"
	VoteNo  = "no"
)

type WagerParticipant struct {
	ID          int        `db:"id"`
	WagerID     int        `db:"wager_id"`
	UserID      int        `db:"user_id"`
	Vote        *string    `db:"vote"`
	StakeAmount int64      `db:"stake_amount"`
	StakeLocked bool       `db:"stake_locked"`
	VotedAt     *time.Time `db:"voted_at"`
}

type Clash struct {
	ID            int       `db:"id"`
	WagerID       int       `db:"wager_id"`
	YesUserID     int       `db:"yes_user_id"`
	NoUserID      int       `db:"no_user_id"`
	YesStake      int64     `db:"yes_stake"`
	NoStake       int64     `db:"no_stake"`
	TotalPot      int64     `db:"total_pot"`
	ProverID      int       `db:"prover_id"`
	ProofDeadline time.Time `db:"proof_deadline"`
	Status        string    `db:"status"`
	ProofRef      *string   `db:"proof_ref"`
	WinnerID      *int      `db:"winner_id"`
	DisputeReason *string   `db:"dispute_reason"`
	CreatedAt     time.Time `db:"created_at"`
}

const (
	ClashPendingProof   = "pending_proof"
	ClashProofSubmitted = "proof_submitted"
	ClashCompleted      = "completed"
	ClashDisputed       = "disputed"
)

type RaidAttempt struct {
	ID               int        `db:"id"`
	ThiefID          int        `db:"thief_id"`
	TargetID         int        `db:"target_id"`
	StealPercentage  float64    `db:"steal_percentage"`
	PotentialAmount  int64      `db:"potential_amount"`
	TargetWasOnline  bool       `db:"target_was_online"`
	DefenseWindowEnd *time.Time `db:"defense_window_end"`
	WasDefended      bool       `db:"was_defended"`
	Status           string     `db:"status"`
	StartedAt        time.Time  `db:"started_at"`
	CompletedAt      *time.Time `db:"completed_at"`
}

const (
	RaidInProgress = "in_progress"
	RaidDefended   = "defended"
	RaidSuccess    = "success"
	RaidTimedOut   = "timed_out"
)

// Stats is a delta applied to a user's cumulative counters.
type Stats struct {
	Wins           int
	ClashesTotal   int
	RaidsAttempted int
	RaidsDefended  int
	RaidsSuffered  int
}

// Transaction is an append-only ledger entry; balance history replays from it.
type Transaction struct {
	ID               int       `db:"id"`
	UserID           int       `db:"user_id"`
	Amount           int64     `db:"amount"`
	ResultingBalance int64     `db:"resulting_balance"`
	Type             string    `db:"type"`
	RefType          string    `db:"ref_type"`
	RefID            int64     `db:"ref_id"`
	CreatedAt        time.Time `db:"created_at"`
}

const (
	TxStakeLock   = "stake_lock"
	TxStakeReturn = "stake_return"
	TxPotPayout   = "pot_payout"
	TxRaidLoot    = "raid_loot"
	TxRaidLoss    = "raid_loss"
	TxRaidPenalty = "raid_penalty"
	TxSeed        = "seed"
)

const (
	RefWager  = "wager"
	RefClash  = "clash"
	RefRaid   = "raid"
	RefSystem = "system"
)

// Ref ties a ledger entry to its originating record.
type Ref struct {
	Type string
	ID   int64
}
