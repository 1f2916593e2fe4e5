package models

import "time"

// Role is the closed set of account roles known to the system.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

// ParseRole maps a raw string to a Role, defaulting to buyer for empty input.
func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return Role(raw), true
	case "":
		return RoleBuyer, true
	default:
		return "", false
	}
}

// CanSell reports whether the role is allowed to publish vehicle listings.
func (r Role) CanSell() bool {
	return r == RoleSeller || r == RoleAdmin
}

// VehicleStatus is the auction lifecycle state of a vehicle listing.
type VehicleStatus string

const (
	VehicleActive VehicleStatus = "active"
	VehicleClosed VehicleStatus = "closed"
)

// User represents a registered participant in the auction
type User struct {
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Vehicle represents an auctioned vehicle listing
type Vehicle struct {
	VehicleID      string        `json:"vehicle_id"`
	SellerID       string        `json:"seller_id"`
	Make           string        `json:"make"`
	Model          string        `json:"model"`
	Year           int           `json:"year"`
	BasePrice      int64         `json:"base_price"`
	MinIncrement   int64         `json:"min_increment"`
	LotCode        string        `json:"lot_code"`
	Images         []string      `json:"images"`
	Description    string        `json:"description"`
	Status         VehicleStatus `json:"status"`
	AuctionStartAt time.Time     `json:"auction_start_at"`
	AuctionEndAt   time.Time     `json:"auction_end_at"`
	WinnerBidID    *string       `json:"winner_bid_id,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
}

// Bid represents a user's bid on a vehicle. Bids are immutable once recorded.
type Bid struct {
	BidID     string    `json:"bid_id"`
	VehicleID string    `json:"vehicle_id"`
	BidderID  string    `json:"bidder_id"`
	Amount    int64     `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationType is the closed set of persisted notification kinds.
type NotificationType string

const (
	NotificationAuctionWon NotificationType = "auction_won"
	NotificationOutbid     NotificationType = "outbid"
	NotificationReminder   NotificationType = "reminder"
)

// Notification is a durable per-user message, created when an auction closes.
type Notification struct {
	NotificationID string           `json:"notification_id"`
	UserID         string           `json:"user_id"`
	Type           NotificationType `json:"type"`
	Payload        map[string]any   `json:"payload"`
	ReadAt         *time.Time       `json:"read_at,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
}

// ClosureOutcome is the result of transitioning one vehicle to closed.
// Winner fields are nil when the auction received no bids.
type ClosureOutcome struct {
	VehicleID    string  `json:"vehicle_id"`
	WinnerBidID  *string `json:"winner_bid_id"`
	WinnerUserID *string `json:"winner_user_id"`
	Amount       *int64  `json:"amount"`
}

// VehicleFilter narrows vehicle listings by status and free-text search
// over make, model and lot code. Status "all" disables the status filter.
type VehicleFilter struct {
	Status string
	Query  string
}

// BidHistoryEntry is one row of a user's bidding history, joined with the
// vehicle it targeted and the top amount recorded for that vehicle.
type BidHistoryEntry struct {
	BidID         string        `json:"bid_id"`
	VehicleID     string        `json:"vehicle_id"`
	Make          string        `json:"make"`
	Model         string        `json:"model"`
	Amount        int64         `json:"amount"`
	TopAmount     int64         `json:"top_amount"`
	Won           bool          `json:"won"`
	VehicleStatus VehicleStatus `json:"vehicle_status"`
	BidAt         time.Time     `json:"bid_at"`
}

// AgendaEntry is an upcoming active auction the user sells or bids in.
type AgendaEntry struct {
	VehicleID    string    `json:"vehicle_id"`
	Make         string    `json:"make"`
	Model        string    `json:"model"`
	LotCode      string    `json:"lot_code"`
	MinIncrement int64     `json:"min_increment"`
	AuctionEndAt time.Time `json:"auction_end_at"`
}
