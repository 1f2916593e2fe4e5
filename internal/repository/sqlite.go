package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"carbid/internal/auctionerrors"
	model "carbid/internal/models"
	"carbid/utils"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	role          TEXT NOT NULL DEFAULT 'buyer',
	created_at    INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS vehicles (
	id               TEXT PRIMARY KEY,
	seller_id        TEXT NOT NULL REFERENCES users(id),
	make             TEXT NOT NULL,
	model            TEXT NOT NULL,
	year             INTEGER NOT NULL,
	base_price       INTEGER NOT NULL,
	min_increment    INTEGER NOT NULL,
	lot_code         TEXT NOT NULL UNIQUE,
	images           TEXT NOT NULL DEFAULT '[]',
	description      TEXT NOT NULL DEFAULT '',
	status           TEXT NOT NULL DEFAULT 'active',
	auction_start_at INTEGER NOT NULL,
	auction_end_at   INTEGER NOT NULL,
	winner_bid_id    TEXT,
	created_at       INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_vehicles_status_end ON vehicles(status, auction_end_at);

CREATE TABLE IF NOT EXISTS bids (
	id         TEXT PRIMARY KEY,
	vehicle_id TEXT NOT NULL REFERENCES vehicles(id),
	bidder_id  TEXT NOT NULL REFERENCES users(id),
	amount     INTEGER NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_bids_vehicle ON bids(vehicle_id);
CREATE INDEX IF NOT EXISTS idx_bids_bidder ON bids(bidder_id);

CREATE TABLE IF NOT EXISTS notifications (
	id         TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL REFERENCES users(id),
	type       TEXT NOT NULL,
	payload    TEXT NOT NULL DEFAULT '{}',
	read_at    INTEGER,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications(user_id);
`

// SQLiteRepo is a SQLite-backed implementation of AuctionDB.
type SQLiteRepo struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the auction database at path and applies the
// schema. Timestamps are stored as UTC unix nanoseconds so ordering and
// expiry comparisons are plain integer comparisons.
func OpenSQLite(path string) (*SQLiteRepo, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("repository: database path is required")
	}

	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("repository: open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("repository: ping sqlite db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("repository: apply schema: %w", err)
	}

	return &SQLiteRepo{db: db}, nil
}

// Close closes the underlying database handle.
func (r *SQLiteRepo) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func encodeTime(t time.Time) int64 { return t.UTC().UnixNano() }

func decodeTime(n int64) time.Time { return time.Unix(0, n).UTC() }

// isBusyErr reports whether the driver signaled transient lock contention.
func isBusyErr(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") ||
		strings.Contains(msg, "SQLITE_LOCKED") ||
		strings.Contains(msg, "database is locked")
}

func isUniqueErr(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// wrapStorageErr translates driver-level contention into the retryable
// sentinel; everything else passes through wrapped.
func wrapStorageErr(op string, err error) error {
	if isBusyErr(err) {
		return fmt.Errorf("%s: %w", op, auctionerrors.ErrStorageBusy)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// --- Users ---

func (r *SQLiteRepo) CreateUser(ctx context.Context, user model.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, name, email, password_hash, role, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		user.UserID, user.Name, user.Email, user.PasswordHash, string(user.Role), encodeTime(user.CreatedAt))
	if err != nil {
		if isUniqueErr(err) {
			return fmt.Errorf("create user %s: %w", user.Email, auctionerrors.ErrDuplicateEmail)
		}
		return wrapStorageErr("create user", err)
	}
	return nil
}

func (r *SQLiteRepo) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx,
		`SELECT id, name, email, password_hash, role, created_at FROM users WHERE email = ?`, email))
}

func (r *SQLiteRepo) GetUserByID(ctx context.Context, userID string) (model.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx,
		`SELECT id, name, email, password_hash, role, created_at FROM users WHERE id = ?`, userID))
}

func (r *SQLiteRepo) scanUser(row *sql.Row) (model.User, error) {
	var u model.User
	var role string
	var createdAt int64
	err := row.Scan(&u.UserID, &u.Name, &u.Email, &u.PasswordHash, &role, &createdAt)
	if err == sql.ErrNoRows {
		return model.User{}, fmt.Errorf("get user: %w", auctionerrors.ErrUserNotFound)
	}
	if err != nil {
		return model.User{}, wrapStorageErr("get user", err)
	}
	u.Role = model.Role(role)
	u.CreatedAt = decodeTime(createdAt)
	return u, nil
}

// --- Vehicles ---

func (r *SQLiteRepo) CreateVehicle(ctx context.Context, v model.Vehicle) error {
	images, err := json.Marshal(v.Images)
	if err != nil {
		return fmt.Errorf("create vehicle: encode images: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO vehicles (id, seller_id, make, model, year, base_price, min_increment, lot_code,
			images, description, status, auction_start_at, auction_end_at, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		v.VehicleID, v.SellerID, v.Make, v.Model, v.Year, v.BasePrice, v.MinIncrement, v.LotCode,
		string(images), v.Description, string(v.Status),
		encodeTime(v.AuctionStartAt), encodeTime(v.AuctionEndAt), encodeTime(v.CreatedAt))
	if err != nil {
		if isUniqueErr(err) {
			return fmt.Errorf("create vehicle lot %s: %w", v.LotCode, auctionerrors.ErrDuplicateLot)
		}
		return wrapStorageErr("create vehicle", err)
	}
	return nil
}

const vehicleColumns = `id, seller_id, make, model, year, base_price, min_increment, lot_code,
	images, description, status, auction_start_at, auction_end_at, winner_bid_id, created_at`

func (r *SQLiteRepo) GetVehicle(ctx context.Context, vehicleID string) (model.Vehicle, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+vehicleColumns+` FROM vehicles WHERE id = ?`, vehicleID)
	if err != nil {
		return model.Vehicle{}, wrapStorageErr("get vehicle", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return model.Vehicle{}, fmt.Errorf("get vehicle %s: %w", vehicleID, auctionerrors.ErrVehicleNotFound)
	}
	return scanVehicle(rows)
}

func (r *SQLiteRepo) ListVehicles(ctx context.Context, filter model.VehicleFilter) ([]model.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles`
	var conds []string
	var args []any

	if filter.Status != "" && filter.Status != "all" {
		conds = append(conds, "status = ?")
		args = append(args, filter.Status)
	}
	if filter.Query != "" {
		like := "%" + strings.ToLower(filter.Query) + "%"
		conds = append(conds, "(LOWER(make) LIKE ? OR LOWER(model) LIKE ? OR LOWER(lot_code) LIKE ?)")
		args = append(args, like, like, like)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapStorageErr("list vehicles", err)
	}
	defer rows.Close()

	vehicles := []model.Vehicle{}
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStorageErr("list vehicles", err)
	}
	return vehicles, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVehicle(row rowScanner) (model.Vehicle, error) {
	var v model.Vehicle
	var images, status string
	var startAt, endAt, createdAt int64
	var winnerBidID sql.NullString
	err := row.Scan(&v.VehicleID, &v.SellerID, &v.Make, &v.Model, &v.Year, &v.BasePrice,
		&v.MinIncrement, &v.LotCode, &images, &v.Description, &status, &startAt, &endAt,
		&winnerBidID, &createdAt)
	if err != nil {
		return model.Vehicle{}, wrapStorageErr("scan vehicle", err)
	}
	if err := json.Unmarshal([]byte(images), &v.Images); err != nil {
		return model.Vehicle{}, fmt.Errorf("scan vehicle: decode images: %w", err)
	}
	v.Status = model.VehicleStatus(status)
	v.AuctionStartAt = decodeTime(startAt)
	v.AuctionEndAt = decodeTime(endAt)
	v.CreatedAt = decodeTime(createdAt)
	if winnerBidID.Valid {
		v.WinnerBidID = &winnerBidID.String
	}
	return v, nil
}

// --- Bids ---

// InsertBid persists a bid inside a transaction that re-checks the vehicle
// is still active, so a bid never lands on a vehicle closed by a concurrent
// sweep.
func (r *SQLiteRepo) InsertBid(ctx context.Context, bid model.Bid) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return wrapStorageErr("insert bid: begin", err)
	}
	defer tx.Rollback()

	var status string
	err = tx.QueryRowContext(ctx, `SELECT status FROM vehicles WHERE id = ?`, bid.VehicleID).Scan(&status)
	if err == sql.ErrNoRows {
		return fmt.Errorf("insert bid for vehicle %s: %w", bid.VehicleID, auctionerrors.ErrVehicleNotFound)
	}
	if err != nil {
		return wrapStorageErr("insert bid: check vehicle", err)
	}
	if model.VehicleStatus(status) != model.VehicleActive {
		return fmt.Errorf("insert bid for vehicle %s: %w", bid.VehicleID, auctionerrors.ErrAuctionNotActive)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO bids (id, vehicle_id, bidder_id, amount, created_at) VALUES (?, ?, ?, ?, ?)`,
		bid.BidID, bid.VehicleID, bid.BidderID, bid.Amount, encodeTime(bid.CreatedAt))
	if err != nil {
		return wrapStorageErr("insert bid", err)
	}

	if err := tx.Commit(); err != nil {
		return wrapStorageErr("insert bid: commit", err)
	}
	return nil
}

// GetBidsByVehicle returns all bids for a vehicle ordered by amount
// descending, submission time ascending as tie-break.
func (r *SQLiteRepo) GetBidsByVehicle(ctx context.Context, vehicleID string) ([]model.Bid, error) {
	if _, err := r.GetVehicle(ctx, vehicleID); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, vehicle_id, bidder_id, amount, created_at FROM bids
		 WHERE vehicle_id = ? ORDER BY amount DESC, created_at ASC`, vehicleID)
	if err != nil {
		return nil, wrapStorageErr("get bids", err)
	}
	defer rows.Close()

	bids := []model.Bid{}
	for rows.Next() {
		b, err := scanBid(rows)
		if err != nil {
			return nil, err
		}
		bids = append(bids, b)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStorageErr("get bids", err)
	}
	return bids, nil
}

// GetTopBid returns the current highest bid for a vehicle, ties broken by
// earliest submission.
func (r *SQLiteRepo) GetTopBid(ctx context.Context, vehicleID string) (model.Bid, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, vehicle_id, bidder_id, amount, created_at FROM bids
		 WHERE vehicle_id = ? ORDER BY amount DESC, created_at ASC LIMIT 1`, vehicleID)
	b, err := scanBid(row)
	if err == sql.ErrNoRows {
		return model.Bid{}, fmt.Errorf("get top bid for vehicle %s: %w", vehicleID, auctionerrors.ErrNoBids)
	}
	return b, err
}

func scanBid(row rowScanner) (model.Bid, error) {
	var b model.Bid
	var createdAt int64
	err := row.Scan(&b.BidID, &b.VehicleID, &b.BidderID, &b.Amount, &createdAt)
	if err == sql.ErrNoRows {
		return model.Bid{}, sql.ErrNoRows
	}
	if err != nil {
		return model.Bid{}, wrapStorageErr("scan bid", err)
	}
	b.CreatedAt = decodeTime(createdAt)
	return b, nil
}

// CurrentPrice returns max(base_price, highest bid amount) from a single
// query, so the result is a consistent snapshot.
func (r *SQLiteRepo) CurrentPrice(ctx context.Context, vehicleID string) (int64, error) {
	var basePrice, topBid int64
	err := r.db.QueryRowContext(ctx,
		`SELECT v.base_price, COALESCE(MAX(b.amount), 0)
		 FROM vehicles v LEFT JOIN bids b ON b.vehicle_id = v.id
		 WHERE v.id = ? GROUP BY v.id`, vehicleID).Scan(&basePrice, &topBid)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("current price for vehicle %s: %w", vehicleID, auctionerrors.ErrVehicleNotFound)
	}
	if err != nil {
		return 0, wrapStorageErr("current price", err)
	}
	if topBid > basePrice {
		return topBid, nil
	}
	return basePrice, nil
}

// --- Closing ---

// CloseAuction transitions a single vehicle to closed. Calling it on an
// already-closed vehicle fails with ErrAlreadyClosed; a silent second
// success would double-notify the winner.
func (r *SQLiteRepo) CloseAuction(ctx context.Context, vehicleID string, now time.Time) (model.ClosureOutcome, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return model.ClosureOutcome{}, wrapStorageErr("close auction: begin", err)
	}
	defer tx.Rollback()

	outcome, err := closeVehicleTx(ctx, tx, vehicleID, now)
	if err != nil {
		return model.ClosureOutcome{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.ClosureOutcome{}, wrapStorageErr("close auction: commit", err)
	}
	return outcome, nil
}

// CloseExpiredAuctions closes every active vehicle whose deadline has
// passed, all inside one transaction: either the whole sweep commits or
// none of it does and the next sweep retries the same rows.
func (r *SQLiteRepo) CloseExpiredAuctions(ctx context.Context, now time.Time) ([]model.ClosureOutcome, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, wrapStorageErr("close expired: begin", err)
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx,
		`SELECT id FROM vehicles WHERE status = ? AND auction_end_at <= ? ORDER BY auction_end_at ASC`,
		string(model.VehicleActive), encodeTime(now))
	if err != nil {
		return nil, wrapStorageErr("close expired: select", err)
	}

	var expired []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, wrapStorageErr("close expired: scan", err)
		}
		expired = append(expired, id)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, wrapStorageErr("close expired: select", err)
	}
	rows.Close()

	outcomes := make([]model.ClosureOutcome, 0, len(expired))
	for _, id := range expired {
		outcome, err := closeVehicleTx(ctx, tx, id, now)
		if err != nil {
			return nil, err
		}
		outcomes = append(outcomes, outcome)
	}

	if err := tx.Commit(); err != nil {
		return nil, wrapStorageErr("close expired: commit", err)
	}
	return outcomes, nil
}

// closeVehicleTx is the shared close path for the seller-initiated close and
// the background sweep: determine winner, assign, write the winner's
// notification, all within the caller's transaction.
func closeVehicleTx(ctx context.Context, tx *sql.Tx, vehicleID string, now time.Time) (model.ClosureOutcome, error) {
	var status string
	err := tx.QueryRowContext(ctx, `SELECT status FROM vehicles WHERE id = ?`, vehicleID).Scan(&status)
	if err == sql.ErrNoRows {
		return model.ClosureOutcome{}, fmt.Errorf("close vehicle %s: %w", vehicleID, auctionerrors.ErrVehicleNotFound)
	}
	if err != nil {
		return model.ClosureOutcome{}, wrapStorageErr("close vehicle: check status", err)
	}
	if model.VehicleStatus(status) == model.VehicleClosed {
		return model.ClosureOutcome{}, fmt.Errorf("close vehicle %s: %w", vehicleID, auctionerrors.ErrAlreadyClosed)
	}

	outcome := model.ClosureOutcome{VehicleID: vehicleID}

	var winnerBidID, winnerUserID string
	var winningAmount int64
	err = tx.QueryRowContext(ctx,
		`SELECT id, bidder_id, amount FROM bids
		 WHERE vehicle_id = ? ORDER BY amount DESC, created_at ASC LIMIT 1`,
		vehicleID).Scan(&winnerBidID, &winnerUserID, &winningAmount)
	hasWinner := err == nil
	if err != nil && err != sql.ErrNoRows {
		return model.ClosureOutcome{}, wrapStorageErr("close vehicle: winner", err)
	}

	if hasWinner {
		outcome.WinnerBidID = &winnerBidID
		outcome.WinnerUserID = &winnerUserID
		outcome.Amount = &winningAmount

		_, err = tx.ExecContext(ctx,
			`UPDATE vehicles SET status = ?, winner_bid_id = ? WHERE id = ?`,
			string(model.VehicleClosed), winnerBidID, vehicleID)
	} else {
		_, err = tx.ExecContext(ctx,
			`UPDATE vehicles SET status = ? WHERE id = ?`, string(model.VehicleClosed), vehicleID)
	}
	if err != nil {
		return model.ClosureOutcome{}, wrapStorageErr("close vehicle: update", err)
	}

	if hasWinner {
		payload, err := json.Marshal(map[string]any{"vehicle_id": vehicleID, "amount": winningAmount})
		if err != nil {
			return model.ClosureOutcome{}, fmt.Errorf("close vehicle: encode payload: %w", err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO notifications (id, user_id, type, payload, created_at) VALUES (?, ?, ?, ?, ?)`,
			utils.GenerateID(), winnerUserID, string(model.NotificationAuctionWon), string(payload), encodeTime(now))
		if err != nil {
			return model.ClosureOutcome{}, wrapStorageErr("close vehicle: notification", err)
		}
	}

	return outcome, nil
}

// --- Per-user reads ---

func (r *SQLiteRepo) GetBidHistoryByUser(ctx context.Context, userID string) ([]model.BidHistoryEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT b.id, v.id, v.make, v.model, b.amount, b.created_at, v.status, v.winner_bid_id,
			(SELECT COALESCE(MAX(b2.amount), 0) FROM bids b2 WHERE b2.vehicle_id = v.id)
		 FROM bids b JOIN vehicles v ON v.id = b.vehicle_id
		 WHERE b.bidder_id = ? ORDER BY b.created_at DESC`, userID)
	if err != nil {
		return nil, wrapStorageErr("bid history", err)
	}
	defer rows.Close()

	entries := []model.BidHistoryEntry{}
	for rows.Next() {
		var e model.BidHistoryEntry
		var bidAt int64
		var status string
		var winnerBidID sql.NullString
		if err := rows.Scan(&e.BidID, &e.VehicleID, &e.Make, &e.Model, &e.Amount, &bidAt,
			&status, &winnerBidID, &e.TopAmount); err != nil {
			return nil, wrapStorageErr("bid history: scan", err)
		}
		e.BidAt = decodeTime(bidAt)
		e.VehicleStatus = model.VehicleStatus(status)
		e.Won = e.VehicleStatus == model.VehicleClosed && winnerBidID.Valid && winnerBidID.String == e.BidID
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStorageErr("bid history", err)
	}
	return entries, nil
}

func (r *SQLiteRepo) GetAgendaByUser(ctx context.Context, userID string, limit int) ([]model.AgendaEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, make, model, lot_code, min_increment, auction_end_at FROM vehicles
		 WHERE status = ? AND (seller_id = ? OR id IN (SELECT vehicle_id FROM bids WHERE bidder_id = ?))
		 ORDER BY auction_end_at ASC LIMIT ?`,
		string(model.VehicleActive), userID, userID, limit)
	if err != nil {
		return nil, wrapStorageErr("agenda", err)
	}
	defer rows.Close()

	entries := []model.AgendaEntry{}
	for rows.Next() {
		var e model.AgendaEntry
		var endsAt int64
		if err := rows.Scan(&e.VehicleID, &e.Make, &e.Model, &e.LotCode, &e.MinIncrement, &endsAt); err != nil {
			return nil, wrapStorageErr("agenda: scan", err)
		}
		e.AuctionEndAt = decodeTime(endsAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStorageErr("agenda", err)
	}
	return entries, nil
}

// --- Notifications ---

// GetNotificationsByUser returns notifications with unread ones first,
// newest first within each group.
func (r *SQLiteRepo) GetNotificationsByUser(ctx context.Context, userID string) ([]model.Notification, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, type, payload, read_at, created_at FROM notifications
		 WHERE user_id = ? ORDER BY (read_at IS NULL) DESC, created_at DESC`, userID)
	if err != nil {
		return nil, wrapStorageErr("notifications", err)
	}
	defer rows.Close()

	items := []model.Notification{}
	for rows.Next() {
		var n model.Notification
		var typ, payload string
		var readAt sql.NullInt64
		var createdAt int64
		if err := rows.Scan(&n.NotificationID, &n.UserID, &typ, &payload, &readAt, &createdAt); err != nil {
			return nil, wrapStorageErr("notifications: scan", err)
		}
		n.Type = model.NotificationType(typ)
		if err := json.Unmarshal([]byte(payload), &n.Payload); err != nil {
			return nil, fmt.Errorf("notifications: decode payload: %w", err)
		}
		if readAt.Valid {
			t := decodeTime(readAt.Int64)
			n.ReadAt = &t
		}
		n.CreatedAt = decodeTime(createdAt)
		items = append(items, n)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStorageErr("notifications", err)
	}
	return items, nil
}

func (r *SQLiteRepo) MarkNotificationsRead(ctx context.Context, userID string, readAt time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET read_at = ? WHERE user_id = ? AND read_at IS NULL`,
		encodeTime(readAt), userID)
	if err != nil {
		return 0, wrapStorageErr("mark notifications read", err)
	}
	updated, err := res.RowsAffected()
	if err != nil {
		return 0, wrapStorageErr("mark notifications read", err)
	}
	return updated, nil
}
