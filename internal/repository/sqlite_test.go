package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"carbid/internal/auctionerrors"
	model "carbid/internal/models"
	"carbid/utils"

	"github.com/stretchr/testify/require"
)

func openTestRepo(t *testing.T) *SQLiteRepo {
	t.Helper()

	repo, err := OpenSQLite(filepath.Join(t.TempDir(), "auction.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func seedUser(t *testing.T, repo *SQLiteRepo, role model.Role) model.User {
	t.Helper()

	u := model.User{
		UserID:       utils.GenerateID(),
		Name:         "user " + string(role),
		Email:        utils.GenerateID() + "@test.local",
		PasswordHash: "x",
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, repo.CreateUser(context.Background(), u))
	return u
}

func seedVehicle(t *testing.T, repo *SQLiteRepo, sellerID string, basePrice int64, endsAt time.Time) model.Vehicle {
	t.Helper()

	now := time.Now().UTC()
	v := model.Vehicle{
		VehicleID:      utils.GenerateID(),
		SellerID:       sellerID,
		Make:           "Ford",
		Model:          "Mustang",
		Year:           1967,
		BasePrice:      basePrice,
		MinIncrement:   1000,
		LotCode:        utils.GenerateID(),
		Images:         []string{},
		Status:         model.VehicleActive,
		AuctionStartAt: now,
		AuctionEndAt:   endsAt,
		CreatedAt:      now,
	}
	require.NoError(t, repo.CreateVehicle(context.Background(), v))
	return v
}

func seedBid(t *testing.T, repo *SQLiteRepo, vehicleID, bidderID string, amount int64, at time.Time) model.Bid {
	t.Helper()

	b := model.Bid{
		BidID:     utils.GenerateID(),
		VehicleID: vehicleID,
		BidderID:  bidderID,
		Amount:    amount,
		CreatedAt: at,
	}
	require.NoError(t, repo.InsertBid(context.Background(), b))
	return b
}

func TestSQLiteRepo_CreateUser_DuplicateEmail(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	u := seedUser(t, repo, model.RoleBuyer)

	dup := u
	dup.UserID = utils.GenerateID()
	err := repo.CreateUser(ctx, dup)
	require.ErrorIs(t, err, auctionerrors.ErrDuplicateEmail)

	got, err := repo.GetUserByEmail(ctx, u.Email)
	require.NoError(t, err)
	require.Equal(t, u.UserID, got.UserID)
	require.Equal(t, model.RoleBuyer, got.Role)
}

func TestSQLiteRepo_CreateVehicle_DuplicateLot(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	seller := seedUser(t, repo, model.RoleSeller)
	v := seedVehicle(t, repo, seller.UserID, 100_000, time.Now().UTC().Add(time.Hour))

	dup := v
	dup.VehicleID = utils.GenerateID()
	err := repo.CreateVehicle(ctx, dup)
	require.ErrorIs(t, err, auctionerrors.ErrDuplicateLot)
}

func TestSQLiteRepo_CurrentPrice(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	seller := seedUser(t, repo, model.RoleSeller)
	buyer := seedUser(t, repo, model.RoleBuyer)
	v := seedVehicle(t, repo, seller.UserID, 200_000, time.Now().UTC().Add(time.Hour))

	// No bids: floor is the base price.
	price, err := repo.CurrentPrice(ctx, v.VehicleID)
	require.NoError(t, err)
	require.Equal(t, int64(200_000), price)

	// A bid below the base price does not lower the floor.
	seedBid(t, repo, v.VehicleID, buyer.UserID, 150_000, time.Now().UTC())
	price, err = repo.CurrentPrice(ctx, v.VehicleID)
	require.NoError(t, err)
	require.Equal(t, int64(200_000), price)

	// A bid above the base price raises it.
	seedBid(t, repo, v.VehicleID, buyer.UserID, 201_000, time.Now().UTC())
	price, err = repo.CurrentPrice(ctx, v.VehicleID)
	require.NoError(t, err)
	require.Equal(t, int64(201_000), price)

	_, err = repo.CurrentPrice(ctx, "missing")
	require.ErrorIs(t, err, auctionerrors.ErrVehicleNotFound)
}

func TestSQLiteRepo_GetTopBid_TieBreak(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	seller := seedUser(t, repo, model.RoleSeller)
	first := seedUser(t, repo, model.RoleBuyer)
	second := seedUser(t, repo, model.RoleBuyer)
	v := seedVehicle(t, repo, seller.UserID, 1_000, time.Now().UTC().Add(time.Hour))

	now := time.Now().UTC()
	earlier := seedBid(t, repo, v.VehicleID, first.UserID, 5_000, now)
	seedBid(t, repo, v.VehicleID, second.UserID, 5_000, now.Add(time.Second))

	top, err := repo.GetTopBid(ctx, v.VehicleID)
	require.NoError(t, err)
	require.Equal(t, earlier.BidID, top.BidID, "equal amounts resolve to the earliest bid")

	_, err = repo.GetTopBid(ctx, utils.GenerateID())
	require.ErrorIs(t, err, auctionerrors.ErrNoBids)
}

func TestSQLiteRepo_InsertBid_RejectsClosedVehicle(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	seller := seedUser(t, repo, model.RoleSeller)
	buyer := seedUser(t, repo, model.RoleBuyer)
	v := seedVehicle(t, repo, seller.UserID, 1_000, time.Now().UTC().Add(time.Hour))

	_, err := repo.CloseAuction(ctx, v.VehicleID, time.Now().UTC())
	require.NoError(t, err)

	err = repo.InsertBid(ctx, model.Bid{
		BidID:     utils.GenerateID(),
		VehicleID: v.VehicleID,
		BidderID:  buyer.UserID,
		Amount:    5_000,
		CreatedAt: time.Now().UTC(),
	})
	require.ErrorIs(t, err, auctionerrors.ErrAuctionNotActive)
}

func TestSQLiteRepo_CloseAuction(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	seller := seedUser(t, repo, model.RoleSeller)
	loser := seedUser(t, repo, model.RoleBuyer)
	winner := seedUser(t, repo, model.RoleBuyer)
	v := seedVehicle(t, repo, seller.UserID, 1_000, time.Now().UTC().Add(time.Hour))

	now := time.Now().UTC()
	seedBid(t, repo, v.VehicleID, loser.UserID, 2_000, now)
	winning := seedBid(t, repo, v.VehicleID, winner.UserID, 3_000, now.Add(time.Second))

	outcome, err := repo.CloseAuction(ctx, v.VehicleID, now.Add(2*time.Second))
	require.NoError(t, err)
	require.Equal(t, v.VehicleID, outcome.VehicleID)
	require.NotNil(t, outcome.WinnerBidID)
	require.Equal(t, winning.BidID, *outcome.WinnerBidID)
	require.Equal(t, winner.UserID, *outcome.WinnerUserID)
	require.Equal(t, int64(3_000), *outcome.Amount)

	// Winner assignment is persisted on the vehicle.
	closed, err := repo.GetVehicle(ctx, v.VehicleID)
	require.NoError(t, err)
	require.Equal(t, model.VehicleClosed, closed.Status)
	require.NotNil(t, closed.WinnerBidID)
	require.Equal(t, winning.BidID, *closed.WinnerBidID)

	// The auction_won notification landed in the same transaction.
	notifications, err := repo.GetNotificationsByUser(ctx, winner.UserID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	require.Equal(t, model.NotificationAuctionWon, notifications[0].Type)
	require.Equal(t, v.VehicleID, notifications[0].Payload["vehicle_id"])

	// Repeated close fails loudly, never silently.
	_, err = repo.CloseAuction(ctx, v.VehicleID, now.Add(3*time.Second))
	require.ErrorIs(t, err, auctionerrors.ErrAlreadyClosed)
	notifications, err = repo.GetNotificationsByUser(ctx, winner.UserID)
	require.NoError(t, err)
	require.Len(t, notifications, 1, "repeated close must not duplicate notifications")
}

func TestSQLiteRepo_CloseAuction_NoBids(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	seller := seedUser(t, repo, model.RoleSeller)
	v := seedVehicle(t, repo, seller.UserID, 1_000, time.Now().UTC().Add(time.Hour))

	outcome, err := repo.CloseAuction(ctx, v.VehicleID, time.Now().UTC())
	require.NoError(t, err)
	require.Nil(t, outcome.WinnerBidID)
	require.Nil(t, outcome.WinnerUserID)
	require.Nil(t, outcome.Amount)

	closed, err := repo.GetVehicle(ctx, v.VehicleID)
	require.NoError(t, err)
	require.Equal(t, model.VehicleClosed, closed.Status)
	require.Nil(t, closed.WinnerBidID)
}

func TestSQLiteRepo_CloseExpiredAuctions(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	seller := seedUser(t, repo, model.RoleSeller)
	buyer := seedUser(t, repo, model.RoleBuyer)

	now := time.Now().UTC()
	expired := seedVehicle(t, repo, seller.UserID, 1_000, now.Add(-time.Minute))
	live := seedVehicle(t, repo, seller.UserID, 1_000, now.Add(time.Hour))
	seedBid(t, repo, expired.VehicleID, buyer.UserID, 2_000, now.Add(-2*time.Minute))

	outcomes, err := repo.CloseExpiredAuctions(ctx, now)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	require.Equal(t, expired.VehicleID, outcomes[0].VehicleID)
	require.Equal(t, buyer.UserID, *outcomes[0].WinnerUserID)

	stillLive, err := repo.GetVehicle(ctx, live.VehicleID)
	require.NoError(t, err)
	require.Equal(t, model.VehicleActive, stillLive.Status)

	// A second sweep over the same rows is a no-op.
	outcomes, err = repo.CloseExpiredAuctions(ctx, now.Add(time.Second))
	require.NoError(t, err)
	require.Empty(t, outcomes)
}

func TestSQLiteRepo_ListVehicles(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	seller := seedUser(t, repo, model.RoleSeller)
	now := time.Now().UTC()

	mustang := seedVehicle(t, repo, seller.UserID, 1_000, now.Add(time.Hour))
	civic := model.Vehicle{
		VehicleID:      utils.GenerateID(),
		SellerID:       seller.UserID,
		Make:           "Honda",
		Model:          "Civic",
		Year:           2004,
		BasePrice:      5_000,
		MinIncrement:   100,
		LotCode:        "C03",
		Images:         []string{},
		Status:         model.VehicleActive,
		AuctionStartAt: now,
		AuctionEndAt:   now.Add(time.Hour),
		CreatedAt:      now,
	}
	require.NoError(t, repo.CreateVehicle(ctx, civic))
	_, err := repo.CloseAuction(ctx, civic.VehicleID, now)
	require.NoError(t, err)

	tests := []struct {
		name    string
		filter  model.VehicleFilter
		wantIDs []string
	}{
		{
			name:    "active_only",
			filter:  model.VehicleFilter{Status: "active"},
			wantIDs: []string{mustang.VehicleID},
		},
		{
			name:    "closed_only",
			filter:  model.VehicleFilter{Status: "closed"},
			wantIDs: []string{civic.VehicleID},
		},
		{
			name:    "all_statuses",
			filter:  model.VehicleFilter{Status: "all"},
			wantIDs: []string{mustang.VehicleID, civic.VehicleID},
		},
		{
			name:    "text_search_matches_model",
			filter:  model.VehicleFilter{Status: "all", Query: "civ"},
			wantIDs: []string{civic.VehicleID},
		},
		{
			name:    "text_search_matches_lot_code",
			filter:  model.VehicleFilter{Status: "all", Query: "c03"},
			wantIDs: []string{civic.VehicleID},
		},
		{
			name:    "no_match",
			filter:  model.VehicleFilter{Status: "all", Query: "tesla"},
			wantIDs: []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := repo.ListVehicles(ctx, tc.filter)
			require.NoError(t, err)

			gotIDs := make([]string, 0, len(got))
			for _, v := range got {
				gotIDs = append(gotIDs, v.VehicleID)
			}
			require.ElementsMatch(t, tc.wantIDs, gotIDs)
		})
	}
}

func TestSQLiteRepo_GetBidHistoryByUser(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	seller := seedUser(t, repo, model.RoleSeller)
	buyer := seedUser(t, repo, model.RoleBuyer)
	rival := seedUser(t, repo, model.RoleBuyer)

	now := time.Now().UTC()
	won := seedVehicle(t, repo, seller.UserID, 1_000, now.Add(-time.Minute))
	lost := seedVehicle(t, repo, seller.UserID, 1_000, now.Add(time.Hour))

	winningBid := seedBid(t, repo, won.VehicleID, buyer.UserID, 3_000, now.Add(-2*time.Minute))
	seedBid(t, repo, lost.VehicleID, buyer.UserID, 2_000, now.Add(-time.Minute))
	seedBid(t, repo, lost.VehicleID, rival.UserID, 4_000, now)

	_, err := repo.CloseAuction(ctx, won.VehicleID, now)
	require.NoError(t, err)

	entries, err := repo.GetBidHistoryByUser(ctx, buyer.UserID)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byBid := map[string]model.BidHistoryEntry{}
	for _, e := range entries {
		byBid[e.BidID] = e
	}

	require.True(t, byBid[winningBid.BidID].Won)
	require.Equal(t, int64(3_000), byBid[winningBid.BidID].TopAmount)

	for _, e := range entries {
		if e.VehicleID == lost.VehicleID {
			require.False(t, e.Won)
			require.Equal(t, int64(4_000), e.TopAmount, "top amount reflects the rival's higher bid")
		}
	}
}

func TestSQLiteRepo_GetAgendaByUser(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	seller := seedUser(t, repo, model.RoleSeller)
	buyer := seedUser(t, repo, model.RoleBuyer)

	now := time.Now().UTC()
	seedVehicle(t, repo, seller.UserID, 1_000, now.Add(2*time.Hour))
	bidding := seedVehicle(t, repo, seller.UserID, 1_000, now.Add(time.Hour))
	seedVehicle(t, repo, seller.UserID, 1_000, now.Add(3*time.Hour)) // unrelated to buyer
	seedBid(t, repo, bidding.VehicleID, buyer.UserID, 2_000, now)

	// Seller sees every active listing they sell, soonest deadline first.
	entries, err := repo.GetAgendaByUser(ctx, seller.UserID, 20)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, bidding.VehicleID, entries[0].VehicleID)

	// Buyer only sees the auction they bid in.
	entries, err = repo.GetAgendaByUser(ctx, buyer.UserID, 20)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, bidding.VehicleID, entries[0].VehicleID)

	// Closed auctions drop off the agenda.
	_, err = repo.CloseAuction(ctx, bidding.VehicleID, now)
	require.NoError(t, err)
	entries, err = repo.GetAgendaByUser(ctx, buyer.UserID, 20)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestSQLiteRepo_Notifications(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	seller := seedUser(t, repo, model.RoleSeller)
	winner := seedUser(t, repo, model.RoleBuyer)

	now := time.Now().UTC()
	first := seedVehicle(t, repo, seller.UserID, 1_000, now.Add(-time.Minute))
	second := seedVehicle(t, repo, seller.UserID, 1_000, now.Add(-time.Minute))
	seedBid(t, repo, first.VehicleID, winner.UserID, 2_000, now.Add(-2*time.Minute))
	seedBid(t, repo, second.VehicleID, winner.UserID, 2_000, now.Add(-2*time.Minute))

	_, err := repo.CloseExpiredAuctions(ctx, now)
	require.NoError(t, err)

	items, err := repo.GetNotificationsByUser(ctx, winner.UserID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, n := range items {
		require.Nil(t, n.ReadAt)
	}

	updated, err := repo.MarkNotificationsRead(ctx, winner.UserID, now)
	require.NoError(t, err)
	require.Equal(t, int64(2), updated)

	// Marking again touches nothing.
	updated, err = repo.MarkNotificationsRead(ctx, winner.UserID, now)
	require.NoError(t, err)
	require.Zero(t, updated)

	items, err = repo.GetNotificationsByUser(ctx, winner.UserID)
	require.NoError(t, err)
	for _, n := range items {
		require.NotNil(t, n.ReadAt)
	}
}

func TestSQLiteRepo_GetVehicle_NotFound(t *testing.T) {
	repo := openTestRepo(t)

	_, err := repo.GetVehicle(context.Background(), "missing")
	require.True(t, errors.Is(err, auctionerrors.ErrVehicleNotFound))

	_, err = repo.GetBidsByVehicle(context.Background(), "missing")
	require.ErrorIs(t, err, auctionerrors.ErrVehicleNotFound)
}
