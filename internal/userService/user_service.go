package user

import (
	"context"
	"fmt"
	"time"

	"carbid/internal/auctionerrors"
	"carbid/internal/models"
	"carbid/internal/repository"
)

const agendaLimit = 20

// NotificationView is a notification decorated with display labels.
type NotificationView struct {
	models.Notification
	TypeLabel   string `json:"type_label"`
	Description string `json:"description"`
}

// AgendaView is an agenda entry with a human-readable countdown.
type AgendaView struct {
	models.AgendaEntry
	TimeLeftLabel string `json:"time_left_label"`
}

// UserService serves per-user reads: bid history, notifications and the
// agenda of upcoming auctions.
type UserService struct {
	repo repository.AuctionDB
}

// NewUserService creates a new UserService instance
func NewUserService(repo repository.AuctionDB) *UserService {
	return &UserService{repo: repo}
}

// History returns the user's bids, newest first, each with the vehicle it
// targeted, the top amount recorded and whether the bid won.
func (s *UserService) History(ctx context.Context, userID string) ([]models.BidHistoryEntry, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrInvalidInput)
	}

	entries, err := s.repo.GetBidHistoryByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bid history for user %s: %w", userID, err)
	}
	return entries, nil
}

// Notifications returns the user's notifications, unread first, decorated
// with display labels.
func (s *UserService) Notifications(ctx context.Context, userID string) ([]NotificationView, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrInvalidInput)
	}

	items, err := s.repo.GetNotificationsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get notifications for user %s: %w", userID, err)
	}

	views := make([]NotificationView, 0, len(items))
	for _, n := range items {
		views = append(views, NotificationView{
			Notification: n,
			TypeLabel:    typeLabel(n.Type),
			Description:  describe(n),
		})
	}
	return views, nil
}

func typeLabel(t models.NotificationType) string {
	switch t {
	case models.NotificationAuctionWon:
		return "You won an auction"
	case models.NotificationOutbid:
		return "Your bid was outbid"
	case models.NotificationReminder:
		return "Reminder"
	default:
		return string(t)
	}
}

func describe(n models.Notification) string {
	switch n.Type {
	case models.NotificationAuctionWon:
		if amount, ok := n.Payload["amount"]; ok {
			return fmt.Sprintf("You won the auction for $%v", amount)
		}
		return "You won an auction."
	case models.NotificationOutbid:
		return "Another bidder has outbid you."
	case models.NotificationReminder:
		if msg, ok := n.Payload["message"].(string); ok {
			return msg
		}
		return "Auction reminder"
	default:
		return string(n.Type)
	}
}

// MarkAllRead marks every unread notification of the user as read and
// returns the number of updated rows.
func (s *UserService) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	if userID == "" {
		return 0, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrInvalidInput)
	}

	updated, err := s.repo.MarkNotificationsRead(ctx, userID, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("service: failed to mark notifications read for user %s: %w", userID, err)
	}
	return updated, nil
}

// Agenda returns active auctions the user sells or bids in, soonest first.
func (s *UserService) Agenda(ctx context.Context, userID string) ([]AgendaView, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrInvalidInput)
	}

	entries, err := s.repo.GetAgendaByUser(ctx, userID, agendaLimit)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get agenda for user %s: %w", userID, err)
	}

	now := time.Now().UTC()
	views := make([]AgendaView, 0, len(entries))
	for _, e := range entries {
		views = append(views, AgendaView{
			AgendaEntry:   e,
			TimeLeftLabel: timeLeftLabel(e.AuctionEndAt.Sub(now)),
		})
	}
	return views, nil
}

func timeLeftLabel(left time.Duration) string {
	if left <= 0 {
		return "closing soon"
	}
	days := int(left.Hours()) / 24
	hours := int(left.Hours()) % 24
	minutes := int(left.Minutes()) % 60
	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}
