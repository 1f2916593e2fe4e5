package vehicle

import (
	"context"
	"sync"
	"testing"
	"time"

	"carbid/internal/auctionerrors"
	"carbid/internal/fanout"
	model "carbid/internal/models"
	"carbid/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

type publishedEvent struct {
	channel string
	event   string
	payload any
}

func (p *recordingPublisher) Publish(channel, event string, payload any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{channel: channel, event: event, payload: payload})
}

func (p *recordingPublisher) all() []publishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]publishedEvent(nil), p.events...)
}

func validInput() CreateInput {
	return CreateInput{
		Make:      "Ford",
		Model:     "Mustang",
		Year:      1967,
		BasePrice: 200_000,
		LotCode:   "F54",
	}
}

// Tests Create
func TestVehicleService_Create(t *testing.T) {
	tests := []struct {
		name          string
		role          model.Role
		mutate        func(in *CreateInput)
		mockSetup     func(mockRepo *repository.MockAuctionDB)
		expectedError error
	}{
		{
			name:   "seller_creates_listing",
			role:   model.RoleSeller,
			mutate: func(in *CreateInput) {},
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				mockRepo.EXPECT().CreateVehicle(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:   "admin_creates_listing",
			role:   model.RoleAdmin,
			mutate: func(in *CreateInput) {},
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				mockRepo.EXPECT().CreateVehicle(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:          "buyer_forbidden",
			role:          model.RoleBuyer,
			mutate:        func(in *CreateInput) {},
			mockSetup:     func(mockRepo *repository.MockAuctionDB) {},
			expectedError: auctionerrors.ErrForbidden,
		},
		{
			name:          "missing_make",
			role:          model.RoleSeller,
			mutate:        func(in *CreateInput) { in.Make = "" },
			mockSetup:     func(mockRepo *repository.MockAuctionDB) {},
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "year_before_first_automobile",
			role:          model.RoleSeller,
			mutate:        func(in *CreateInput) { in.Year = 1850 },
			mockSetup:     func(mockRepo *repository.MockAuctionDB) {},
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "non_positive_base_price",
			role:          model.RoleSeller,
			mutate:        func(in *CreateInput) { in.BasePrice = 0 },
			mockSetup:     func(mockRepo *repository.MockAuctionDB) {},
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:   "duplicate_lot_code",
			role:   model.RoleSeller,
			mutate: func(in *CreateInput) {},
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				mockRepo.EXPECT().CreateVehicle(gomock.Any(), gomock.Any()).Return(auctionerrors.ErrDuplicateLot)
			},
			expectedError: auctionerrors.ErrDuplicateLot,
		},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := repository.NewMockAuctionDB(ctrl)
			service := NewVehicleService(mockRepo, &recordingPublisher{}, Defaults{MinIncrement: 100, AuctionWindow: 7 * 24 * time.Hour})

			in := validInput()
			tc.mutate(&in)
			tc.mockSetup(mockRepo)

			created, err := service.Create(context.Background(), "seller1", tc.role, in)

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)
			require.NotEmpty(t, created.VehicleID)
			_, parseErr := uuid.Parse(created.VehicleID)
			require.NoError(t, parseErr)

			require.Equal(t, "seller1", created.SellerID)
			require.Equal(t, model.VehicleActive, created.Status)
			require.Equal(t, created.BasePrice, created.CurrentPrice, "a fresh listing's price is its base price")
			require.Equal(t, int64(100), created.MinIncrement, "omitted increment falls back to the default")
			require.NotNil(t, created.Images)
			require.Equal(t, created.AuctionStartAt.Add(7*24*time.Hour), created.AuctionEndAt)
		})
	}
}

func TestVehicleService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockAuctionDB(ctrl)
	service := NewVehicleService(mockRepo, &recordingPublisher{}, Defaults{})

	vehicles := []model.Vehicle{
		{VehicleID: "vehicle1", BasePrice: 200_000},
		{VehicleID: "vehicle2", BasePrice: 5_000},
	}
	filter := model.VehicleFilter{Status: "active"}

	mockRepo.EXPECT().ListVehicles(gomock.Any(), filter).Return(vehicles, nil)
	mockRepo.EXPECT().CurrentPrice(gomock.Any(), "vehicle1").Return(int64(201_000), nil)
	mockRepo.EXPECT().CurrentPrice(gomock.Any(), "vehicle2").Return(int64(5_000), nil)

	priced, err := service.List(context.Background(), filter)
	require.NoError(t, err)
	require.Len(t, priced, 2)
	require.Equal(t, int64(201_000), priced[0].CurrentPrice)
	require.Equal(t, int64(5_000), priced[1].CurrentPrice)
}

func TestVehicleService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockAuctionDB(ctrl)
	service := NewVehicleService(mockRepo, &recordingPublisher{}, Defaults{})

	mockRepo.EXPECT().GetVehicle(gomock.Any(), "vehicle1").Return(model.Vehicle{VehicleID: "vehicle1", BasePrice: 200_000}, nil)
	mockRepo.EXPECT().CurrentPrice(gomock.Any(), "vehicle1").Return(int64(203_000), nil)

	priced, err := service.Get(context.Background(), "vehicle1")
	require.NoError(t, err)
	require.Equal(t, int64(203_000), priced.CurrentPrice)

	_, err = service.Get(context.Background(), "")
	require.ErrorIs(t, err, auctionerrors.ErrInvalidInput)

	mockRepo.EXPECT().GetVehicle(gomock.Any(), "missing").Return(model.Vehicle{}, auctionerrors.ErrVehicleNotFound)
	_, err = service.Get(context.Background(), "missing")
	require.ErrorIs(t, err, auctionerrors.ErrVehicleNotFound)
}

// Tests Close
func TestVehicleService_Close(t *testing.T) {
	winnerBid := "bid1"
	winnerUser := "buyer1"
	amount := int64(201_000)

	tests := []struct {
		name          string
		callerID      string
		mockSetup     func(mockRepo *repository.MockAuctionDB)
		expectedError error
		wantEvents    int
	}{
		{
			name:     "seller_closes_own_listing",
			callerID: "seller1",
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				mockRepo.EXPECT().GetVehicle(gomock.Any(), "vehicle1").
					Return(model.Vehicle{VehicleID: "vehicle1", SellerID: "seller1"}, nil)
				mockRepo.EXPECT().CloseAuction(gomock.Any(), "vehicle1", gomock.Any()).
					Return(model.ClosureOutcome{
						VehicleID:    "vehicle1",
						WinnerBidID:  &winnerBid,
						WinnerUserID: &winnerUser,
						Amount:       &amount,
					}, nil)
			},
			wantEvents: 2, // closed on vehicle channel + winner notification
		},
		{
			name:     "stranger_cannot_close",
			callerID: "someone-else",
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				mockRepo.EXPECT().GetVehicle(gomock.Any(), "vehicle1").
					Return(model.Vehicle{VehicleID: "vehicle1", SellerID: "seller1"}, nil)
			},
			expectedError: auctionerrors.ErrForbidden,
		},
		{
			name:     "already_closed",
			callerID: "seller1",
			mockSetup: func(mockRepo *repository.MockAuctionDB) {
				mockRepo.EXPECT().GetVehicle(gomock.Any(), "vehicle1").
					Return(model.Vehicle{VehicleID: "vehicle1", SellerID: "seller1"}, nil)
				mockRepo.EXPECT().CloseAuction(gomock.Any(), "vehicle1", gomock.Any()).
					Return(model.ClosureOutcome{}, auctionerrors.ErrAlreadyClosed)
			},
			expectedError: auctionerrors.ErrAlreadyClosed,
		},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := repository.NewMockAuctionDB(ctrl)
			events := &recordingPublisher{}
			service := NewVehicleService(mockRepo, events, Defaults{})

			tc.mockSetup(mockRepo)

			outcome, err := service.Close(context.Background(), "vehicle1", tc.callerID)

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				require.Empty(t, events.all())
				return
			}

			require.NoError(t, err)
			require.Equal(t, "vehicle1", outcome.VehicleID)

			published := events.all()
			require.Len(t, published, tc.wantEvents)
			require.Equal(t, fanout.VehicleChannel("vehicle1"), published[0].channel)
			require.Equal(t, fanout.EventClosed, published[0].event)
			require.Equal(t, fanout.UserChannel(winnerUser), published[1].channel)
			require.Equal(t, fanout.EventNotification, published[1].event)
		})
	}
}
