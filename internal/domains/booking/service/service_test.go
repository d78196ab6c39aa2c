package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"zenstay/config"
	"zenstay/infras/otel/mocks"
	txMocks "zenstay/infras/postgres/mocks"
	bookingMocks "zenstay/internal/domains/booking/mocks"
	"zenstay/internal/domains/booking/model"
	"zenstay/internal/domains/booking/model/dto"
	"zenstay/internal/domains/booking/service"
	roomMocks "zenstay/internal/domains/room/mocks"
	roomModel "zenstay/internal/domains/room/model"
	notifierMocks "zenstay/internal/notifier/mocks"
	cacheMocks "zenstay/shared/cache/mocks"
	"zenstay/shared/constant"
	gDto "zenstay/shared/dto"
	"zenstay/shared/failure"
	gModel "zenstay/shared/model"
	"zenstay/shared/timezone"
)

func availableRoom() roomModel.Room {
	return roomModel.Room{
		ID:            "room-id",
		RoomNumber:    "101",
		RoomType:      "Deluxe Room",
		PricePerNight: 100,
		Capacity:      2,
		Available:     true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}
}

func pendingBooking() model.Booking {
	return model.Booking{
		ID:           "booking-id",
		RoomID:       "room-id",
		GuestName:    "Jane Guest",
		GuestEmail:   "jane@example.com",
		CheckInDate:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
		TotalPrice:   300,
		Status:       model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockNotifier := notifierMocks.NewMockNotifier(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomRepo, txMocks.NewTxRunner(), mockNotifier, cfg, mockCache, mockOtel)

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	validReq := dto.CreateBookingRequest{
		RoomID:       "room-id",
		GuestName:    "Jane Guest",
		GuestEmail:   "jane@example.com",
		CheckInDate:  "2026-09-01",
		CheckOutDate: "2026-09-04",
	}

	tests := []struct {
		name       string
		req        dto.CreateBookingRequest
		setupMock  func()
		wantErr    bool
		wantCode   int
		wantPrice  float64
		wantStatus string
	}{
		{
			name: "successful creation computes price from nights",
			req:  validReq,
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom(), nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockNotifier.EXPECT().
					BookingCreated(gomock.Any(), gomock.Any())
			},
			wantErr:    false,
			wantPrice:  300, // 3 nights x 100
			wantStatus: model.StatusPending,
		},
		{
			name: "room not found",
			req:  validReq,
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "room not available",
			req:  validReq,
			setupMock: func() {
				room := availableRoom()
				room.Available = false

				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "invalid guest email",
			req: dto.CreateBookingRequest{
				RoomID:       "room-id",
				GuestName:    "Jane Guest",
				GuestEmail:   "not-an-email",
				CheckInDate:  "2026-09-01",
				CheckOutDate: "2026-09-04",
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom(), nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "check-out not after check-in",
			req: dto.CreateBookingRequest{
				RoomID:       "room-id",
				GuestName:    "Jane Guest",
				GuestEmail:   "jane@example.com",
				CheckInDate:  "2026-09-04",
				CheckOutDate: "2026-09-04",
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom(), nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "malformed date",
			req: dto.CreateBookingRequest{
				RoomID:       "room-id",
				GuestName:    "Jane Guest",
				GuestEmail:   "jane@example.com",
				CheckInDate:  "01-09-2026",
				CheckOutDate: "2026-09-04",
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom(), nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "repository error",
			req:  validReq,
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom(), nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, res.ID)
				assert.Equal(t, tt.wantPrice, res.TotalPrice)
				assert.Equal(t, tt.wantStatus, res.Status)
			}
		})
	}
}

func TestBookingService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockNotifier := notifierMocks.NewMockNotifier(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomRepo, txMocks.NewTxRunner(), mockNotifier, cfg, mockCache, mockOtel)

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	mockCache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	tests := []struct {
		name       string
		status     string
		setupMock  func()
		wantErr    bool
		wantCode   int
		wantStatus string
	}{
		{
			name:   "approve takes the room",
			status: "APPROVED",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking(), nil)

				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom(), nil)

				mockRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockRoomRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), matchAvailable(false), gomock.Any()).
					Return(nil)

				mockNotifier.EXPECT().
					StatusChanged(gomock.Any(), gomock.Any())
			},
			wantErr:    false,
			wantStatus: model.StatusApproved,
		},
		{
			name:   "lowercase status is accepted",
			status: "cancelled",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking(), nil)

				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom(), nil)

				mockRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), matchStatus(model.StatusCancelled), gomock.Any()).
					Return(nil)

				mockRoomRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), matchAvailable(true), gomock.Any()).
					Return(nil)

				mockNotifier.EXPECT().
					StatusChanged(gomock.Any(), gomock.Any())
			},
			wantErr:    false,
			wantStatus: model.StatusCancelled,
		},
		{
			name:   "reject releases the room",
			status: "REJECTED",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking(), nil)

				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom(), nil)

				mockRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), matchStatus(model.StatusRejected), gomock.Any()).
					Return(nil)

				mockRoomRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), matchAvailable(true), gomock.Any()).
					Return(nil)

				mockNotifier.EXPECT().
					StatusChanged(gomock.Any(), gomock.Any())
			},
			wantErr:    false,
			wantStatus: model.StatusRejected,
		},
		{
			name:      "unknown status is rejected",
			status:    "DONE",
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name:      "pending cannot be requested",
			status:    "PENDING",
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name:   "booking not found",
			status: "APPROVED",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name:   "transaction error",
			status: "APPROVED",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking(), nil)

				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom(), nil)

				mockRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("update error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.UpdateStatus(ctx, "booking-id", tt.status)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantStatus, res.Status)
			}
		})
	}
}

func TestBookingService_ProcessPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockNotifier := notifierMocks.NewMockNotifier(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomRepo, txMocks.NewTxRunner(), mockNotifier, cfg, mockCache, mockOtel)

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	mockCache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(pendingBooking(), nil)

	mockRoomRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(availableRoom(), nil)

	mockRepo.EXPECT().
		UpdateTx(gomock.Any(), gomock.Any(), matchStatus(model.StatusApproved), gomock.Any()).
		Return(nil)

	mockRoomRepo.EXPECT().
		UpdateTx(gomock.Any(), gomock.Any(), matchAvailable(false), gomock.Any()).
		Return(nil)

	mockNotifier.EXPECT().
		StatusChanged(gomock.Any(), gomock.Any())

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
	res, err := svc.ProcessPayment(ctx, "booking-id")

	assert.NoError(t, err)
	assert.Equal(t, model.StatusApproved, res.Status)
}

func TestBookingService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockNotifier := notifierMocks.NewMockNotifier(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomRepo, txMocks.NewTxRunner(), mockNotifier, cfg, mockCache, mockOtel)

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	mockCache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	t.Run("cancel releases the room", func(t *testing.T) {
		booking := pendingBooking()
		booking.Status = model.StatusApproved

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		mockRoomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(availableRoom(), nil)

		mockRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), matchStatus(model.StatusCancelled), gomock.Any()).
			Return(nil)

		mockRoomRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), matchAvailable(true), gomock.Any()).
			Return(nil)

		mockNotifier.EXPECT().
			StatusChanged(gomock.Any(), gomock.Any())

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		err := svc.Cancel(ctx, "booking-id")

		assert.NoError(t, err)
	})

	t.Run("cancel missing booking", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		ctx := context.Background()
		err := svc.Cancel(ctx, "nonexistent-id")

		assert.Error(t, err)
		assert.True(t, failure.IsNotFound(err))
	})
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockNotifier := notifierMocks.NewMockNotifier(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomRepo, txMocks.NewTxRunner(), mockNotifier, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantID    string
	}{
		{
			name: "cache hit",
			id:   "booking-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
			wantID:  "",
		},
		{
			name: "cache miss, successful get from db",
			id:   "booking-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingBooking(), nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantID:  "booking-id",
		},
		{
			name: "booking not found",
			id:   "nonexistent-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil) // Empty booking means not found
			},
			wantErr: true,
		},
		{
			name: "repository error",
			id:   "booking-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.Get(ctx, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.wantID != "" {
					assert.Equal(t, tt.wantID, result.ID)
				}
			}
		})
	}
}

func TestBookingService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockNotifier := notifierMocks.NewMockNotifier(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomRepo, txMocks.NewTxRunner(), mockNotifier, cfg, mockCache, mockOtel)

	tests := []struct {
		name       string
		params     gDto.QueryParams
		filter     gDto.FilterGroup
		setupMock  func()
		wantErr    bool
		wantResult dto.GetBookingsResponse
	}{
		{
			name: "successful get all",
			params: gDto.QueryParams{
				Limit: 10,
				Page:  1,
			},
			filter: gDto.FilterGroup{},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{pendingBooking()}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantResult: dto.GetBookingsResponse{
				TotalData: 1,
				TotalPage: 1,
			},
		},
		{
			name: "count error",
			params: gDto.QueryParams{
				Limit: 10,
				Page:  1,
			},
			filter: gDto.FilterGroup{},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.GetAll(ctx, tt.params, tt.filter)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantResult.TotalData, result.TotalData)
				assert.Equal(t, tt.wantResult.TotalPage, result.TotalPage)
			}
		})
	}
}

// matchStatus matches the booking update map by its target status.
func matchStatus(status string) gomock.Matcher {
	return fieldMatcher{field: model.FieldStatus, want: status}
}

// matchAvailable matches the room update map by its availability flag.
func matchAvailable(available bool) gomock.Matcher {
	return fieldMatcher{field: roomModel.FieldAvailable, want: available}
}

type fieldMatcher struct {
	field string
	want  any
}

func (m fieldMatcher) Matches(x any) bool {
	fields, ok := x.(map[string]any)
	if !ok {
		return false
	}

	return fields[m.field] == m.want
}

func (m fieldMatcher) String() string {
	return "update map containing the expected field value"
}
