package service

import (
	"context"
	"fmt"

	"zenstay/config"
	"zenstay/infras/otel"
	"zenstay/infras/postgres"
	bookingModel "zenstay/internal/domains/booking/model"
	bookingRepo "zenstay/internal/domains/booking/repository"
	"zenstay/internal/domains/room/model"
	"zenstay/internal/domains/room/model/dto"
	"zenstay/internal/domains/room/repository"
	"zenstay/shared"
	"zenstay/shared/cache"
	"zenstay/shared/constant"
	gDto "zenstay/shared/dto"
	"zenstay/shared/failure"
	"zenstay/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom    = "room:get"
	cacheGetAllRoom = "room:gets"
	cacheCountRoom  = "room:count"

	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomRequest, id string) error
	Delete(ctx context.Context, id string) error
	FreeRoom(ctx context.Context, id string) error
	FreeAllRooms(ctx context.Context) error
}

type serviceImpl struct {
	repo        repository.Room
	bookingRepo bookingRepo.Booking
	txRunner    postgres.TxRunner
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.Room,
	bookingRepository bookingRepo.Booking,
	txRunner postgres.TxRunner,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Room {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepository,
		txRunner:    txRunner,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	room := req.ToModel(user)

	if err = s.repo.Insert(ctx, room); err != nil {
		log.Error().Err(err).Msg("failed to create room")

		return fmt.Errorf("failed to create room: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoom, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountRoom, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(nil)

	cacheKey := shared.BuildCacheKey(cacheGetRoom, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	res.FromModel(room)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(nil)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !exist {
		log.Error().Msg("room not found")

		return failure.NotFound("room not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update room")

		return fmt.Errorf("failed to update room: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoom, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete room from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
	}()

	return nil
}

// Delete removes a room in two explicit steps inside one transaction: the
// room's booking rows go first, then the room itself. The schema carries no
// cascade, so the order matters.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !exist {
		log.Error().Msg("room not found")

		return failure.NotFound("room not found") // nolint:wrapcheck
	}

	err = s.txRunner.RunInTx(ctx, func(tx *sqlx.Tx) error {
		bookingFilter := shared.FilterByID(id, bookingModel.FieldRoomID, bookingModel.TableName)
		if err := s.bookingRepo.DeleteTx(ctx, tx, bookingFilter); err != nil {
			return err
		}

		return s.repo.DeleteTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName))
	})
	if err != nil {
		log.Error().Err(err).Str("roomID", id).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoom, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete room from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return nil
}

// FreeRoom cancels every APPROVED booking holding the room and marks the room
// available again, in one transaction.
func (s *serviceImpl) FreeRoom(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FreeRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return failure.NotFound("room not found") // nolint:wrapcheck
	}

	now := timezone.Now()

	err = s.txRunner.RunInTx(ctx, func(tx *sqlx.Tx) error {
		bookingFields := map[string]any{
			bookingModel.FieldStatus: bookingModel.StatusCancelled,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: user,
		}
		bookingFilter := gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{
					Field:    bookingModel.FieldRoomID,
					Value:    id,
					Operator: gDto.FilterOperatorEq,
					Table:    bookingModel.TableName,
				},
				gDto.Filter{
					Field:    bookingModel.FieldStatus,
					Value:    bookingModel.StatusApproved,
					Operator: gDto.FilterOperatorEq,
					Table:    bookingModel.TableName,
				},
			},
		}

		if err := s.bookingRepo.UpdateTx(ctx, tx, bookingFields, bookingFilter); err != nil {
			return err
		}

		roomFields := map[string]any{
			model.FieldAvailable:     true,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: user,
		}

		return s.repo.UpdateTx(ctx, tx, roomFields, shared.FilterByID(id, model.FieldID, model.TableName))
	})
	if err != nil {
		log.Error().Err(err).Str("roomID", id).Msg("failed to free room")

		return fmt.Errorf("failed to free room: %w", err)
	}

	s.invalidateAvailabilityCaches(ctx, id)

	return nil
}

// FreeAllRooms cancels every PENDING and APPROVED booking and marks every
// room available, in one transaction. Safe to call repeatedly.
func (s *serviceImpl) FreeAllRooms(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FreeAllRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := timezone.Now()

	err = s.txRunner.RunInTx(ctx, func(tx *sqlx.Tx) error {
		bookingFields := map[string]any{
			bookingModel.FieldStatus: bookingModel.StatusCancelled,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: user,
		}
		bookingFilter := gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{
					Field:    bookingModel.FieldStatus,
					Value:    []string{bookingModel.StatusPending, bookingModel.StatusApproved},
					Operator: gDto.FilterOperatorIn,
					Table:    bookingModel.TableName,
				},
			},
		}

		if err := s.bookingRepo.UpdateTx(ctx, tx, bookingFields, bookingFilter); err != nil {
			return err
		}

		roomFields := map[string]any{
			model.FieldAvailable:     true,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: user,
		}

		// Empty filter on purpose: every room is released.
		return s.repo.UpdateTx(ctx, tx, roomFields, gDto.FilterGroup{})
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to free all rooms")

		return fmt.Errorf("failed to free all rooms: %w", err)
	}

	s.invalidateAvailabilityCaches(ctx, constant.Empty)

	return nil
}

func (s *serviceImpl) invalidateAvailabilityCaches(ctx context.Context, roomID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if roomID != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoom, roomID)); err != nil {
				log.Error().Err(err).Msg("failed to delete room from cache")
			}
		} else {
			shared.InvalidateCaches(c, s.cache, cacheGetRoom)
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
		shared.InvalidateCaches(c, s.cache, cacheGetBooking)
		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}
