package notifier

//go:generate go run go.uber.org/mock/mockgen -source=./notifier.go -destination=./mocks/notifier_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"zenstay/config"
	"zenstay/infras/kafka"
	"zenstay/infras/mailer"
	bookingModel "zenstay/internal/domains/booking/model"
	roomModel "zenstay/internal/domains/room/model"
	"zenstay/shared/constant"
	"zenstay/shared/timezone"

	"github.com/rs/zerolog/log"
)

const defaultQueueSize = 64

type Event string

const (
	EventBookingCreated       Event = "booking.created"
	EventBookingStatusChanged Event = "booking.status_changed"
)

// BookingEvent is the payload published to the booking event topic.
type BookingEvent struct {
	Event      Event   `json:"event"`
	BookingID  string  `json:"booking_id"`
	RoomID     string  `json:"room_id"`
	RoomNumber string  `json:"room_number"`
	Status     string  `json:"status"`
	GuestEmail string  `json:"guest_email"`
	TotalPrice float64 `json:"total_price"`
	OccurredAt string  `json:"occurred_at"`
}

// Notifier delivers booking notifications in the background. Enqueueing never
// blocks the caller; delivery failures are logged and swallowed.
type Notifier interface {
	BookingCreated(booking bookingModel.Booking, room roomModel.Room)
	StatusChanged(booking bookingModel.Booking, room roomModel.Room)
	Close()
}

type task struct {
	event   Event
	booking bookingModel.Booking
	room    roomModel.Room
}

type notifierImpl struct {
	cfg    *config.Config
	mailer mailer.Mailer
	kafka  kafka.Client
	tasks  chan task
	wg     sync.WaitGroup
	once   sync.Once
}

func New(cfg *config.Config, mail mailer.Mailer, kafkaClient kafka.Client) Notifier {
	queueSize := cfg.Notifier.QueueSize
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}

	n := &notifierImpl{
		cfg:    cfg,
		mailer: mail,
		kafka:  kafkaClient,
		tasks:  make(chan task, queueSize),
	}

	n.wg.Add(1)

	go n.worker()

	return n
}

// BookingCreated implements Notifier.
func (n *notifierImpl) BookingCreated(booking bookingModel.Booking, room roomModel.Room) {
	n.enqueue(task{event: EventBookingCreated, booking: booking, room: room})
}

// StatusChanged implements Notifier.
func (n *notifierImpl) StatusChanged(booking bookingModel.Booking, room roomModel.Room) {
	n.enqueue(task{event: EventBookingStatusChanged, booking: booking, room: room})
}

// Close stops accepting tasks and waits for the queue to drain.
func (n *notifierImpl) Close() {
	n.once.Do(func() {
		close(n.tasks)
	})

	n.wg.Wait()
}

func (n *notifierImpl) enqueue(t task) {
	select {
	case n.tasks <- t:
	default:
		log.Warn().
			Str("event", string(t.event)).
			Str("bookingID", t.booking.ID).
			Msg("notification queue full, dropping task")
	}
}

func (n *notifierImpl) worker() {
	defer n.wg.Done()

	for t := range n.tasks {
		n.process(t)
	}
}

func (n *notifierImpl) process(t task) {
	ctx := context.Background()

	guestSubject, guestBody, adminSubject, adminBody := n.compose(t)

	if err := n.mailer.Send(ctx, t.booking.GuestEmail, t.booking.GuestName, guestSubject, guestBody); err != nil {
		log.Error().Err(err).Str("bookingID", t.booking.ID).Msg("failed to send guest notification")
	}

	if err := n.mailer.Send(ctx, n.cfg.Admin.Email, n.cfg.Admin.Username, adminSubject, adminBody); err != nil {
		log.Error().Err(err).Str("bookingID", t.booking.ID).Msg("failed to send admin notification")
	}

	n.publish(ctx, t)
}

func (n *notifierImpl) compose(t task) (guestSubject, guestBody, adminSubject, adminBody string) {
	booking := t.booking
	room := t.room

	switch t.event {
	case EventBookingCreated:
		guestSubject = fmt.Sprintf("Booking Confirmation - #%s", booking.ID)
		guestBody = fmt.Sprintf(
			"Dear %s,\n\n"+
				"Thank you for your booking at ZENStay. Your booking is currently PENDING and awaiting confirmation.\n\n"+
				"Booking Details:\n"+
				"Room: %s (Room %s)\n"+
				"Check-in: %s\n"+
				"Check-out: %s\n"+
				"Total Price: %.2f\n\n"+
				"We will notify you once your booking is approved.\n\n"+
				"Best regards,\nThe ZENStay Team",
			booking.GuestName,
			room.RoomType,
			room.RoomNumber,
			booking.CheckInDate.Format(constant.CalendarDateFormat),
			booking.CheckOutDate.Format(constant.CalendarDateFormat),
			booking.TotalPrice,
		)
		adminSubject = "New Booking Created"
		adminBody = fmt.Sprintf("A new booking has been created: #%s by %s", booking.ID, booking.GuestName)
	case EventBookingStatusChanged:
		guestSubject = fmt.Sprintf("Booking Status Update - #%s", booking.ID)
		guestBody = fmt.Sprintf(
			"Dear %s,\n\n"+
				"The status of your booking #%s has been updated to: %s.\n\n"+
				"Thank you for choosing ZENStay.\n\n"+
				"Best regards,\nThe ZENStay Team",
			booking.GuestName,
			booking.ID,
			booking.Status,
		)
		adminSubject = "Booking Status Updated"
		adminBody = fmt.Sprintf("The status for booking #%s has been updated to %s.", booking.ID, booking.Status)
	}

	return guestSubject, guestBody, adminSubject, adminBody
}

func (n *notifierImpl) publish(ctx context.Context, t task) {
	if !n.cfg.Kafka.Enable {
		return
	}

	event := BookingEvent{
		Event:      t.event,
		BookingID:  t.booking.ID,
		RoomID:     t.room.ID,
		RoomNumber: t.room.RoomNumber,
		Status:     t.booking.Status,
		GuestEmail: t.booking.GuestEmail,
		TotalPrice: t.booking.TotalPrice,
		OccurredAt: timezone.Now().Format(time.RFC3339),
	}

	err := n.kafka.SendMessages(ctx, n.cfg.Kafka.Topic, kafka.Message{
		Key:   t.booking.ID,
		Value: event,
	})
	if err != nil {
		log.Error().Err(err).Str("bookingID", t.booking.ID).Msg("failed to publish booking event")
	}
}
