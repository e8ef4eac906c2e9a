package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"go4rent-backend/internal/domain"
	"go4rent-backend/internal/logger"
	"go4rent-backend/internal/metrics"
	"go4rent-backend/internal/repository"
)

const (
	channelEmail = "email"
	channelPush  = "push"
	channelBus   = "bus"
)

var errQueueFull = errors.New("notification queue is full")

type NotificationOptions struct {
	Workers    int
	QueueSize  int
	MaxRetries int
	// Backoff is scaled by the square of the attempt number between retries.
	Backoff time.Duration
}

type notificationJob struct {
	channel string
	userID  int32
	event   domain.Event
	retries int
}

// NotificationDispatcher delivers committed events to email, push and the
// message bus from a pool of workers. Delivery failures are retried and then
// logged; they never reach the operation that produced the event.
type NotificationDispatcher struct {
	users  repository.UserRepository
	pushes repository.PushNotificationRepository
	email  EmailSender
	push   PushSender
	bus    EventPublisher
	opts   NotificationOptions

	jobs chan notificationJob
	wg   sync.WaitGroup
}

// NewNotificationDispatcher wires the delivery channels. Any of email, push and
// bus may be nil to disable that channel.
func NewNotificationDispatcher(
	users repository.UserRepository,
	pushes repository.PushNotificationRepository,
	email EmailSender,
	push PushSender,
	bus EventPublisher,
	opts NotificationOptions,
) *NotificationDispatcher {
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = 64
	}
	if opts.Backoff <= 0 {
		opts.Backoff = time.Second
	}
	return &NotificationDispatcher{
		users:  users,
		pushes: pushes,
		email:  email,
		push:   push,
		bus:    bus,
		opts:   opts,
		jobs:   make(chan notificationJob, opts.QueueSize),
	}
}

// Start launches the workers. They stop when ctx is cancelled.
func (d *NotificationDispatcher) Start(ctx context.Context) {
	for i := 0; i < d.opts.Workers; i++ {
		d.wg.Add(1)
		go d.worker(ctx, i)
	}
}

// Wait blocks until every worker has stopped.
func (d *NotificationDispatcher) Wait() {
	d.wg.Wait()
}

// Notify queues one delivery per channel and recipient without blocking.
func (d *NotificationDispatcher) Notify(ctx context.Context, event domain.Event) {
	if d.bus != nil {
		d.enqueue(notificationJob{channel: channelBus, event: event})
	}
	for _, userID := range event.Recipients() {
		if d.email != nil {
			d.enqueue(notificationJob{channel: channelEmail, userID: userID, event: event})
		}
		if d.push != nil {
			d.enqueue(notificationJob{channel: channelPush, userID: userID, event: event})
		}
	}
}

func (d *NotificationDispatcher) enqueue(job notificationJob) {
	select {
	case d.jobs <- job:
	default:
		metrics.NotificationsSent.WithLabelValues(job.channel, "dropped").Inc()
		logger.ExternalFailure(job.channel, "enqueue", errQueueFull, "event", job.event.Type, "rentalID", job.event.RentalID)
	}
}

func (d *NotificationDispatcher) worker(ctx context.Context, id int) {
	defer d.wg.Done()
	logger.Debug("Notification worker started", "worker", id)
	for {
		select {
		case <-ctx.Done():
			logger.Debug("Notification worker stopping", "worker", id)
			return
		case job := <-d.jobs:
			d.process(ctx, job)
		}
	}
}

func (d *NotificationDispatcher) process(ctx context.Context, job notificationJob) {
	err := d.deliver(ctx, job)
	if err == nil {
		metrics.NotificationsSent.WithLabelValues(job.channel, "sent").Inc()
		return
	}

	if job.retries < d.opts.MaxRetries {
		job.retries++
		backoff := d.opts.Backoff * time.Duration(job.retries*job.retries)
		logger.Debug("Retrying notification", "channel", job.channel, "event", job.event.Type, "attempt", job.retries, "backoff", backoff)
		time.AfterFunc(backoff, func() {
			if ctx.Err() == nil {
				d.enqueue(job)
			}
		})
		return
	}

	metrics.NotificationsSent.WithLabelValues(job.channel, "failed").Inc()
	logger.ExternalFailure(job.channel, "deliver", fmt.Errorf("%w: %v", domain.ErrNotificationFailure, err),
		"event", job.event.Type, "rentalID", job.event.RentalID, "userID", job.userID, "retries", job.retries)
	if job.channel == channelPush {
		d.recordPush(ctx, job, domain.PushStatusFailed, err.Error())
	}
}

func (d *NotificationDispatcher) deliver(ctx context.Context, job notificationJob) error {
	if job.channel == channelBus {
		return d.bus.Publish(ctx, job.event)
	}

	user, err := d.users.GetByID(ctx, job.userID)
	if err != nil {
		return err
	}
	title, body := describeEvent(job.event)

	switch job.channel {
	case channelEmail:
		if user.Email == "" {
			return nil
		}
		return d.email.SendEmail(ctx, user.Email, user.Name, title, fmt.Sprintf("Hello %s,\n\n%s\n\nThe go4rent team", user.Name, body))
	case channelPush:
		if user.FCMToken == "" {
			return nil
		}
		id, err := d.push.Send(ctx, user.FCMToken, title, body, eventData(job.event))
		if err != nil {
			return err
		}
		d.recordPush(ctx, job, domain.PushStatusSent, id)
		return nil
	}
	return fmt.Errorf("unknown channel %q", job.channel)
}

func (d *NotificationDispatcher) recordPush(ctx context.Context, job notificationJob, status domain.PushStatus, response string) {
	if d.pushes == nil {
		return
	}
	title, body := describeEvent(job.event)
	n := &domain.SentPushNotification{
		UserID:   job.userID,
		Title:    title,
		Body:     body,
		Data:     eventData(job.event),
		Status:   status,
		Response: response,
	}
	if err := d.pushes.Create(ctx, n); err != nil {
		logger.Warn("Failed to record push notification", "userID", job.userID, "error", err)
	}
}

func eventData(ev domain.Event) map[string]string {
	data := map[string]string{
		"type":      string(ev.Type),
		"rental_id": strconv.Itoa(int(ev.RentalID)),
	}
	if ev.PaymentID != 0 {
		data["payment_id"] = strconv.Itoa(int(ev.PaymentID))
	}
	return data
}

// describeEvent renders the title and body shown to users.
func describeEvent(ev domain.Event) (string, string) {
	switch ev.Type {
	case domain.EventRentalRequested:
		return "New rental request", fmt.Sprintf("Rental #%d was requested and is %s.", ev.RentalID, humanize(string(ev.RentalStatus)))
	case domain.EventPaymentInitiated:
		return "Payment started", fmt.Sprintf("A payment for rental #%d is being processed.", ev.RentalID)
	}
	if status, ok := strings.CutPrefix(string(ev.Type), domain.EventPaymentStatusPrefix); ok {
		return "Payment update", fmt.Sprintf("The payment for rental #%d is now %s.", ev.RentalID, humanize(status))
	}
	if status, ok := strings.CutPrefix(string(ev.Type), domain.EventRentalStatusPrefix); ok {
		return "Rental update", fmt.Sprintf("Rental #%d is now %s.", ev.RentalID, humanize(status))
	}
	return "go4rent update", fmt.Sprintf("Rental #%d was updated.", ev.RentalID)
}

func humanize(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}
