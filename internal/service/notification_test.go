package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go4rent-backend/internal/domain"
	"go4rent-backend/internal/repository/memory"
)

func newDispatcherStore() *memory.Store {
	store := memory.NewStore()
	store.PutUser(domain.User{ID: renterID, Email: "renter@example.com", Name: "Renter", FCMToken: "token-renter"})
	store.PutUser(domain.User{ID: ownerID, Email: "owner@example.com", Name: "Owner"})
	return store
}

func approvedEvent() domain.Event {
	owner := ownerID
	return domain.Event{
		Type:          domain.RentalEventType(domain.RentalStatusApproved),
		RentalID:      7,
		EquipmentID:   equipmentID,
		RenterID:      renterID,
		OwnerID:       &owner,
		RentalStatus:  domain.RentalStatusApproved,
		PaymentStatus: domain.RentalPaymentPending,
		OccurredAt:    fixedNow,
	}
}

func TestNotificationDispatcher_FanOut(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := newDispatcherStore()
	email := new(MockEmailSender)
	push := new(MockPushSender)
	bus := new(MockEventPublisher)

	ev := approvedEvent()
	var delivered sync.WaitGroup
	delivered.Add(3)
	done := func(mock.Arguments) { delivered.Done() }
	email.On("SendEmail", mock.Anything, "renter@example.com", "Renter", "Rental update", mock.Anything).Return(nil).Run(done).Once()
	email.On("SendEmail", mock.Anything, "owner@example.com", "Owner", "Rental update", mock.Anything).Return(nil).Run(done).Once()
	push.On("Send", mock.Anything, "token-renter", "Rental update", "Rental #7 is now approved.", map[string]string{
		"type":      "rental.approved",
		"rental_id": "7",
	}).Return("msg-1", nil).Once()
	bus.On("Publish", mock.Anything, ev).Return(nil).Run(done).Once()

	d := NewNotificationDispatcher(store.Users(), store.PushNotifications(), email, push, bus, NotificationOptions{Workers: 2, QueueSize: 16})
	d.Start(ctx)
	d.Notify(ctx, ev)

	delivered.Wait()
	require.Eventually(t, func() bool {
		sent, _ := store.PushNotifications().ListByUser(ctx, renterID, 10, 0)
		return len(sent) == 1
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	d.Wait()

	email.AssertExpectations(t)
	push.AssertExpectations(t)
	bus.AssertExpectations(t)

	sent, err := store.PushNotifications().ListByUser(context.Background(), renterID, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, domain.PushStatusSent, sent[0].Status)
	assert.Equal(t, "msg-1", sent[0].Response)
}

func TestNotificationDispatcher_RetriesThenGivesUp(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := newDispatcherStore()
	push := new(MockPushSender)
	push.On("Send", mock.Anything, "token-renter", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("unregistered")).Times(3)

	d := NewNotificationDispatcher(store.Users(), store.PushNotifications(), nil, push, nil, NotificationOptions{
		Workers:    1,
		QueueSize:  4,
		MaxRetries: 2,
		Backoff:    time.Millisecond,
	})
	d.Start(ctx)
	d.Notify(ctx, approvedEvent())

	require.Eventually(t, func() bool {
		sent, _ := store.PushNotifications().ListByUser(ctx, renterID, 10, 0)
		return len(sent) == 1
	}, 2*time.Second, 5*time.Millisecond)

	push.AssertExpectations(t)
	sent, err := store.PushNotifications().ListByUser(ctx, renterID, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, domain.PushStatusFailed, sent[0].Status)
	assert.Equal(t, "unregistered", sent[0].Response)
}

func TestNotificationDispatcher_FullQueueDrops(t *testing.T) {
	bus := new(MockEventPublisher)
	d := NewNotificationDispatcher(nil, nil, nil, nil, bus, NotificationOptions{QueueSize: 1})

	// No workers are running, so the second event has nowhere to go.
	d.Notify(context.Background(), approvedEvent())
	d.Notify(context.Background(), approvedEvent())

	assert.Len(t, d.jobs, 1)
	bus.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestDescribeEvent(t *testing.T) {
	title, body := describeEvent(domain.Event{Type: domain.PaymentEventType(domain.PaymentStatusCancelledByGateway), RentalID: 3})
	assert.Equal(t, "Payment update", title)
	assert.Equal(t, "The payment for rental #3 is now cancelled by gateway.", body)

	title, _ = describeEvent(domain.Event{Type: domain.EventRentalRequested, RentalID: 3, RentalStatus: domain.RentalStatusPendingApproval})
	assert.Equal(t, "New rental request", title)
}
