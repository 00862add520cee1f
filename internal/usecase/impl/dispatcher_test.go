package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"estatex/internal/domain/entity"
	"estatex/internal/domain/service"
	mockSvc "estatex/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func testAlert() *entity.Alert {
	return &entity.Alert{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		Name:         "Rentals in Andheri",
		IsActive:     true,
		Frequency:    entity.FrequencyInstant,
		EmailEnabled: true,
		Criteria:     entity.AlertCriteria{Location: "andheri"},
	}
}

func createTestDispatcher(t *testing.T, senders ...service.ChannelSender) (*Dispatcher, *mockSvc.MockEventPublisher) {
	publisher := mockSvc.NewMockEventPublisher(t)
	dispatcher := NewDispatcher(senders, publisher, time.Second, testLogger())

	return dispatcher, publisher
}

func TestDispatcher_Dispatch_SendsOnEnabledChannels(t *testing.T) {
	ctx := context.Background()
	alert := testAlert()
	alert.SMSEnabled = true
	property := testProperty()
	property.ID = uuid.New()
	now := time.Now()

	email := mockSvc.NewMockChannelSender(t)
	email.EXPECT().Channel().Return(entity.ChannelEmail)
	email.EXPECT().Send(mock.Anything, alert, property).Return(nil)

	sms := mockSvc.NewMockChannelSender(t)
	sms.EXPECT().Channel().Return(entity.ChannelSMS)
	sms.EXPECT().Send(mock.Anything, alert, property).Return(nil)

	dispatcher, publisher := createTestDispatcher(t, email, sms)
	publisher.EXPECT().PublishMatchEvent(ctx, mock.Anything).Return(nil)

	event := dispatcher.Dispatch(ctx, alert, property, now)

	require.NotNil(t, event)
	assert.Equal(t, alert.ID, event.AlertID)
	assert.Equal(t, alert.UserID, event.UserID)
	assert.Equal(t, property.ID, event.PropertyID)
	assert.Equal(t, property.Title, event.PropertyTitle)
	assert.Equal(t, []entity.Channel{entity.ChannelEmail, entity.ChannelSMS}, event.Channels)
	assert.Equal(t, entity.StatusSent, event.Status)
	assert.Equal(t, now, event.SentAt)
	assert.False(t, event.IsRead)
}

func TestDispatcher_Dispatch_NoChannelsStillCreatesEvent(t *testing.T) {
	ctx := context.Background()
	alert := testAlert()
	alert.EmailEnabled = false
	property := testProperty()

	dispatcher, publisher := createTestDispatcher(t)
	publisher.EXPECT().PublishMatchEvent(ctx, mock.Anything).Return(nil)

	event := dispatcher.Dispatch(ctx, alert, property, time.Now())

	require.NotNil(t, event)
	assert.Empty(t, event.Channels)
	assert.Equal(t, entity.StatusSent, event.Status, "an event with no channels is still recorded for the in-app history")
}

func TestDispatcher_Dispatch_SenderFailureKeepsChannel(t *testing.T) {
	ctx := context.Background()
	alert := testAlert()
	alert.SMSEnabled = true
	property := testProperty()

	email := mockSvc.NewMockChannelSender(t)
	email.EXPECT().Channel().Return(entity.ChannelEmail)
	email.EXPECT().Send(mock.Anything, alert, property).Return(errors.New("smtp connection refused"))

	sms := mockSvc.NewMockChannelSender(t)
	sms.EXPECT().Channel().Return(entity.ChannelSMS)
	sms.EXPECT().Send(mock.Anything, alert, property).Return(nil)

	dispatcher, publisher := createTestDispatcher(t, email, sms)
	publisher.EXPECT().PublishMatchEvent(ctx, mock.Anything).Return(nil)

	event := dispatcher.Dispatch(ctx, alert, property, time.Now())

	assert.Equal(t, []entity.Channel{entity.ChannelEmail, entity.ChannelSMS}, event.Channels,
		"channels record the user's preference, not the delivery outcome")
	assert.Equal(t, entity.StatusSent, event.Status, "one successful channel keeps the event sent")
}

func TestDispatcher_Dispatch_AllChannelsFailedMarksEventFailed(t *testing.T) {
	ctx := context.Background()
	alert := testAlert()
	property := testProperty()

	email := mockSvc.NewMockChannelSender(t)
	email.EXPECT().Channel().Return(entity.ChannelEmail)
	email.EXPECT().Send(mock.Anything, alert, property).Return(errors.New("smtp connection refused"))

	dispatcher, publisher := createTestDispatcher(t, email)
	publisher.EXPECT().PublishMatchEvent(ctx, mock.Anything).Return(nil)

	event := dispatcher.Dispatch(ctx, alert, property, time.Now())

	assert.Equal(t, entity.StatusFailed, event.Status)
}

func TestDispatcher_Dispatch_MissingSenderCountsAsFailure(t *testing.T) {
	ctx := context.Background()
	alert := testAlert() // email enabled, but no email sender registered
	property := testProperty()

	dispatcher, publisher := createTestDispatcher(t)
	publisher.EXPECT().PublishMatchEvent(ctx, mock.Anything).Return(nil)

	event := dispatcher.Dispatch(ctx, alert, property, time.Now())

	assert.Equal(t, entity.StatusFailed, event.Status)
}

func TestDispatcher_Dispatch_PublishFailureDoesNotAbort(t *testing.T) {
	ctx := context.Background()
	alert := testAlert()
	property := testProperty()

	email := mockSvc.NewMockChannelSender(t)
	email.EXPECT().Channel().Return(entity.ChannelEmail)
	email.EXPECT().Send(mock.Anything, alert, property).Return(nil)

	dispatcher, publisher := createTestDispatcher(t, email)
	publisher.EXPECT().PublishMatchEvent(ctx, mock.Anything).Return(errors.New("stream unavailable"))

	event := dispatcher.Dispatch(ctx, alert, property, time.Now())

	require.NotNil(t, event)
	assert.Equal(t, entity.StatusSent, event.Status)
}

func TestDispatcher_Dispatch_PublishCarriesEventSnapshot(t *testing.T) {
	ctx := context.Background()
	alert := testAlert()
	property := testProperty()

	email := mockSvc.NewMockChannelSender(t)
	email.EXPECT().Channel().Return(entity.ChannelEmail)
	email.EXPECT().Send(mock.Anything, alert, property).Return(nil)

	dispatcher, publisher := createTestDispatcher(t, email)

	var published *service.MatchEvent
	publisher.EXPECT().PublishMatchEvent(ctx, mock.Anything).Run(func(_ context.Context, event *service.MatchEvent) {
		published = event
	}).Return(nil)

	event := dispatcher.Dispatch(ctx, alert, property, time.Now())

	require.NotNil(t, published)
	assert.Equal(t, alert.ID.String(), published.AlertID)
	assert.Equal(t, alert.UserID.String(), published.UserID)
	assert.Same(t, event, published.Event)
	assert.NotEmpty(t, published.RequestID)
}
