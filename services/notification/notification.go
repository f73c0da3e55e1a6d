package notification

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"

	"tourbase/services/user"
	"tourbase/utils"
)

// NotificationService defines methods for sending FCM pushes.
type NotificationService interface {
	SendUserPush(ctx context.Context, userID, title, body string, data map[string]string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	User user.UserService
}

// SendUserPush looks up a user's FCM token and sends a push message.
func (s *DefaultNotificationService) SendUserPush(ctx context.Context, userID, title, body string, data map[string]string) error {
	u, err := s.User.GetUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("SendUserPush: could not find user %s: %w", userID, err)
	}
	if u.FCMToken == "" {
		return fmt.Errorf("SendUserPush: user %s has no FCM token", userID)
	}

	msg := &messaging.Message{
		Token: u.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	response, err := utils.FCMClient.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("SendUserPush: failed to send FCM message: %w", err)
	}
	utils.GetLogger().Debug("SendUserPush: message sent", zap.String("response", response))
	return nil
}
