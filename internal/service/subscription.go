package service

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

// ChatMemberGetter is the single Bot API call the verifier needs;
// *tgbotapi.BotAPI satisfies it.
type ChatMemberGetter interface {
	GetChatMember(config tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error)
}

type SubscriptionServiceImpl struct {
	api     ChatMemberGetter
	channel string
}

func NewSubscriptionService(api ChatMemberGetter, channel string) *SubscriptionServiceImpl {
	return &SubscriptionServiceImpl{
		api:     api,
		channel: channel,
	}
}

var subscribedStatuses = map[string]bool{
	"member":        true,
	"administrator": true,
	"creator":       true,
}

// CheckSubscription asks Telegram whether userID is a member of the
// required channel. Lookup failures are returned to the caller; the
// fail-closed coercion lives in IsSubscribed.
func (s SubscriptionServiceImpl) CheckSubscription(userID int64) (bool, error) {
	member, err := s.api.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{
			SuperGroupUsername: s.channel,
			UserID:             userID,
		},
	})
	if err != nil {
		return false, err
	}
	return subscribedStatuses[member.Status], nil
}

// IsSubscribed treats any lookup failure as "not subscribed". A false
// negative only makes the user tap the subscribe button again; a false
// positive would let an unsubscribed user in.
func (s SubscriptionServiceImpl) IsSubscribed(userID int64) bool {
	subscribed, err := s.CheckSubscription(userID)
	if err != nil {
		log.Warnf("subscription check for %d failed: %v", userID, err)
		return false
	}
	return subscribed
}
