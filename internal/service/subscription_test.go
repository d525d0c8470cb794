package service

import (
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/require"
)

type fakeChatMemberAPI struct {
	status string
	err    error
	calls  int
}

func (f *fakeChatMemberAPI) GetChatMember(_ tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error) {
	f.calls++
	if f.err != nil {
		return tgbotapi.ChatMember{}, f.err
	}
	return tgbotapi.ChatMember{Status: f.status}, nil
}

func TestCheckSubscription_StatusTable(t *testing.T) {
	cases := []struct {
		status     string
		subscribed bool
	}{
		{"member", true},
		{"administrator", true},
		{"creator", true},
		{"left", false},
		{"kicked", false},
		{"restricted", false},
		{"", false},
	}

	for _, tc := range cases {
		t.Run("status_"+tc.status, func(t *testing.T) {
			svc := NewSubscriptionService(&fakeChatMemberAPI{status: tc.status}, "@ReviewCashNews")

			subscribed, err := svc.CheckSubscription(42)
			require.NoError(t, err)
			require.Equal(t, tc.subscribed, subscribed)
			require.Equal(t, tc.subscribed, svc.IsSubscribed(42))
		})
	}
}

func TestCheckSubscription_LookupErrorIsSurfaced(t *testing.T) {
	lookupErr := errors.New("Bad Request: user not found")
	svc := NewSubscriptionService(&fakeChatMemberAPI{err: lookupErr}, "@ReviewCashNews")

	_, err := svc.CheckSubscription(42)
	require.ErrorIs(t, err, lookupErr)
}

func TestIsSubscribed_FailsClosedOnLookupError(t *testing.T) {
	svc := NewSubscriptionService(&fakeChatMemberAPI{err: errors.New("timeout")}, "@ReviewCashNews")
	require.False(t, svc.IsSubscribed(42))
}
