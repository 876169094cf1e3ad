package email

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"testing"
	"userhub/internal/core/domain/logging"
	"userhub/internal/core/domain/user"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/require"
)

type stubSES struct {
	input *ses.SendTemplatedEmailInput
	err   error
}

func (s *stubSES) SendTemplatedEmail(
	ctx context.Context,
	params *ses.SendTemplatedEmailInput,
	optFns ...func(*ses.Options),
) (*ses.SendTemplatedEmailOutput, error) {
	s.input = params
	if s.err != nil {
		return nil, s.err
	}
	return &ses.SendTemplatedEmailOutput{}, nil
}

func newSender(t *testing.T, client *stubSES) *EmailSender {
	baseUrl, err := url.Parse("https://example.com/password-reset")
	require.Nil(t, err)
	return NewEmailSenderWithClient(client, "noreply@example.com", "password-reset", *baseUrl)
}

func TestSendPasswordResetToken(t *testing.T) {
	client := &stubSES{}
	sender := newSender(t, client)

	err := sender.SendPasswordResetToken(
		context.Background(),
		user.User{Email: "a@b.com", FirstName: "A"},
		user.PasswordResetToken("abc.def.ghi"),
	)

	require.Nil(t, err)
	require.NotNil(t, client.input)
	require.Equal(t, "noreply@example.com", *client.input.Source)
	require.Equal(t, "password-reset", *client.input.Template)
	require.Equal(t, []string{"a@b.com"}, client.input.Destination.ToAddresses)

	params := passwordResetTemplateParams{}
	require.Nil(t, json.Unmarshal([]byte(*client.input.TemplateData), &params))
	require.Equal(t, "A", params.FirstName)
	require.Equal(t, "https://example.com/password-reset/abc.def.ghi", params.PasswordResetUrl)
}

func TestSendPasswordResetTokenWithoutEmail(t *testing.T) {
	client := &stubSES{}
	err := newSender(t, client).SendPasswordResetToken(context.Background(), user.User{}, "token")
	require.NotNil(t, err)
	require.Nil(t, client.input)
}

func TestSendPasswordResetTokenClientError(t *testing.T) {
	client := &stubSES{err: errors.New("throttled")}
	err := newSender(t, client).SendPasswordResetToken(context.Background(), user.User{Email: "a@b.com"}, "token")
	require.ErrorIs(t, err, client.err)
}

func TestDisabledSenderDoesNotFail(t *testing.T) {
	log := logging.NewFakeLogger()
	err := NewDisabledSender(log).SendPasswordResetToken(context.Background(), user.User{ID: 1}, "secret-token")

	require.Nil(t, err)
	require.Equal(t, 1, log.CountByLevel(logging.WARNING))
	for _, record := range log.Logged {
		for _, entry := range record.Entries {
			require.NotEqual(t, "secret-token", entry.Value)
		}
	}
}
