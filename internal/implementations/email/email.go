package email

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	e "userhub/internal/core/domain/errors"
	"userhub/internal/core/domain/user"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// SESAPI is the subset of the SES client used by EmailSender.
type SESAPI interface {
	SendTemplatedEmail(
		ctx context.Context,
		params *ses.SendTemplatedEmailInput,
		optFns ...func(*ses.Options),
	) (*ses.SendTemplatedEmailOutput, error)
}

type EmailSender struct {
	ses SESAPI
	// This address must be verified with Amazon SES.
	sender                string
	passwordResetTemplate string
	passwordResetBaseUrl  url.URL
}

func NewEmailSender(
	awsConfig aws.Config,
	sender string,
	passwordResetTemplate string,
	passwordResetBaseUrl url.URL,
) *EmailSender {
	return NewEmailSenderWithClient(ses.NewFromConfig(awsConfig), sender, passwordResetTemplate, passwordResetBaseUrl)
}

func NewEmailSenderWithClient(
	client SESAPI,
	sender string,
	passwordResetTemplate string,
	passwordResetBaseUrl url.URL,
) *EmailSender {
	if client == nil {
		panic(e.NewNilArgumentError("client"))
	}
	return &EmailSender{
		ses:                   client,
		sender:                sender,
		passwordResetTemplate: passwordResetTemplate,
		passwordResetBaseUrl:  passwordResetBaseUrl,
	}
}

func (s *EmailSender) SendPasswordResetToken(ctx context.Context, u user.User, token user.PasswordResetToken) error {
	if u.Email == "" {
		return errors.New("user email is not defined")
	}

	templateParamsBytes, err := json.Marshal(
		passwordResetTemplateParams{
			FirstName:        u.FirstName,
			PasswordResetUrl: s.passwordResetBaseUrl.JoinPath(string(token)).String(),
		},
	)
	if err != nil {
		return err
	}

	_, err = s.ses.SendTemplatedEmail(
		ctx,
		&ses.SendTemplatedEmailInput{
			Source:       aws.String(s.sender),
			Destination:  &types.Destination{ToAddresses: []string{string(u.Email)}},
			Template:     aws.String(s.passwordResetTemplate),
			TemplateData: aws.String(string(templateParamsBytes)),
		},
	)
	if err != nil {
		return fmt.Errorf("could not send password reset email: %w", err)
	}
	return nil
}

type passwordResetTemplateParams struct {
	FirstName        string `json:"firstName"`
	PasswordResetUrl string `json:"passwordResetUrl"`
}
