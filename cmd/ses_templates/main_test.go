package main

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"userhub/internal/config"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/require"
)

type stubSES struct {
	created *ses.CreateTemplateInput
	deleted *ses.DeleteTemplateInput
	sent    *ses.SendTemplatedEmailInput
	err     error
}

func (s *stubSES) CreateTemplate(
	ctx context.Context,
	params *ses.CreateTemplateInput,
	optFns ...func(*ses.Options),
) (*ses.CreateTemplateOutput, error) {
	s.created = params
	return &ses.CreateTemplateOutput{}, s.err
}

func (s *stubSES) DeleteTemplate(
	ctx context.Context,
	params *ses.DeleteTemplateInput,
	optFns ...func(*ses.Options),
) (*ses.DeleteTemplateOutput, error) {
	s.deleted = params
	return &ses.DeleteTemplateOutput{}, s.err
}

func (s *stubSES) SendTemplatedEmail(
	ctx context.Context,
	params *ses.SendTemplatedEmailInput,
	optFns ...func(*ses.Options),
) (*ses.SendTemplatedEmailOutput, error) {
	s.sent = params
	return &ses.SendTemplatedEmailOutput{}, s.err
}

var cfg = &config.AwsConfig{
	AwsEmailSender:                "no-reply@userhub.test",
	AwsEmailPasswordResetTemplate: "password-reset",
}

func TestCreate(t *testing.T) {
	svc := &stubSES{}
	out := &bytes.Buffer{}

	err := run(context.Background(), svc, cfg, []string{"create"}, out)

	assert := require.New(t)
	assert.Nil(err)
	assert.Equal("password-reset", *svc.created.Template.TemplateName)
	assert.Contains(*svc.created.Template.HtmlPart, "{{passwordResetUrl}}")
	assert.Contains(*svc.created.Template.TextPart, "{{firstName}}")
	assert.Equal("Success: create password-reset\n", out.String())
}

func TestDelete(t *testing.T) {
	svc := &stubSES{}

	err := run(context.Background(), svc, cfg, []string{"delete"}, &bytes.Buffer{})

	require.Nil(t, err)
	require.Equal(t, "password-reset", *svc.deleted.TemplateName)
}

func TestSend(t *testing.T) {
	svc := &stubSES{}

	err := run(context.Background(), svc, cfg, []string{"send", "-to", "a@b.com"}, &bytes.Buffer{})

	assert := require.New(t)
	assert.Nil(err)
	assert.Equal([]string{"a@b.com"}, svc.sent.Destination.ToAddresses)
	assert.Equal("no-reply@userhub.test", *svc.sent.Source)
	assert.JSONEq(
		`{"firstName":"Test","passwordResetUrl":"https://example.com/password-reset?token=test"}`,
		*svc.sent.TemplateData,
	)
}

func TestFails(t *testing.T) {
	cases := []struct {
		id   string
		svc  *stubSES
		cfg  *config.AwsConfig
		args []string
	}{
		{id: "unknown-command", svc: &stubSES{}, cfg: cfg, args: []string{"list"}},
		{id: "send-without-recipient", svc: &stubSES{}, cfg: cfg, args: []string{"send"}},
		{id: "missing-template", svc: &stubSES{}, cfg: &config.AwsConfig{}, args: []string{"create"}},
		{id: "aws-error", svc: &stubSES{err: errors.New("boom")}, cfg: cfg, args: []string{"delete"}},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			err := run(context.Background(), testcase.svc, testcase.cfg, testcase.args, &bytes.Buffer{})
			require.NotNil(t, err)
		})
	}
}
