package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"userhub/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

const (
	passwordResetSubject = "Reset your password"
	passwordResetHtml    = `<p>Hi {{firstName}},</p>
<p>Follow <a href="{{passwordResetUrl}}">this link</a> to set a new password.</p>
<p>If you did not ask for a password reset, ignore this email.</p>`
	passwordResetText = `Hi {{firstName}},

Follow this link to set a new password: {{passwordResetUrl}}

If you did not ask for a password reset, ignore this email.`
)

type SESTemplateAPI interface {
	CreateTemplate(
		ctx context.Context,
		params *ses.CreateTemplateInput,
		optFns ...func(*ses.Options),
	) (*ses.CreateTemplateOutput, error)
	DeleteTemplate(
		ctx context.Context,
		params *ses.DeleteTemplateInput,
		optFns ...func(*ses.Options),
	) (*ses.DeleteTemplateOutput, error)
	SendTemplatedEmail(
		ctx context.Context,
		params *ses.SendTemplatedEmailInput,
		optFns ...func(*ses.Options),
	) (*ses.SendTemplatedEmailOutput, error)
}

func main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}

	cfg, err := config.LoadAws()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	awsCfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(cfg.AwsRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.AwsAccessKey,
				cfg.AwsSecretKey,
				"",
			),
		),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := run(context.Background(), ses.NewFromConfig(awsCfg), cfg, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: ses_templates create|delete|send [-to address]")
}

func run(ctx context.Context, svc SESTemplateAPI, cfg *config.AwsConfig, args []string, out io.Writer) error {
	name := cfg.AwsEmailPasswordResetTemplate
	if name == "" {
		return fmt.Errorf("AWS_EMAIL_PASSWORD_RESET_TEMPLATE must be set")
	}

	switch args[0] {
	case "create":
		_, err := svc.CreateTemplate(ctx, &ses.CreateTemplateInput{
			Template: &types.Template{
				TemplateName: aws.String(name),
				SubjectPart:  aws.String(passwordResetSubject),
				HtmlPart:     aws.String(passwordResetHtml),
				TextPart:     aws.String(passwordResetText),
			},
		})
		if err != nil {
			return err
		}
	case "delete":
		_, err := svc.DeleteTemplate(ctx, &ses.DeleteTemplateInput{TemplateName: aws.String(name)})
		if err != nil {
			return err
		}
	case "send":
		flags := flag.NewFlagSet("send", flag.ContinueOnError)
		to := flags.String("to", "", "recipient address")
		if err := flags.Parse(args[1:]); err != nil {
			return err
		}
		if *to == "" {
			return fmt.Errorf("-to must be set")
		}
		if cfg.AwsEmailSender == "" {
			return fmt.Errorf("AWS_EMAIL_SENDER must be set")
		}
		data, err := json.Marshal(map[string]string{
			"firstName":        "Test",
			"passwordResetUrl": "https://example.com/password-reset?token=test",
		})
		if err != nil {
			return err
		}
		_, err = svc.SendTemplatedEmail(ctx, &ses.SendTemplatedEmailInput{
			Source:       aws.String(cfg.AwsEmailSender),
			Destination:  &types.Destination{ToAddresses: []string{*to}},
			Template:     aws.String(name),
			TemplateData: aws.String(string(data)),
		})
		if err != nil {
			return err
		}
	default:
		usage(out)
		return fmt.Errorf("unknown command %q", args[0])
	}

	fmt.Fprintf(out, "Success: %s %s\n", args[0], name)
	return nil
}
