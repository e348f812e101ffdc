package ses

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"awaaz/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a SES-backed CodeSender. The verification code is
// delivered to the account's email address; the phone number is included so
// the recipient can spot a code they never asked for.
func NewSESSender(region, fromAddress, fromName string) (port.CodeSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	return &sesSender{
		client:      sesv2.NewFromConfig(cfg),
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendCode(ctx context.Context, phone, email, name, code string) error {
	subject := fmt.Sprintf("%s is your Awaaz verification code", code)
	htmlBody := buildCodeHTML(name, phone, code)
	textBody := fmt.Sprintf("Hi %s,\n\nYour verification code for the phone number %s is:\n\n%s\n\nThe code expires in a few minutes. If you didn't request it, you can ignore this email.\n\nAwaaz Team", name, phone, code)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{email},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildCodeHTML(name, phone, code string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Your verification code</h2>
  <p>Hi %s,</p>
  <p>Use the code below to verify the phone number %s:</p>
  <p style="text-align: center; margin: 30px 0;">
    <span style="font-size: 32px; letter-spacing: 8px; font-weight: bold; color: #4F46E5;">%s</span>
  </p>
  <p style="color: #999; font-size: 12px;">The code expires in a few minutes. If you didn't request it, you can safely ignore this email.</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">Awaaz - Raise Your Voice</p>
</body>
</html>`, name, phone, code)
}
