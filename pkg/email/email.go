// Package email sends analysis reports over SMTP. The service is optional:
// when SMTP credentials are absent the report endpoint degrades to 503 and
// the rest of the API keeps working.
package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/SYEDZUHAIR786-GITH/ATS-checker/config"
)

// EmailService handles sending emails via SMTP
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
}

// ReportEmailData holds the analysis fields rendered into the report email.
type ReportEmailData struct {
	ATSScore        float64
	MatchPercentage float64
	MatchedSkills   []string
	MissingSkills   []string
	Suggestions     []string
}

// NewEmailService creates a new email service from the SMTP configuration
func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
	}
}

// reportEmailTemplate is the HTML template for analysis report emails
const reportEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Your ATS Analysis Results</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #667eea; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .score-card { background: white; padding: 15px; border-left: 4px solid #667eea; margin-bottom: 15px; }
        .score-value { font-size: 24px; font-weight: bold; }
        .score-label { color: #666; font-size: 12px; }
        .section-title { font-weight: bold; color: #555; margin-top: 15px; }
        ul { margin: 5px 0; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Your ATS Analysis Results</h1>
        </div>
        <div class="content">
            <div class="score-card">
                <div class="score-value">{{printf "%.2f" .ATSScore}}</div>
                <div class="score-label">ATS Score (0-100)</div>
            </div>
            <div class="score-card">
                <div class="score-value">{{printf "%.2f" .MatchPercentage}}%</div>
                <div class="score-label">Skill Match</div>
            </div>
            <div class="section-title">Matched Skills</div>
            <ul>{{range .MatchedSkills}}<li>{{.}}</li>{{else}}<li>None found</li>{{end}}</ul>
            <div class="section-title">Missing Skills</div>
            <ul>{{range .MissingSkills}}<li>{{.}}</li>{{else}}<li>None</li>{{end}}</ul>
            <div class="section-title">Suggestions</div>
            <ul>{{range .Suggestions}}<li>{{.}}</li>{{end}}</ul>
        </div>
        <div class="footer">
            <p>This report was generated by the ATS Resume Checker. Results are not stored.</p>
        </div>
    </div>
</body>
</html>`

// SendAnalysisReport sends the rendered analysis report to the recipient
func (s *EmailService) SendAnalysisReport(to string, data ReportEmailData) error {
	tmpl, err := template.New("report").Parse(reportEmailTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse email template: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	// Construct MIME message
	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: Your ATS Resume Analysis Results\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.fromEmail,
		to,
		body.String(),
	))

	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}
