// Package delivery_gateway renders a briefing into an email and hands it
// to the delivery driver. Rendering failures are delivery failures: a
// briefing that cannot be rendered is never partially sent.
package delivery_gateway

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/heyybhargav/personal-newsletter-sub000/domain"
	"github.com/heyybhargav/personal-newsletter-sub000/port/delivery_port"
	"github.com/heyybhargav/personal-newsletter-sub000/utils/errors"
)

// EmailSender is the transport half of delivery, satisfied by the
// delivery driver.
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, htmlBody string) error
}

type DeliveryGateway struct {
	sender   EmailSender
	template *template.Template
}

const briefingTemplate = `<html>
<body style="font-family: Georgia, serif; max-width: 600px; margin: 0 auto;">
{{- range .Paragraphs}}
<p>{{.}}</p>
{{- end}}
{{- if .TopStories}}
<h3>Top stories</h3>
<ul>
{{- range .TopStories}}
<li><a href="{{.Link}}">{{.Title}}</a> <span style="color: #888;">{{.SourceName}}</span></li>
{{- end}}
</ul>
{{- end}}
{{- if .TrialNote}}
<hr>
<p style="color: #888; font-size: 13px;">{{.TrialNote}}</p>
{{- end}}
</body>
</html>`

func NewDeliveryGateway(sender EmailSender) *DeliveryGateway {
	return &DeliveryGateway{
		sender:   sender,
		template: template.Must(template.New("briefing").Parse(briefingTemplate)),
	}
}

type templateData struct {
	Paragraphs []string
	TopStories []domain.TopStory
	TrialNote  string
}

func (g *DeliveryGateway) Deliver(ctx context.Context, recipient string, briefing *domain.Briefing, trial *delivery_port.TrialContext) error {
	subject := briefing.Subject
	if subject == "" {
		subject = "Your briefing for " + briefing.GeneratedAt.Format("January 2")
	}

	body, err := g.render(briefing, trial)
	if err != nil {
		return errors.DeliveryError("failed to render briefing", err, nil)
	}

	if err := g.sender.SendEmail(ctx, recipient, subject, body); err != nil {
		return errors.DeliveryError("failed to send briefing", err,
			map[string]interface{}{"recipient": recipient})
	}

	return nil
}

func (g *DeliveryGateway) render(briefing *domain.Briefing, trial *delivery_port.TrialContext) (string, error) {
	data := templateData{
		TopStories: briefing.TopStories,
	}

	for _, para := range strings.Split(briefing.Narrative, "\n\n") {
		if para = strings.TrimSpace(para); para != "" {
			data.Paragraphs = append(data.Paragraphs, para)
		}
	}

	if trial != nil {
		data.TrialNote = trialNote(trial.DaysLeft)
	}

	var buf bytes.Buffer
	if err := g.template.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func trialNote(daysLeft int) string {
	switch {
	case daysLeft <= 0:
		return "Your trial has ended. Upgrade to keep receiving briefings."
	case daysLeft == 1:
		return "1 day left in your trial."
	default:
		return fmt.Sprintf("%d days left in your trial.", daysLeft)
	}
}
