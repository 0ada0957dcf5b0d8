package messaging

import (
	"context"
	"strings"
	"text/template"
	"time"

	"github.com/KirkDiggler/mentorcast/internal/models"
	"github.com/KirkDiggler/mentorcast/internal/services/recipients"
)

const displayDateLayout = "Mon, 02 Jan 2006"

// emailCopy is the subject line and body template of one variant
type emailCopy struct {
	subject *template.Template
	body    *template.Template
}

var emails = map[recipients.Variant]emailCopy{
	recipients.VariantRescheduled: {
		subject: mustSubject("Session rescheduled: {{.Subject}}"),
		body: mustBody(`Hi {{.Name}},

{{.Subject}} for {{.Cohort}} has moved from {{.PreviousWhen}} to {{.When}}.
{{template "link" .}}`),
	},
	recipients.VariantDetailsUpdated: {
		subject: mustSubject("Session updated: {{.Subject}}"),
		body: mustBody(`Hi {{.Name}},

The {{.When}} session for {{.Cohort}} is now {{.Subject}}{{if .Topic}} ({{.Topic}}){{end}}.
{{template "link" .}}`),
	},
	recipients.VariantMentorChanged: {
		subject: mustSubject("New mentor for {{.Subject}}"),
		body: mustBody(`Hi {{.Name}},

{{.Mentor}} will take {{.Subject}} for {{.Cohort}} on {{.When}}.
{{template "link" .}}`),
	},
	recipients.VariantMentorRemoved: {
		subject: mustSubject("You are no longer mentoring {{.Subject}}"),
		body: mustBody(`Hi {{.Name}},

You have been unassigned from {{.Subject}} for {{.Cohort}} on {{.When}}. No action is needed.`),
	},
	recipients.VariantMentorAssigned: {
		subject: mustSubject("You are now mentoring {{.Subject}}"),
		body: mustBody(`Hi {{.Name}},

You have been assigned {{.Subject}} for {{.Cohort}} on {{.When}}.
{{template "link" .}}`),
	},
	recipients.VariantMentorCovered: {
		subject: mustSubject("Your session {{.Subject}} is covered"),
		body: mustBody(`Hi {{.Name}},

{{.Mentor}} will cover your {{.Subject}} session for {{.Cohort}} on {{.When}}.`),
	},
	recipients.VariantMentorRestored: {
		subject: mustSubject("Your session {{.Subject}} is back with you"),
		body: mustBody(`Hi {{.Name}},

The cover for {{.Subject}} on {{.When}} was removed. You are taking the session for {{.Cohort}}.
{{template "link" .}}`),
	},
	recipients.VariantCoverageAssigned: {
		subject: mustSubject("Please cover {{.Subject}}"),
		body: mustBody(`Hi {{.Name}},

You are covering {{.Subject}} for {{.Cohort}} on {{.When}}.
{{template "link" .}}`),
	},
	recipients.VariantCoverageRemoved: {
		subject: mustSubject("Cover cancelled for {{.Subject}}"),
		body: mustBody(`Hi {{.Name}},

You are no longer covering {{.Subject}} for {{.Cohort}} on {{.When}}. No action is needed.`),
	},
	recipients.VariantAnnounced: {
		subject: mustSubject("Upcoming session: {{.Subject}}"),
		body: mustBody(`Hi {{.Name}},

{{.Subject}}{{if .Topic}} ({{.Topic}}){{end}} for {{.Cohort}} is on {{.When}}{{if .Mentor}} with {{.Mentor}}{{end}}.
{{template "link" .}}`),
	},
}

func mustSubject(text string) *template.Template {
	return template.Must(template.New("subject").Parse(text))
}

func mustBody(text string) *template.Template {
	t := template.Must(template.New("body").Parse(text))
	template.Must(t.New("link").Parse(`{{if .Link}}Join: {{.Link}}{{else if .Contest}}This is a contest, no meeting link is needed.{{end}}`))
	return t
}

// view is the data every template renders from
type view struct {
	Name         string
	Cohort       string
	Subject      string
	Topic        string
	When         string
	PreviousWhen string
	Mentor       string
	Link         string
	Contest      bool
}

// service implements the Service interface
type service struct {
	templatePrefix string
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	prefix := "mentorcast_"
	if config != nil && config.TemplatePrefix != "" {
		prefix = config.TemplatePrefix
	}
	return &service{templatePrefix: prefix}, nil
}

// BuildEmail renders the subject and plain text body for a variant
func (s *service) BuildEmail(ctx context.Context, input *BuildEmailInput) (*BuildEmailOutput, error) {
	v, err := newView(input.Recipient, input.Details)
	if err != nil {
		return nil, err
	}

	tmpl, ok := emails[input.Variant]
	if !ok {
		return nil, ErrUnknownVariant
	}

	subject, err := render(tmpl.subject, v)
	if err != nil {
		return nil, err
	}
	body, err := render(tmpl.body, v)
	if err != nil {
		return nil, err
	}

	return &BuildEmailOutput{
		Subject: subject,
		Body:    strings.TrimSpace(body) + "\n",
	}, nil
}

// BuildTemplate maps a variant to its approved WhatsApp template.
// Parameter order is fixed: name, cohort, subject, when, then the variant's extra value.
func (s *service) BuildTemplate(ctx context.Context, input *BuildTemplateInput) (*BuildTemplateOutput, error) {
	v, err := newView(input.Recipient, input.Details)
	if err != nil {
		return nil, err
	}
	if _, ok := emails[input.Variant]; !ok {
		return nil, ErrUnknownVariant
	}

	params := []string{v.Name, v.Cohort, v.Subject, v.When}
	switch input.Variant {
	case recipients.VariantRescheduled:
		params = append(params, v.PreviousWhen)
	case recipients.VariantMentorChanged, recipients.VariantMentorCovered, recipients.VariantAnnounced:
		params = append(params, v.Mentor)
	}
	if v.Link != "" {
		params = append(params, v.Link)
	}

	return &BuildTemplateOutput{
		TemplateID: s.templatePrefix + string(input.Variant),
		Params:     params,
	}, nil
}

func newView(recipient *models.Contact, d *Details) (*view, error) {
	if d == nil || d.Session == nil {
		return nil, ErrNilDetails
	}
	if recipient == nil {
		return nil, ErrNilRecipient
	}

	sess := d.Session
	cohort := sess.Table
	if c, err := models.ParseCohort(sess.Table); err == nil {
		cohort = c.Label()
	}

	name := recipient.Name
	if name == "" {
		name = "there"
	}

	v := &view{
		Name:    name,
		Cohort:  cohort,
		Subject: sess.SubjectName,
		Topic:   sess.SubjectTopic,
		When:    when(sess.Date, sess.Time),
		Mentor:  d.MentorName,
		Contest: sess.SessionType.IsContest(),
	}
	if d.PreviousDate != "" || d.PreviousTime != "" {
		v.PreviousWhen = when(d.PreviousDate, d.PreviousTime)
	}
	if sess.HasMeeting() {
		v.Link = *sess.MeetingLink
	}
	return v, nil
}

// when formats a stored date and time for people, falling back to the raw values
func when(date, clock string) string {
	t, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return strings.TrimSpace(date + " " + clock)
	}
	return t.Format(displayDateLayout) + " at " + clock
}

func render(t *template.Template, v *view) (string, error) {
	var b strings.Builder
	if err := t.Execute(&b, v); err != nil {
		return "", err
	}
	return b.String(), nil
}
