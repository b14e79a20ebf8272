// Package form runs the event submit pipeline: validate the submitted
// fields, push any staged image to the upload collaborator, assemble the
// final payload, and hand it to the event action.
package form

import (
	"context"

	"github.com/BangKartavya/evently/internal/domain"
	"github.com/BangKartavya/evently/internal/dto"
	"github.com/BangKartavya/evently/internal/service"
	"github.com/BangKartavya/evently/internal/upload"
	"github.com/BangKartavya/evently/internal/validation"
	"github.com/BangKartavya/evently/pkg/logger"
	"go.uber.org/zap"
)

// Mode selects the submit pipeline's target action
type Mode string

const (
	ModeCreate Mode = "create"
	ModeUpdate Mode = "update"
)

// Submission is one event form submission
type Submission struct {
	Mode        Mode
	EventID     string // update mode only
	OrganizerID string
	Form        *dto.EventForm
	StagedImage *upload.StagedFile // optional
	Path        string             // path to revalidate on success
}

// Result is what the pipeline hands back to the handler
type Result struct {
	// Redirect is where the client should go next. Set on success, and on
	// the silent-abort paths where the submission went nowhere.
	Redirect string
	// Event is the created or updated record, nil on the abort paths
	Event *domain.Event
}

// Pipeline runs event form submissions against the event action
type Pipeline struct {
	events   service.EventService
	uploader upload.Client
}

// NewPipeline creates a new form Pipeline
func NewPipeline(events service.EventService, uploader upload.Client) *Pipeline {
	return &Pipeline{events: events, uploader: uploader}
}

// Submit runs the full pipeline for one submission. Validation failures come
// back as a validation-class error with per-field messages. Upload and action
// failures are logged and swallowed: the client is sent back where it came
// from with no failure detail.
func (p *Pipeline) Submit(ctx context.Context, sub *Submission) (*Result, error) {
	if err := validation.ValidateEventForm(sub.Form); err != nil {
		return nil, err
	}

	if sub.Mode == ModeUpdate && sub.EventID == "" {
		// Nothing to update; send the client back without touching the action
		return &Result{Redirect: sub.Path}, nil
	}

	if sub.StagedImage != nil {
		url, ok := p.uploadImage(ctx, sub)
		if !ok {
			return &Result{Redirect: sub.Path}, nil
		}
		sub.Form.ImageURL = url
	}

	switch sub.Mode {
	case ModeUpdate:
		event, err := p.events.UpdateEvent(ctx, sub.EventID, sub.Form, sub.OrganizerID, sub.Path)
		if err != nil {
			logger.WithContext(ctx).Error("event update failed",
				zap.String("eventId", sub.EventID),
				zap.Error(err),
			)
			return &Result{Redirect: sub.Path}, nil
		}
		return &Result{Redirect: "/events/" + event.ID, Event: event}, nil
	default:
		event, err := p.events.CreateEvent(ctx, sub.Form, sub.OrganizerID, sub.Path)
		if err != nil {
			logger.WithContext(ctx).Error("event create failed", zap.Error(err))
			return &Result{Redirect: sub.Path}, nil
		}
		return &Result{Redirect: "/events/" + event.ID, Event: event}, nil
	}
}

// uploadImage pushes the staged image and returns its public URL. Both a
// failed upload and a response without a URL abort the submission silently.
func (p *Pipeline) uploadImage(ctx context.Context, sub *Submission) (string, bool) {
	results, err := p.uploader.Upload(ctx, []upload.StagedFile{*sub.StagedImage})
	if err != nil {
		logger.WithContext(ctx).Error("image upload failed",
			zap.String("file", sub.StagedImage.Name),
			zap.Error(err),
		)
		return "", false
	}
	if len(results) == 0 || results[0].URL == "" {
		logger.WithContext(ctx).Error("image upload returned no URL",
			zap.String("file", sub.StagedImage.Name),
		)
		return "", false
	}
	return results[0].URL, true
}
