package services

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sustainhire/internship-intake/internal/events"
	"github.com/sustainhire/internship-intake/internal/metrics"
	"github.com/sustainhire/internship-intake/internal/models"
	"github.com/sustainhire/internship-intake/internal/repositories"
	"github.com/sustainhire/internship-intake/internal/storage"
	"github.com/sustainhire/internship-intake/internal/utils"
)

type ApplicationService interface {
	// Submit validates c, stores the resume (if any) and inserts the application.
	// Validation failures are CodeInvalidArgument; storage and store failures are
	// CodeUnavailable, CodeTimeout or CodeInternal.
	Submit(ctx context.Context, c *models.Candidate, resume *ResumeUpload) (*models.Application, error)
}

type applicationService struct {
	repo      repositories.ApplicationRepository
	uploader  storage.Uploader
	publisher events.Publisher
	log       *logrus.Logger
	rules     ValidationRules
	now       func() time.Time
}

func NewApplicationService(repo repositories.ApplicationRepository, uploader storage.Uploader, publisher events.Publisher, log *logrus.Logger, rules ValidationRules) ApplicationService {
	if publisher == nil {
		publisher = events.Nop{}
	}
	if log == nil {
		log = logrus.New()
	}
	return &applicationService{
		repo:      repo,
		uploader:  uploader,
		publisher: publisher,
		log:       log,
		rules:     rules,
		now:       time.Now,
	}
}

func (s *applicationService) Submit(ctx context.Context, c *models.Candidate, resume *ResumeUpload) (*models.Application, error) {
	const op = "ApplicationService.Submit"

	start := s.now()
	defer func() { metrics.SubmissionDuration.Observe(time.Since(start).Seconds()) }()

	if c == nil {
		metrics.Submissions.WithLabelValues(metrics.OutcomeRejected).Inc()
		return nil, utils.E(utils.CodeInvalidArgument, op, "application is required", nil)
	}

	app, err := ValidateCandidate(c, resume, s.rules)
	if err != nil {
		metrics.Submissions.WithLabelValues(metrics.OutcomeRejected).Inc()
		entry := s.log.WithField("op", op)
		var ve *utils.ValidationError
		if errors.As(err, &ve) {
			entry = entry.WithField("fields", ve.Names())
		}
		entry.Warn("application rejected")
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid application", err)
	}
	app.SubmittedAt = start.UTC()

	if resume != nil {
		if s.uploader == nil {
			metrics.Submissions.WithLabelValues(metrics.OutcomeFailed).Inc()
			return nil, utils.E(utils.CodeInternal, op, "uploader is not configured", nil)
		}

		objectName := storage.ResumeObjectName(app.Email, resume.FileName, start)
		storedPath, err := s.uploader.Upload(ctx, objectName, resume.ContentType, resume.Body)
		if err != nil {
			metrics.Submissions.WithLabelValues(metrics.OutcomeFailed).Inc()
			return nil, utils.E(storeErrorCode(err, utils.CodeUnavailable), op, "failed to store resume", err)
		}
		app.Resume = storedPath
		app.ResumeFile = models.ResumeFile{
			FileName: resume.FileName,
			MimeType: resume.ContentType,
			Size:     resume.Size,
		}
		metrics.ResumeBytes.Observe(float64(resume.Size))
	}

	id, err := s.repo.Insert(ctx, app)
	if err != nil {
		metrics.Submissions.WithLabelValues(metrics.OutcomeFailed).Inc()
		if app.Resume != "" {
			// not rolled back; the file stays without a record pointing to it
			s.log.WithFields(logrus.Fields{
				"op":     op,
				"resume": app.Resume,
				"error":  err.Error(),
			}).Warn("orphaned resume file")
		}
		return nil, utils.E(storeErrorCode(err, utils.CodeInternal), op, "failed to save application", err)
	}

	metrics.Submissions.WithLabelValues(metrics.OutcomeStored).Inc()
	s.log.WithFields(logrus.Fields{
		"op":             op,
		"application_id": id,
		"role":           app.Role,
		"has_resume":     app.Resume != "",
	}).Info("application stored")

	evt := models.SubmissionEvent{
		ApplicationID: id,
		Email:         app.Email,
		Role:          app.Role,
		Resume:        app.Resume,
		SubmittedAt:   app.SubmittedAt,
	}
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.log.WithFields(logrus.Fields{
			"op":             op,
			"application_id": id,
			"error":          err.Error(),
		}).Warn("failed to publish submission event")
	}

	return app, nil
}

func storeErrorCode(err error, fallback utils.Code) utils.Code {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return utils.CodeTimeout
	default:
		return fallback
	}
}
