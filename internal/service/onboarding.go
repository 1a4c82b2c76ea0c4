package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sms-assistant-backend/internal/chunker"
	"sms-assistant-backend/internal/database/models"
	apperrors "sms-assistant-backend/internal/errors"
	"sms-assistant-backend/internal/index"
	"sms-assistant-backend/internal/logger"
	"sms-assistant-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OnboardingOutcome names the terminal state of one onboarding attempt.
type OnboardingOutcome string

const (
	OutcomeCreated             OnboardingOutcome = "created"
	OutcomeAlreadyExists       OnboardingOutcome = "noop_already_exists"
	OutcomeFailedIndexCreation OnboardingOutcome = "failed_at_index_creation"
	OutcomeFailedIngestion     OnboardingOutcome = "failed_at_ingestion"
	OutcomeFailedMetadata      OnboardingOutcome = "failed_at_metadata"
	OutcomeFailedLinking       OnboardingOutcome = "failed_at_linking"
)

// OnboardingService runs the document onboarding sequence: derive the
// collection handle, create and fill the vector collection, register the
// document's metadata, then link the shortcode. The sequence never rolls
// back; each failure leaves earlier steps in place and reports where it
// stopped, so a retry resumes from the first missing piece.
type OnboardingService struct {
	orgRepo   repository.OrganizationRepositoryInterface
	docRepo   repository.DocumentRepositoryInterface
	scRepo    repository.ShortCodeRepositoryInterface
	index     index.Service
	chunker   *chunker.PageChunker
	validator *validator.Validate
	logger    *logger.Logger
}

// NewOnboardingService creates a new onboarding service
func NewOnboardingService(
	orgRepo repository.OrganizationRepositoryInterface,
	docRepo repository.DocumentRepositoryInterface,
	scRepo repository.ShortCodeRepositoryInterface,
	indexSvc index.Service,
	pageChunker *chunker.PageChunker,
	validator *validator.Validate,
	log *logger.Logger,
) *OnboardingService {
	return &OnboardingService{
		orgRepo:   orgRepo,
		docRepo:   docRepo,
		scRepo:    scRepo,
		index:     indexSvc,
		chunker:   pageChunker,
		validator: validator,
		logger:    log,
	}
}

// OnboardRequest represents one document onboarding attempt
type OnboardRequest struct {
	OrganizationID uuid.UUID `validate:"required"`
	FileName       string    `validate:"required,min=1,max=200"`
	Content        string    `validate:"required"`
	ShortCode      string    `validate:"omitempty,numeric,min=3,max=20"`
	Description    string    `validate:"omitempty,max=2000"`
}

// OnboardingResult reports where the onboarding sequence ended
type OnboardingResult struct {
	Outcome          OnboardingOutcome `json:"outcome"`
	CollectionHandle string            `json:"collection_handle"`
	DocumentID       *uuid.UUID        `json:"document_id,omitempty"`
	ChunksIngested   int               `json:"chunks_ingested"`
	Detail           string            `json:"detail,omitempty"`
}

// Failed reports whether the outcome is one of the failure states.
func (r *OnboardingResult) Failed() bool {
	return r.Outcome != OutcomeCreated && r.Outcome != OutcomeAlreadyExists
}

// Onboard runs the full onboarding sequence for one uploaded document.
// The returned result always carries an outcome; err is non-nil exactly
// when the result is a failure state.
func (s *OnboardingService) Onboard(ctx context.Context, req *OnboardRequest) (*OnboardingResult, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	org, err := s.orgRepo.GetByID(req.OrganizationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	handle := CollectionHandle(org.Name, req.FileName)
	result := &OnboardingResult{CollectionHandle: handle}

	log := s.logger.WithFields(map[string]interface{}{
		"organization": org.Name,
		"collection":   handle,
	})

	// Existence check against the index decides whether this is a fresh
	// onboarding, a retry, or a pure duplicate.
	existing, err := s.index.ListCollections(ctx)
	if err != nil {
		return s.fail(result, OutcomeFailedIndexCreation, err)
	}
	collectionExists := HandleExists(existing, handle)

	if collectionExists {
		doc, err := s.docRepo.GetByCollectionHandle(handle)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return s.fail(result, OutcomeFailedMetadata, err)
		}
		if doc != nil {
			if doc.OrganizationID != org.ID {
				// Distinct organization names can normalize to the same
				// handle ("Acme Co" vs "AcmeCo"). The handle is taken by
				// another tenant, not a duplicate of this upload.
				return nil, apperrors.NewAlreadyExistsError("collection handle", "for another organization")
			}
			// Fully onboarded already; report and stop without touching
			// the index again.
			result.Outcome = OutcomeAlreadyExists
			result.DocumentID = &doc.ID
			log.Info("Document already onboarded")
			return result, nil
		}
		// Collection exists but metadata is missing: an earlier attempt
		// died between ingestion and registration. Adopt the collection
		// only when no other organization's name derives this handle, so
		// one tenant never registers metadata over another tenant's
		// ingested content.
		taken, err := s.handleTakenByOther(org.ID, req.FileName, handle)
		if err != nil {
			return s.fail(result, OutcomeFailedMetadata, err)
		}
		if taken {
			return nil, apperrors.NewAlreadyExistsError("collection handle", "for another organization")
		}
		log.Info("Resuming onboarding for existing collection")
	} else {
		if err := s.index.CreateCollection(ctx, handle); err != nil {
			return s.fail(result, OutcomeFailedIndexCreation, err)
		}

		chunks := s.chunker.Chunk(req.Content)
		if len(chunks) == 0 {
			return s.fail(result, OutcomeFailedIngestion,
				apperrors.NewValidationError("content", "document has no extractable text"))
		}
		texts := make([]string, len(chunks))
		for i, c := range chunks {
			texts[i] = c.Text
		}

		ingested, err := s.index.Ingest(ctx, handle, texts)
		result.ChunksIngested = ingested
		if err != nil {
			return s.fail(result, OutcomeFailedIngestion, err)
		}
	}

	doc := &models.Document{
		Name:             req.FileName,
		OrganizationID:   org.ID,
		CollectionHandle: handle,
		Description:      req.Description,
	}
	if err := s.docRepo.Create(doc); err != nil {
		return s.fail(result, OutcomeFailedMetadata, err)
	}
	result.DocumentID = &doc.ID

	if req.ShortCode != "" {
		if err := s.linkShortCode(org.ID, req.ShortCode, doc.ID); err != nil {
			return s.fail(result, OutcomeFailedLinking, err)
		}
	}

	result.Outcome = OutcomeCreated
	log.WithField("chunks", result.ChunksIngested).Info("Document onboarded")
	return result, nil
}

// handleTakenByOther reports whether another organization's name derives the
// same collection handle for this file name.
func (s *OnboardingService) handleTakenByOther(orgID uuid.UUID, fileName, handle string) (bool, error) {
	orgs, _, err := s.orgRepo.GetAll(-1, 0)
	if err != nil {
		return false, fmt.Errorf("failed to list organizations: %w", err)
	}
	for _, other := range orgs {
		if other.ID == orgID {
			continue
		}
		if strings.EqualFold(CollectionHandle(other.Name, fileName), handle) {
			return true, nil
		}
	}
	return false, nil
}

// linkShortCode resolves or registers the shortcode and links it to the
// document. A code held by another organization is a conflict.
func (s *OnboardingService) linkShortCode(orgID uuid.UUID, code string, documentID uuid.UUID) error {
	sc, err := s.scRepo.GetByCode(code)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to get shortcode: %w", err)
	}
	if sc == nil {
		sc = &models.ShortCode{Code: code, OrganizationID: orgID}
		if err := s.scRepo.Create(sc); err != nil {
			return fmt.Errorf("failed to create shortcode: %w", err)
		}
	} else if sc.OrganizationID != orgID {
		return apperrors.ErrShortCodeExists
	}

	existing, err := s.scRepo.GetLink(sc.ID, documentID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing link: %w", err)
	}
	if existing != nil {
		return nil
	}

	if err := s.scRepo.CreateLink(&models.ShortCodeDocument{
		ShortCodeID: sc.ID,
		DocumentID:  documentID,
	}); err != nil {
		return fmt.Errorf("failed to link shortcode: %w", err)
	}
	return nil
}

func (s *OnboardingService) fail(result *OnboardingResult, outcome OnboardingOutcome, err error) (*OnboardingResult, error) {
	result.Outcome = outcome
	result.Detail = err.Error()
	s.logger.WithFields(map[string]interface{}{
		"collection": result.CollectionHandle,
		"outcome":    string(outcome),
	}).Errorf("Onboarding failed: %v", err)
	return result, err
}
