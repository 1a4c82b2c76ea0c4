package service

import (
	"context"
	"errors"
	"strings"

	"sms-assistant-backend/internal/answer"
	"sms-assistant-backend/internal/index"
	"sms-assistant-backend/internal/logger"
	"sms-assistant-backend/internal/repository"
	"sms-assistant-backend/internal/sms"

	"gorm.io/gorm"
)

// RouteState names the terminal state of one inbound message.
type RouteState string

const (
	StateAnswered          RouteState = "answered"
	StateAnswerFailed      RouteState = "answer_failed"
	StateNumberRejected    RouteState = "number_rejected"
	StateShortCodeNotFound RouteState = "short_code_not_found"
)

const defaultTopK = 4

// RouterService turns an inbound SMS into exactly one outbound reply.
// Every inbound message gets a response: an answer when the pipeline
// succeeds, the registration notice for unknown senders, and the fallback
// text for everything else. No failure is allowed to leave the sender
// without a reply.
type RouterService struct {
	scRepo   repository.ShortCodeRepositoryInterface
	docRepo  repository.DocumentRepositoryInterface
	areaRepo repository.AreaRepositoryInterface
	index    index.Service
	answers  answer.Service
	gateway  sms.Gateway

	fallbackMessage     string
	registrationMessage string
	topK                int
	logger              *logger.Logger
}

// NewRouterService creates a new inbound message router
func NewRouterService(
	scRepo repository.ShortCodeRepositoryInterface,
	docRepo repository.DocumentRepositoryInterface,
	areaRepo repository.AreaRepositoryInterface,
	indexSvc index.Service,
	answers answer.Service,
	gateway sms.Gateway,
	fallbackMessage, registrationMessage string,
	log *logger.Logger,
) *RouterService {
	return &RouterService{
		scRepo:              scRepo,
		docRepo:             docRepo,
		areaRepo:            areaRepo,
		index:               indexSvc,
		answers:             answers,
		gateway:             gateway,
		fallbackMessage:     fallbackMessage,
		registrationMessage: registrationMessage,
		topK:                defaultTopK,
		logger:              log,
	}
}

// InboundMessage is one message delivered by the SMS gateway webhook.
type InboundMessage struct {
	To   string `form:"to" json:"to"`
	From string `form:"from" json:"from"`
	Text string `form:"text" json:"text"`
}

// InboundResult reports how an inbound message was handled.
type InboundResult struct {
	State RouteState `json:"state"`
	Reply string     `json:"reply"`
}

// HandleInbound processes one inbound message and always attempts to send
// exactly one reply. A reply delivery failure is logged; the webhook caller
// has nothing useful to do with it and the gateway will not redeliver.
func (s *RouterService) HandleInbound(ctx context.Context, msg *InboundMessage) *InboundResult {
	result := s.route(ctx, msg)

	if err := s.gateway.Send(ctx, result.Reply, []string{msg.From}); err != nil {
		s.logger.WithFields(map[string]interface{}{
			"from":  msg.From,
			"state": string(result.State),
		}).Errorf("Failed to send reply: %v", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"to":    msg.To,
		"from":  msg.From,
		"state": string(result.State),
	}).Info("Inbound message handled")

	return result
}

// route decides the reply without sending it. The sender check runs before
// any shortcode resolution so unregistered numbers learn nothing about
// which codes exist.
func (s *RouterService) route(ctx context.Context, msg *InboundMessage) *InboundResult {
	registered, err := s.senderRegistered(msg.From)
	if err != nil {
		s.logger.Errorf("Failed to load area rosters: %v", err)
		return &InboundResult{State: StateAnswerFailed, Reply: s.fallbackMessage}
	}
	if !registered {
		return &InboundResult{State: StateNumberRejected, Reply: s.registrationMessage}
	}

	sc, err := s.scRepo.GetByCode(msg.To)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &InboundResult{State: StateShortCodeNotFound, Reply: s.fallbackMessage}
		}
		s.logger.Errorf("Failed to resolve shortcode %s: %v", msg.To, err)
		return &InboundResult{State: StateAnswerFailed, Reply: s.fallbackMessage}
	}

	doc, err := s.docRepo.GetLinkedByShortCodeID(sc.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &InboundResult{State: StateShortCodeNotFound, Reply: s.fallbackMessage}
		}
		s.logger.Errorf("Failed to resolve document for shortcode %s: %v", msg.To, err)
		return &InboundResult{State: StateAnswerFailed, Reply: s.fallbackMessage}
	}

	question := strings.TrimSpace(msg.Text)
	if question == "" {
		return &InboundResult{State: StateAnswerFailed, Reply: s.fallbackMessage}
	}

	chunks, err := s.index.Retrieve(ctx, doc.CollectionHandle, question, s.topK)
	if err != nil {
		s.logger.Errorf("Retrieval failed for collection %s: %v", doc.CollectionHandle, err)
		return &InboundResult{State: StateAnswerFailed, Reply: s.fallbackMessage}
	}

	// Conversation history is rebuilt per message; each inbound question
	// currently stands alone.
	reply, err := s.answers.Answer(ctx, question, chunks, nil)
	if err != nil {
		s.logger.Errorf("Answer generation failed for collection %s: %v", doc.CollectionHandle, err)
		return &InboundResult{State: StateAnswerFailed, Reply: s.fallbackMessage}
	}

	return &InboundResult{State: StateAnswered, Reply: reply}
}

func (s *RouterService) senderRegistered(from string) (bool, error) {
	areas, err := s.areaRepo.GetAll()
	if err != nil {
		return false, err
	}
	return IsRegisteredNumber(from, areas), nil
}
