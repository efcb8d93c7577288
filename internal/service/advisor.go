package service

import (
	"context"
	"fmt"
	"time"

	"core/internal/model"
	"core/internal/repository"
	"core/internal/rules"
	"core/internal/utils"

	"github.com/google/uuid"
)

// AdvisorService wires the classifier, resolver and dialogue engine into
// the two request pipelines: image analysis and chat
type AdvisorService struct {
	classifier *Classifier
	resolver   *Resolver
	dialogue   *DialogueEngine
	store      *rules.Store
	repo       *repository.PostgresRepository // nil when activity logging is disabled
	imageSize  int
}

// NewAdvisorService creates a new advisor service
func NewAdvisorService(
	classifier *Classifier,
	resolver *Resolver,
	dialogue *DialogueEngine,
	store *rules.Store,
	repo *repository.PostgresRepository,
	imageSize int,
) *AdvisorService {
	return &AdvisorService{
		classifier: classifier,
		resolver:   resolver,
		dialogue:   dialogue,
		store:      store,
		repo:       repo,
		imageSize:  imageSize,
	}
}

// Analyze runs one image through the full pipeline: preprocess,
// classify, resolve to a recommendation, attach the maps link
func (s *AdvisorService) Analyze(ctx context.Context, imageData []byte, lat, lng *float64) (*model.Recommendation, error) {
	startTime := time.Now()

	pixels, err := utils.PreprocessImage(imageData, s.imageSize)
	if err != nil {
		return nil, fmt.Errorf("image preprocessing failed: %w", err)
	}

	scores, err := s.classifier.Classify(ctx, pixels)
	if err != nil {
		return nil, fmt.Errorf("classification failed: %w", err)
	}

	rec := s.resolver.Resolve(scores)
	rec.AnalysisID = uuid.New().String()
	rec.NearestRecyclingLink = utils.BuildMapsLink(lat, lng)

	took := time.Since(startTime).Milliseconds()

	// Log analysis (non-blocking)
	if s.repo != nil {
		go func(rec model.Recommendation) {
			_ = s.repo.LogAnalysis(context.Background(), rec.AnalysisID, rec.PredictedClass, rec.Confidence, rec.Category, rec.DisposalSteps, int(took))
		}(rec)
	}

	return &rec, nil
}

// Chat produces a reply for one user message plus caller-supplied
// conversation context
func (s *AdvisorService) Chat(ctx context.Context, message string, convCtx model.ConversationContext) *model.ChatResponse {
	startTime := time.Now()

	reply, intent := s.dialogue.ReplyWithIntent(message, convCtx)

	took := time.Since(startTime).Milliseconds()

	// Log chat turn (non-blocking)
	if s.repo != nil {
		go func() {
			_ = s.repo.LogChat(context.Background(), message, intent, convCtx.LastClass, int(took))
		}()
	}

	return &model.ChatResponse{Reply: reply}
}

// Feedback records user feedback against a previous analysis
func (s *AdvisorService) Feedback(ctx context.Context, analysisID, action, comment string) error {
	if s.repo == nil {
		return fmt.Errorf("activity logging is not enabled")
	}
	return s.repo.LogFeedback(ctx, analysisID, action, comment)
}

// ListRules returns short summaries of all loaded disposal rules
func (s *AdvisorService) ListRules() []model.RuleSummary {
	return s.store.Summaries()
}
