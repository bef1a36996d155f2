package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/flokkk/content-service/internal/dto"
	"github.com/flokkk/content-service/internal/repository"
	"github.com/flokkk/content-service/internal/repository/redisrepo"
	"github.com/google/uuid"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const DEFAULT_CHAT_DAILY_LIMIT = 20

// Categories a post can be classified into. Classification falls back to
// CATEGORY_DEFAULT when the model answer matches nothing.
var Categories = []string{
	"Trending",
	"Technology",
	"Science",
	"Gaming",
	"Music",
	"Movies",
	"Sports",
	"Business",
	"Lifestyle",
	"Education",
}

const CATEGORY_DEFAULT = "Trending"

// Generator produces a completion for a prompt. The Gemini-backed
// implementation lives in gemini.go; tests substitute their own.
type Generator interface {
	Generate(ctx context.Context, prompt string, temperature float32) (string, error)
}

// Searcher queries an external web-search provider.
type Searcher interface {
	Search(ctx context.Context, query string) ([]SearchResult, error)
}

type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

type chatService struct {
	logger    *zap.Logger
	repo      *repository.Repository
	generator Generator
	searcher  Searcher
}

func newChatService(logger *zap.Logger, repo *repository.Repository, generator Generator, searcher Searcher) Chat {
	return &chatService{
		logger:    logger,
		repo:      repo,
		generator: generator,
		searcher:  searcher,
	}
}

// HandleQuery answers a user query from community content, optionally blended
// with web-search results. The daily quota is consumed before any external
// call; a failing search provider degrades to community-only content instead
// of failing the request.
func (s *chatService) HandleQuery(ctx context.Context, userID uuid.UUID, input dto.ChatRequest) (*dto.ChatResponse, error) {
	remaining, err := s.consumeQuota(ctx, userID)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString("You are the assistant of a community content platform. Answer the user's question using the community posts below")
	if input.Theme != "" {
		b.WriteString(", keeping the community's theme (" + input.Theme + ") in mind")
	}
	b.WriteString(".\n\n[Community posts]\n")

	posts, err := s.repo.Postgres.Post.FindTrending(ctx, 24*7, 5)
	if err != nil {
		s.logger.Sugar().Errorf("failed to load community content for chat: %s", err.Error())
	}
	for _, post := range posts {
		fmt.Fprintf(&b, "- %s: %s\n", post.Post.Title, post.Post.Content)
	}

	response := dto.ChatResponse{
		QuotaRemaining: remaining,
	}

	if input.WebSearch {
		results, err := s.searcher.Search(ctx, input.Query)
		if err != nil {
			s.logger.Sugar().Errorf("web search failed for user(%s): %s", userID.String(), err.Error())
			response.WebSearchFailed = true
		} else {
			response.WebSearchUsed = true
			b.WriteString("\n[Web search results]\n")
			for _, result := range results {
				fmt.Fprintf(&b, "- %s (%s): %s\n", result.Title, result.URL, result.Snippet)
			}
		}
	}

	b.WriteString("\n[Question]\n")
	b.WriteString(input.Query)

	answer, err := s.generator.Generate(ctx, b.String(), 0.7)
	if err != nil {
		s.logger.Sugar().Errorf("failed to generate chat response for user(%s): %s", userID.String(), err.Error())
		return nil, ErrInternal
	}

	response.Response = answer
	return &response, nil
}

// consumeQuota counts the request against the user's daily allowance and
// returns how many requests remain.
func (s *chatService) consumeQuota(ctx context.Context, userID uuid.UUID) (int64, error) {
	limit := viper.GetInt64("chat.daily-limit")
	if limit <= 0 {
		limit = DEFAULT_CHAT_DAILY_LIMIT
	}

	now := time.Now().UTC()
	key := redisrepo.ChatQuotaKey(userID.String(), now.Format("2006-01-02"))

	count, err := s.repo.Redis.Default.Incr(ctx, key).Result()
	if err != nil {
		s.logger.Sugar().Errorf("failed to increment chat quota for user(%s): %s", userID.String(), err.Error())
		return 0, ErrInternal
	}

	if count == 1 {
		midnight := now.Truncate(24 * time.Hour).Add(24 * time.Hour)
		if err := s.repo.Redis.Default.Expire(ctx, key, midnight.Sub(now)).Err(); err != nil {
			s.logger.Sugar().Errorf("failed to expire chat quota key for user(%s): %s", userID.String(), err.Error())
		}
	}

	if count > limit {
		return 0, ErrChatQuotaExceeded
	}

	return limit - count, nil
}

// Classify maps a title+description onto one of the fixed categories with a
// single deterministic model call. Out-of-vocabulary answers fall back to a
// substring match, then to the default category.
func (s *chatService) Classify(ctx context.Context, input dto.ClassifyRequest) (string, error) {
	prompt := fmt.Sprintf(
		"Classify the following content into exactly one of these categories: %s.\nRespond with the category name only.\n\nTitle: %s\nDescription: %s",
		strings.Join(Categories, ", "),
		input.Title,
		input.Description,
	)

	answer, err := s.generator.Generate(ctx, prompt, 0)
	if err != nil {
		s.logger.Sugar().Errorf("failed to classify content: %s", err.Error())
		return CATEGORY_DEFAULT, nil
	}

	return matchCategory(answer), nil
}

func matchCategory(answer string) string {
	cleaned := strings.ToLower(strings.TrimSpace(answer))

	for _, category := range Categories {
		if cleaned == strings.ToLower(category) {
			return category
		}
	}

	for _, category := range Categories {
		if strings.Contains(cleaned, strings.ToLower(category)) {
			return category
		}
	}

	return CATEGORY_DEFAULT
}
