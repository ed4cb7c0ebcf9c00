package postgre

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"llm-personal-assistant/internal/model"
	"llm-personal-assistant/internal/prompt/repository"
)

// seedCatalog is the default prompt set installed on first boot.
var seedCatalog = []model.Prompt{
	{Question: "What are your main goals for today?", Cadence: model.CadenceDaily},
	{Question: "Are there any important deadlines coming up this week?", Cadence: model.CadenceWeekly},
	{Question: "What long-term projects do you need to make progress on this month?", Cadence: model.CadenceMonthly},
	{Question: "Are there any tasks you've been procrastinating on?", Cadence: model.CadenceWeekly},
	{Question: "Do you have any appointments or meetings to schedule?", Cadence: model.CadenceDaily},
	{Question: "What self-care activities do you want to prioritize this week?", Cadence: model.CadenceWeekly},
	{Question: "Are there any skills you want to work on improving this month?", Cadence: model.CadenceMonthly},
	{Question: "Do you need to follow up on any communications today?", Cadence: model.CadenceDaily},
	{Question: "What tasks depend on other tasks or people?", Cadence: model.CadenceWeekly},
	{Question: "What do you want to achieve in your free time this month?", Cadence: model.CadenceMonthly},
}

func (r *implRepository) Seed(ctx context.Context) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Prompt{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	prompts := make([]model.Prompt, len(seedCatalog))
	for i, p := range seedCatalog {
		p.ID = uuid.New().String()
		prompts[i] = p
	}
	if err := r.db.WithContext(ctx).Create(&prompts).Error; err != nil {
		return err
	}
	r.l.Infof(ctx, "postgre.Seed: installed %d default prompts", len(prompts))
	return nil
}

func (r *implRepository) GetPrompt(ctx context.Context, id string) (model.Prompt, error) {
	if p, ok := r.cache.Get(id); ok {
		return p, nil
	}

	var p model.Prompt
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Prompt{}, repository.ErrNotFound
		}
		return model.Prompt{}, err
	}
	r.cache.Add(p.ID, p)
	return p, nil
}

func (r *implRepository) ListByCadence(ctx context.Context, cadence model.Cadence) ([]model.Prompt, error) {
	var prompts []model.Prompt
	err := r.db.WithContext(ctx).
		Where("cadence = ?", cadence).
		Order("question ASC").
		Find(&prompts).Error
	if err != nil {
		return nil, err
	}
	return prompts, nil
}

func (r *implRepository) CreateResponse(ctx context.Context, resp model.PromptResponse) (model.PromptResponse, error) {
	if resp.ID == "" {
		resp.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(&resp).Error; err != nil {
		return model.PromptResponse{}, err
	}
	return resp, nil
}

func (r *implRepository) ListResponses(ctx context.Context, promptID string) ([]model.PromptResponse, error) {
	var responses []model.PromptResponse
	err := r.db.WithContext(ctx).
		Where("prompt_id = ?", promptID).
		Order("timestamp DESC").
		Find(&responses).Error
	if err != nil {
		return nil, err
	}
	return responses, nil
}
