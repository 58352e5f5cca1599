package services

import (
	"fmt"
	"time"

	"tactify-cms/models"
	"tactify-cms/repositories"
)

const triviaDateLayout = "2006-01-02"

type TriviaService interface {
	Create(req models.TriviaCreateRequest) (*models.Trivia, error)
	Update(id int, req models.TriviaEditRequest) (*models.Trivia, error)
	Delete(id int) error
	GetByID(id int) (*models.Trivia, error)
	ListAll() ([]models.Trivia, error)
	RandomSample(n int) ([]models.Trivia, error)
}

type triviaService struct {
	triviaRepo repositories.TriviaRepository
}

func NewTriviaService(triviaRepo repositories.TriviaRepository) TriviaService {
	return &triviaService{triviaRepo: triviaRepo}
}

// Create stores a trivia entry. The form's url field is accepted and
// discarded; it has never been part of the entity.
func (s *triviaService) Create(req models.TriviaCreateRequest) (*models.Trivia, error) {
	date, err := time.Parse(triviaDateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: bad date %q", models.ErrValidation, req.Date)
	}

	trivia := &models.Trivia{
		Header: req.Header,
		Body:   req.Body,
		Tags:   req.Tags,
		Date:   date,
		Kind:   models.KindTrivia,
	}
	if err := s.triviaRepo.Create(trivia); err != nil {
		return nil, err
	}
	return trivia, nil
}

func (s *triviaService) Update(id int, req models.TriviaEditRequest) (*models.Trivia, error) {
	trivia, err := s.triviaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse(triviaDateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: bad date %q", models.ErrValidation, req.Date)
	}

	trivia.Header = req.Header
	trivia.Body = req.Body
	trivia.Tags = req.Tags
	trivia.Date = date
	trivia.Kind = models.KindTrivia

	if err := s.triviaRepo.Update(trivia); err != nil {
		return nil, err
	}
	return trivia, nil
}

func (s *triviaService) Delete(id int) error {
	trivia, err := s.triviaRepo.GetByID(id)
	if err != nil {
		return err
	}
	return s.triviaRepo.Delete(trivia.ID)
}

func (s *triviaService) GetByID(id int) (*models.Trivia, error) {
	return s.triviaRepo.GetByID(id)
}

func (s *triviaService) ListAll() ([]models.Trivia, error) {
	return s.triviaRepo.ListAll()
}

func (s *triviaService) RandomSample(n int) ([]models.Trivia, error) {
	return s.triviaRepo.Random(n)
}
