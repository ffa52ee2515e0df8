package service

import (
	"context"
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/stravadictos/internal/error_values"
	"github.com/limbo/stravadictos/internal/repository"
	"github.com/limbo/stravadictos/pkg/entity"
)

type AthletesService struct {
	repo repository.AthletesRepositoryI
}

func NewAthletesService(athletesRepo repository.AthletesRepositoryI) *AthletesService {
	if athletesRepo == nil {
		log.Fatal("on athletes service provided nil repo")
	}
	return &AthletesService{
		repo: athletesRepo,
	}
}

func (as *AthletesService) Register(ctx context.Context, req *RegisterAthleteRequest) error {
	err := validate.Struct(*req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errors.New("validation error: ")
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return err
		}
		return errors.New("validation unexpected error: " + err.Error())
	}
	err = as.repo.Create(ctx, &entity.Athlete{
		Name:       req.Name,
		StravaName: req.StravaName,
		Active:     req.Active,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrAthleteExists) {
			return err
		}
		return errors.New("repository creating error: " + err.Error())
	}
	return nil
}

func (as *AthletesService) Drop(ctx context.Context, stravaName string) error {
	err := as.repo.DropByStravaName(ctx, stravaName)
	if err != nil {
		if errors.Is(err, errorvalues.ErrAthleteNotFound) {
			return err
		}
		return errors.New("repository dropping error: " + err.Error())
	}
	return nil
}

func (as *AthletesService) SetWeeksCompleted(ctx context.Context, stravaName string, weeks int) error {
	if weeks < 0 {
		return errors.New("weeks completed cannot be negative")
	}
	err := as.repo.UpdateWeeksCompleted(ctx, stravaName, weeks)
	if err != nil {
		if errors.Is(err, errorvalues.ErrAthleteNotFound) {
			return err
		}
		return errors.New("repository updating error: " + err.Error())
	}
	return nil
}
