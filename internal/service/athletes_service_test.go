package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	errorvalues "github.com/limbo/stravadictos/internal/error_values"
	"github.com/limbo/stravadictos/internal/repository/mocks"
	"github.com/limbo/stravadictos/internal/service"
	"github.com/stretchr/testify/assert"
)

func init() {
	service.InitValidator()
}

func TestRegisterAthlete(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	athletesRepo := mocks.NewMockAthletesRepositoryI(ctrl)
	serv := service.NewAthletesService(athletesRepo)

	testCases := []struct {
		Desc         string
		Req          *service.RegisterAthleteRequest
		WantErr      bool
		MockPrepFunc func()
	}{
		{
			Desc: "success",
			Req: &service.RegisterAthleteRequest{
				Name:       "Ana Torres Robles",
				StravaName: "Ana Torres",
				Active:     true,
			},
			WantErr: false,
			MockPrepFunc: func() {
				athletesRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			Desc: "validation error on empty strava name",
			Req: &service.RegisterAthleteRequest{
				Name: "Ana Torres Robles",
			},
			WantErr:      true,
			MockPrepFunc: func() {},
		},
		{
			Desc: "validation error on leading punctuation",
			Req: &service.RegisterAthleteRequest{
				Name:       "-Ana",
				StravaName: "Ana Torres",
			},
			WantErr:      true,
			MockPrepFunc: func() {},
		},
		{
			Desc: "existing athlete",
			Req: &service.RegisterAthleteRequest{
				Name:       "Ana Torres Robles",
				StravaName: "Ana Torres",
				Active:     true,
			},
			WantErr: true,
			MockPrepFunc: func() {
				athletesRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errorvalues.ErrAthleteExists)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := serv.Register(ctx, tc.Req)
			if tc.WantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDropAthlete(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	athletesRepo := mocks.NewMockAthletesRepositoryI(ctrl)
	serv := service.NewAthletesService(athletesRepo)
	ctx := context.Background()

	athletesRepo.EXPECT().DropByStravaName(gomock.Any(), "Ana Torres").Return(nil)
	assert.NoError(t, serv.Drop(ctx, "Ana Torres"))

	athletesRepo.EXPECT().DropByStravaName(gomock.Any(), "Nobody").Return(errorvalues.ErrAthleteNotFound)
	assert.ErrorIs(t, serv.Drop(ctx, "Nobody"), errorvalues.ErrAthleteNotFound)
}

func TestSetWeeksCompleted(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	athletesRepo := mocks.NewMockAthletesRepositoryI(ctrl)
	serv := service.NewAthletesService(athletesRepo)
	ctx := context.Background()

	athletesRepo.EXPECT().UpdateWeeksCompleted(gomock.Any(), "Ana Torres", 4).Return(nil)
	assert.NoError(t, serv.SetWeeksCompleted(ctx, "Ana Torres", 4))

	assert.Error(t, serv.SetWeeksCompleted(ctx, "Ana Torres", -1))
}
