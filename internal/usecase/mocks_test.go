package usecase_test

import (
	"context"

	"go-ats-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) Create(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

type MockEducationRepo struct {
	mock.Mock
}

func (m *MockEducationRepo) Create(ctx context.Context, e *domain.Education) (*domain.Education, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Education), args.Error(1)
}

type MockWorkExperienceRepo struct {
	mock.Mock
}

func (m *MockWorkExperienceRepo) Create(ctx context.Context, w *domain.WorkExperience) (*domain.WorkExperience, error) {
	args := m.Called(ctx, w)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkExperience), args.Error(1)
}

type MockResumeRepo struct {
	mock.Mock
}

func (m *MockResumeRepo) Create(ctx context.Context, r *domain.Resume) (*domain.Resume, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resume), args.Error(1)
}

type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) Classify(err error) domain.StoreErrorKind {
	return m.Called(err).Get(0).(domain.StoreErrorKind)
}

type MockValidator struct {
	mock.Mock
}

func (m *MockValidator) Validate(in *domain.CandidateInput) error {
	return m.Called(in).Error(0)
}

type MockFileStorage struct {
	mock.Mock
}

func (m *MockFileStorage) Put(ctx context.Context, key, contentType string, body []byte) (string, error) {
	args := m.Called(ctx, key, contentType, body)
	return args.String(0), args.Error(1)
}
