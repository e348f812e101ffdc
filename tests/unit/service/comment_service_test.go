package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"awaaz/internal/domain"
	"awaaz/internal/service"
	"awaaz/mocks"
)

func newCommentFixture() (service.CommentService, *mocks.MockCommentRepo, *mocks.MockPetitionRepo, *mocks.MockUserRepo) {
	commentRepo := new(mocks.MockCommentRepo)
	petitionRepo := new(mocks.MockPetitionRepo)
	userRepo := new(mocks.MockUserRepo)
	return service.NewCommentService(commentRepo, petitionRepo, userRepo), commentRepo, petitionRepo, userRepo
}

func TestCommentCreate_Success(t *testing.T) {
	svc, commentRepo, petitionRepo, userRepo := newCommentFixture()

	petitionID := uuid.New()
	userID := uuid.New()
	petitionRepo.On("GetByID", mock.Anything, petitionID).Return(&domain.Petition{ID: petitionID}, nil)
	userRepo.On("GetByID", mock.Anything, userID).Return(&domain.User{ID: userID, FullName: "Ravi Kumar"}, nil)
	commentRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Comment")).Return(nil)

	comment, err := svc.Create(context.Background(), service.CreateCommentInput{
		PetitionID: petitionID,
		UserID:     userID,
		Body:       "  This affects my village directly.  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "This affects my village directly.", comment.Body)
	assert.Equal(t, "Ravi Kumar", comment.AuthorName)
	commentRepo.AssertExpectations(t)
}

func TestCommentCreate_EmptyBody(t *testing.T) {
	svc, commentRepo, _, _ := newCommentFixture()

	_, err := svc.Create(context.Background(), service.CreateCommentInput{
		PetitionID: uuid.New(),
		UserID:     uuid.New(),
		Body:       "   ",
	})
	assert.ErrorIs(t, err, domain.ErrEmptyComment)
	commentRepo.AssertNotCalled(t, "Create")
}

func TestCommentCreate_PetitionMissing(t *testing.T) {
	svc, commentRepo, petitionRepo, _ := newCommentFixture()

	petitionID := uuid.New()
	petitionRepo.On("GetByID", mock.Anything, petitionID).Return(nil, domain.ErrPetitionNotFound)

	_, err := svc.Create(context.Background(), service.CreateCommentInput{
		PetitionID: petitionID,
		UserID:     uuid.New(),
		Body:       "Support",
	})
	assert.ErrorIs(t, err, domain.ErrPetitionNotFound)
	commentRepo.AssertNotCalled(t, "Create")
}

func TestCommentList_PassesPaginationThrough(t *testing.T) {
	svc, commentRepo, _, _ := newCommentFixture()

	petitionID := uuid.New()
	commentRepo.On("ListByPetition", mock.Anything, petitionID, 10, 20).
		Return([]domain.Comment{{Body: "Support"}}, 31, nil)

	comments, total, err := svc.ListByPetition(context.Background(), petitionID, 10, 20)
	require.NoError(t, err)
	assert.Equal(t, 31, total)
	require.Len(t, comments, 1)
}
