package handler

import (
	"github.com/stretchr/testify/mock"

	"github.com/yourusername/bhp-api/internal/domain/entity"
)

type mockQuestionRepo struct {
	mock.Mock
}

func (m *mockQuestionRepo) FindAll() ([]entity.Question, error) {
	args := m.Called()
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *mockQuestionRepo) FindAllWithAnswers() ([]entity.Question, error) {
	args := m.Called()
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *mockQuestionRepo) FindByID(id int) (*entity.Question, error) {
	args := m.Called(id)
	q, _ := args.Get(0).(*entity.Question)
	return q, args.Error(1)
}

func (m *mockQuestionRepo) Exists(id int) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *mockQuestionRepo) Create(q *entity.Question) error {
	args := m.Called(q)
	return args.Error(0)
}

func (m *mockQuestionRepo) Update(q *entity.Question) error {
	args := m.Called(q)
	return args.Error(0)
}

func (m *mockQuestionRepo) Delete(q *entity.Question) error {
	args := m.Called(q)
	return args.Error(0)
}

func (m *mockQuestionRepo) Save() error {
	return m.Called().Error(0)
}

type mockAnswerRepo struct {
	mock.Mock
}

func (m *mockAnswerRepo) FindAll() ([]entity.Answer, error) {
	args := m.Called()
	return args.Get(0).([]entity.Answer), args.Error(1)
}

func (m *mockAnswerRepo) FindByQuestionID(questionID int) ([]entity.Answer, error) {
	args := m.Called(questionID)
	return args.Get(0).([]entity.Answer), args.Error(1)
}

func (m *mockAnswerRepo) FindByID(id int) (*entity.Answer, error) {
	args := m.Called(id)
	a, _ := args.Get(0).(*entity.Answer)
	return a, args.Error(1)
}

func (m *mockAnswerRepo) Exists(id int) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *mockAnswerRepo) Create(a *entity.Answer) error {
	args := m.Called(a)
	return args.Error(0)
}

func (m *mockAnswerRepo) Update(a *entity.Answer) error {
	args := m.Called(a)
	return args.Error(0)
}

func (m *mockAnswerRepo) Delete(a *entity.Answer) error {
	args := m.Called(a)
	return args.Error(0)
}

func (m *mockAnswerRepo) Save() error {
	return m.Called().Error(0)
}
