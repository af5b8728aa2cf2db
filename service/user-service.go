package service

import (
	"khe/app_error"
	"khe/repository"
	"math"

	"gorm.io/gorm"
)

type UserService struct {
	userRepository *repository.UserRepository
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{
		userRepository: repository.NewUserRepository(db),
	}
}

func (s *UserService) GetUserById(id int) (*repository.User, error) {
	return s.userRepository.GetUserById(id)
}

func (s *UserService) SaveUser(user *repository.User) (*repository.User, error) {
	return s.userRepository.SaveUser(user)
}

// GetJudges lists everyone allowed to judge together with their open queue.
func (s *UserService) GetJudges() ([]*repository.User, error) {
	return s.userRepository.GetJudges()
}

func (s *UserService) UpdateJudgeCurve(judgeId int, curve float64) error {
	if math.IsNaN(curve) || math.IsInf(curve, 0) {
		return app_error.Invalid("judge curve must be a finite number")
	}
	return s.userRepository.SetJudgeCurve(judgeId, curve)
}
