package services

import (
	"github.com/Jugal-Chanda/demo-CICD-github/repository"
)

type ServiceManager struct {
	UserService UserService
}

func NewServiceManager(repo repository.UserRepository) *ServiceManager {
	return &ServiceManager{
		UserService: NewUserService(repo),
	}
}
