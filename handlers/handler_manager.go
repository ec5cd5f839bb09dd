package handlers

import (
	"time"

	"github.com/Jugal-Chanda/demo-CICD-github/repository"
	"github.com/Jugal-Chanda/demo-CICD-github/services"
)

type HandlerManager struct {
	HealthHandler *HealthHandler
	UserHandler   *UserHandler
}

func NewHandlerManager(sm *services.ServiceManager, pinger repository.Pinger, pingTimeout time.Duration) *HandlerManager {
	return &HandlerManager{
		HealthHandler: NewHealthHandler(pinger, pingTimeout),
		UserHandler:   NewUserHandler(sm.UserService),
	}
}
