package okr

import (
	"github.com/okrflow/okrflow-lambda/internal/team"
	"github.com/okrflow/okrflow-lambda/internal/user"
	"gorm.io/gorm"
)

type OKRContainer struct {
	Handler *Handler
	Service OKRService
}

func NewOKRContainer(db *gorm.DB, userRepo user.UserRepository, teamRepo team.TeamRepository) *OKRContainer {
	repo := NewRepository(db)
	service := NewService(repo, userRepo, teamRepo)
	handler := NewHandler(service)

	return &OKRContainer{
		Handler: handler,
		Service: service,
	}
}
