package team

import "gorm.io/gorm"

type TeamContainer struct {
	Handler *Handler
	Repo    TeamRepository
}

func NewTeamContainer(db *gorm.DB) *TeamContainer {
	repo := NewRepository(db)
	handler := NewHandler(repo)

	return &TeamContainer{
		Handler: handler,
		Repo:    repo,
	}
}
