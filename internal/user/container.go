package user

import "gorm.io/gorm"

type UserContainer struct {
	Handler *Handler
	Repo    UserRepository
}

func NewUserContainer(db *gorm.DB) *UserContainer {
	repo := NewRepository(db)
	handler := NewHandler(repo)

	return &UserContainer{
		Handler: handler,
		Repo:    repo,
	}
}
