package container

import (
	"context"
	"log"
	"os"

	"github.com/okrflow/okrflow-lambda/internal/auth"
	"github.com/okrflow/okrflow-lambda/internal/config"
	"github.com/okrflow/okrflow-lambda/internal/okr"
	"github.com/okrflow/okrflow-lambda/internal/team"
	"github.com/okrflow/okrflow-lambda/internal/user"
)

type Container struct {
	UserContainer *user.UserContainer
	TeamContainer *team.TeamContainer
	OKRContainer  *okr.OKRContainer
}

func New() *Container {
	config.Init()
	auth.Init()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if err := config.DB.AutoMigrate(&user.User{}, &team.Team{}, &okr.OKR{}, &okr.KeyResult{}); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	userContainer := user.NewUserContainer(config.DB)
	teamContainer := team.NewTeamContainer(config.DB)
	okrContainer := okr.NewOKRContainer(config.DB, userContainer.Repo, teamContainer.Repo)

	return &Container{
		UserContainer: userContainer,
		TeamContainer: teamContainer,
		OKRContainer:  okrContainer,
	}
}
