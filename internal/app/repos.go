package app

import (
	"gorm.io/gorm"

	"github.com/coursewave/coursewave-backend/internal/logger"
	"github.com/coursewave/coursewave-backend/internal/repos"
)

type Repos struct {
	User    repos.UserRepo
	Program repos.ProgramRepo
	Term    repos.TermRepo
	Lesson  repos.LessonRepo
	Asset   repos.AssetRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:    repos.NewUserRepo(db, log),
		Program: repos.NewProgramRepo(db, log),
		Term:    repos.NewTermRepo(db, log),
		Lesson:  repos.NewLessonRepo(db, log),
		Asset:   repos.NewAssetRepo(db, log),
	}
}
