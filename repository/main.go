package repository

import (
	"github.com/tnqbao/gau-gallery-service/infra"
)

type Repository struct {
	ImageRepo  *ImageRepository
	LetterRepo *LetterRepository
}

var repository *Repository

func InitRepository(infra *infra.Infra) *Repository {
	repository = &Repository{
		ImageRepo:  NewImageRepository(infra.Postgres.DB),
		LetterRepo: NewLetterRepository(infra.Postgres.DB),
	}
	return repository
}

func GetRepository() *Repository {
	if repository == nil {
		panic("repository not initialized")
	}
	return repository
}
