package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	redisclient "github.com/coursewave/coursewave-backend/internal/clients/redis"
	"github.com/coursewave/coursewave-backend/internal/logger"
	"github.com/coursewave/coursewave-backend/internal/repos"
	"github.com/coursewave/coursewave-backend/internal/types"
)

const (
	catalogProgramsKey = "catalog:programs"
	catalogProgramKey  = "catalog:program:%s"
	catalogCacheTTL    = 60 * time.Second
)

// ProgramDetail is the public shape of one published program: its terms and
// only the published lessons within them.
type ProgramDetail struct {
	Program *types.Program `json:"program"`
	Terms   []*TermDetail  `json:"terms"`
}

type TermDetail struct {
	Term    *types.Term     `json:"term"`
	Lessons []*types.Lesson `json:"lessons"`
}

// CatalogService is the public read path. It only ever consumes published
// state; publication decisions happen elsewhere. The cache is best-effort
// with a short TTL, so a freshly published lesson appears within a minute.
type CatalogService interface {
	ListPublishedPrograms(ctx context.Context) ([]*types.Program, error)
	GetPublishedProgram(ctx context.Context, id uuid.UUID) (*ProgramDetail, error)
}

type catalogService struct {
	db       *gorm.DB
	log      *logger.Logger
	programs repos.ProgramRepo
	terms    repos.TermRepo
	lessons  repos.LessonRepo
	cache    redisclient.Cache
}

func NewCatalogService(db *gorm.DB, log *logger.Logger, programs repos.ProgramRepo, terms repos.TermRepo, lessons repos.LessonRepo, cache redisclient.Cache) CatalogService {
	return &catalogService{
		db:       db,
		log:      log.With("service", "CatalogService"),
		programs: programs,
		terms:    terms,
		lessons:  lessons,
		cache:    cache,
	}
}

func (s *catalogService) ListPublishedPrograms(ctx context.Context) ([]*types.Program, error) {
	if s.cache != nil {
		if raw, ok, err := s.cache.Get(ctx, catalogProgramsKey); err != nil {
			s.log.Warn("Catalog cache read failed", "error", err)
		} else if ok {
			var cached []*types.Program
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached, nil
			}
		}
	}
	programs, err := s.programs.ListPublished(ctx, nil)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if raw, err := json.Marshal(programs); err == nil {
			if err := s.cache.Set(ctx, catalogProgramsKey, raw, catalogCacheTTL); err != nil {
				s.log.Warn("Catalog cache write failed", "error", err)
			}
		}
	}
	return programs, nil
}

func (s *catalogService) GetPublishedProgram(ctx context.Context, id uuid.UUID) (*ProgramDetail, error) {
	key := fmt.Sprintf(catalogProgramKey, id)
	if s.cache != nil {
		if raw, ok, err := s.cache.Get(ctx, key); err != nil {
			s.log.Warn("Catalog cache read failed", "error", err)
		} else if ok {
			var cached ProgramDetail
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	program, err := s.programs.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if program == nil || program.Status != types.StatusPublished {
		return nil, nil
	}
	terms, err := s.terms.ListByProgramIDs(ctx, nil, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	termIDs := make([]uuid.UUID, 0, len(terms))
	for _, t := range terms {
		termIDs = append(termIDs, t.ID)
	}
	lessons, err := s.lessons.ListPublishedByTermIDs(ctx, nil, termIDs)
	if err != nil {
		return nil, err
	}
	byTerm := map[uuid.UUID][]*types.Lesson{}
	for _, lesson := range lessons {
		byTerm[lesson.TermID] = append(byTerm[lesson.TermID], lesson)
	}
	detail := &ProgramDetail{Program: program}
	for _, t := range terms {
		detail.Terms = append(detail.Terms, &TermDetail{Term: t, Lessons: byTerm[t.ID]})
	}

	if s.cache != nil {
		if raw, err := json.Marshal(detail); err == nil {
			if err := s.cache.Set(ctx, key, raw, catalogCacheTTL); err != nil {
				s.log.Warn("Catalog cache write failed", "error", err)
			}
		}
	}
	return detail, nil
}
