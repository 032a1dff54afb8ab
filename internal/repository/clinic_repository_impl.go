package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"dental-navigator/internal/domain/entity"
	domainRepo "dental-navigator/internal/domain/repository"
)

type clinicRepository struct{}

func NewClinicRepository() domainRepo.ClinicRepository {
	return &clinicRepository{}
}

// FindAllWithRelations selects the six clinic-related tables concurrently
// and assembles candidates in memory, avoiding the cartesian product a
// single joined query would produce.
func (r *clinicRepository) FindAllWithRelations(ctx context.Context, db *gorm.DB) ([]entity.Clinic, error) {
	var (
		clinics      []entity.Clinic
		accessRules  []entity.AccessRule
		services     []entity.ClinicService
		serviceRules []entity.ClinicServiceRule
		pricing      []entity.PricingEntry
		timings      []entity.AccessTiming
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return db.WithContext(gctx).Find(&clinics).Error })
	g.Go(func() error { return db.WithContext(gctx).Find(&accessRules).Error })
	g.Go(func() error { return db.WithContext(gctx).Find(&services).Error })
	g.Go(func() error { return db.WithContext(gctx).Find(&serviceRules).Error })
	g.Go(func() error { return db.WithContext(gctx).Find(&pricing).Error })
	g.Go(func() error { return db.WithContext(gctx).Find(&timings).Error })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	accessByClinic := make(map[uuid.UUID]entity.AccessRule, len(accessRules))
	for _, a := range accessRules {
		accessByClinic[a.ClinicID] = a
	}
	servicesByClinic := make(map[uuid.UUID][]entity.ClinicService)
	for _, s := range services {
		servicesByClinic[s.ClinicID] = append(servicesByClinic[s.ClinicID], s)
	}
	rulesByClinic := make(map[uuid.UUID][]entity.ClinicServiceRule)
	for _, sr := range serviceRules {
		rulesByClinic[sr.ClinicID] = append(rulesByClinic[sr.ClinicID], sr)
	}
	pricingByClinic := make(map[uuid.UUID][]entity.PricingEntry)
	for _, p := range pricing {
		pricingByClinic[p.ClinicID] = append(pricingByClinic[p.ClinicID], p)
	}
	timingsByClinic := make(map[uuid.UUID][]entity.AccessTiming)
	for _, t := range timings {
		timingsByClinic[t.ClinicID] = append(timingsByClinic[t.ClinicID], t)
	}

	for i := range clinics {
		id := clinics[i].ID
		if a, ok := accessByClinic[id]; ok {
			rule := a
			clinics[i].AccessRule = &rule
		}
		clinics[i].Services = servicesByClinic[id]
		clinics[i].ServiceRules = rulesByClinic[id]
		clinics[i].Pricing = pricingByClinic[id]
		clinics[i].AccessTimings = timingsByClinic[id]
	}

	return clinics, nil
}

func (r *clinicRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Clinic, error) {
	var clinic entity.Clinic
	err := db.Where("id = ?", id).First(&clinic).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &clinic, nil
}
