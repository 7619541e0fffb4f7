package entities

import (
	"strings"
	"time"

	apperrors "github.com/rafabene/dentalclinic-backend/internal/domain/errors"
)

// InstallmentInterval define a periodicidade das parcelas de um serviço
type InstallmentInterval string

const (
	IntervalWeekly  InstallmentInterval = "weekly"
	IntervalMonthly InstallmentInterval = "monthly"
	IntervalCustom  InstallmentInterval = "custom"
)

// Service representa um serviço odontológico oferecido pela clínica
type Service struct {
	ID                  string
	Name                string
	Description         string
	Price               float64
	AllowInstallment    bool
	InstallmentTimes    *int
	InstallmentInterval *InstallmentInterval
	CustomIntervalDays  *int
	CategoryID          *string
	IsDeleted           bool
	DeletedAt           *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// SoftDelete marca o serviço como deletado
func (s *Service) SoftDelete(now time.Time) {
	s.IsDeleted = true
	s.DeletedAt = &now
}

// Validate valida nome, preço e a configuração de parcelamento
func (s *Service) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return apperrors.ErrInvalidName
	}

	if s.Price < 0 {
		return apperrors.ErrInvalidPrice
	}

	if !s.AllowInstallment {
		return nil
	}

	if s.InstallmentTimes == nil || *s.InstallmentTimes < 2 {
		return apperrors.ErrInvalidInstallment
	}

	if s.InstallmentInterval == nil {
		return apperrors.ErrInvalidInstallment
	}

	switch *s.InstallmentInterval {
	case IntervalWeekly, IntervalMonthly:
	case IntervalCustom:
		if s.CustomIntervalDays == nil || *s.CustomIntervalDays < 1 {
			return apperrors.ErrInvalidInstallment
		}
	default:
		return apperrors.ErrInvalidInstallment
	}

	return nil
}

// ClearInstallment zera os campos de parcelamento quando ele está desativado
func (s *Service) ClearInstallment() {
	if s.AllowInstallment {
		if s.InstallmentInterval != nil && *s.InstallmentInterval != IntervalCustom {
			s.CustomIntervalDays = nil
		}
		return
	}
	s.InstallmentTimes = nil
	s.InstallmentInterval = nil
	s.CustomIntervalDays = nil
}
