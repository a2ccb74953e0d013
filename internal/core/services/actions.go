package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/custodia-labs/seva-cli/internal/core/domain"
	"github.com/custodia-labs/seva-cli/internal/core/ports/driven"
	"github.com/custodia-labs/seva-cli/internal/core/ports/driving"
	"github.com/custodia-labs/seva-cli/internal/logger"
)

// Ensure ServiceActionService implements the interface.
var _ driving.ServiceActionService = (*ServiceActionService)(nil)

// ServiceActionService opens service websites.
type ServiceActionService struct {
	opener driven.URLOpener
}

// NewServiceActionService creates a new action service.
func NewServiceActionService(opener driven.URLOpener) *ServiceActionService {
	return &ServiceActionService{opener: opener}
}

// Open opens the record's URL in the default browser.
func (s *ServiceActionService) Open(ctx context.Context, record *domain.ServiceRecord) error {
	if record == nil {
		return fmt.Errorf("record is nil: %w", domain.ErrInvalidInput)
	}
	if s.opener == nil {
		return domain.ErrOpenerUnavailable
	}
	if err := validateServiceURL(record.URL); err != nil {
		return fmt.Errorf("open %q: %w", record.Name, err)
	}

	logger.Info("opening %s (%s)", record.Name, record.URL)
	if err := s.opener.Open(ctx, record.URL); err != nil {
		return fmt.Errorf("open %q: %w", record.Name, err)
	}
	return nil
}

// validateServiceURL accepts only absolute http and https URLs with a host.
func validateServiceURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", domain.ErrInvalidURL, raw)
	}
	return nil
}
