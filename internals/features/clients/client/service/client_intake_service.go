package service

import (
	"context"
	"log"
	"strings"
	"time"

	"zoomcreatives_backend/internals/configs"
	"zoomcreatives_backend/internals/constants"
	"zoomcreatives_backend/internals/features/clients/client/dto"
	"zoomcreatives_backend/internals/helpers/postal"
	accsvc "zoomcreatives_backend/internals/features/users/accounts/service"
)

// IntakeService prepares a client record for persistence: address enrichment
// from the postal registry and password policy.
type IntakeService struct {
	Postal *postal.Resolver
}

func NewIntakeService() *IntakeService {
	return &IntakeService{Postal: postal.NewResolver()}
}

// EnrichAddress fills prefecture/city/street from the postal registry when the
// operator typed only a complete postal code. Lookup failures never block the
// intake; the request keeps whatever the operator entered and validation
// reports what is still missing.
func (s *IntakeService) EnrichAddress(ctx context.Context, req *dto.CreateClientRequest) {
	if !constants.AddressRequired(req.Category) {
		return
	}
	code := postal.Normalize(req.PostalCode)
	if !postal.IsComplete(code) {
		return
	}
	if strings.TrimSpace(req.Prefecture) != "" || strings.TrimSpace(req.City) != "" || strings.TrimSpace(req.Street) != "" {
		return
	}

	lctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	addr, err := s.Postal.Lookup(lctx, code)
	if err != nil {
		log.Printf("[WARN] postal lookup failed for %s: %v", code, err)
		req.Prefecture = ""
		req.City = ""
		req.Street = ""
		return
	}
	req.PostalCode = code
	req.Prefecture = addr.Prefecture
	req.City = addr.City
	req.Street = addr.Town
}

// ResolvePassword applies the default credential policy: an empty password on
// intake falls back to the configured default, then gets hashed.
func (s *IntakeService) ResolvePassword(raw string) (string, error) {
	pw := strings.TrimSpace(raw)
	if pw == "" {
		pw = configs.DefaultClientPw
	}
	return accsvc.HashPassword(pw)
}
