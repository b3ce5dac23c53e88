package services

import (
	"context"

	"voice-enhancer/internal/api/dto"
	"voice-enhancer/internal/app/catalog"
)

// OptionsServiceImpl implements OptionsService
type OptionsServiceImpl struct {
	catalog        *catalog.Catalog
	maxUploadBytes int64
}

func NewOptionsService(c *catalog.Catalog, maxUploadBytes int64) OptionsService {
	if c == nil {
		c = catalog.Default()
	}
	return &OptionsServiceImpl{catalog: c, maxUploadBytes: EffectiveUploadLimit(maxUploadBytes)}
}

func (s *OptionsServiceImpl) GetOptions(ctx context.Context) (*dto.OptionsResponse, error) {
	return &dto.OptionsResponse{
		Personas:       s.catalog.Personas,
		Agents:         s.catalog.Agents,
		DefaultPersona: s.catalog.DefaultPersona,
		DefaultAgent:   s.catalog.DefaultAgent,
		MaxUploadBytes: s.maxUploadBytes,
	}, nil
}
